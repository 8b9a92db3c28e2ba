package opmode

import (
	"context"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

type Mode string

const (
	EdgeLocal Mode = "edge-local"
	CloudOnly Mode = "cloud-only"
)

// Provider reports the deployment's current operating mode. Callers are
// expected to ask on every request; a mode change must take effect
// without a restart, so implementations must not cache indefinitely.
type Provider interface {
	Current(ctx context.Context) Mode
}

type envProvider struct {
	defaultMode Mode
}

// NewEnvProvider reads OPERATING_MODE from the environment on every
// call. Anything other than "cloud-only" falls back to the default,
// which is edge-local: a misconfigured deployment must still be able to
// end a lockdown without cloud connectivity.
func NewEnvProvider() Provider {
	return &envProvider{defaultMode: EdgeLocal}
}

func (p *envProvider) Current(ctx context.Context) Mode {
	mode := env.GetVariableOrDefault(ctx, "OPERATING_MODE", string(p.defaultMode))
	if Mode(mode) == CloudOnly {
		return CloudOnly
	}
	return EdgeLocal
}

type staticProvider struct {
	mode Mode
}

// Static returns a provider pinned to one mode, for tests and for
// deployments that set the mode through configuration management.
func Static(mode Mode) Provider {
	return &staticProvider{mode: mode}
}

func (p *staticProvider) Current(ctx context.Context) Mode {
	return p.mode
}
