package ingest

import (
	"fmt"
	"io"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"

	"gopkg.in/yaml.v2"
)

const DefaultAutoAlertCutoff = 0.85

var ErrUnknownVendor = fmt.Errorf("unknown vendor")

// Payload is the canonical result of parsing one vendor webhook body.
// A single delivery can carry any mix of transport and threat events.
type Payload struct {
	GpsUpdates   []types.GpsUpdate
	RfidScans    []types.RfidScanEvent
	DriverEvents []types.DriverEvent
	ThreatEvents []types.ThreatEvent
}

func (p Payload) Empty() bool {
	return len(p.GpsUpdates) == 0 && len(p.RfidScans) == 0 && len(p.DriverEvents) == 0 && len(p.ThreatEvents) == 0
}

// VendorAdapter maps one vendor's webhook format onto canonical events.
// Adapters are purely functional mappers and hold nothing but their
// shared secret and thresholds.
type VendorAdapter interface {
	Vendor() string
	ParseWebhook(body []byte) (Payload, error)
	VerifySignature(body []byte, signature string) bool
}

// ThreatAdapter is implemented by adapters whose events can create
// alerts without a human in the loop.
type ThreatAdapter interface {
	VendorAdapter
	ShouldAutoAlert(ev types.ThreatEvent) bool
}

type VendorConfig struct {
	Secret              string `yaml:"secret"`
	SiteID              string `yaml:"siteId"`
	PollURL             string `yaml:"pollUrl"`
	PollIntervalSeconds int    `yaml:"pollIntervalSeconds"`
}

func (vc VendorConfig) PollInterval() time.Duration {
	if vc.PollIntervalSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(vc.PollIntervalSeconds) * time.Second
}

type Config struct {
	AutoAlertCutoff float64                 `yaml:"autoAlertCutoff"`
	Vendors         map[string]VendorConfig `yaml:"vendors"`
}

func (c Config) cutoff() float64 {
	if c.AutoAlertCutoff <= 0 {
		return DefaultAutoAlertCutoff
	}
	return c.AutoAlertCutoff
}

func LoadConfig(r io.Reader) (Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{}
	err = yaml.Unmarshal(b, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse ingest config: %w", err)
	}

	return cfg, nil
}

type adapterDeps struct {
	secret string
	siteID string
	cutoff float64
}

var registry = map[string]map[string]func(adapterDeps) VendorAdapter{
	"bus": {
		"zonar":   newZonarAdapter,
		"samsara": newSamsaraAdapter,
	},
	"weapon": {
		"zeroeyes": newZeroEyesAdapter,
	},
	"panic": {
		"centegix": newCentegixAdapter,
	},
	"social": {
		"gaggle": newGaggleAdapter,
	},
}

// NewAdapter resolves (family, vendor) to an adapter. The identifier is
// checked against the closed set before any secret is looked up, so an
// unknown vendor never reaches the configured secrets.
func NewAdapter(family, vendor string, cfg Config) (VendorAdapter, error) {
	byVendor, ok := registry[family]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownVendor, family, vendor)
	}

	ctor, ok := byVendor[vendor]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownVendor, family, vendor)
	}

	vc := cfg.Vendors[vendor]

	return ctor(adapterDeps{secret: vc.Secret, siteID: vc.SiteID, cutoff: cfg.cutoff()}), nil
}
