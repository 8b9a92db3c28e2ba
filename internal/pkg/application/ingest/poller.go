package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const pollTimeout = 10 * time.Second

// Poller pulls from vendors that expose a fetch API instead of pushing
// webhooks. A failed cycle is retried with backoff and then abandoned
// until the next tick; ingestion never stops because one vendor is
// down.
type Poller struct {
	svc     IngestService
	client  *http.Client
	sources []pollSource
}

type pollSource struct {
	adapter  VendorAdapter
	url      string
	interval time.Duration
}

func NewPoller(svc IngestService, cfg Config) (*Poller, error) {
	p := &Poller{
		svc:    svc,
		client: &http.Client{Timeout: pollTimeout},
	}

	for family, byVendor := range registry {
		for vendor := range byVendor {
			vc, ok := cfg.Vendors[vendor]
			if !ok || vc.PollURL == "" {
				continue
			}

			adapter, err := NewAdapter(family, vendor, cfg)
			if err != nil {
				return nil, err
			}

			p.sources = append(p.sources, pollSource{
				adapter:  adapter,
				url:      vc.PollURL,
				interval: vc.PollInterval(),
			})
		}
	}

	return p, nil
}

// Start launches one polling goroutine per configured source and
// returns immediately. The goroutines exit when ctx is cancelled.
func (p *Poller) Start(ctx context.Context) {
	for _, source := range p.sources {
		go p.run(ctx, source)
	}
}

func (p *Poller) run(ctx context.Context, source pollSource) {
	log := logging.GetFromContext(ctx).With("vendor", source.adapter.Vendor())

	ticker := time.NewTicker(source.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := p.pollOnce(ctx, source)
			if err != nil {
				log.Error("vendor poll failed", "err", err.Error())
			}
		}
	}
}

func (p *Poller) pollOnce(ctx context.Context, source pollSource) error {
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)

	return backoff.Retry(func() error {
		body, err := p.fetch(ctx, source.url)
		if err != nil {
			return err
		}

		payload, err := source.adapter.ParseWebhook(body)
		if err != nil {
			// A malformed response will not get better on retry.
			return backoff.Permanent(err)
		}

		_, err = p.svc.Process(ctx, source.adapter, payload)
		return err
	}, b)
}

func (p *Poller) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
