package ingest

import (
	"context"

	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/alerts"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

//go:generate moq -rm -out ingestservice_mock.go . IngestService
type IngestService interface {
	Process(ctx context.Context, adapter VendorAdapter, payload Payload) (Result, error)
}

// Result reports what a single delivery produced.
type Result struct {
	GpsUpdates    int `json:"gpsUpdates,omitempty"`
	RfidScans     int `json:"rfidScans,omitempty"`
	DriverEvents  int `json:"driverEvents,omitempty"`
	ThreatEvents  int `json:"threatEvents,omitempty"`
	AlertsCreated int `json:"alertsCreated,omitempty"`
}

func (r Result) Actionable() bool {
	return r.GpsUpdates+r.RfidScans+r.DriverEvents+r.ThreatEvents > 0
}

type ingestSvc struct {
	messenger messaging.MsgContext
	alerts    alerts.AlertService
}

func NewService(m messaging.MsgContext, a alerts.AlertService) IngestService {
	return &ingestSvc{messenger: m, alerts: a}
}

// Process relays canonical events to the downstream pipelines.
// Transport events go out on the messaging fabric; threat events above
// the adapter's auto alert cutoff create alerts synchronously, the rest
// are published for operator review.
func (svc *ingestSvc) Process(ctx context.Context, adapter VendorAdapter, payload Payload) (Result, error) {
	log := logging.GetFromContext(ctx)
	result := Result{}

	var err error

	for i := range payload.GpsUpdates {
		err = svc.messenger.PublishOnTopic(ctx, &payload.GpsUpdates[i])
		if err != nil {
			return result, err
		}
		result.GpsUpdates++
	}

	for i := range payload.RfidScans {
		err = svc.messenger.PublishOnTopic(ctx, &payload.RfidScans[i])
		if err != nil {
			return result, err
		}
		result.RfidScans++
	}

	for i := range payload.DriverEvents {
		err = svc.messenger.PublishOnTopic(ctx, &payload.DriverEvents[i])
		if err != nil {
			return result, err
		}
		result.DriverEvents++
	}

	threatAdapter, canAutoAlert := adapter.(ThreatAdapter)

	for i := range payload.ThreatEvents {
		ev := payload.ThreatEvents[i]
		result.ThreatEvents++

		if canAutoAlert && threatAdapter.ShouldAutoAlert(ev) {
			_, alertErr := svc.alerts.CreateFromThreatEvent(ctx, ev)
			if alertErr == nil {
				result.AlertsCreated++
				continue
			}
			// A threat that cannot become an alert is still surfaced
			// for review; losing it entirely is the one failure mode
			// this pipeline must not have.
			log.Error("failed to create alert from threat event",
				"vendor", ev.Vendor, "event_type", ev.EventType, "err", alertErr.Error())
		}

		err = svc.messenger.PublishOnTopic(ctx, &ev)
		if err != nil {
			return result, err
		}
	}

	return result, nil
}
