package notifications

import (
	"context"
	"encoding/json"
	"time"

	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

var tracer = otel.Tracer("safeschool-os/notifications")

type alertCreated struct {
	Alert     types.Alert `json:"alert"`
	SiteID    string      `json:"siteId"`
	Timestamp time.Time   `json:"timestamp"`
}

type alertStatusChanged struct {
	AlertID   string    `json:"alertId"`
	SiteID    string    `json:"siteId"`
	Level     string    `json:"level"`
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type lockdownInitiated struct {
	Lockdown  types.Lockdown `json:"lockdown"`
	SiteID    string         `json:"siteId"`
	Timestamp time.Time      `json:"timestamp"`
}

type lockdownReleased struct {
	LockdownID string    `json:"lockdownId"`
	SiteID     string    `json:"siteId"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewAlertCreatedHandler(d *Dispatcher) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "notify-alert-created")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := alertCreated{}

		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		d.deliver(ctx, Notification{
			JobType:   "alerts.alertCreated",
			EntityID:  msg.Alert.ID,
			SiteID:    msg.SiteID,
			Level:     string(msg.Alert.Level),
			Message:   msg.Alert.Message,
			Timestamp: msg.Timestamp,
		})
	}
}

func NewAlertStatusChangedHandler(d *Dispatcher) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "notify-alert-status-changed")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := alertStatusChanged{}

		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		d.deliver(ctx, Notification{
			JobType:   "alerts.alertStatusChanged/" + msg.Status,
			EntityID:  msg.AlertID,
			SiteID:    msg.SiteID,
			Level:     msg.Level,
			Message:   msg.Message,
			Timestamp: msg.Timestamp,
		})
	}
}

func NewLockdownInitiatedHandler(d *Dispatcher) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "notify-lockdown-initiated")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := lockdownInitiated{}

		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		d.deliver(ctx, Notification{
			JobType:   "lockdowns.lockdownInitiated",
			EntityID:  msg.Lockdown.ID,
			SiteID:    msg.SiteID,
			Level:     string(types.AlertLevelLockdown),
			Timestamp: msg.Timestamp,
		})
	}
}

func NewLockdownReleasedHandler(d *Dispatcher) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "notify-lockdown-released")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := lockdownReleased{}

		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		d.deliver(ctx, Notification{
			JobType:   "lockdowns.lockdownReleased",
			EntityID:  msg.LockdownID,
			SiteID:    msg.SiteID,
			Level:     string(types.AlertLevelAllClear),
			Timestamp: msg.Timestamp,
		})
	}
}
