package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// Notification is one staff facing dispatch job. Jobs are produced by
// the topic handlers and delivered off the request path.
type Notification struct {
	JobType   string    `json:"jobType"`
	EntityID  string    `json:"entityId"`
	SiteID    string    `json:"siteId"`
	Level     string    `json:"level,omitempty"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

//go:generate moq -rm -out notifier_mock.go . Notifier

// Notifier delivers a notification to the staff channels (push, SMS,
// dispatch console). Implementations may be slow; the dispatcher
// retries around them.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// seenLimit bounds the dedup window. Oldest keys are evicted first, so
// a redelivery arriving within the window is still caught while the map
// stays small on long running processes.
const seenLimit = 4096

type Dispatcher struct {
	notifier  Notifier
	forwarder *EventForwarder

	mu    sync.Mutex
	seen  map[string]struct{}
	order []string
}

// New wires the dispatcher onto the messaging fabric. Registration
// happens here so a constructed dispatcher is always consuming.
func New(messenger messaging.MsgContext, notifier Notifier, forwarder *EventForwarder) *Dispatcher {
	d := &Dispatcher{
		notifier:  notifier,
		forwarder: forwarder,
		seen:      make(map[string]struct{}),
	}

	messenger.RegisterTopicMessageHandler("alerts.alertCreated", NewAlertCreatedHandler(d))
	messenger.RegisterTopicMessageHandler("alerts.alertStatusChanged", NewAlertStatusChangedHandler(d))
	messenger.RegisterTopicMessageHandler("lockdowns.lockdownInitiated", NewLockdownInitiatedHandler(d))
	messenger.RegisterTopicMessageHandler("lockdowns.lockdownReleased", NewLockdownReleasedHandler(d))

	return d
}

// deliver runs one job to completion. A redelivered broker message must
// not page staff twice, so jobs are deduplicated on the full identity of
// the event. The timestamp keeps distinct transitions of the same entity
// apart even when they land on the same status.
func (d *Dispatcher) deliver(ctx context.Context, n Notification) {
	log := logging.GetFromContext(ctx)

	key := n.EntityID + "/" + n.JobType + "/" + n.Timestamp.UTC().Format(time.RFC3339Nano)
	d.mu.Lock()
	_, dup := d.seen[key]
	if !dup {
		d.seen[key] = struct{}{}
		d.order = append(d.order, key)
		if len(d.order) > seenLimit {
			delete(d.seen, d.order[0])
			d.order = d.order[1:]
		}
	}
	d.mu.Unlock()

	if dup {
		log.Debug("duplicate notification dropped", "entity_id", n.EntityID, "job_type", n.JobType)
		return
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)

	err := backoff.Retry(func() error {
		return d.notifier.Send(ctx, n)
	}, b)
	if err != nil {
		log.Error("notification permanently failed",
			"entity_id", n.EntityID, "job_type", n.JobType, "site_id", n.SiteID, "err", err.Error())
	}

	if d.forwarder != nil {
		err = d.forwarder.Forward(ctx, n)
		if err != nil {
			log.Error("failed to forward event to subscribers",
				"entity_id", n.EntityID, "job_type", n.JobType, "err", err.Error())
		}
	}
}

// LogNotifier is the default notifier for deployments without a staff
// channel integration configured.
type LogNotifier struct{}

func (LogNotifier) Send(ctx context.Context, n Notification) error {
	logging.GetFromContext(ctx).Info("staff notification",
		"job_type", n.JobType, "entity_id", n.EntityID, "site_id", n.SiteID, "level", n.Level)
	return nil
}

var _ Notifier = LogNotifier{}

var ErrNoEntity = fmt.Errorf("notification carries no entity id")
