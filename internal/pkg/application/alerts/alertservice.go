package alerts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/auditlog"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/realtime"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/infrastructure/storage"
	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

//go:generate moq -rm -out alertservice_mock.go . AlertService
type AlertService interface {
	Create(ctx context.Context, input CreateAlertInput, actor types.Actor) (types.Alert, error)
	CreateFromThreatEvent(ctx context.Context, ev types.ThreatEvent) (types.Alert, error)
	Query(ctx context.Context, offset, limit int, siteIDs []string) (types.Collection[types.Alert], error)
	GetByID(ctx context.Context, alertID string, siteIDs []string) (types.Alert, error)
	Acknowledge(ctx context.Context, alertID string, actor types.Actor) (types.Alert, error)
	Confirm(ctx context.Context, alertID string, actor types.Actor) (types.Alert, error)
	Dismiss(ctx context.Context, alertID string, actor types.Actor) (types.Alert, error)
	Resolve(ctx context.Context, alertID string, actor types.Actor) (types.Alert, error)
	Extend(ctx context.Context, alertID, reason string, actor types.Actor) (types.Alert, error)
}

var (
	ErrAlertNotFound     = fmt.Errorf("alert not found")
	ErrInvalidTransition = fmt.Errorf("invalid alert status transition")
	ErrReasonRequired    = fmt.Errorf("a reason is required to extend an alert")
	ErrBadInput          = fmt.Errorf("invalid alert input")
)

//go:generate moq -rm -out alertrepository_mock.go . AlertRepository
type AlertRepository interface {
	AddAlert(ctx context.Context, alert types.Alert) error
	GetAlert(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error)
	QueryAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error)
	UpdateAlertStatus(ctx context.Context, alertID string, from, to types.AlertStatus, at time.Time) error
	ExtendAlert(ctx context.Context, alertID string, until time.Time, reason string) error
	GetBuilding(ctx context.Context, buildingID string) (types.Building, error)
}

type CreateAlertInput struct {
	Level      types.AlertLevel `json:"level"`
	BuildingID string           `json:"buildingId"`
	Message    string           `json:"message,omitempty"`
	Source     string           `json:"source,omitempty"`
}

// The status state machine. Statuses only advance forward or terminate
// via CANCELLED; everything not listed here is rejected.
var transitions = map[types.AlertStatus][]types.AlertStatus{
	types.AlertStatusTriggered:    {types.AlertStatusAcknowledged, types.AlertStatusCancelled},
	types.AlertStatusAcknowledged: {types.AlertStatusDispatched, types.AlertStatusResolved, types.AlertStatusCancelled},
	types.AlertStatusDispatched:   {types.AlertStatusResolved},
}

func canTransition(from, to types.AlertStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Alert messages are rendered verbatim in multiple dashboards, so every
// free text field is stripped of markup before it is persisted.
var sanitizer = bluemonday.StrictPolicy()

func sanitize(s string) string {
	return strings.TrimSpace(sanitizer.Sanitize(s))
}

const extendWindow = 10 * time.Minute

type alertSvc struct {
	storage     AlertRepository
	messenger   messaging.MsgContext
	broadcaster realtime.Broadcaster
	audit       auditlog.Logger
}

func New(s AlertRepository, m messaging.MsgContext, b realtime.Broadcaster, a auditlog.Logger) AlertService {
	return &alertSvc{
		storage:     s,
		messenger:   m,
		broadcaster: b,
		audit:       a,
	}
}

func (svc *alertSvc) Create(ctx context.Context, input CreateAlertInput, actor types.Actor) (types.Alert, error) {
	if !input.Level.Valid() || input.BuildingID == "" {
		return types.Alert{}, ErrBadInput
	}

	// The site is resolved from the building on the server side, so a
	// caller can not forge a record into another site.
	building, err := svc.storage.GetBuilding(ctx, input.BuildingID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Alert{}, ErrBadInput
		}
		return types.Alert{}, err
	}

	if !actor.HasSite(building.SiteID) {
		return types.Alert{}, ErrAlertNotFound
	}

	source := input.Source
	if source == "" {
		source = "manual"
	}

	alert := types.Alert{
		ID:          uuid.NewString(),
		SiteID:      building.SiteID,
		BuildingID:  building.ID,
		Level:       input.Level,
		Status:      types.AlertStatusTriggered,
		Source:      source,
		Message:     sanitize(input.Message),
		TriggeredAt: time.Now().UTC(),
	}

	err = svc.storage.AddAlert(ctx, alert)
	if err != nil {
		return types.Alert{}, err
	}

	err = svc.audit.Write(ctx, auditlog.Entry(actor, alert.SiteID, "alert.create", "alert", alert.ID, map[string]any{
		"level":  string(alert.Level),
		"source": alert.Source,
	}))
	if err != nil {
		return types.Alert{}, err
	}

	svc.announce(ctx, alert, "alert:created")

	return alert, nil
}

func (svc *alertSvc) CreateFromThreatEvent(ctx context.Context, ev types.ThreatEvent) (types.Alert, error) {
	if ev.BuildingID == "" {
		return types.Alert{}, ErrBadInput
	}

	level := types.AlertLevelActiveThreat
	if ev.EventType == "fire_alarm" {
		level = types.AlertLevelFire
	}

	system := types.Actor{ID: "system:" + ev.Vendor, Role: types.RoleSuperAdmin}

	return svc.Create(ctx, CreateAlertInput{
		Level:      level,
		BuildingID: ev.BuildingID,
		Message:    fmt.Sprintf("%s reported %s at %s", ev.Vendor, ev.EventType, ev.Location),
		Source:     ev.Vendor,
	}, system)
}

func (svc *alertSvc) Query(ctx context.Context, offset, limit int, siteIDs []string) (types.Collection[types.Alert], error) {
	return svc.storage.QueryAlerts(ctx, storage.WithOffset(offset), storage.WithLimit(limit), storage.WithSiteIDs(siteIDs))
}

func (svc *alertSvc) GetByID(ctx context.Context, alertID string, siteIDs []string) (types.Alert, error) {
	alert, err := svc.storage.GetAlert(ctx, storage.WithAlertID(alertID), storage.WithSiteIDs(siteIDs))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			// Out of scope records are indistinguishable from absent
			// ones, so record existence does not leak across sites.
			return types.Alert{}, ErrAlertNotFound
		}
		return types.Alert{}, err
	}

	return alert, nil
}

func (svc *alertSvc) Acknowledge(ctx context.Context, alertID string, actor types.Actor) (types.Alert, error) {
	return svc.transition(ctx, alertID, types.AlertStatusAcknowledged, "alert.acknowledge", "alert:acknowledged", actor)
}

func (svc *alertSvc) Confirm(ctx context.Context, alertID string, actor types.Actor) (types.Alert, error) {
	return svc.transition(ctx, alertID, types.AlertStatusDispatched, "alert.confirm", "alert:confirmed", actor)
}

func (svc *alertSvc) Dismiss(ctx context.Context, alertID string, actor types.Actor) (types.Alert, error) {
	return svc.transition(ctx, alertID, types.AlertStatusCancelled, "alert.dismiss", "alert:dismissed", actor)
}

func (svc *alertSvc) Resolve(ctx context.Context, alertID string, actor types.Actor) (types.Alert, error) {
	return svc.transition(ctx, alertID, types.AlertStatusResolved, "alert.resolve", "alert:resolved", actor)
}

// Extend pushes the investigation deadline of an acknowledged fire
// pre-alarm forward without moving the status. Extending without a
// justification is not acceptable, so the reason is mandatory.
func (svc *alertSvc) Extend(ctx context.Context, alertID, reason string, actor types.Actor) (types.Alert, error) {
	reason = sanitize(reason)
	if reason == "" {
		return types.Alert{}, ErrReasonRequired
	}

	alert, err := svc.GetByID(ctx, alertID, actor.SiteScope())
	if err != nil {
		return types.Alert{}, err
	}

	if alert.Status != types.AlertStatusAcknowledged {
		return types.Alert{}, ErrInvalidTransition
	}

	until := time.Now().UTC().Add(extendWindow)

	err = svc.storage.ExtendAlert(ctx, alertID, until, reason)
	if err != nil {
		if errors.Is(err, storage.ErrStaleStatus) {
			return types.Alert{}, ErrInvalidTransition
		}
		return types.Alert{}, err
	}

	alert.ExtendedUntil = &until
	alert.ExtendReason = reason

	err = svc.audit.Write(ctx, auditlog.Entry(actor, alert.SiteID, "alert.extend", "alert", alert.ID, map[string]any{
		"reason": reason,
		"until":  until,
	}))
	if err != nil {
		return types.Alert{}, err
	}

	svc.announce(ctx, alert, "alert:extended")

	return alert, nil
}

func (svc *alertSvc) transition(ctx context.Context, alertID string, to types.AlertStatus, action, event string, actor types.Actor) (types.Alert, error) {
	alert, err := svc.GetByID(ctx, alertID, actor.SiteScope())
	if err != nil {
		return types.Alert{}, err
	}

	if !canTransition(alert.Status, to) {
		return types.Alert{}, ErrInvalidTransition
	}

	now := time.Now().UTC()

	err = svc.storage.UpdateAlertStatus(ctx, alertID, alert.Status, to, now)
	if err != nil {
		if errors.Is(err, storage.ErrStaleStatus) {
			// A concurrent caller won the race; from this caller's point
			// of view the transition is no longer valid.
			return types.Alert{}, ErrInvalidTransition
		}
		return types.Alert{}, err
	}

	from := alert.Status
	alert.Status = to

	switch to {
	case types.AlertStatusAcknowledged:
		alert.AcknowledgedAt = &now
	case types.AlertStatusResolved, types.AlertStatusCancelled:
		alert.ResolvedAt = &now
	}

	err = svc.audit.Write(ctx, auditlog.Entry(actor, alert.SiteID, action, "alert", alert.ID, map[string]any{
		"from": string(from),
		"to":   string(to),
	}))
	if err != nil {
		return types.Alert{}, err
	}

	svc.announce(ctx, alert, event)

	return alert, nil
}

// announce fans a state change out to the notification queue and the
// realtime observers. Neither path blocks on downstream delivery.
func (svc *alertSvc) announce(ctx context.Context, alert types.Alert, event string) {
	if event == "alert:created" {
		svc.messenger.PublishOnTopic(ctx, &AlertCreated{
			Alert:     alert,
			SiteID:    alert.SiteID,
			Timestamp: time.Now().UTC(),
		})
	} else {
		svc.messenger.PublishOnTopic(ctx, &AlertStatusChanged{
			AlertID:   alert.ID,
			SiteID:    alert.SiteID,
			Level:     alert.Level,
			Status:    alert.Status,
			Message:   alert.Message,
			Timestamp: time.Now().UTC(),
		})
	}

	svc.broadcaster.BroadcastToSite(alert.SiteID, event, map[string]any{
		"id":      alert.ID,
		"siteId":  alert.SiteID,
		"level":   string(alert.Level),
		"status":  string(alert.Status),
		"message": alert.Message,
	})
}
