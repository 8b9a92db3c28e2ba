package rollcall

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
	"github.com/samber/lo"
)

//go:generate moq -rm -out rollcallservice_mock.go . RollCallService
type RollCallService interface {
	Initiate(ctx context.Context, incidentID, siteID string, actor types.Actor) (types.RollCall, error)
	SubmitReport(ctx context.Context, rollCallID string, report types.RollCallReport, actor types.Actor) (types.RollCall, error)
	Complete(ctx context.Context, rollCallID string, actor types.Actor) (types.RollCall, error)
	GetByID(ctx context.Context, rollCallID string, siteIDs []string) (types.RollCall, error)
	GetReports(ctx context.Context, rollCallID string, siteIDs []string) ([]types.RollCallReport, error)
}

var (
	ErrRollCallNotFound = fmt.Errorf("roll call not found")
	// ErrAlreadyActive is returned together with the existing record, so
	// a second initiator joins the roll call in progress instead of
	// splitting the count across two.
	ErrAlreadyActive    = fmt.Errorf("an active roll call already exists for this incident")
	ErrAlreadyCompleted = fmt.Errorf("roll call is already completed")
	ErrNotAuthorized    = fmt.Errorf("not authorized to submit this report")
	ErrBadInput         = fmt.Errorf("invalid input")
)

//go:generate moq -rm -out rollcallrepository_mock.go . RollCallRepository
type RollCallRepository interface {
	AddRollCall(ctx context.Context, rollCall types.RollCall) error
	GetRollCall(ctx context.Context, conditions ...storage.ConditionFunc) (types.RollCall, error)
	UpsertRollCallReport(ctx context.Context, report types.RollCallReport) error
	GetRollCallReports(ctx context.Context, rollCallID string) ([]types.RollCallReport, error)
	UpdateRollCallAggregates(ctx context.Context, rollCallID string, reportedClassrooms, accountedStudents int) error
	CompleteRollCall(ctx context.Context, rollCallID string, at time.Time) error
	GetSite(ctx context.Context, siteID string) (types.Site, error)
}

var sanitizer = bluemonday.StrictPolicy()

type rollCallSvc struct {
	storage     RollCallRepository
	messenger   messaging.MsgContext
	broadcaster realtime.Broadcaster
	audit       auditlog.Logger
}

func New(s RollCallRepository, m messaging.MsgContext, b realtime.Broadcaster, a auditlog.Logger) RollCallService {
	return &rollCallSvc{
		storage:     s,
		messenger:   m,
		broadcaster: b,
		audit:       a,
	}
}

func (svc *rollCallSvc) Initiate(ctx context.Context, incidentID, siteID string, actor types.Actor) (types.RollCall, error) {
	if incidentID == "" || siteID == "" {
		return types.RollCall{}, ErrBadInput
	}

	if !actor.HasSite(siteID) {
		return types.RollCall{}, ErrRollCallNotFound
	}

	existing, err := svc.storage.GetRollCall(ctx, storage.WithIncidentID(incidentID), storage.WithStatus(string(types.RollCallStatusActive)))
	if err == nil {
		return existing, ErrAlreadyActive
	}
	if !errors.Is(err, storage.ErrNoRows) {
		return types.RollCall{}, err
	}

	site, err := svc.storage.GetSite(ctx, siteID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.RollCall{}, ErrRollCallNotFound
		}
		return types.RollCall{}, err
	}

	// The denominators are snapshotted at initiation, so the progress
	// percentage stays stable even if the site roster changes mid
	// incident.
	rollCall := types.RollCall{
		ID:              uuid.NewString(),
		IncidentID:      incidentID,
		SiteID:          siteID,
		InitiatedByID:   actor.ID,
		Status:          types.RollCallStatusActive,
		TotalClassrooms: site.TotalClassrooms,
		TotalStudents:   site.TotalStudents,
		InitiatedAt:     time.Now().UTC(),
	}

	err = svc.storage.AddRollCall(ctx, rollCall)
	if err != nil {
		// Two simultaneous initiations race past the pre-check; the
		// unique index on active incident_id lets exactly one insert win.
		if errors.Is(err, storage.ErrAlreadyExists) {
			existing, getErr := svc.storage.GetRollCall(ctx, storage.WithIncidentID(incidentID), storage.WithStatus(string(types.RollCallStatusActive)))
			if getErr != nil {
				return types.RollCall{}, getErr
			}
			return existing, ErrAlreadyActive
		}
		return types.RollCall{}, err
	}

	err = svc.audit.Write(ctx, auditlog.Entry(actor, siteID, "rollcall.initiate", "roll_call", rollCall.ID, map[string]any{
		"incidentId":      incidentID,
		"totalClassrooms": rollCall.TotalClassrooms,
		"totalStudents":   rollCall.TotalStudents,
	}))
	if err != nil {
		return types.RollCall{}, err
	}

	svc.messenger.PublishOnTopic(ctx, &RollCallInitiated{
		RollCall:  rollCall,
		SiteID:    siteID,
		Timestamp: rollCall.InitiatedAt,
	})

	svc.broadcaster.BroadcastToSite(siteID, "rollcall:initiated", map[string]any{
		"id":         rollCall.ID,
		"incidentId": incidentID,
		"siteId":     siteID,
	})

	return rollCall, nil
}

func (svc *rollCallSvc) SubmitReport(ctx context.Context, rollCallID string, report types.RollCallReport, actor types.Actor) (types.RollCall, error) {
	rollCall, err := svc.GetByID(ctx, rollCallID, actor.SiteScope())
	if err != nil {
		return types.RollCall{}, err
	}

	if rollCall.Status != types.RollCallStatusActive {
		return types.RollCall{}, ErrAlreadyCompleted
	}

	if report.RoomID == "" || report.StudentsPresent < 0 || report.StudentsAbsent < 0 {
		return types.RollCall{}, ErrBadInput
	}

	// Teachers report for themselves; filing on behalf of someone else
	// is a site admin action.
	if report.UserID == "" {
		report.UserID = actor.ID
	}
	if report.UserID != actor.ID && !actor.Role.AtLeast(types.RoleSiteAdmin) {
		return types.RollCall{}, ErrNotAuthorized
	}

	report.RollCallID = rollCallID
	report.Notes = strings.TrimSpace(sanitizer.Sanitize(report.Notes))
	report.ReportedAt = time.Now().UTC()

	err = svc.storage.UpsertRollCallReport(ctx, report)
	if err != nil {
		return types.RollCall{}, err
	}

	// Aggregates are recomputed from the full report set rather than
	// incremented, so a resubmitted report replaces its own earlier
	// contribution instead of double counting.
	reports, err := svc.storage.GetRollCallReports(ctx, rollCallID)
	if err != nil {
		return types.RollCall{}, err
	}

	reportedClassrooms := len(lo.UniqBy(reports, func(r types.RollCallReport) string { return r.RoomID }))
	// Absent students are unaccounted for until someone locates them, so
	// only confirmed-present counts feed the accounted total.
	accountedStudents := lo.SumBy(reports, func(r types.RollCallReport) int { return r.StudentsPresent })

	err = svc.storage.UpdateRollCallAggregates(ctx, rollCallID, reportedClassrooms, accountedStudents)
	if err != nil {
		return types.RollCall{}, err
	}

	rollCall.ReportedClassrooms = reportedClassrooms
	rollCall.AccountedStudents = accountedStudents

	err = svc.audit.Write(ctx, auditlog.Entry(actor, rollCall.SiteID, "rollcall.report", "roll_call", rollCallID, map[string]any{
		"userId":          report.UserID,
		"roomId":          report.RoomID,
		"studentsPresent": report.StudentsPresent,
		"studentsAbsent":  report.StudentsAbsent,
	}))
	if err != nil {
		return types.RollCall{}, err
	}

	svc.broadcaster.BroadcastToSite(rollCall.SiteID, "rollcall:report-received", map[string]any{
		"id":                 rollCall.ID,
		"siteId":             rollCall.SiteID,
		"reportedClassrooms": reportedClassrooms,
		"totalClassrooms":    rollCall.TotalClassrooms,
		"accountedStudents":  accountedStudents,
		"totalStudents":      rollCall.TotalStudents,
	})

	return rollCall, nil
}

func (svc *rollCallSvc) Complete(ctx context.Context, rollCallID string, actor types.Actor) (types.RollCall, error) {
	rollCall, err := svc.GetByID(ctx, rollCallID, actor.SiteScope())
	if err != nil {
		return types.RollCall{}, err
	}

	now := time.Now().UTC()

	err = svc.storage.CompleteRollCall(ctx, rollCallID, now)
	if err != nil {
		if errors.Is(err, storage.ErrStaleStatus) {
			return types.RollCall{}, ErrAlreadyCompleted
		}
		return types.RollCall{}, err
	}

	rollCall.Status = types.RollCallStatusCompleted
	rollCall.CompletedAt = &now

	err = svc.audit.Write(ctx, auditlog.Entry(actor, rollCall.SiteID, "rollcall.complete", "roll_call", rollCallID, map[string]any{
		"reportedClassrooms": rollCall.ReportedClassrooms,
		"accountedStudents":  rollCall.AccountedStudents,
	}))
	if err != nil {
		return types.RollCall{}, err
	}

	svc.messenger.PublishOnTopic(ctx, &RollCallCompleted{
		RollCallID: rollCallID,
		SiteID:     rollCall.SiteID,
		Timestamp:  now,
	})

	svc.broadcaster.BroadcastToSite(rollCall.SiteID, "rollcall:completed", map[string]any{
		"id":     rollCallID,
		"siteId": rollCall.SiteID,
	})

	return rollCall, nil
}

func (svc *rollCallSvc) GetByID(ctx context.Context, rollCallID string, siteIDs []string) (types.RollCall, error) {
	rollCall, err := svc.storage.GetRollCall(ctx, storage.WithRollCallID(rollCallID), storage.WithSiteIDs(siteIDs))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.RollCall{}, ErrRollCallNotFound
		}
		return types.RollCall{}, err
	}

	return rollCall, nil
}

func (svc *rollCallSvc) GetReports(ctx context.Context, rollCallID string, siteIDs []string) ([]types.RollCallReport, error) {
	_, err := svc.GetByID(ctx, rollCallID, siteIDs)
	if err != nil {
		return nil, err
	}

	return svc.storage.GetRollCallReports(ctx, rollCallID)
}
