package rollcall

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/auditlog"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/realtime"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/infrastructure/storage"
	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func testDeps() (*RollCallRepositoryMock, *messaging.MsgContextMock, *realtime.BroadcasterMock, *auditlog.LoggerMock) {
	repo := &RollCallRepositoryMock{
		AddRollCallFunc: func(ctx context.Context, rollCall types.RollCall) error { return nil },
		GetRollCallFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.RollCall, error) {
			return types.RollCall{}, storage.ErrNoRows
		},
		UpsertRollCallReportFunc: func(ctx context.Context, report types.RollCallReport) error { return nil },
		GetRollCallReportsFunc: func(ctx context.Context, rollCallID string) ([]types.RollCallReport, error) {
			return []types.RollCallReport{}, nil
		},
		UpdateRollCallAggregatesFunc: func(ctx context.Context, rollCallID string, reportedClassrooms, accountedStudents int) error {
			return nil
		},
		CompleteRollCallFunc: func(ctx context.Context, rollCallID string, at time.Time) error { return nil },
		GetSiteFunc: func(ctx context.Context, siteID string) (types.Site, error) {
			return types.Site{ID: siteID, Name: "Northside Elementary", TotalClassrooms: 24, TotalStudents: 480}, nil
		},
	}
	msgCtx := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error { return nil },
	}
	broadcaster := &realtime.BroadcasterMock{}
	audit := &auditlog.LoggerMock{
		WriteFunc: func(ctx context.Context, entry types.AuditLogEntry) error { return nil },
	}

	return repo, msgCtx, broadcaster, audit
}

func teacher() types.Actor {
	return types.Actor{ID: "teacher-1", Role: types.RoleTeacher, SiteIDs: []string{"site-1"}}
}

func activeRollCall() types.RollCall {
	return types.RollCall{
		ID: "rc-1", IncidentID: "alert-1", SiteID: "site-1",
		Status:          types.RollCallStatusActive,
		TotalClassrooms: 24, TotalStudents: 480,
		InitiatedAt: time.Now().Add(-5 * time.Minute),
	}
}

func TestInitiateSnapshotsSiteTotals(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()

	svc := New(repo, msgCtx, broadcaster, audit)

	rc, err := svc.Initiate(context.Background(), "alert-1", "site-1", teacher())
	is.NoErr(err)

	is.Equal(rc.TotalClassrooms, 24)
	is.Equal(rc.TotalStudents, 480)
	is.Equal(rc.Status, types.RollCallStatusActive)
	is.Equal(len(repo.AddRollCallCalls()), 1)
}

func TestInitiateReturnsExistingActiveRollCall(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()
	repo.GetRollCallFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.RollCall, error) {
		return activeRollCall(), nil
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	existing, err := svc.Initiate(context.Background(), "alert-1", "site-1", teacher())
	is.True(errors.Is(err, ErrAlreadyActive))

	is.Equal(existing.ID, "rc-1")
	is.Equal(len(repo.AddRollCallCalls()), 0)
}

func TestSubmitReportRecomputesAggregatesFromFullSet(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()
	repo.GetRollCallFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.RollCall, error) {
		return activeRollCall(), nil
	}
	repo.GetRollCallReportsFunc = func(ctx context.Context, rollCallID string) ([]types.RollCallReport, error) {
		return []types.RollCallReport{
			{RollCallID: "rc-1", UserID: "teacher-1", RoomID: "room-101", StudentsPresent: 18, StudentsAbsent: 2},
			{RollCallID: "rc-1", UserID: "teacher-2", RoomID: "room-102", StudentsPresent: 20, StudentsAbsent: 0},
		}, nil
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	rc, err := svc.SubmitReport(context.Background(), "rc-1", types.RollCallReport{
		RoomID: "room-101", StudentsPresent: 18, StudentsAbsent: 2,
	}, teacher())
	is.NoErr(err)

	is.Equal(rc.ReportedClassrooms, 2)
	is.Equal(rc.AccountedStudents, 38)
	is.Equal(len(repo.UpdateRollCallAggregatesCalls()), 1)
	is.Equal(repo.UpdateRollCallAggregatesCalls()[0].AccountedStudents, 38)
}

func TestResubmittedReportDoesNotDoubleCount(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()
	repo.GetRollCallFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.RollCall, error) {
		return activeRollCall(), nil
	}
	// The store replaces the earlier report, so the set has one row for
	// the teacher no matter how many times they submit.
	repo.GetRollCallReportsFunc = func(ctx context.Context, rollCallID string) ([]types.RollCallReport, error) {
		return []types.RollCallReport{
			{RollCallID: "rc-1", UserID: "teacher-1", RoomID: "room-101", StudentsPresent: 19, StudentsAbsent: 1},
		}, nil
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	rc, err := svc.SubmitReport(context.Background(), "rc-1", types.RollCallReport{
		RoomID: "room-101", StudentsPresent: 19, StudentsAbsent: 1,
	}, teacher())
	is.NoErr(err)

	is.Equal(rc.ReportedClassrooms, 1)
	is.Equal(rc.AccountedStudents, 19)
}

func TestSubmitReportDefaultsToActingUser(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()
	repo.GetRollCallFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.RollCall, error) {
		return activeRollCall(), nil
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	_, err := svc.SubmitReport(context.Background(), "rc-1", types.RollCallReport{
		RoomID: "room-101", StudentsPresent: 18, StudentsAbsent: 2,
	}, teacher())
	is.NoErr(err)

	is.Equal(repo.UpsertRollCallReportCalls()[0].Report.UserID, "teacher-1")
}

func TestSubmitReportForAnotherUserRequiresSiteAdmin(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()
	repo.GetRollCallFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.RollCall, error) {
		return activeRollCall(), nil
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	_, err := svc.SubmitReport(context.Background(), "rc-1", types.RollCallReport{
		UserID: "teacher-2", RoomID: "room-102", StudentsPresent: 20,
	}, teacher())
	is.True(errors.Is(err, ErrNotAuthorized))

	admin := types.Actor{ID: "admin-1", Role: types.RoleSiteAdmin, SiteIDs: []string{"site-1"}}
	_, err = svc.SubmitReport(context.Background(), "rc-1", types.RollCallReport{
		UserID: "teacher-2", RoomID: "room-102", StudentsPresent: 20,
	}, admin)
	is.NoErr(err)
}

func TestSubmitReportSanitizesNotes(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()
	repo.GetRollCallFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.RollCall, error) {
		return activeRollCall(), nil
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	_, err := svc.SubmitReport(context.Background(), "rc-1", types.RollCallReport{
		RoomID: "room-101", StudentsPresent: 18, StudentsAbsent: 2,
		Notes: "<img src=x onerror=alert(1)>two students in the gym",
	}, teacher())
	is.NoErr(err)

	is.Equal(repo.UpsertRollCallReportCalls()[0].Report.Notes, "two students in the gym")
}

func TestSubmitReportOnCompletedRollCallFails(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()
	repo.GetRollCallFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.RollCall, error) {
		rc := activeRollCall()
		rc.Status = types.RollCallStatusCompleted
		return rc, nil
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	_, err := svc.SubmitReport(context.Background(), "rc-1", types.RollCallReport{
		RoomID: "room-101", StudentsPresent: 18,
	}, teacher())
	is.True(errors.Is(err, ErrAlreadyCompleted))
	is.Equal(len(repo.UpsertRollCallReportCalls()), 0)
}

func TestCompleteStampsRecordAndPublishes(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()
	repo.GetRollCallFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.RollCall, error) {
		return activeRollCall(), nil
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	rc, err := svc.Complete(context.Background(), "rc-1", teacher())
	is.NoErr(err)

	is.Equal(rc.Status, types.RollCallStatusCompleted)
	is.True(rc.CompletedAt != nil)
	is.Equal(len(msgCtx.PublishOnTopicCalls()), 1)
	is.Equal(msgCtx.PublishOnTopicCalls()[0].Message.TopicName(), "rollcalls.rollCallCompleted")
}

func TestCompleteTwiceFails(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()
	repo.GetRollCallFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.RollCall, error) {
		return activeRollCall(), nil
	}
	repo.CompleteRollCallFunc = func(ctx context.Context, rollCallID string, at time.Time) error {
		return storage.ErrStaleStatus
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	_, err := svc.Complete(context.Background(), "rc-1", teacher())
	is.True(errors.Is(err, ErrAlreadyCompleted))
	is.Equal(len(audit.WriteCalls()), 0)
}

func TestGetByIDOutsideActorSitesIsNotFound(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()

	svc := New(repo, msgCtx, broadcaster, audit)

	_, err := svc.GetByID(context.Background(), "rc-1", []string{"site-2"})
	is.True(errors.Is(err, ErrRollCallNotFound))
}

func TestInitiateLosingInsertRaceReturnsTheWinner(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()

	repo.AddRollCallFunc = func(ctx context.Context, rollCall types.RollCall) error {
		return storage.ErrAlreadyExists
	}
	gets := 0
	repo.GetRollCallFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.RollCall, error) {
		gets++
		if gets == 1 {
			return types.RollCall{}, storage.ErrNoRows
		}
		return activeRollCall(), nil
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	existing, err := svc.Initiate(context.Background(), "alert-1", "site-1", teacher())
	is.True(errors.Is(err, ErrAlreadyActive))
	is.Equal(existing.ID, "rc-1")
}

func TestAbsentStudentsAreNotCountedAsAccounted(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()
	repo.GetRollCallFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.RollCall, error) {
		return activeRollCall(), nil
	}
	repo.GetRollCallReportsFunc = func(ctx context.Context, rollCallID string) ([]types.RollCallReport, error) {
		return []types.RollCallReport{
			{RollCallID: "rc-1", UserID: "teacher-1", RoomID: "room-101", StudentsPresent: 0, StudentsAbsent: 25},
		}, nil
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	rc, err := svc.SubmitReport(context.Background(), "rc-1", types.RollCallReport{
		RoomID: "room-101", StudentsPresent: 0, StudentsAbsent: 25,
	}, teacher())
	is.NoErr(err)

	is.Equal(rc.ReportedClassrooms, 1)
	is.Equal(rc.AccountedStudents, 0)
}
