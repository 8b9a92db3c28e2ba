package alerts

import (
	"context"
	"testing"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/auditlog"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/realtime"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/infrastructure/storage"
	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func testDeps() (*AlertRepositoryMock, *messaging.MsgContextMock, *realtime.BroadcasterMock, *auditlog.LoggerMock) {
	repo := &AlertRepositoryMock{
		AddAlertFunc: func(ctx context.Context, alert types.Alert) error { return nil },
		GetBuildingFunc: func(ctx context.Context, buildingID string) (types.Building, error) {
			return types.Building{ID: buildingID, SiteID: "site-1", Name: "Main Hall"}, nil
		},
		UpdateAlertStatusFunc: func(ctx context.Context, alertID string, from, to types.AlertStatus, at time.Time) error {
			return nil
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

func operator() types.Actor {
	return types.Actor{ID: "user-1", Role: types.RoleOperator, SiteIDs: []string{"site-1"}, SourceIP: "10.0.0.7"}
}

func TestCreateAlertResolvesSiteFromBuilding(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()

	svc := New(repo, msgCtx, broadcaster, audit)

	alert, err := svc.Create(context.Background(), CreateAlertInput{
		Level:      types.AlertLevelFire,
		BuildingID: "bldg-1",
	}, operator())
	is.NoErr(err)

	is.Equal(alert.SiteID, "site-1")
	is.Equal(alert.Status, types.AlertStatusTriggered)
	is.Equal(len(repo.AddAlertCalls()), 1)
	is.Equal(repo.AddAlertCalls()[0].Alert.SiteID, "site-1")
}

func TestCreateAlertStripsMarkupFromMessage(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()

	svc := New(repo, msgCtx, broadcaster, audit)

	alert, err := svc.Create(context.Background(), CreateAlertInput{
		Level:      types.AlertLevelFire,
		BuildingID: "bldg-1",
		Message:    "<script>steal()</script>Fire in hallway",
	}, operator())
	is.NoErr(err)

	is.Equal(alert.Message, "Fire in hallway")
	is.Equal(repo.AddAlertCalls()[0].Alert.Message, "Fire in hallway")
}

func TestCreateAlertRejectsUnknownLevel(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()

	svc := New(repo, msgCtx, broadcaster, audit)

	_, err := svc.Create(context.Background(), CreateAlertInput{
		Level:      types.AlertLevel("SHARKNADO"),
		BuildingID: "bldg-1",
	}, operator())
	is.Equal(err, ErrBadInput)
}

func TestAcknowledgeTriggeredAlert(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()
	repo.GetAlertFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
		return types.Alert{ID: "alert-1", SiteID: "site-1", Status: types.AlertStatusTriggered}, nil
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	alert, err := svc.Acknowledge(context.Background(), "alert-1", operator())
	is.NoErr(err)

	is.Equal(alert.Status, types.AlertStatusAcknowledged)
	is.True(alert.AcknowledgedAt != nil)
	is.Equal(len(audit.WriteCalls()), 1)
	is.Equal(audit.WriteCalls()[0].Entry.Action, "alert.acknowledge")
	is.Equal(len(broadcaster.BroadcastToSiteCalls()), 1)
	is.Equal(broadcaster.BroadcastToSiteCalls()[0].Event, "alert:acknowledged")
}

func TestConfirmStraightFromTriggeredIsRejected(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()
	repo.GetAlertFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
		return types.Alert{ID: "alert-1", SiteID: "site-1", Status: types.AlertStatusTriggered}, nil
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	_, err := svc.Confirm(context.Background(), "alert-1", operator())
	is.Equal(err, ErrInvalidTransition)
	is.Equal(len(repo.UpdateAlertStatusCalls()), 0)
	is.Equal(len(audit.WriteCalls()), 0)
}

func TestResolvedAlertAcceptsNoFurtherTransitions(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()
	repo.GetAlertFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
		return types.Alert{ID: "alert-1", SiteID: "site-1", Status: types.AlertStatusResolved}, nil
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	_, err := svc.Acknowledge(context.Background(), "alert-1", operator())
	is.Equal(err, ErrInvalidTransition)

	_, err = svc.Dismiss(context.Background(), "alert-1", operator())
	is.Equal(err, ErrInvalidTransition)
}

func TestConcurrentAcknowledgeLosesRaceCleanly(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()
	repo.GetAlertFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
		return types.Alert{ID: "alert-1", SiteID: "site-1", Status: types.AlertStatusTriggered}, nil
	}
	repo.UpdateAlertStatusFunc = func(ctx context.Context, alertID string, from, to types.AlertStatus, at time.Time) error {
		// another caller moved the alert first
		return storage.ErrStaleStatus
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	_, err := svc.Acknowledge(context.Background(), "alert-1", operator())
	is.Equal(err, ErrInvalidTransition)
	is.Equal(len(audit.WriteCalls()), 0)
}

func TestGetByIDHidesCrossSiteRecords(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()
	repo.GetAlertFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
		// the site scoped query matches nothing for this caller
		return types.Alert{}, storage.ErrNoRows
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	_, err := svc.GetByID(context.Background(), "alert-in-other-site", []string{"site-1"})
	is.Equal(err, ErrAlertNotFound)
}

func TestExtendRequiresAReason(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()

	svc := New(repo, msgCtx, broadcaster, audit)

	_, err := svc.Extend(context.Background(), "alert-1", "", operator())
	is.Equal(err, ErrReasonRequired)

	// markup only input is empty after sanitization
	_, err = svc.Extend(context.Background(), "alert-1", "<b></b>", operator())
	is.Equal(err, ErrReasonRequired)
}

func TestExtendStampsDeadlineAndReason(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()
	repo.GetAlertFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
		return types.Alert{ID: "alert-1", SiteID: "site-1", Status: types.AlertStatusAcknowledged}, nil
	}
	repo.ExtendAlertFunc = func(ctx context.Context, alertID string, until time.Time, reason string) error {
		return nil
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	alert, err := svc.Extend(context.Background(), "alert-1", "smoke detector inspection in progress", operator())
	is.NoErr(err)

	is.True(alert.ExtendedUntil != nil)
	is.Equal(alert.ExtendReason, "smoke detector inspection in progress")
	is.Equal(alert.Status, types.AlertStatusAcknowledged)
	is.Equal(len(audit.WriteCalls()), 1)
}

func TestEveryTransitionPublishesExactlyOnce(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()
	repo.GetAlertFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
		return types.Alert{ID: "alert-1", SiteID: "site-1", Status: types.AlertStatusAcknowledged}, nil
	}

	published := 0
	msgCtx.PublishOnTopicFunc = func(ctx context.Context, message messaging.TopicMessage) error {
		published++
		is.Equal(message.TopicName(), "alerts.alertStatusChanged")
		return nil
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	_, err := svc.Resolve(context.Background(), "alert-1", operator())
	is.NoErr(err)
	is.Equal(published, 1)
	is.Equal(len(audit.WriteCalls()), 1)
}

func TestSuperAdminWithoutSiteGrantsCanAcknowledge(t *testing.T) {
	is := is.New(t)
	repo, msgCtx, broadcaster, audit := testDeps()

	repo.GetAlertFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
		c := &storage.Condition{}
		for _, apply := range conditions {
			c = apply(c)
		}
		// An empty non-nil site filter matches zero rows, just like
		// site_id = ANY('{}') does.
		if c.SiteIDs != nil && len(c.SiteIDs) == 0 {
			return types.Alert{}, storage.ErrNoRows
		}
		return types.Alert{ID: c.AlertID, SiteID: "site-9", Status: types.AlertStatusTriggered}, nil
	}

	svc := New(repo, msgCtx, broadcaster, audit)

	superAdmin := types.Actor{ID: "admin-1", Role: types.RoleSuperAdmin, SiteIDs: []string{}}

	alert, err := svc.Acknowledge(context.Background(), "alert-1", superAdmin)
	is.NoErr(err)
	is.Equal(alert.Status, types.AlertStatusAcknowledged)

	read, err := svc.GetByID(context.Background(), "alert-1", superAdmin.SiteScope())
	is.NoErr(err)
	is.Equal(read.SiteID, "site-9")
}
