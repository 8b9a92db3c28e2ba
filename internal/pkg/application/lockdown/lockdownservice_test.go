package lockdown

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/auditlog"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/realtime"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/infrastructure/opmode"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/infrastructure/storage"
	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func testDeps() (*LockdownRepositoryMock, *DoorControllerMock, *messaging.MsgContextMock, *realtime.BroadcasterMock, *auditlog.LoggerMock) {
	repo := &LockdownRepositoryMock{
		AddLockdownFunc: func(ctx context.Context, lockdown types.Lockdown) error { return nil },
		GetLockdownFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Lockdown, error) {
			return types.Lockdown{}, storage.ErrNoRows
		},
		ReleaseLockdownFunc: func(ctx context.Context, lockdownID string, at time.Time) error { return nil },
		RevokeVisitorCredentialsFunc: func(ctx context.Context, siteID string, credentialTypes []types.CredentialType, at time.Time) (int64, error) {
			return 3, nil
		},
		GetSiteFunc: func(ctx context.Context, siteID string) (types.Site, error) {
			return types.Site{ID: siteID, Name: "Northside Elementary"}, nil
		},
		GetBuildingFunc: func(ctx context.Context, buildingID string) (types.Building, error) {
			return types.Building{ID: buildingID, SiteID: "site-1", Name: "Main Hall"}, nil
		},
		GetZoneFunc: func(ctx context.Context, zoneID string) (types.Zone, error) {
			return types.Zone{ID: zoneID, SiteID: "site-1", BuildingID: "bldg-1", Name: "West Wing"}, nil
		},
		GetDoorsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) ([]types.Door, error) {
			return []types.Door{
				{ID: "door-1", SiteID: "site-1", BuildingID: "bldg-1"},
				{ID: "door-2", SiteID: "site-1", BuildingID: "bldg-1"},
				{ID: "door-3", SiteID: "site-1", BuildingID: "bldg-1"},
			}, nil
		},
	}
	doors := &DoorControllerMock{
		LockFunc:   func(ctx context.Context, door types.Door) error { return nil },
		UnlockFunc: func(ctx context.Context, door types.Door) error { return nil },
	}
	msgCtx := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error { return nil },
	}
	broadcaster := &realtime.BroadcasterMock{}
	audit := &auditlog.LoggerMock{
		WriteFunc: func(ctx context.Context, entry types.AuditLogEntry) error { return nil },
	}

	return repo, doors, msgCtx, broadcaster, audit
}

func operator() types.Actor {
	return types.Actor{ID: "user-1", Role: types.RoleOperator, SiteIDs: []string{"site-1"}, SourceIP: "10.0.0.7"}
}

func TestInitiateBuildingLockdownLocksEveryDoor(t *testing.T) {
	is := is.New(t)
	repo, doors, msgCtx, broadcaster, audit := testDeps()

	svc := New(repo, doors, msgCtx, broadcaster, audit, opmode.Static(opmode.EdgeLocal))

	lockdown, err := svc.Initiate(context.Background(), types.LockdownScopeBuilding, "bldg-1", operator())
	is.NoErr(err)

	is.Equal(lockdown.SiteID, "site-1")
	is.Equal(lockdown.Scope, types.LockdownScopeBuilding)
	is.Equal(lockdown.DoorsLocked, 3)
	is.Equal(len(doors.LockCalls()), 3)
	is.True(lockdown.Active())
}

func TestInitiateRevokesTemporaryCredentialsSiteWide(t *testing.T) {
	is := is.New(t)
	repo, doors, msgCtx, broadcaster, audit := testDeps()

	svc := New(repo, doors, msgCtx, broadcaster, audit, opmode.Static(opmode.EdgeLocal))

	_, err := svc.Initiate(context.Background(), types.LockdownScopeZone, "zone-1", operator())
	is.NoErr(err)

	is.Equal(len(repo.RevokeVisitorCredentialsCalls()), 1)
	is.Equal(repo.RevokeVisitorCredentialsCalls()[0].SiteID, "site-1")
	is.Equal(repo.RevokeVisitorCredentialsCalls()[0].CredentialTypes,
		[]types.CredentialType{types.CredentialTypeTemporaryCard, types.CredentialTypeMobile})
}

func TestInitiateIsIdempotentByTarget(t *testing.T) {
	is := is.New(t)
	repo, doors, msgCtx, broadcaster, audit := testDeps()
	repo.GetLockdownFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Lockdown, error) {
		return types.Lockdown{ID: "lockdown-1", SiteID: "site-1", Scope: types.LockdownScopeBuilding, TargetID: "bldg-1"}, nil
	}

	svc := New(repo, doors, msgCtx, broadcaster, audit, opmode.Static(opmode.EdgeLocal))

	existing, err := svc.Initiate(context.Background(), types.LockdownScopeBuilding, "bldg-1", operator())
	is.True(errors.Is(err, ErrAlreadyActive))

	is.Equal(existing.ID, "lockdown-1")
	is.Equal(len(doors.LockCalls()), 0)
	is.Equal(len(repo.AddLockdownCalls()), 0)
}

func TestInitiateContinuesPastFailingActuator(t *testing.T) {
	is := is.New(t)
	repo, doors, msgCtx, broadcaster, audit := testDeps()
	doors.LockFunc = func(ctx context.Context, door types.Door) error {
		if door.ID == "door-2" {
			return errors.New("actuator offline")
		}
		return nil
	}

	svc := New(repo, doors, msgCtx, broadcaster, audit, opmode.Static(opmode.EdgeLocal))

	lockdown, err := svc.Initiate(context.Background(), types.LockdownScopeBuilding, "bldg-1", operator())
	is.NoErr(err)

	is.Equal(len(doors.LockCalls()), 3)
	is.Equal(lockdown.DoorsLocked, 2)
}

func TestInitiateRejectsTargetOutsideActorSites(t *testing.T) {
	is := is.New(t)
	repo, doors, msgCtx, broadcaster, audit := testDeps()
	repo.GetBuildingFunc = func(ctx context.Context, buildingID string) (types.Building, error) {
		return types.Building{ID: buildingID, SiteID: "site-2"}, nil
	}

	svc := New(repo, doors, msgCtx, broadcaster, audit, opmode.Static(opmode.EdgeLocal))

	_, err := svc.Initiate(context.Background(), types.LockdownScopeBuilding, "bldg-9", operator())
	is.True(errors.Is(err, ErrTargetNotFound))
	is.Equal(len(doors.LockCalls()), 0)
}

func TestInitiateRejectsUnknownTarget(t *testing.T) {
	is := is.New(t)
	repo, doors, msgCtx, broadcaster, audit := testDeps()
	repo.GetZoneFunc = func(ctx context.Context, zoneID string) (types.Zone, error) {
		return types.Zone{}, storage.ErrNoRows
	}

	svc := New(repo, doors, msgCtx, broadcaster, audit, opmode.Static(opmode.EdgeLocal))

	_, err := svc.Initiate(context.Background(), types.LockdownScopeZone, "zone-404", operator())
	is.True(errors.Is(err, ErrTargetNotFound))
}

func TestReleaseUnlocksDoorsAndStampsRecord(t *testing.T) {
	is := is.New(t)
	repo, doors, msgCtx, broadcaster, audit := testDeps()
	repo.GetLockdownFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Lockdown, error) {
		return types.Lockdown{
			ID: "lockdown-1", SiteID: "site-1",
			Scope: types.LockdownScopeBuilding, TargetID: "bldg-1",
			InitiatedAt: time.Now().Add(-10 * time.Minute),
		}, nil
	}

	svc := New(repo, doors, msgCtx, broadcaster, audit, opmode.Static(opmode.EdgeLocal))

	released, err := svc.Release(context.Background(), "lockdown-1", operator())
	is.NoErr(err)

	is.True(released.ReleasedAt != nil)
	is.True(!released.Active())
	is.Equal(len(doors.UnlockCalls()), 3)
	is.Equal(len(repo.ReleaseLockdownCalls()), 1)
	is.Equal(len(audit.WriteCalls()), 1)
	is.Equal(audit.WriteCalls()[0].Entry.Action, "lockdown.release")
}

func TestReleaseIsRejectedInCloudOnlyMode(t *testing.T) {
	is := is.New(t)
	repo, doors, msgCtx, broadcaster, audit := testDeps()
	repo.GetLockdownFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Lockdown, error) {
		return types.Lockdown{ID: "lockdown-1", SiteID: "site-1", Scope: types.LockdownScopeFullSite, TargetID: "site-1"}, nil
	}

	svc := New(repo, doors, msgCtx, broadcaster, audit, opmode.Static(opmode.CloudOnly))

	_, err := svc.Release(context.Background(), "lockdown-1", operator())
	is.True(errors.Is(err, ErrEdgeOnly))

	is.Equal(len(doors.UnlockCalls()), 0)
	is.Equal(len(repo.ReleaseLockdownCalls()), 0)
}

func TestReleaseOfReleasedLockdownFails(t *testing.T) {
	is := is.New(t)
	repo, doors, msgCtx, broadcaster, audit := testDeps()
	repo.GetLockdownFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Lockdown, error) {
		return types.Lockdown{ID: "lockdown-1", SiteID: "site-1", Scope: types.LockdownScopeFullSite, TargetID: "site-1"}, nil
	}
	repo.ReleaseLockdownFunc = func(ctx context.Context, lockdownID string, at time.Time) error {
		return storage.ErrStaleStatus
	}

	svc := New(repo, doors, msgCtx, broadcaster, audit, opmode.Static(opmode.EdgeLocal))

	_, err := svc.Release(context.Background(), "lockdown-1", operator())
	is.True(errors.Is(err, ErrAlreadyReleased))
	is.Equal(len(audit.WriteCalls()), 0)
}

func TestGetByIDOutsideActorSitesIsNotFound(t *testing.T) {
	is := is.New(t)
	repo, doors, msgCtx, broadcaster, audit := testDeps()
	repo.GetLockdownFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Lockdown, error) {
		return types.Lockdown{}, storage.ErrNoRows
	}

	svc := New(repo, doors, msgCtx, broadcaster, audit, opmode.Static(opmode.EdgeLocal))

	_, err := svc.GetByID(context.Background(), "lockdown-1", []string{"site-2"})
	is.True(errors.Is(err, ErrLockdownNotFound))
}

func TestInitiatePublishesAndBroadcasts(t *testing.T) {
	is := is.New(t)
	repo, doors, msgCtx, broadcaster, audit := testDeps()

	svc := New(repo, doors, msgCtx, broadcaster, audit, opmode.Static(opmode.EdgeLocal))

	_, err := svc.Initiate(context.Background(), types.LockdownScopeFullSite, "site-1", operator())
	is.NoErr(err)

	topics := []string{}
	for _, call := range msgCtx.PublishOnTopicCalls() {
		topics = append(topics, call.Message.TopicName())
	}
	is.True(contains(topics, "lockdowns.lockdownInitiated"))

	is.Equal(len(broadcaster.BroadcastToSiteCalls()), 1)
	is.Equal(broadcaster.BroadcastToSiteCalls()[0].SiteID, "site-1")
	is.Equal(broadcaster.BroadcastToSiteCalls()[0].Event, "lockdown:initiated")
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func TestInitiateLosingInsertRaceReturnsTheWinner(t *testing.T) {
	is := is.New(t)
	repo, doors, msgCtx, broadcaster, audit := testDeps()

	// The pre-check sees no active lockdown, but a concurrent initiation
	// wins the insert. The second call must hand back the winner.
	repo.AddLockdownFunc = func(ctx context.Context, lockdown types.Lockdown) error {
		return storage.ErrAlreadyExists
	}
	gets := 0
	repo.GetLockdownFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Lockdown, error) {
		gets++
		if gets == 1 {
			return types.Lockdown{}, storage.ErrNoRows
		}
		return types.Lockdown{ID: "lockdown-winner", SiteID: "site-1", Scope: types.LockdownScopeBuilding, TargetID: "bldg-1"}, nil
	}

	svc := New(repo, doors, msgCtx, broadcaster, audit, opmode.Static(opmode.EdgeLocal))

	existing, err := svc.Initiate(context.Background(), types.LockdownScopeBuilding, "bldg-1", operator())
	is.True(errors.Is(err, ErrAlreadyActive))
	is.Equal(existing.ID, "lockdown-winner")
}
