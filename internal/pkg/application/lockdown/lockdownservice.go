package lockdown

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/auditlog"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/realtime"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/infrastructure/opmode"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/infrastructure/storage"
	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

//go:generate moq -rm -out lockdownservice_mock.go . LockdownService
type LockdownService interface {
	Initiate(ctx context.Context, scope types.LockdownScope, targetID string, actor types.Actor) (types.Lockdown, error)
	Release(ctx context.Context, lockdownID string, actor types.Actor) (types.Lockdown, error)
	Query(ctx context.Context, offset, limit int, siteIDs []string) (types.Collection[types.Lockdown], error)
	GetByID(ctx context.Context, lockdownID string, siteIDs []string) (types.Lockdown, error)
}

var (
	ErrLockdownNotFound = fmt.Errorf("lockdown not found")
	ErrTargetNotFound   = fmt.Errorf("lockdown target not found")
	ErrBadScope         = fmt.Errorf("invalid lockdown scope")
	// ErrAlreadyActive is returned together with the existing record so
	// the caller can act on it instead of retrying blindly.
	ErrAlreadyActive = fmt.Errorf("an active lockdown already exists for this target")
	// ErrEdgeOnly guards the release path: ending a lockdown must never
	// depend on cloud connectivity, so cloud-only deployments reject it.
	ErrEdgeOnly = fmt.Errorf("lockdown release is an edge-only operation")
)

//go:generate moq -rm -out lockdownrepository_mock.go . LockdownRepository
type LockdownRepository interface {
	AddLockdown(ctx context.Context, lockdown types.Lockdown) error
	GetLockdown(ctx context.Context, conditions ...storage.ConditionFunc) (types.Lockdown, error)
	QueryLockdowns(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Lockdown], error)
	ReleaseLockdown(ctx context.Context, lockdownID string, at time.Time) error
	RevokeVisitorCredentials(ctx context.Context, siteID string, credentialTypes []types.CredentialType, at time.Time) (int64, error)
	GetSite(ctx context.Context, siteID string) (types.Site, error)
	GetBuilding(ctx context.Context, buildingID string) (types.Building, error)
	GetZone(ctx context.Context, zoneID string) (types.Zone, error)
	GetDoors(ctx context.Context, conditions ...storage.ConditionFunc) ([]types.Door, error)
}

//go:generate moq -rm -out doorcontroller_mock.go . DoorController

// DoorController issues physical lock and unlock commands. The
// production implementation publishes one command per door on the
// messaging fabric for the access control edge to pick up.
type DoorController interface {
	Lock(ctx context.Context, door types.Door) error
	Unlock(ctx context.Context, door types.Door) error
}

type lockdownSvc struct {
	storage     LockdownRepository
	doors       DoorController
	messenger   messaging.MsgContext
	broadcaster realtime.Broadcaster
	audit       auditlog.Logger
	mode        opmode.Provider
}

func New(s LockdownRepository, d DoorController, m messaging.MsgContext, b realtime.Broadcaster, a auditlog.Logger, mode opmode.Provider) LockdownService {
	return &lockdownSvc{
		storage:     s,
		doors:       d,
		messenger:   m,
		broadcaster: b,
		audit:       a,
		mode:        mode,
	}
}

func (svc *lockdownSvc) Initiate(ctx context.Context, scope types.LockdownScope, targetID string, actor types.Actor) (types.Lockdown, error) {
	log := logging.GetFromContext(ctx)

	if !scope.Valid() || targetID == "" {
		return types.Lockdown{}, ErrBadScope
	}

	siteID, doorList, err := svc.resolveScope(ctx, scope, targetID)
	if err != nil {
		return types.Lockdown{}, err
	}

	if !actor.HasSite(siteID) {
		return types.Lockdown{}, ErrTargetNotFound
	}

	// Idempotent by target, not by request: a second initiation for the
	// same (scope, target) hands back the existing record instead of
	// issuing a duplicate command set.
	existing, err := svc.storage.GetLockdown(ctx, storage.WithScopeTarget(scope, targetID), storage.WithActiveOnly())
	if err == nil {
		return existing, ErrAlreadyActive
	}
	if !errors.Is(err, storage.ErrNoRows) {
		return types.Lockdown{}, err
	}

	now := time.Now().UTC()
	locked := 0

	for _, door := range doorList {
		err := svc.doors.Lock(ctx, door)
		if err != nil {
			// Lock as many doors as possible; a single failed actuator
			// must not abort a site lockdown.
			log.Error("failed to issue lock command", "door_id", door.ID, "err", err.Error())
			continue
		}
		locked++
	}

	lockdown := types.Lockdown{
		ID:            uuid.NewString(),
		SiteID:        siteID,
		Scope:         scope,
		TargetID:      targetID,
		InitiatedByID: actor.ID,
		InitiatedAt:   now,
		DoorsLocked:   locked,
	}

	err = svc.storage.AddLockdown(ctx, lockdown)
	if err != nil {
		// The unique index on active (scope, target) closes the window
		// between the pre-check and the insert.
		if errors.Is(err, storage.ErrAlreadyExists) {
			existing, getErr := svc.storage.GetLockdown(ctx, storage.WithScopeTarget(scope, targetID), storage.WithActiveOnly())
			if getErr != nil {
				return types.Lockdown{}, getErr
			}
			return existing, ErrAlreadyActive
		}
		return types.Lockdown{}, err
	}

	// Deliberately conservative: even a building level lockdown revokes
	// temporary access for the whole site.
	revoked, err := svc.storage.RevokeVisitorCredentials(ctx, siteID,
		[]types.CredentialType{types.CredentialTypeTemporaryCard, types.CredentialTypeMobile}, now)
	if err != nil {
		log.Error("failed to revoke visitor credentials", "site_id", siteID, "err", err.Error())
	}

	err = svc.audit.Write(ctx, auditlog.Entry(actor, siteID, "lockdown.initiate", "lockdown", lockdown.ID, map[string]any{
		"scope":              string(scope),
		"targetId":           targetID,
		"doorsLocked":        locked,
		"credentialsRevoked": revoked,
	}))
	if err != nil {
		return types.Lockdown{}, err
	}

	svc.messenger.PublishOnTopic(ctx, &LockdownInitiated{
		Lockdown:  lockdown,
		SiteID:    siteID,
		Timestamp: now,
	})

	svc.broadcaster.BroadcastToSite(siteID, "lockdown:initiated", map[string]any{
		"id":          lockdown.ID,
		"siteId":      siteID,
		"scope":       string(scope),
		"targetId":    targetID,
		"doorsLocked": locked,
	})

	return lockdown, nil
}

func (svc *lockdownSvc) Release(ctx context.Context, lockdownID string, actor types.Actor) (types.Lockdown, error) {
	log := logging.GetFromContext(ctx)

	lockdown, err := svc.GetByID(ctx, lockdownID, actor.SiteScope())
	if err != nil {
		return types.Lockdown{}, err
	}

	// The mode is read per request so that a deployment flipped to
	// edge-local takes effect without a restart.
	if svc.mode.Current(ctx) != opmode.EdgeLocal {
		return types.Lockdown{}, ErrEdgeOnly
	}

	now := time.Now().UTC()

	err = svc.storage.ReleaseLockdown(ctx, lockdownID, now)
	if err != nil {
		if errors.Is(err, storage.ErrStaleStatus) {
			return types.Lockdown{}, ErrAlreadyReleased
		}
		return types.Lockdown{}, err
	}

	_, doorList, err := svc.resolveScope(ctx, lockdown.Scope, lockdown.TargetID)
	if err == nil {
		for _, door := range doorList {
			err := svc.doors.Unlock(ctx, door)
			if err != nil {
				log.Error("failed to issue unlock command", "door_id", door.ID, "err", err.Error())
			}
		}
	}

	lockdown.ReleasedAt = &now

	err = svc.audit.Write(ctx, auditlog.Entry(actor, lockdown.SiteID, "lockdown.release", "lockdown", lockdown.ID, map[string]any{
		"scope":    string(lockdown.Scope),
		"targetId": lockdown.TargetID,
	}))
	if err != nil {
		return types.Lockdown{}, err
	}

	svc.messenger.PublishOnTopic(ctx, &LockdownReleased{
		LockdownID: lockdown.ID,
		SiteID:     lockdown.SiteID,
		Timestamp:  now,
	})

	svc.broadcaster.BroadcastToSite(lockdown.SiteID, "lockdown:released", map[string]any{
		"id":     lockdown.ID,
		"siteId": lockdown.SiteID,
	})

	return lockdown, nil
}

var ErrAlreadyReleased = fmt.Errorf("lockdown is already released")

func (svc *lockdownSvc) Query(ctx context.Context, offset, limit int, siteIDs []string) (types.Collection[types.Lockdown], error) {
	return svc.storage.QueryLockdowns(ctx, storage.WithOffset(offset), storage.WithLimit(limit), storage.WithSiteIDs(siteIDs))
}

func (svc *lockdownSvc) GetByID(ctx context.Context, lockdownID string, siteIDs []string) (types.Lockdown, error) {
	lockdown, err := svc.storage.GetLockdown(ctx, storage.WithLockdownID(lockdownID), storage.WithSiteIDs(siteIDs))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Lockdown{}, ErrLockdownNotFound
		}
		return types.Lockdown{}, err
	}

	return lockdown, nil
}

// resolveScope expands a (scope, target) pair into the concrete door
// set: every door on the site, every door of one building, or the
// member doors of one zone.
func (svc *lockdownSvc) resolveScope(ctx context.Context, scope types.LockdownScope, targetID string) (string, []types.Door, error) {
	var siteID string
	var conditions []storage.ConditionFunc

	switch scope {
	case types.LockdownScopeFullSite:
		site, err := svc.storage.GetSite(ctx, targetID)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return "", nil, ErrTargetNotFound
			}
			return "", nil, err
		}
		siteID = site.ID
		conditions = []storage.ConditionFunc{storage.WithSiteID(site.ID)}

	case types.LockdownScopeBuilding:
		building, err := svc.storage.GetBuilding(ctx, targetID)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return "", nil, ErrTargetNotFound
			}
			return "", nil, err
		}
		siteID = building.SiteID
		conditions = []storage.ConditionFunc{storage.WithBuildingID(building.ID)}

	case types.LockdownScopeZone:
		zone, err := svc.storage.GetZone(ctx, targetID)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return "", nil, ErrTargetNotFound
			}
			return "", nil, err
		}
		siteID = zone.SiteID
		conditions = []storage.ConditionFunc{storage.WithZoneID(zone.ID)}

	default:
		return "", nil, ErrBadScope
	}

	doorList, err := svc.storage.GetDoors(ctx, conditions...)
	if err != nil {
		return "", nil, err
	}

	return siteID, doorList, nil
}
