package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddLockdown(ctx context.Context, lockdown types.Lockdown) error {
	if lockdown.ID == "" {
		return ErrNoID
	}
	if lockdown.SiteID == "" {
		return ErrMissingSite
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO lockdowns (lockdown_id, site_id, scope, target_id, initiated_by, initiated_at, doors_locked)
		VALUES (@lockdown_id, @site_id, @scope, @target_id, @initiated_by, @initiated_at, @doors_locked);
	`, pgx.NamedArgs{
		"lockdown_id":  lockdown.ID,
		"site_id":      lockdown.SiteID,
		"scope":        string(lockdown.Scope),
		"target_id":    lockdown.TargetID,
		"initiated_by": lockdown.InitiatedByID,
		"initiated_at": lockdown.InitiatedAt.UTC(),
		"doors_locked": lockdown.DoorsLocked,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) GetLockdown(ctx context.Context, conditions ...ConditionFunc) (types.Lockdown, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT lockdown_id, site_id, scope, target_id, initiated_by, initiated_at, released_at, doors_locked
		FROM lockdowns
		WHERE %s;
	`, condition.Where())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Lockdown{}, err
	}

	lockdown, err := pgx.CollectExactlyOneRow(rows, scanLockdown)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Lockdown{}, ErrNoRows
		}
		return types.Lockdown{}, err
	}

	return lockdown, nil
}

func (s *Storage) QueryLockdowns(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Lockdown], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "initiated_at"
		condition.sortOrder = "DESC"
	}

	var offsetLimit string
	if condition.offset != nil {
		offsetLimit += fmt.Sprintf("OFFSET %d ", condition.Offset())
	}
	if condition.limit != nil {
		offsetLimit += fmt.Sprintf("LIMIT %d ", condition.Limit())
	}

	query := fmt.Sprintf(`
		SELECT lockdown_id, site_id, scope, target_id, initiated_by, initiated_at, released_at, doors_locked, count(*) OVER () AS total
		FROM lockdowns
		WHERE %s
		ORDER BY %s %s
		%s;
	`, condition.Where(), condition.SortBy(), condition.SortOrder(), offsetLimit)

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Lockdown]{}, err
	}
	defer rows.Close()

	lockdowns := make([]types.Lockdown, 0)
	var total int64

	for rows.Next() {
		var l types.Lockdown

		err = rows.Scan(&l.ID, &l.SiteID, &l.Scope, &l.TargetID, &l.InitiatedByID, &l.InitiatedAt, &l.ReleasedAt, &l.DoorsLocked, &total)
		if err != nil {
			return types.Collection[types.Lockdown]{}, err
		}

		lockdowns = append(lockdowns, l)
	}

	return types.Collection[types.Lockdown]{
		Data:       lockdowns,
		Count:      uint64(len(lockdowns)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}

// ReleaseLockdown stamps released_at on an active lockdown. A zero row
// match means the lockdown was already released (or never existed).
func (s *Storage) ReleaseLockdown(ctx context.Context, lockdownID string, at time.Time) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE lockdowns SET released_at = @at
		WHERE lockdown_id = @lockdown_id AND released_at IS NULL;
	`, pgx.NamedArgs{
		"lockdown_id": lockdownID,
		"at":          at.UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	if tag.RowsAffected() == 0 {
		return ErrStaleStatus
	}

	return nil
}

// RevokeVisitorCredentials revokes every unrevoked credential of the
// given types for an entire site and returns how many were revoked.
func (s *Storage) RevokeVisitorCredentials(ctx context.Context, siteID string, credentialTypes []types.CredentialType, at time.Time) (int64, error) {
	ct := make([]string, 0, len(credentialTypes))
	for _, t := range credentialTypes {
		ct = append(ct, string(t))
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE visitor_credentials SET revoked = TRUE, revoked_on = @at
		WHERE site_id = @site_id AND credential_type = ANY(@credential_types) AND revoked = FALSE;
	`, pgx.NamedArgs{
		"site_id":          siteID,
		"credential_types": ct,
		"at":               at.UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return tag.RowsAffected(), nil
}

func scanLockdown(row pgx.CollectableRow) (types.Lockdown, error) {
	var l types.Lockdown

	err := row.Scan(&l.ID, &l.SiteID, &l.Scope, &l.TargetID, &l.InitiatedByID, &l.InitiatedAt, &l.ReleasedAt, &l.DoorsLocked)
	if err != nil {
		return types.Lockdown{}, err
	}

	return l, nil
}
