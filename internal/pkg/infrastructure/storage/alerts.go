package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddAlert(ctx context.Context, alert types.Alert) error {
	if alert.ID == "" {
		return ErrNoID
	}
	if alert.SiteID == "" {
		return ErrMissingSite
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO alerts (alert_id, site_id, building_id, level, status, source, message, triggered_at)
		VALUES (@alert_id, @site_id, @building_id, @level, @status, @source, @message, @triggered_at);
	`, pgx.NamedArgs{
		"alert_id":     alert.ID,
		"site_id":      alert.SiteID,
		"building_id":  alert.BuildingID,
		"level":        string(alert.Level),
		"status":       string(alert.Status),
		"source":       alert.Source,
		"message":      alert.Message,
		"triggered_at": alert.TriggeredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) GetAlert(ctx context.Context, conditions ...ConditionFunc) (types.Alert, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT alert_id, site_id, building_id, level, status, source, message, triggered_at, acknowledged_at, resolved_at, extended_until, extend_reason
		FROM alerts
		WHERE %s;
	`, condition.Where())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Alert{}, err
	}

	alert, err := pgx.CollectExactlyOneRow(rows, scanAlert)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Alert{}, ErrNoRows
		}
		return types.Alert{}, err
	}

	return alert, nil
}

func (s *Storage) QueryAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alert], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "triggered_at"
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
		SELECT alert_id, site_id, building_id, level, status, source, message, triggered_at, acknowledged_at, resolved_at, extended_until, extend_reason, count(*) OVER () AS total
		FROM alerts
		WHERE %s
		ORDER BY %s %s
		%s;
	`, condition.Where(), condition.SortBy(), condition.SortOrder(), offsetLimit)

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}
	defer rows.Close()

	alerts := make([]types.Alert, 0)
	var total int64

	for rows.Next() {
		var a types.Alert
		var message, extendReason *string

		err = rows.Scan(&a.ID, &a.SiteID, &a.BuildingID, &a.Level, &a.Status, &a.Source, &message, &a.TriggeredAt, &a.AcknowledgedAt, &a.ResolvedAt, &a.ExtendedUntil, &extendReason, &total)
		if err != nil {
			return types.Collection[types.Alert]{}, err
		}

		if message != nil {
			a.Message = *message
		}
		if extendReason != nil {
			a.ExtendReason = *extendReason
		}

		alerts = append(alerts, a)
	}

	return types.Collection[types.Alert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}

// UpdateAlertStatus moves an alert from an expected current status to the
// next one. The WHERE clause on the current status is what linearizes
// concurrent transitions: the loser of a race matches zero rows and gets
// ErrStaleStatus back.
func (s *Storage) UpdateAlertStatus(ctx context.Context, alertID string, from, to types.AlertStatus, at time.Time) error {
	set := "status = @to"

	switch to {
	case types.AlertStatusAcknowledged:
		set += ", acknowledged_at = @at"
	case types.AlertStatusResolved, types.AlertStatusCancelled:
		set += ", resolved_at = @at"
	}

	tag, err := s.pool.Exec(ctx, fmt.Sprintf(`
		UPDATE alerts SET %s WHERE alert_id = @alert_id AND status = @from;
	`, set), pgx.NamedArgs{
		"alert_id": alertID,
		"from":     string(from),
		"to":       string(to),
		"at":       at.UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	if tag.RowsAffected() == 0 {
		return ErrStaleStatus
	}

	return nil
}

// ExtendAlert stamps a new investigation deadline on an alert that is
// still in ACKNOWLEDGED.
func (s *Storage) ExtendAlert(ctx context.Context, alertID string, until time.Time, reason string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE alerts SET extended_until = @until, extend_reason = @reason
		WHERE alert_id = @alert_id AND status = @status;
	`, pgx.NamedArgs{
		"alert_id": alertID,
		"until":    until.UTC(),
		"reason":   reason,
		"status":   string(types.AlertStatusAcknowledged),
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	if tag.RowsAffected() == 0 {
		return ErrStaleStatus
	}

	return nil
}

func scanAlert(row pgx.CollectableRow) (types.Alert, error) {
	var a types.Alert
	var message, extendReason *string

	err := row.Scan(&a.ID, &a.SiteID, &a.BuildingID, &a.Level, &a.Status, &a.Source, &message, &a.TriggeredAt, &a.AcknowledgedAt, &a.ResolvedAt, &a.ExtendedUntil, &extendReason)
	if err != nil {
		return types.Alert{}, err
	}

	if message != nil {
		a.Message = *message
	}
	if extendReason != nil {
		a.ExtendReason = *extendReason
	}

	return a, nil
}
