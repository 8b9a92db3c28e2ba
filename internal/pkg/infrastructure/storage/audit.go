package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
	"github.com/jackc/pgx/v5"
)

// AddAuditLogEntry appends a single entry. The table has no primary key
// and no update path; the audit log is write-once by construction.
func (s *Storage) AddAuditLogEntry(ctx context.Context, entry types.AuditLogEntry) error {
	if entry.SiteID == "" {
		return ErrMissingSite
	}

	var details []byte
	if entry.Details != nil {
		var err error
		details, err = json.Marshal(entry.Details)
		if err != nil {
			return err
		}
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO audit_log (site_id, user_id, action, entity, entity_id, details, ip_address, created_at)
		VALUES (@site_id, @user_id, @action, @entity, @entity_id, @details, @ip_address, @created_at);
	`, pgx.NamedArgs{
		"site_id":    entry.SiteID,
		"user_id":    entry.UserID,
		"action":     entry.Action,
		"entity":     entry.Entity,
		"entity_id":  entry.EntityID,
		"details":    details,
		"ip_address": entry.IPAddress,
		"created_at": createdAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) QueryAuditLog(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.AuditLogEntry], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "created_at"
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
		SELECT site_id, user_id, action, entity, entity_id, details, ip_address, created_at, count(*) OVER () AS total
		FROM audit_log
		WHERE %s
		ORDER BY %s %s
		%s;
	`, condition.Where(), condition.SortBy(), condition.SortOrder(), offsetLimit)

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.AuditLogEntry]{}, err
	}
	defer rows.Close()

	entries := make([]types.AuditLogEntry, 0)
	var total int64

	for rows.Next() {
		var e types.AuditLogEntry
		var details []byte
		var ip *string

		err = rows.Scan(&e.SiteID, &e.UserID, &e.Action, &e.Entity, &e.EntityID, &details, &ip, &e.CreatedAt, &total)
		if err != nil {
			return types.Collection[types.AuditLogEntry]{}, err
		}

		if details != nil {
			json.Unmarshal(details, &e.Details)
		}
		if ip != nil {
			e.IPAddress = *ip
		}

		entries = append(entries, e)
	}

	return types.Collection[types.AuditLogEntry]{
		Data:       entries,
		Count:      uint64(len(entries)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}
