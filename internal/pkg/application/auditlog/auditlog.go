package auditlog

import (
	"context"
	"fmt"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
)

//go:generate moq -rm -out auditlog_mock.go . Logger

// Logger is the append-only audit writer. Every mutating operation in
// the service writes exactly one entry per state change through it.
type Logger interface {
	Write(ctx context.Context, entry types.AuditLogEntry) error
}

//go:generate moq -rm -out auditstore_mock.go . Store

type Store interface {
	AddAuditLogEntry(ctx context.Context, entry types.AuditLogEntry) error
}

type logger struct {
	store Store
}

func New(store Store) Logger {
	return &logger{store: store}
}

func (l *logger) Write(ctx context.Context, entry types.AuditLogEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	err := l.store.AddAuditLogEntry(ctx, entry)
	if err != nil {
		return fmt.Errorf("could not write audit log entry: %w", err)
	}

	return nil
}

// Entry is a convenience constructor used by the domain services.
func Entry(actor types.Actor, siteID, action, entity, entityID string, details map[string]any) types.AuditLogEntry {
	return types.AuditLogEntry{
		SiteID:    siteID,
		UserID:    actor.ID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Details:   details,
		IPAddress: actor.SourceIP,
	}
}
