package storage

import (
	"strings"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	AlertID    string
	LockdownID string
	RollCallID string
	IncidentID string
	SiteID     string
	SiteIDs    []string
	BuildingID string
	ZoneID     string

	Status     string
	Scope      string
	TargetID   string
	ActiveOnly bool

	Entity string
	After  time.Time
	Before time.Time

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func WithAlertID(id string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertID = id
		return c
	}
}

func WithLockdownID(id string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.LockdownID = id
		return c
	}
}

func WithRollCallID(id string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.RollCallID = id
		return c
	}
}

func WithIncidentID(id string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.IncidentID = id
		return c
	}
}

func WithSiteID(siteID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SiteID = siteID
		return c
	}
}

func WithSiteIDs(siteIDs []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SiteIDs = siteIDs
		return c
	}
}

func WithBuildingID(buildingID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.BuildingID = buildingID
		return c
	}
}

func WithZoneID(zoneID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ZoneID = zoneID
		return c
	}
}

func WithStatus(status string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Status = status
		return c
	}
}

func WithScopeTarget(scope types.LockdownScope, targetID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Scope = string(scope)
		c.TargetID = targetID
		return c
	}
}

func WithActiveOnly() ConditionFunc {
	return func(c *Condition) *Condition {
		c.ActiveOnly = true
		return c
	}
}

func WithEntity(entity string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Entity = entity
		return c
	}
}

func WithTimeWindow(after, before time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.After = after
		c.Before = before
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func WithSortBy(column, order string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.sortBy = column
		c.sortOrder = order
		return c
	}
}

func (c Condition) Offset() int {
	if c.offset != nil {
		return *c.offset
	}
	return 0
}

func (c Condition) Limit() int {
	if c.limit != nil {
		return *c.limit
	}
	return 0
}

func (c Condition) SortBy() string {
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "ASC"
	}
	return c.sortOrder
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.AlertID != "" {
		args["alert_id"] = c.AlertID
	}
	if c.LockdownID != "" {
		args["lockdown_id"] = c.LockdownID
	}
	if c.RollCallID != "" {
		args["roll_call_id"] = c.RollCallID
	}
	if c.IncidentID != "" {
		args["incident_id"] = c.IncidentID
	}
	if c.SiteID != "" {
		args["site_id"] = c.SiteID
	}
	if c.SiteIDs != nil {
		args["site_ids"] = c.SiteIDs
	}
	if c.BuildingID != "" {
		args["building_id"] = c.BuildingID
	}
	if c.ZoneID != "" {
		args["zone_id"] = c.ZoneID
	}
	if c.Status != "" {
		args["status"] = c.Status
	}
	if c.Scope != "" {
		args["scope"] = c.Scope
	}
	if c.TargetID != "" {
		args["target_id"] = c.TargetID
	}
	if c.Entity != "" {
		args["entity"] = c.Entity
	}
	if !c.After.IsZero() {
		args["after"] = c.After.UTC()
	}
	if !c.Before.IsZero() {
		args["before"] = c.Before.UTC()
	}

	return args
}

// Where renders the WHERE clause for the given column prefix. Every list
// query in this package is built through here so that site scoping is
// applied the same way everywhere.
func (c Condition) Where() string {
	where := []string{}

	if c.AlertID != "" {
		where = append(where, "alert_id = @alert_id")
	}
	if c.LockdownID != "" {
		where = append(where, "lockdown_id = @lockdown_id")
	}
	if c.RollCallID != "" {
		where = append(where, "roll_call_id = @roll_call_id")
	}
	if c.IncidentID != "" {
		where = append(where, "incident_id = @incident_id")
	}
	if c.SiteID != "" {
		where = append(where, "site_id = @site_id")
	}
	if c.SiteIDs != nil {
		where = append(where, "site_id = ANY(@site_ids)")
	}
	if c.BuildingID != "" {
		where = append(where, "building_id = @building_id")
	}
	if c.ZoneID != "" {
		where = append(where, "zone_id = @zone_id")
	}
	if c.Status != "" {
		where = append(where, "status = @status")
	}
	if c.Scope != "" {
		where = append(where, "scope = @scope")
	}
	if c.TargetID != "" {
		where = append(where, "target_id = @target_id")
	}
	if c.Entity != "" {
		where = append(where, "entity = @entity")
	}
	if !c.After.IsZero() {
		where = append(where, "created_at >= @after")
	}
	if !c.Before.IsZero() {
		where = append(where, "created_at <= @before")
	}
	if c.ActiveOnly {
		where = append(where, "released_at IS NULL")
	}

	if len(where) == 0 {
		return "1=1"
	}

	return strings.Join(where, " AND ")
}
