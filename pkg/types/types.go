package types

import (
	"time"
)

type Collection[T any] struct {
	Data       []T    `json:"data"`
	Count      uint64 `json:"count"`
	Offset     uint64 `json:"offset"`
	Limit      uint64 `json:"limit"`
	TotalCount uint64 `json:"totalCount"`
}

type AlertLevel string

const (
	AlertLevelActiveThreat AlertLevel = "ACTIVE_THREAT"
	AlertLevelLockdown     AlertLevel = "LOCKDOWN"
	AlertLevelFire         AlertLevel = "FIRE"
	AlertLevelMedical      AlertLevel = "MEDICAL"
	AlertLevelWeather      AlertLevel = "WEATHER"
	AlertLevelAllClear     AlertLevel = "ALL_CLEAR"
)

func (l AlertLevel) Valid() bool {
	switch l {
	case AlertLevelActiveThreat, AlertLevelLockdown, AlertLevelFire,
		AlertLevelMedical, AlertLevelWeather, AlertLevelAllClear:
		return true
	}
	return false
}

type AlertStatus string

const (
	AlertStatusTriggered    AlertStatus = "TRIGGERED"
	AlertStatusAcknowledged AlertStatus = "ACKNOWLEDGED"
	AlertStatusDispatched   AlertStatus = "DISPATCHED"
	AlertStatusResolved     AlertStatus = "RESOLVED"
	AlertStatusCancelled    AlertStatus = "CANCELLED"
)

type Alert struct {
	ID             string      `json:"id"`
	SiteID         string      `json:"siteId"`
	BuildingID     string      `json:"buildingId"`
	Level          AlertLevel  `json:"level"`
	Status         AlertStatus `json:"status"`
	Source         string      `json:"source"`
	Message        string      `json:"message,omitempty"`
	TriggeredAt    time.Time   `json:"triggeredAt"`
	AcknowledgedAt *time.Time  `json:"acknowledgedAt,omitempty"`
	ResolvedAt     *time.Time  `json:"resolvedAt,omitempty"`
	ExtendedUntil  *time.Time  `json:"extendedUntil,omitempty"`
	ExtendReason   string      `json:"extendReason,omitempty"`
}

type LockdownScope string

const (
	LockdownScopeFullSite LockdownScope = "FULL_SITE"
	LockdownScopeBuilding LockdownScope = "BUILDING"
	LockdownScopeZone     LockdownScope = "ZONE"
)

func (s LockdownScope) Valid() bool {
	switch s {
	case LockdownScopeFullSite, LockdownScopeBuilding, LockdownScopeZone:
		return true
	}
	return false
}

type Lockdown struct {
	ID            string        `json:"id"`
	SiteID        string        `json:"siteId"`
	Scope         LockdownScope `json:"scope"`
	TargetID      string        `json:"targetId"`
	InitiatedByID string        `json:"initiatedById"`
	InitiatedAt   time.Time     `json:"initiatedAt"`
	ReleasedAt    *time.Time    `json:"releasedAt,omitempty"`
	DoorsLocked   int           `json:"doorsLocked"`
}

func (l Lockdown) Active() bool {
	return l.ReleasedAt == nil
}

type RollCallStatus string

const (
	RollCallStatusActive    RollCallStatus = "ACTIVE"
	RollCallStatusCompleted RollCallStatus = "COMPLETED"
)

type RollCall struct {
	ID                 string         `json:"id"`
	IncidentID         string         `json:"incidentId"`
	SiteID             string         `json:"siteId"`
	InitiatedByID      string         `json:"initiatedById"`
	Status             RollCallStatus `json:"status"`
	TotalClassrooms    int            `json:"totalClassrooms"`
	TotalStudents      int            `json:"totalStudents"`
	ReportedClassrooms int            `json:"reportedClassrooms"`
	AccountedStudents  int            `json:"accountedStudents"`
	InitiatedAt        time.Time      `json:"initiatedAt"`
	CompletedAt        *time.Time     `json:"completedAt,omitempty"`
}

type RollCallReport struct {
	RollCallID      string    `json:"rollCallId"`
	UserID          string    `json:"userId"`
	RoomID          string    `json:"roomId"`
	StudentsPresent int       `json:"studentsPresent"`
	StudentsAbsent  int       `json:"studentsAbsent"`
	StudentsMissing []string  `json:"studentsMissing,omitempty"`
	StudentsInjured []string  `json:"studentsInjured,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	ReportedAt      time.Time `json:"reportedAt"`
}

type AuditLogEntry struct {
	SiteID    string         `json:"siteId"`
	UserID    string         `json:"userId"`
	Action    string         `json:"action"`
	Entity    string         `json:"entity"`
	EntityID  string         `json:"entityId"`
	Details   map[string]any `json:"details,omitempty"`
	IPAddress string         `json:"ipAddress,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

type Site struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	TotalClassrooms int    `json:"totalClassrooms"`
	TotalStudents   int    `json:"totalStudents"`
}

type Building struct {
	ID     string `json:"id"`
	SiteID string `json:"siteId"`
	Name   string `json:"name"`
}

type Zone struct {
	ID         string `json:"id"`
	SiteID     string `json:"siteId"`
	BuildingID string `json:"buildingId"`
	Name       string `json:"name"`
}

type Door struct {
	ID         string `json:"id"`
	SiteID     string `json:"siteId"`
	BuildingID string `json:"buildingId"`
	ZoneID     string `json:"zoneId,omitempty"`
	Name       string `json:"name"`
}

type CredentialType string

const (
	CredentialTypeTemporaryCard CredentialType = "TEMPORARY_CARD"
	CredentialTypeMobile        CredentialType = "MOBILE"
	CredentialTypePermanent     CredentialType = "PERMANENT"
)
