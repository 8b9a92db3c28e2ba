package lockdown

import (
	"encoding/json"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
)

type LockdownInitiated struct {
	Lockdown  types.Lockdown `json:"lockdown"`
	SiteID    string         `json:"siteId"`
	Timestamp time.Time      `json:"timestamp"`
}

func (l *LockdownInitiated) ContentType() string {
	return "application/json"
}

func (l *LockdownInitiated) TopicName() string {
	return "lockdowns.lockdownInitiated"
}

func (l *LockdownInitiated) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}

type LockdownReleased struct {
	LockdownID string    `json:"lockdownId"`
	SiteID     string    `json:"siteId"`
	Timestamp  time.Time `json:"timestamp"`
}

func (l *LockdownReleased) ContentType() string {
	return "application/json"
}

func (l *LockdownReleased) TopicName() string {
	return "lockdowns.lockdownReleased"
}

func (l *LockdownReleased) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}

// DoorCommand is consumed by the access control edge agents.
type DoorCommand struct {
	DoorID    string    `json:"doorId"`
	SiteID    string    `json:"siteId"`
	Command   string    `json:"command"`
	Timestamp time.Time `json:"timestamp"`
}

func (d *DoorCommand) ContentType() string {
	return "application/json"
}

func (d *DoorCommand) TopicName() string {
	return "doors.command"
}

func (d *DoorCommand) Body() []byte {
	b, _ := json.Marshal(d)
	return b
}
