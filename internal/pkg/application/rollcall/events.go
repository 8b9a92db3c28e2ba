package rollcall

import (
	"encoding/json"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
)

type RollCallInitiated struct {
	RollCall  types.RollCall `json:"rollCall"`
	SiteID    string         `json:"siteId"`
	Timestamp time.Time      `json:"timestamp"`
}

func (r *RollCallInitiated) ContentType() string {
	return "application/json"
}

func (r *RollCallInitiated) TopicName() string {
	return "rollcalls.rollCallInitiated"
}

func (r *RollCallInitiated) Body() []byte {
	b, _ := json.Marshal(r)
	return b
}

type RollCallCompleted struct {
	RollCallID string    `json:"rollCallId"`
	SiteID     string    `json:"siteId"`
	Timestamp  time.Time `json:"timestamp"`
}

func (r *RollCallCompleted) ContentType() string {
	return "application/json"
}

func (r *RollCallCompleted) TopicName() string {
	return "rollcalls.rollCallCompleted"
}

func (r *RollCallCompleted) Body() []byte {
	b, _ := json.Marshal(r)
	return b
}
