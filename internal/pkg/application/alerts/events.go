package alerts

import (
	"encoding/json"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
)

type AlertCreated struct {
	Alert     types.Alert `json:"alert"`
	SiteID    string      `json:"siteId"`
	Timestamp time.Time   `json:"timestamp"`
}

func (a *AlertCreated) ContentType() string {
	return "application/json"
}
func (a *AlertCreated) TopicName() string {
	return "alerts.alertCreated"
}
func (a *AlertCreated) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlertStatusChanged struct {
	AlertID   string            `json:"alertId"`
	SiteID    string            `json:"siteId"`
	Level     types.AlertLevel  `json:"level"`
	Status    types.AlertStatus `json:"status"`
	Message   string            `json:"message,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

func (a *AlertStatusChanged) ContentType() string {
	return "application/json"
}
func (a *AlertStatusChanged) TopicName() string {
	return "alerts.alertStatusChanged"
}
func (a *AlertStatusChanged) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}
