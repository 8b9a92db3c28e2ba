package types

import (
	"encoding/json"
	"time"
)

// Canonical events are the vendor independent shapes produced by the
// ingest adapters. They are handed straight to the downstream pipelines
// and never persisted as-is.

type GpsUpdate struct {
	VehicleID string    `json:"vehicleId"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Speed     float64   `json:"speed,omitempty"`
	Heading   float64   `json:"heading,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (g *GpsUpdate) ContentType() string {
	return "application/json"
}
func (g *GpsUpdate) TopicName() string {
	return "transport.gpsUpdate"
}
func (g *GpsUpdate) Body() []byte {
	b, _ := json.Marshal(g)
	return b
}

type RfidScanEvent struct {
	VehicleID string    `json:"vehicleId"`
	CardID    string    `json:"cardId"`
	StudentID string    `json:"studentId,omitempty"`
	Direction string    `json:"direction,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (r *RfidScanEvent) ContentType() string {
	return "application/json"
}
func (r *RfidScanEvent) TopicName() string {
	return "transport.rfidScan"
}
func (r *RfidScanEvent) Body() []byte {
	b, _ := json.Marshal(r)
	return b
}

type DriverEvent struct {
	VehicleID string    `json:"vehicleId"`
	DriverID  string    `json:"driverId,omitempty"`
	EventType string    `json:"eventType"`
	Severity  string    `json:"severity,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (d *DriverEvent) ContentType() string {
	return "application/json"
}
func (d *DriverEvent) TopicName() string {
	return "transport.driverEvent"
}
func (d *DriverEvent) Body() []byte {
	b, _ := json.Marshal(d)
	return b
}

type ThreatEvent struct {
	Vendor     string    `json:"vendor"`
	EventType  string    `json:"eventType"`
	SiteID     string    `json:"siteId,omitempty"`
	BuildingID string    `json:"buildingId,omitempty"`
	Location   string    `json:"location,omitempty"`
	Confidence float64   `json:"confidence"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func (t *ThreatEvent) ContentType() string {
	return "application/json"
}
func (t *ThreatEvent) TopicName() string {
	return "ingest.threatEvent"
}
func (t *ThreatEvent) Body() []byte {
	b, _ := json.Marshal(t)
	return b
}
