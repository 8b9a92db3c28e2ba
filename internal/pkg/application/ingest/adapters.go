package ingest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
)

type baseAdapter struct {
	vendor string
	secret string
	siteID string
}

func (a baseAdapter) Vendor() string {
	return a.vendor
}

func (a baseAdapter) VerifySignature(body []byte, signature string) bool {
	return verifySignature(a.secret, body, signature)
}

type threatAdapter struct {
	baseAdapter
	cutoff float64
}

func (a threatAdapter) ShouldAutoAlert(ev types.ThreatEvent) bool {
	return ev.Confidence >= a.cutoff
}

func parseTimestamp(s string) time.Time {
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Now().UTC()
	}
	return ts.UTC()
}

// anomaly wraps an event type the adapter does not recognize. It is
// kept visible to operators instead of being dropped, but it can never
// create an alert on its own.
func anomaly(vendor, siteID, eventType string, details string, ts string) types.ThreatEvent {
	return types.ThreatEvent{
		Vendor:     vendor,
		EventType:  "anomaly",
		SiteID:     siteID,
		Confidence: 0,
		Details:    fmt.Sprintf("unclassified %s event: %s", eventType, details),
		Timestamp:  parseTimestamp(ts),
	}
}

// zonar ingests bus fleet telemetry: GPS breadcrumbs, student RFID
// card scans and driver behaviour events, batched per delivery.
type zonarAdapter struct {
	baseAdapter
}

func newZonarAdapter(deps adapterDeps) VendorAdapter {
	return &zonarAdapter{baseAdapter{vendor: "zonar", secret: deps.secret, siteID: deps.siteID}}
}

func (a *zonarAdapter) ParseWebhook(body []byte) (Payload, error) {
	var envelope struct {
		Positions []struct {
			AssetID   string  `json:"assetId"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			SpeedKph  float64 `json:"speedKph"`
			Heading   float64 `json:"heading"`
			Timestamp string  `json:"timestamp"`
		} `json:"positions"`
		RfidScans []struct {
			AssetID   string `json:"assetId"`
			CardID    string `json:"cardId"`
			StudentID string `json:"studentId"`
			Direction string `json:"direction"`
			Timestamp string `json:"timestamp"`
		} `json:"rfidScans"`
		DriverEvents []struct {
			AssetID   string `json:"assetId"`
			DriverID  string `json:"driverId"`
			Type      string `json:"type"`
			Severity  string `json:"severity"`
			Timestamp string `json:"timestamp"`
		} `json:"driverEvents"`
	}

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return Payload{}, err
	}

	payload := Payload{}

	for _, p := range envelope.Positions {
		payload.GpsUpdates = append(payload.GpsUpdates, types.GpsUpdate{
			VehicleID: p.AssetID,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Speed:     p.SpeedKph,
			Heading:   p.Heading,
			Timestamp: parseTimestamp(p.Timestamp),
		})
	}

	for _, s := range envelope.RfidScans {
		payload.RfidScans = append(payload.RfidScans, types.RfidScanEvent{
			VehicleID: s.AssetID,
			CardID:    s.CardID,
			StudentID: s.StudentID,
			Direction: s.Direction,
			Timestamp: parseTimestamp(s.Timestamp),
		})
	}

	for _, e := range envelope.DriverEvents {
		payload.DriverEvents = append(payload.DriverEvents, types.DriverEvent{
			VehicleID: e.AssetID,
			DriverID:  e.DriverID,
			EventType: e.Type,
			Severity:  e.Severity,
			Timestamp: parseTimestamp(e.Timestamp),
		})
	}

	return payload, nil
}

// samsara delivers one event per webhook with a typed envelope.
type samsaraAdapter struct {
	baseAdapter
}

func newSamsaraAdapter(deps adapterDeps) VendorAdapter {
	return &samsaraAdapter{baseAdapter{vendor: "samsara", secret: deps.secret, siteID: deps.siteID}}
}

func (a *samsaraAdapter) ParseWebhook(body []byte) (Payload, error) {
	var envelope struct {
		EventType      string `json:"eventType"`
		HappenedAtTime string `json:"happenedAtTime"`
		Data           struct {
			Vehicle struct {
				ID string `json:"id"`
			} `json:"vehicle"`
			Driver struct {
				ID string `json:"id"`
			} `json:"driver"`
			Location struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
				SpeedKph  float64 `json:"speedKilometersPerHour"`
				Heading   float64 `json:"headingDegrees"`
			} `json:"location"`
			BehaviorLabel string `json:"behaviorLabel"`
			Severity      string `json:"severity"`
		} `json:"data"`
	}

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return Payload{}, err
	}

	ts := parseTimestamp(envelope.HappenedAtTime)

	switch envelope.EventType {
	case "VehicleLocationUpdated":
		return Payload{GpsUpdates: []types.GpsUpdate{{
			VehicleID: envelope.Data.Vehicle.ID,
			Latitude:  envelope.Data.Location.Latitude,
			Longitude: envelope.Data.Location.Longitude,
			Speed:     envelope.Data.Location.SpeedKph,
			Heading:   envelope.Data.Location.Heading,
			Timestamp: ts,
		}}}, nil
	case "DriverSafetyEvent":
		return Payload{DriverEvents: []types.DriverEvent{{
			VehicleID: envelope.Data.Vehicle.ID,
			DriverID:  envelope.Data.Driver.ID,
			EventType: envelope.Data.BehaviorLabel,
			Severity:  envelope.Data.Severity,
			Timestamp: ts,
		}}}, nil
	}

	// Samsara sends dozens of event types this system does not act on.
	return Payload{}, nil
}

// zeroeyes publishes weapon detections from camera analytics, each
// carrying the model's confidence score.
type zeroEyesAdapter struct {
	threatAdapter
}

func newZeroEyesAdapter(deps adapterDeps) VendorAdapter {
	return &zeroEyesAdapter{threatAdapter{
		baseAdapter: baseAdapter{vendor: "zeroeyes", secret: deps.secret, siteID: deps.siteID},
		cutoff:      deps.cutoff,
	}}
}

func (a *zeroEyesAdapter) ParseWebhook(body []byte) (Payload, error) {
	var envelope struct {
		Detections []struct {
			Classification string  `json:"classification"`
			WeaponType     string  `json:"weaponType"`
			Confidence     float64 `json:"confidence"`
			CameraID       string  `json:"cameraId"`
			BuildingID     string  `json:"buildingId"`
			Location       string  `json:"location"`
			DetectedAt     string  `json:"detectedAt"`
		} `json:"detections"`
	}

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return Payload{}, err
	}

	payload := Payload{}

	for _, d := range envelope.Detections {
		if d.Classification != "weapon" {
			payload.ThreatEvents = append(payload.ThreatEvents,
				anomaly(a.vendor, a.siteID, d.Classification, "camera "+d.CameraID, d.DetectedAt))
			continue
		}

		payload.ThreatEvents = append(payload.ThreatEvents, types.ThreatEvent{
			Vendor:     a.vendor,
			EventType:  "weapon_detected",
			SiteID:     a.siteID,
			BuildingID: d.BuildingID,
			Location:   d.Location,
			Confidence: d.Confidence,
			Details:    fmt.Sprintf("%s detected on camera %s", d.WeaponType, d.CameraID),
			Timestamp:  parseTimestamp(d.DetectedAt),
		})
	}

	return payload, nil
}

// centegix relays badge activated staff alerts. A duress press is
// always treated as full confidence.
type centegixAdapter struct {
	threatAdapter
}

func newCentegixAdapter(deps adapterDeps) VendorAdapter {
	return &centegixAdapter{threatAdapter{
		baseAdapter: baseAdapter{vendor: "centegix", secret: deps.secret, siteID: deps.siteID},
		cutoff:      deps.cutoff,
	}}
}

func (a *centegixAdapter) ParseWebhook(body []byte) (Payload, error) {
	var envelope struct {
		Alerts []struct {
			Type       string `json:"type"`
			BadgeID    string `json:"badgeId"`
			CampusID   string `json:"campusId"`
			BuildingID string `json:"buildingId"`
			Room       string `json:"room"`
			Timestamp  string `json:"timestamp"`
		} `json:"alerts"`
	}

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return Payload{}, err
	}

	payload := Payload{}

	for _, alert := range envelope.Alerts {
		siteID := alert.CampusID
		if siteID == "" {
			siteID = a.siteID
		}

		var eventType string
		switch alert.Type {
		case "STAFF_DURESS":
			eventType = "panic_button"
		case "MEDICAL_ALERT":
			eventType = "medical_alert"
		default:
			payload.ThreatEvents = append(payload.ThreatEvents,
				anomaly(a.vendor, siteID, alert.Type, "badge "+alert.BadgeID, alert.Timestamp))
			continue
		}

		payload.ThreatEvents = append(payload.ThreatEvents, types.ThreatEvent{
			Vendor:     a.vendor,
			EventType:  eventType,
			SiteID:     siteID,
			BuildingID: alert.BuildingID,
			Location:   alert.Room,
			Confidence: 1.0,
			Details:    "badge " + alert.BadgeID,
			Timestamp:  parseTimestamp(alert.Timestamp),
		})
	}

	return payload, nil
}

// gaggle surfaces flagged student content. Severity maps onto a
// confidence score; only the highest tier can auto alert.
type gaggleAdapter struct {
	threatAdapter
}

func newGaggleAdapter(deps adapterDeps) VendorAdapter {
	return &gaggleAdapter{threatAdapter{
		baseAdapter: baseAdapter{vendor: "gaggle", secret: deps.secret, siteID: deps.siteID},
		cutoff:      deps.cutoff,
	}}
}

func (a *gaggleAdapter) ParseWebhook(body []byte) (Payload, error) {
	var envelope struct {
		Incidents []struct {
			Category   string `json:"category"`
			Severity   string `json:"severity"`
			StudentID  string `json:"studentId"`
			Summary    string `json:"summary"`
			DetectedAt string `json:"detectedAt"`
		} `json:"incidents"`
	}

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return Payload{}, err
	}

	payload := Payload{}

	for _, incident := range envelope.Incidents {
		switch incident.Category {
		case "VIOLENCE", "SELF_HARM":
		default:
			payload.ThreatEvents = append(payload.ThreatEvents,
				anomaly(a.vendor, a.siteID, incident.Category, incident.Summary, incident.DetectedAt))
			continue
		}

		confidence := 0.5
		if incident.Severity == "POSSIBLE_STUDENT_SITUATION" {
			confidence = 0.9
		}

		payload.ThreatEvents = append(payload.ThreatEvents, types.ThreatEvent{
			Vendor:     a.vendor,
			EventType:  "social_media_threat",
			SiteID:     a.siteID,
			Confidence: confidence,
			Details:    incident.Summary,
			Timestamp:  parseTimestamp(incident.DetectedAt),
		})
	}

	return payload, nil
}
