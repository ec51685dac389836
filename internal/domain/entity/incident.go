package entity

import (
	"time"

	"github.com/google/uuid"
)

// IncidentType classifies an incident.
type IncidentType string

const (
	IncidentTypeEmergency  IncidentType = "emergency"
	IncidentTypeMedical    IncidentType = "medical"
	IncidentTypeTheft      IncidentType = "theft"
	IncidentTypeHarassment IncidentType = "harassment"
	IncidentTypeLost       IncidentType = "lost"
	IncidentTypeOther      IncidentType = "other"
	// IncidentTypeDangerZone is raised by the system when a tourist enters an unsafe geofence.
	IncidentTypeDangerZone IncidentType = "danger_zone"
)

// IsValid checks if the type is a recognized kind.
func (t IncidentType) IsValid() bool {
	switch t {
	case IncidentTypeEmergency, IncidentTypeMedical, IncidentTypeTheft,
		IncidentTypeHarassment, IncidentTypeLost, IncidentTypeOther, IncidentTypeDangerZone:
		return true
	default:
		return false
	}
}

// Severity ranks an incident.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// IsValid checks if the severity is a recognized level.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	default:
		return false
	}
}

// IncidentStatus is a lifecycle state.
type IncidentStatus string

const (
	IncidentStatusPending      IncidentStatus = "pending"
	IncidentStatusAcknowledged IncidentStatus = "acknowledged"
	IncidentStatusResolved     IncidentStatus = "resolved"
	IncidentStatusFalseAlarm   IncidentStatus = "false_alarm"
)

// IsValid checks if the status is a recognized state.
func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentStatusPending, IncidentStatusAcknowledged, IncidentStatusResolved, IncidentStatusFalseAlarm:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s IncidentStatus) IsTerminal() bool {
	return s == IncidentStatusResolved || s == IncidentStatusFalseAlarm
}

// Incident is a reported or inferred safety event for a tourist.
type Incident struct {
	ID          uuid.UUID      `json:"id"`
	TouristID   uuid.UUID      `json:"tourist_id"`
	Type        IncidentType   `json:"type"`
	Description string         `json:"description,omitempty"`
	Location    *Coordinate    `json:"location,omitempty"`
	Severity    Severity       `json:"severity"`
	Status      IncidentStatus `json:"status"`
	AssignedTo  *uuid.UUID     `json:"assigned_to,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	ResolvedAt  *time.Time     `json:"resolved_at,omitempty"`
	Alerts      []*Alert       `json:"alerts,omitempty"` // Populated only by detail reads.
}
