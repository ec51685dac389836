package usecase

import (
	"context"
	"time"

	"tourguard/internal/domain/entity"
	"tourguard/internal/domain/geofence"

	"github.com/google/uuid"
)

// LocationUpdateInput is a position reported by a tourist's device.
type LocationUpdateInput struct {
	TouristID  uuid.UUID
	Coordinate entity.Coordinate
	// Timestamp orders updates; zero means "now".
	Timestamp time.Time
	Accuracy  *float64
	Speed     *float64
	Heading   *float64
}

// LocationUpdateResult is the outcome of an applied location update.
type LocationUpdateResult struct {
	Evaluation *geofence.Evaluation
	// TriggeredIncident is set when the update entered an unsafe geofence.
	TriggeredIncident *entity.Incident
}

// IncidentReportInput describes an incident raised by a tourist or an admin.
type IncidentReportInput struct {
	TouristID   uuid.UUID
	Type        entity.IncidentType
	Description string
	Location    *entity.Coordinate
	// Severity defaults to medium when empty.
	Severity entity.Severity
}

// IncidentTransitionInput is an admin's request to move an incident.
type IncidentTransitionInput struct {
	IncidentID uuid.UUID
	Status     entity.IncidentStatus
	AssignedTo *uuid.UUID
	Actor      entity.Actor
}

// ManualAlertInput is an admin's request to alert an authority about an incident.
// Empty fields fall back to the configured defaults.
type ManualAlertInput struct {
	IncidentID uuid.UUID
	Channel    entity.Channel
	Message    string
	Contact    string
}

// IncidentListInput filters incident listings.
type IncidentListInput struct {
	Status *entity.IncidentStatus
	Limit  int
	Offset int
}

// CoordinatorUsecase is the entry point for location updates and incident handling.
type CoordinatorUsecase interface {
	// OnLocationUpdate evaluates the position against the geofences, stores the new
	// membership and raises an incident when an unsafe geofence was entered.
	OnLocationUpdate(ctx context.Context, in LocationUpdateInput) (*LocationUpdateResult, error)

	// OnIncidentReport creates an incident on behalf of actor.
	OnIncidentReport(ctx context.Context, actor entity.Actor, in IncidentReportInput) (*entity.Incident, error)

	// OnIncidentTransition moves an incident through its lifecycle.
	OnIncidentTransition(ctx context.Context, in IncidentTransitionInput) (*entity.Incident, error)

	// GetIncident returns an incident with its alerts. Tourists only see their own.
	GetIncident(ctx context.Context, actor entity.Actor, incidentID uuid.UUID) (*entity.Incident, error)

	// ListIncidents returns all incidents for admins and the caller's own for tourists.
	ListIncidents(ctx context.Context, actor entity.Actor, in IncidentListInput) ([]*entity.Incident, error)

	// SendAlert dispatches an alert for an incident on an admin's request.
	SendAlert(ctx context.Context, actor entity.Actor, in ManualAlertInput) (*entity.Alert, error)
}
