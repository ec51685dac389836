// Package incident owns the incident lifecycle rules.
package incident

import (
	"slices"
	"time"

	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"
	"tourguard/internal/errors"

	"github.com/google/uuid"
)

// transitions lists the statuses reachable in one step from each status.
var transitions = map[entity.IncidentStatus][]entity.IncidentStatus{
	entity.IncidentStatusPending: {
		entity.IncidentStatusAcknowledged,
		entity.IncidentStatusResolved,
		entity.IncidentStatusFalseAlarm,
	},
	entity.IncidentStatusAcknowledged: {
		entity.IncidentStatusResolved,
		entity.IncidentStatusFalseAlarm,
	},
}

// DispatchReason explains why a dispatch request was emitted.
type DispatchReason string

const (
	ReasonCriticalCreated DispatchReason = "critical_created"
	ReasonAcknowledged    DispatchReason = "acknowledged"
	ReasonDangerZone      DispatchReason = "danger_zone"
)

// DispatchRequest asks for an alert to be sent for an incident.
// The channel is chosen by the caller's policy, not by the machine.
type DispatchRequest struct {
	IncidentID uuid.UUID
	TouristID  uuid.UUID
	Severity   entity.Severity
	Reason     DispatchReason
}

// Outcome carries the side-effect requests produced by a transition.
type Outcome struct {
	// Changed is false for a no-op transition.
	Changed bool
	// Dispatch is non-nil when an alert must be sent.
	Dispatch *DispatchRequest
	// RevertProfile asks for the tourist's profile to return to active.
	RevertProfile bool
}

// CreateInput describes a new incident.
type CreateInput struct {
	TouristID   uuid.UUID
	Type        entity.IncidentType
	Description string
	Location    *entity.Coordinate
	Severity    entity.Severity
}

// Machine validates and applies incident lifecycle changes. It performs no I/O.
type Machine struct {
	now func() time.Time
}

// NewMachine creates a machine. A nil clock defaults to time.Now.
func NewMachine(clock func() time.Time) *Machine {
	if clock == nil {
		clock = time.Now
	}

	return &Machine{now: clock}
}

// Create builds a pending incident. A critical incident also yields a dispatch request.
func (m *Machine) Create(in CreateInput) (*entity.Incident, *DispatchRequest, error) {
	if in.TouristID == uuid.Nil {
		return nil, nil, domainerrors.ErrValidation.WithDetails("tourist id is required")
	}
	if !in.Type.IsValid() {
		return nil, nil, domainerrors.ErrValidation.WithDetailsf("unknown incident type %q", in.Type)
	}
	if !in.Severity.IsValid() {
		return nil, nil, domainerrors.ErrValidation.WithDetailsf("unknown severity %q", in.Severity)
	}
	if in.Location != nil && !in.Location.IsValid() {
		return nil, nil, domainerrors.ErrValidation.WithDetailsf("coordinate out of range: (%f, %f)", in.Location.Latitude, in.Location.Longitude)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, nil, errors.Wrap(err, "generate incident id")
	}

	now := m.now().UTC()
	inc := &entity.Incident{
		ID:          id,
		TouristID:   in.TouristID,
		Type:        in.Type,
		Description: in.Description,
		Severity:    in.Severity,
		Status:      entity.IncidentStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Location != nil {
		loc := *in.Location
		inc.Location = &loc
	}

	var req *DispatchRequest
	if inc.Severity == entity.SeverityCritical {
		req = newDispatchRequest(inc, ReasonCriticalCreated)
	}

	return inc, req, nil
}

// CanTransition reports whether to is reachable from from in one step.
func CanTransition(from, to entity.IncidentStatus) bool {
	return slices.Contains(transitions[from], to)
}

// Transition moves the incident to newStatus on behalf of actor.
// The input is never modified; a changed copy is returned. Requesting the
// current status is a no-op that returns the same incident.
func (m *Machine) Transition(inc *entity.Incident, newStatus entity.IncidentStatus, actor entity.Actor) (*entity.Incident, Outcome, error) {
	if inc == nil {
		return nil, Outcome{}, domainerrors.ErrValidation.WithDetails("incident is required")
	}
	if !newStatus.IsValid() {
		return nil, Outcome{}, domainerrors.ErrValidation.WithDetailsf("unknown incident status %q", newStatus)
	}
	if !actor.IsAdmin() {
		return nil, Outcome{}, domainerrors.ErrIllegalTransition.WithDetailsf("role %q may not change incident status", actor.Role)
	}
	if newStatus == inc.Status {
		return inc, Outcome{}, nil
	}
	if !CanTransition(inc.Status, newStatus) {
		return nil, Outcome{}, domainerrors.ErrIllegalTransition.WithDetailsf("%s -> %s", inc.Status, newStatus)
	}

	now := m.now().UTC()
	next := *inc
	next.Status = newStatus
	next.UpdatedAt = now

	out := Outcome{Changed: true}
	if newStatus.IsTerminal() {
		next.ResolvedAt = &now
		out.RevertProfile = true
	}
	if inc.Status == entity.IncidentStatusPending && newStatus == entity.IncidentStatusAcknowledged {
		out.Dispatch = newDispatchRequest(&next, ReasonAcknowledged)
	}

	return &next, out, nil
}

// DangerZoneRequest is the dispatch request for an incident raised by geofence entry.
func DangerZoneRequest(inc *entity.Incident) *DispatchRequest {
	return newDispatchRequest(inc, ReasonDangerZone)
}

func newDispatchRequest(inc *entity.Incident, reason DispatchReason) *DispatchRequest {
	return &DispatchRequest{
		IncidentID: inc.ID,
		TouristID:  inc.TouristID,
		Severity:   inc.Severity,
		Reason:     reason,
	}
}
