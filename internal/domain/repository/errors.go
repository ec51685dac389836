// Package repository defines the interfaces for the persistence layer.
package repository

import "errors"

// Domain-specific errors for persistence.
var (
	// ErrGeofenceNotFound is returned when a geofence is not found.
	ErrGeofenceNotFound = errors.New("geofence not found")
	// ErrIncidentNotFound is returned when an incident is not found.
	ErrIncidentNotFound = errors.New("incident not found")
	// ErrAlertNotFound is returned when an alert is not found.
	ErrAlertNotFound = errors.New("alert not found")
	// ErrSnapshotNotFound is returned when a tourist has no stored location yet.
	ErrSnapshotNotFound = errors.New("location snapshot not found")
	// ErrProfileNotFound is returned when a tourist profile is not found.
	ErrProfileNotFound = errors.New("tourist profile not found")

	// ErrDuplicatePendingAlert is returned when a write would create a second
	// pending alert for the same incident and channel.
	ErrDuplicatePendingAlert = errors.New("pending alert already exists")
	// ErrStatusMismatch is returned by compare-and-swap updates when the stored
	// status no longer equals the expected one.
	ErrStatusMismatch = errors.New("stored status does not match expected status")
)
