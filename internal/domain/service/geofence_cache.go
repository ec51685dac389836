package service

import (
	"context"

	"tourguard/internal/domain/entity"
)

// GeofenceSnapshotCache shares the full geofence set between service instances.
// Every write bumps a version so readers can detect changes cheaply.
type GeofenceSnapshotCache interface {
	// Version returns the current snapshot version, 0 when none was stored.
	Version(ctx context.Context) (int64, error)

	// Load returns the stored fences and their version. ok is false on a miss.
	Load(ctx context.Context) (fences []*entity.Geofence, version int64, ok bool, err error)

	// Store replaces the snapshot and returns the new version.
	Store(ctx context.Context, fences []*entity.Geofence) (int64, error)
}
