package repository

import (
	"context"
	"time"

	"tourguard/internal/domain/entity"

	"github.com/google/uuid"
)

// TouristLocationRepository stores the latest location and geofence membership per tourist.
type TouristLocationRepository interface {
	// Find returns the stored snapshot, or ErrSnapshotNotFound.
	Find(ctx context.Context, touristID uuid.UUID) (*entity.MembershipSnapshot, error)

	// FindForUpdate is Find with a row lock held until the surrounding transaction ends.
	FindForUpdate(ctx context.Context, touristID uuid.UUID) (*entity.MembershipSnapshot, error)

	// CompareAndSwap stores the snapshot only if the stored row is still the one
	// the caller read: no row when expected is nil, otherwise a row recorded at
	// *expected. swapped is false when another writer got there first.
	CompareAndSwap(ctx context.Context, snapshot *entity.MembershipSnapshot, expected *time.Time) (swapped bool, err error)
}

// LocationHistoryRepository is the append-only log of received locations.
type LocationHistoryRepository interface {
	// Append adds one entry. Entries are never updated or deleted.
	Append(ctx context.Context, entry *entity.LocationHistoryEntry) error

	// ListByTourist returns the most recent entries first.
	ListByTourist(ctx context.Context, touristID uuid.UUID, limit int) ([]*entity.LocationHistoryEntry, error)
}
