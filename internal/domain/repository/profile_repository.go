package repository

import (
	"context"

	"tourguard/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileRepository defines the interface for tourist profile status persistence.
type ProfileRepository interface {
	// FindByUserID retrieves a profile, or ErrProfileNotFound.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.TouristProfile, error)

	// FindForUpdate is FindByUserID with a row lock held until the surrounding
	// transaction ends. Status decisions for one tourist serialize on it.
	FindForUpdate(ctx context.Context, userID uuid.UUID) (*entity.TouristProfile, error)

	// SetStatus creates the profile if needed and sets its status.
	SetStatus(ctx context.Context, userID uuid.UUID, status entity.ProfileStatus) error
}
