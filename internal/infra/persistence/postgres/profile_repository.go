package postgres

import (
	"context"
	"time"

	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"
	"tourguard/internal/domain/repository"
	"tourguard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByUserID retrieves a tourist profile.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.TouristProfile, error) {
	return repo.find(repo.db.WithContext(ctx), userID)
}

// FindForUpdate reads the profile from the primary and locks it.
func (repo *profileRepository) FindForUpdate(ctx context.Context, userID uuid.UUID) (*entity.TouristProfile, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}), userID)
}

func (repo *profileRepository) find(db *gorm.DB, userID uuid.UUID) (*entity.TouristProfile, error) {
	var profileM model.TouristProfileModel

	if err := db.Where("user_id = ?", userID).Take(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find tourist profile")
	}

	return &entity.TouristProfile{
		UserID:    profileM.UserID,
		Status:    entity.ProfileStatus(profileM.Status),
		UpdatedAt: profileM.UpdatedAt,
	}, nil
}

// SetStatus creates the profile row on first use.
func (repo *profileRepository) SetStatus(ctx context.Context, userID uuid.UUID, status entity.ProfileStatus) error {
	profileM := &model.TouristProfileModel{
		UserID:    userID,
		Status:    string(status),
		UpdatedAt: time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(profileM).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to set tourist profile status")
	}

	return nil
}
