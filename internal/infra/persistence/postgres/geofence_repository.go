package postgres

import (
	"context"

	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"
	"tourguard/internal/domain/repository"
	"tourguard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// geofenceRepository implements the repository.GeofenceRepository interface.
type geofenceRepository struct {
	db *gorm.DB
}

// NewGeofenceRepository is the constructor for geofenceRepository.
func NewGeofenceRepository(db *gorm.DB) repository.GeofenceRepository {
	return &geofenceRepository{
		db: db,
	}
}

// Create persists a new geofence.
func (repo *geofenceRepository) Create(ctx context.Context, fence *entity.Geofence) error {
	fenceM := fromGeofenceDomain(fence)

	if err := repo.db.WithContext(ctx).Create(fenceM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidation.WithDetails("geofence violates a table constraint")
		}

		return domainerrors.NewPersistenceError(err, "failed to create geofence")
	}

	fence.CreatedAt = fenceM.CreatedAt
	fence.UpdatedAt = fenceM.UpdatedAt

	return nil
}

// Update overwrites the mutable columns of an existing geofence.
func (repo *geofenceRepository) Update(ctx context.Context, fence *entity.Geofence) error {
	fenceM := fromGeofenceDomain(fence)

	result := repo.db.WithContext(ctx).
		Model(&model.GeofenceModel{}).
		Where("id = ?", fence.ID).
		Select("name", "description", "latitude", "longitude", "radius_meters", "is_safe", "is_active", "updated_at").
		Updates(fenceM)
	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to update geofence")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGeofenceNotFound
	}

	return nil
}

// FindByID retrieves a geofence by its ID, active or not.
func (repo *geofenceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Geofence, error) {
	var fenceM model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&fenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGeofenceNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find geofence by ID")
	}

	return toGeofenceDomain(&fenceM), nil
}

// List returns geofences oldest first.
func (repo *geofenceRepository) List(ctx context.Context, includeInactive bool) ([]*entity.Geofence, error) {
	var fenceModels []*model.GeofenceModel

	query := repo.db.WithContext(ctx).Order("created_at ASC, id ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&fenceModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to list geofences")
	}

	fences := make([]*entity.Geofence, 0, len(fenceModels))
	for _, fenceM := range fenceModels {
		fences = append(fences, toGeofenceDomain(fenceM))
	}

	return fences, nil
}

// SetActive flips the active flag.
func (repo *geofenceRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GeofenceModel{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to update geofence state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGeofenceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toGeofenceDomain(data *model.GeofenceModel) *entity.Geofence {
	if data == nil {
		return nil
	}

	return &entity.Geofence{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Center:       entity.Coordinate{Latitude: data.Latitude, Longitude: data.Longitude},
		RadiusMeters: data.RadiusMeters,
		Safe:         data.IsSafe,
		Active:       data.IsActive,
		CreatedBy:    data.CreatedBy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromGeofenceDomain(data *entity.Geofence) *model.GeofenceModel {
	if data == nil {
		return nil
	}

	return &model.GeofenceModel{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Latitude:     data.Center.Latitude,
		Longitude:    data.Center.Longitude,
		RadiusMeters: data.RadiusMeters,
		IsSafe:       data.Safe,
		IsActive:     data.Active,
		CreatedBy:    data.CreatedBy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
