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

var openIncidentStatuses = []string{
	string(entity.IncidentStatusPending),
	string(entity.IncidentStatusAcknowledged),
}

// incidentRepository implements the repository.IncidentRepository interface.
type incidentRepository struct {
	db *gorm.DB
}

// NewIncidentRepository is the constructor for incidentRepository.
func NewIncidentRepository(db *gorm.DB) repository.IncidentRepository {
	return &incidentRepository{
		db: db,
	}
}

// Create persists a new incident.
func (repo *incidentRepository) Create(ctx context.Context, incident *entity.Incident) error {
	incidentM := fromIncidentDomain(incident)

	if err := repo.db.WithContext(ctx).Create(incidentM).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to create incident")
	}

	return nil
}

// FindByID retrieves an incident without its alerts.
func (repo *incidentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Incident, error) {
	var incidentM model.IncidentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&incidentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIncidentNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find incident by ID")
	}

	return toIncidentDomain(&incidentM), nil
}

// List returns incidents newest first.
func (repo *incidentRepository) List(ctx context.Context, filter repository.IncidentFilter) ([]*entity.Incident, error) {
	var incidentModels []*model.IncidentModel

	query := repo.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if filter.TouristID != nil {
		query = query.Where("tourist_id = ?", *filter.TouristID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&incidentModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to list incidents")
	}

	incidents := make([]*entity.Incident, 0, len(incidentModels))
	for _, incidentM := range incidentModels {
		incidents = append(incidents, toIncidentDomain(incidentM))
	}

	return incidents, nil
}

// CompareAndSwapStatus updates the incident only while its stored status equals expected.
func (repo *incidentRepository) CompareAndSwapStatus(ctx context.Context, next *entity.Incident, expected entity.IncidentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IncidentModel{}).
		Where("id = ? AND status = ?", next.ID, string(expected)).
		Updates(map[string]any{
			"status":      string(next.Status),
			"assigned_to": next.AssignedTo,
			"resolved_at": next.ResolvedAt,
			"updated_at":  next.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to update incident status")
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.IncidentModel{}).
		Where("id = ?", next.ID).
		Count(&count).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to check incident existence")
	}
	if count == 0 {
		return repository.ErrIncidentNotFound
	}

	return repository.ErrStatusMismatch
}

// CountOpenByTourist counts the tourist's non-terminal incidents other than excludeID.
func (repo *incidentRepository) CountOpenByTourist(ctx context.Context, touristID, excludeID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.IncidentModel{}).
		Where("tourist_id = ? AND id <> ? AND status IN ?", touristID, excludeID, openIncidentStatuses).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewPersistenceError(err, "failed to count open incidents")
	}

	return count, nil
}

// --- Mapper Functions ---

func toIncidentDomain(data *model.IncidentModel) *entity.Incident {
	if data == nil {
		return nil
	}

	incident := &entity.Incident{
		ID:          data.ID,
		TouristID:   data.TouristID,
		Type:        entity.IncidentType(data.Type),
		Description: data.Description,
		Severity:    entity.Severity(data.Severity),
		Status:      entity.IncidentStatus(data.Status),
		AssignedTo:  data.AssignedTo,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		ResolvedAt:  data.ResolvedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		incident.Location = &entity.Coordinate{Latitude: *data.Latitude, Longitude: *data.Longitude}
	}

	return incident
}

func fromIncidentDomain(data *entity.Incident) *model.IncidentModel {
	if data == nil {
		return nil
	}

	incidentM := &model.IncidentModel{
		ID:          data.ID,
		TouristID:   data.TouristID,
		Type:        string(data.Type),
		Description: data.Description,
		Severity:    string(data.Severity),
		Status:      string(data.Status),
		AssignedTo:  data.AssignedTo,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		ResolvedAt:  data.ResolvedAt,
	}
	if data.Location != nil {
		lat, lng := data.Location.Latitude, data.Location.Longitude
		incidentM.Latitude = &lat
		incidentM.Longitude = &lng
	}

	return incidentM
}
