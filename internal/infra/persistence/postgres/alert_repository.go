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
	"gorm.io/plugin/dbresolver"
)

// alertRepository implements the repository.AlertRepository interface.
// The one-pending rule is enforced by the alerts_one_pending partial unique index.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// Create persists a new alert.
func (repo *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	alertM := fromAlertDomain(alert)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isUniqueConstraintViolation(err, model.AlertPendingIndex) {
			return repository.ErrDuplicatePendingAlert
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrIncidentNotFound
		}

		return domainerrors.NewPersistenceError(err, "failed to create alert")
	}

	return nil
}

// FindByID retrieves an alert by its ID.
func (repo *alertRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	var alertM model.AlertModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find alert by ID")
	}

	return toAlertDomain(&alertM), nil
}

// FindPending returns the pending alert for an incident and channel. It reads
// from the primary since it runs right after a losing insert.
func (repo *alertRepository) FindPending(ctx context.Context, incidentID uuid.UUID, channel entity.Channel) (*entity.Alert, error) {
	var alertM model.AlertModel

	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("incident_id = ? AND channel = ? AND status = ?", incidentID, string(channel), string(entity.AlertStatusPending)).
		Take(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find pending alert")
	}

	return toAlertDomain(&alertM), nil
}

// ListByIncident returns the incident's alerts oldest first.
func (repo *alertRepository) ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	if err := repo.db.WithContext(ctx).
		Where("incident_id = ?", incidentID).
		Order("created_at ASC, id ASC").
		Find(&alertModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to list alerts")
	}

	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

// CompareAndSwapStatus updates the alert only while its stored status equals expected.
func (repo *alertRepository) CompareAndSwapStatus(ctx context.Context, next *entity.Alert, expected entity.AlertStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ? AND status = ?", next.ID, string(expected)).
		Updates(map[string]any{
			"status":          string(next.Status),
			"detail":          next.Detail,
			"attempts":        next.Attempts,
			"sent_at":         next.SentAt,
			"acknowledged_at": next.AcknowledgedAt,
			"acknowledged_by": next.AcknowledgedBy,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error, model.AlertPendingIndex) {
			return repository.ErrDuplicatePendingAlert
		}

		return domainerrors.NewPersistenceError(result.Error, "failed to update alert status")
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ?", next.ID).
		Count(&count).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to check alert existence")
	}
	if count == 0 {
		return repository.ErrAlertNotFound
	}

	return repository.ErrStatusMismatch
}

// --- Mapper Functions ---

func toAlertDomain(data *model.AlertModel) *entity.Alert {
	if data == nil {
		return nil
	}

	return &entity.Alert{
		ID:               data.ID,
		IncidentID:       data.IncidentID,
		AuthorityContact: data.AuthorityContact,
		Message:          data.Message,
		Channel:          entity.Channel(data.Channel),
		Status:           entity.AlertStatus(data.Status),
		Detail:           data.Detail,
		Attempts:         data.Attempts,
		CreatedAt:        data.CreatedAt,
		SentAt:           data.SentAt,
		AcknowledgedAt:   data.AcknowledgedAt,
		AcknowledgedBy:   data.AcknowledgedBy,
	}
}

func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	if data == nil {
		return nil
	}

	return &model.AlertModel{
		ID:               data.ID,
		IncidentID:       data.IncidentID,
		AuthorityContact: data.AuthorityContact,
		Message:          data.Message,
		Channel:          string(data.Channel),
		Status:           string(data.Status),
		Detail:           data.Detail,
		Attempts:         data.Attempts,
		CreatedAt:        data.CreatedAt,
		SentAt:           data.SentAt,
		AcknowledgedAt:   data.AcknowledgedAt,
		AcknowledgedBy:   data.AcknowledgedBy,
	}
}
