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
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const defaultHistoryLimit = 100

// touristLocationRepository implements the repository.TouristLocationRepository interface.
type touristLocationRepository struct {
	db *gorm.DB
}

// NewTouristLocationRepository is the constructor for touristLocationRepository.
func NewTouristLocationRepository(db *gorm.DB) repository.TouristLocationRepository {
	return &touristLocationRepository{
		db: db,
	}
}

// Find returns the stored snapshot.
func (repo *touristLocationRepository) Find(ctx context.Context, touristID uuid.UUID) (*entity.MembershipSnapshot, error) {
	return repo.find(repo.db.WithContext(ctx), touristID)
}

// FindForUpdate returns the stored snapshot and holds its row lock until the transaction ends.
func (repo *touristLocationRepository) FindForUpdate(ctx context.Context, touristID uuid.UUID) (*entity.MembershipSnapshot, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}), touristID)
}

func (repo *touristLocationRepository) find(db *gorm.DB, touristID uuid.UUID) (*entity.MembershipSnapshot, error) {
	var locationM model.TouristLocationModel

	if err := db.Where("tourist_id = ?", touristID).Take(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find location snapshot")
	}

	return toSnapshotDomain(&locationM), nil
}

// CompareAndSwap inserts a tourist's first snapshot or replaces the one read
// under FindForUpdate. A concurrent first insert turns the insert into a no-op.
func (repo *touristLocationRepository) CompareAndSwap(ctx context.Context, snapshot *entity.MembershipSnapshot, expected *time.Time) (bool, error) {
	locationM := fromSnapshotDomain(snapshot)
	db := repo.db.WithContext(ctx)

	var result *gorm.DB
	if expected == nil {
		result = db.Clauses(clause.OnConflict{DoNothing: true}).Create(locationM)
	} else {
		result = db.Model(&model.TouristLocationModel{}).
			Where("tourist_id = ? AND recorded_at = ?", locationM.TouristID, *expected).
			Updates(map[string]any{
				"latitude":     locationM.Latitude,
				"longitude":    locationM.Longitude,
				"geofence_ids": locationM.GeofenceIDs,
				"recorded_at":  locationM.RecordedAt,
				"updated_at":   time.Now().UTC(),
			})
	}
	if result.Error != nil {
		return false, domainerrors.NewPersistenceError(result.Error, "failed to store location snapshot")
	}

	return result.RowsAffected > 0, nil
}

// locationHistoryRepository implements the repository.LocationHistoryRepository interface.
type locationHistoryRepository struct {
	db *gorm.DB
}

// NewLocationHistoryRepository is the constructor for locationHistoryRepository.
func NewLocationHistoryRepository(db *gorm.DB) repository.LocationHistoryRepository {
	return &locationHistoryRepository{
		db: db,
	}
}

// Append adds one history row.
func (repo *locationHistoryRepository) Append(ctx context.Context, entry *entity.LocationHistoryEntry) error {
	if err := repo.db.WithContext(ctx).Create(fromHistoryDomain(entry)).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to append location history")
	}

	return nil
}

// ListByTourist returns the most recent history rows first.
func (repo *locationHistoryRepository) ListByTourist(ctx context.Context, touristID uuid.UUID, limit int) ([]*entity.LocationHistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	var historyModels []*model.LocationHistoryModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", touristID).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&historyModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to list location history")
	}

	entries := make([]*entity.LocationHistoryEntry, 0, len(historyModels))
	for _, historyM := range historyModels {
		entries = append(entries, toHistoryDomain(historyM))
	}

	return entries, nil
}

// --- Mapper Functions ---

func toSnapshotDomain(data *model.TouristLocationModel) *entity.MembershipSnapshot {
	if data == nil {
		return nil
	}

	ids := make([]uuid.UUID, len(data.GeofenceIDs))
	copy(ids, data.GeofenceIDs)

	return &entity.MembershipSnapshot{
		TouristID:   data.TouristID,
		Coordinate:  entity.Coordinate{Latitude: data.Latitude, Longitude: data.Longitude},
		GeofenceIDs: ids,
		RecordedAt:  data.RecordedAt,
	}
}

func fromSnapshotDomain(data *entity.MembershipSnapshot) *model.TouristLocationModel {
	if data == nil {
		return nil
	}

	ids := data.GeofenceIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}

	return &model.TouristLocationModel{
		TouristID:   data.TouristID,
		Latitude:    data.Coordinate.Latitude,
		Longitude:   data.Coordinate.Longitude,
		GeofenceIDs: datatypes.JSONSlice[uuid.UUID](ids),
		RecordedAt:  data.RecordedAt,
	}
}

func toHistoryDomain(data *model.LocationHistoryModel) *entity.LocationHistoryEntry {
	if data == nil {
		return nil
	}

	return &entity.LocationHistoryEntry{
		ID:         data.ID,
		UserID:     data.UserID,
		Coordinate: entity.Coordinate{Latitude: data.Latitude, Longitude: data.Longitude},
		Accuracy:   data.Accuracy,
		Speed:      data.Speed,
		Heading:    data.Heading,
		RecordedAt: data.RecordedAt,
	}
}

func fromHistoryDomain(data *entity.LocationHistoryEntry) *model.LocationHistoryModel {
	if data == nil {
		return nil
	}

	return &model.LocationHistoryModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Latitude:   data.Coordinate.Latitude,
		Longitude:  data.Coordinate.Longitude,
		Accuracy:   data.Accuracy,
		Speed:      data.Speed,
		Heading:    data.Heading,
		RecordedAt: data.RecordedAt,
	}
}
