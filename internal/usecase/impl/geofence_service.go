package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"tourguard/config"
	deliverycontext "tourguard/internal/delivery/context"
	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"
	"tourguard/internal/domain/geofence"
	"tourguard/internal/domain/repository"
	"tourguard/internal/domain/service"
	"tourguard/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

type geofenceService struct {
	geofenceRepo repository.GeofenceRepository
	cache        service.GeofenceSnapshotCache
	index        *geofence.Index
	logger       *slog.Logger
	cfg          *config.GeofenceConfig
	now          func() time.Time

	// version is the snapshot version the index was last loaded from.
	version atomic.Int64
}

// NewGeofenceService creates the geofence use case around the shared index.
func NewGeofenceService(
	geofenceRepo repository.GeofenceRepository,
	cache service.GeofenceSnapshotCache,
	index *geofence.Index,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.GeofenceUsecase {
	gc := cfg.Geofence
	if gc == nil {
		gc = &config.GeofenceConfig{NearbyDefaultMeters: 1000, NearbyMaxMeters: 50000}
	}

	return &geofenceService{
		geofenceRepo: geofenceRepo,
		cache:        cache,
		index:        index,
		logger:       logger,
		cfg:          gc,
		now:          time.Now,
	}
}

func (s *geofenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Create implements usecase.GeofenceUsecase.
func (s *geofenceService) Create(ctx context.Context, actor entity.Actor, in usecase.CreateGeofenceInput) (*entity.Geofence, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WithDetails("only admins may manage geofences")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domainerrors.ErrValidation.WithDetails("name is required")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate geofence id")
	}

	now := s.now().UTC()
	fence := &entity.Geofence{
		ID:           id,
		Name:         name,
		Description:  strings.TrimSpace(in.Description),
		Center:       in.Center,
		RadiusMeters: in.RadiusMeters,
		Safe:         in.Safe,
		Active:       true,
		CreatedBy:    actor.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := geofence.ValidateFence(fence); err != nil {
		return nil, err
	}

	if err := s.geofenceRepo.Create(ctx, fence); err != nil {
		return nil, errors.Wrap(err, "failed to create geofence")
	}

	s.applyLocally(ctx, fence)
	s.publishSnapshot(ctx)

	s.log(ctx).Info("Geofence created",
		slog.String("geofenceID", fence.ID.String()),
		slog.Bool("safe", fence.Safe),
		slog.Float64("radiusMeters", fence.RadiusMeters))

	return fence, nil
}

// Update implements usecase.GeofenceUsecase.
func (s *geofenceService) Update(ctx context.Context, actor entity.Actor, id uuid.UUID, in usecase.UpdateGeofenceInput) (*entity.Geofence, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WithDetails("only admins may manage geofences")
	}

	fence, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domainerrors.ErrValidation.WithDetails("name must not be empty")
		}
		fence.Name = name
	}
	if in.Description != nil {
		fence.Description = strings.TrimSpace(*in.Description)
	}
	if in.Center != nil {
		fence.Center = *in.Center
	}
	if in.RadiusMeters != nil {
		fence.RadiusMeters = *in.RadiusMeters
	}
	if in.Safe != nil {
		fence.Safe = *in.Safe
	}
	if in.Active != nil {
		fence.Active = *in.Active
	}
	fence.UpdatedAt = s.now().UTC()

	if err := geofence.ValidateFence(fence); err != nil {
		return nil, err
	}

	if err := s.geofenceRepo.Update(ctx, fence); err != nil {
		if errors.Is(err, repository.ErrGeofenceNotFound) {
			return nil, domainerrors.ErrGeofenceNotFound.WithDetailsf("geofence %s", id)
		}

		return nil, errors.Wrap(err, "failed to update geofence")
	}

	s.applyLocally(ctx, fence)
	s.publishSnapshot(ctx)

	s.log(ctx).Info("Geofence updated", slog.String("geofenceID", id.String()))

	return fence, nil
}

// Deactivate implements usecase.GeofenceUsecase.
func (s *geofenceService) Deactivate(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden.WithDetails("only admins may manage geofences")
	}

	err := s.geofenceRepo.SetActive(ctx, id, false)
	if errors.Is(err, repository.ErrGeofenceNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to deactivate geofence")
	}

	s.index.Deactivate(id)
	s.publishSnapshot(ctx)

	s.log(ctx).Info("Geofence deactivated", slog.String("geofenceID", id.String()))

	return nil
}

// List implements usecase.GeofenceUsecase.
func (s *geofenceService) List(ctx context.Context, includeInactive bool) ([]*entity.Geofence, error) {
	fences, err := s.geofenceRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list geofences")
	}

	return fences, nil
}

// Check implements usecase.GeofenceUsecase.
func (s *geofenceService) Check(_ context.Context, point entity.Coordinate, radiusMeters float64) (*usecase.GeofenceCheckResult, error) {
	if radiusMeters <= 0 || math.IsNaN(radiusMeters) {
		radiusMeters = s.cfg.NearbyDefaultMeters
	}
	if radiusMeters > s.cfg.NearbyMaxMeters {
		return nil, domainerrors.ErrValidation.WithDetailsf("radius must be at most %.0f meters", s.cfg.NearbyMaxMeters)
	}

	containment, err := s.index.Containing(point)
	if err != nil {
		return nil, err
	}
	nearby, err := s.index.Nearby(point, radiusMeters)
	if err != nil {
		return nil, err
	}

	return &usecase.GeofenceCheckResult{
		Point:      point,
		Safe:       containment.Safe,
		Unsafe:     containment.Unsafe,
		Nearby:     nearby,
		InSafeZone: len(containment.Safe) > 0,
		InDanger:   len(containment.Unsafe) > 0,
	}, nil
}

// GeoJSON implements usecase.GeofenceUsecase.
func (s *geofenceService) GeoJSON(ctx context.Context) (*geojson.FeatureCollection, error) {
	fences, err := s.geofenceRepo.List(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list geofences")
	}

	fc := geojson.NewFeatureCollection()
	for _, fence := range fences {
		feature := geojson.NewFeature(orb.Point{fence.Center.Longitude, fence.Center.Latitude})
		feature.ID = fence.ID.String()
		feature.Properties["name"] = fence.Name
		feature.Properties["radius_meters"] = fence.RadiusMeters
		feature.Properties["safe"] = fence.Safe
		if fence.Description != "" {
			feature.Properties["description"] = fence.Description
		}
		fc.Append(feature)
	}

	return fc, nil
}

// Refresh implements usecase.GeofenceUsecase. The shared snapshot is tried
// first; when it is missing or unreachable the index is rebuilt from storage.
func (s *geofenceService) Refresh(ctx context.Context) error {
	version, err := s.cache.Version(ctx)
	if err == nil && version != 0 && version == s.version.Load() {
		return nil
	}
	if err != nil {
		s.log(ctx).Warn("Geofence snapshot version unavailable", slog.Any("error", err))
	}

	if err == nil {
		fences, loadedVersion, ok, loadErr := s.cache.Load(ctx)
		if loadErr == nil && ok {
			s.replace(ctx, fences, loadedVersion)

			return nil
		}
		if loadErr != nil {
			s.log(ctx).Warn("Geofence snapshot load failed", slog.Any("error", loadErr))
		}
	}

	fences, err := s.geofenceRepo.List(ctx, true)
	if err != nil {
		return errors.Wrap(err, "failed to load geofences")
	}

	newVersion, storeErr := s.cache.Store(ctx, fences)
	if storeErr != nil {
		s.log(ctx).Warn("Geofence snapshot store failed", slog.Any("error", storeErr))
		newVersion = 0
	}
	s.replace(ctx, fences, newVersion)

	return nil
}

func (s *geofenceService) replace(ctx context.Context, fences []*entity.Geofence, version int64) {
	skipped := s.index.Replace(fences)
	for _, id := range skipped {
		s.log(ctx).Warn("Skipping invalid geofence", slog.String("geofenceID", id.String()))
	}
	s.version.Store(version)

	total, active := s.index.Len()
	s.log(ctx).Debug("Geofence index loaded",
		slog.Int("total", total),
		slog.Int("active", active),
		slog.Int64("version", version))
}

func (s *geofenceService) applyLocally(ctx context.Context, fence *entity.Geofence) {
	if err := s.index.Upsert(fence); err != nil {
		s.log(ctx).Error("Geofence rejected by index", slog.String("geofenceID", fence.ID.String()), slog.Any("error", err))
	}
}

// publishSnapshot stores the full fence set so other instances pick up the change.
func (s *geofenceService) publishSnapshot(ctx context.Context) {
	fences, err := s.geofenceRepo.List(ctx, true)
	if err != nil {
		s.log(ctx).Warn("Geofence snapshot not refreshed", slog.Any("error", err))

		return
	}

	version, err := s.cache.Store(ctx, fences)
	if err != nil {
		s.log(ctx).Warn("Geofence snapshot store failed", slog.Any("error", err))

		return
	}
	s.version.Store(version)
}

func (s *geofenceService) find(ctx context.Context, id uuid.UUID) (*entity.Geofence, error) {
	fence, err := s.geofenceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGeofenceNotFound) {
			return nil, domainerrors.ErrGeofenceNotFound.WithDetailsf("geofence %s", id)
		}

		return nil, errors.Wrap(err, "failed to find geofence")
	}

	return fence, nil
}
