package impl

import (
	"context"
	"testing"

	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"
	"tourguard/internal/domain/geofence"
	"tourguard/internal/domain/repository"
	mockRepo "tourguard/internal/mocks/repository"
	mockSvc "tourguard/internal/mocks/service"
	"tourguard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testAdmin    = entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	testTourist  = entity.Actor{UserID: uuid.New(), Role: entity.RoleTourist}
	gandhiMaidan = entity.Coordinate{Latitude: 25.6110, Longitude: 85.1440}
)

func newTestGeofenceService(t *testing.T) (usecase.GeofenceUsecase, *geofence.Index, *mockRepo.MockGeofenceRepository, *mockSvc.MockGeofenceSnapshotCache) {
	t.Helper()

	repo := mockRepo.NewMockGeofenceRepository(t)
	cache := mockSvc.NewMockGeofenceSnapshotCache(t)
	index := geofence.NewIndex()

	return NewGeofenceService(repo, cache, index, newTestConfig(), newDiscardLogger()), index, repo, cache
}

func TestGeofenceService_Create(t *testing.T) {
	svc, index, repo, cache := newTestGeofenceService(t)
	ctx := context.Background()

	var stored *entity.Geofence
	repo.EXPECT().Create(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fence *entity.Geofence) error {
			stored = fence
			return nil
		}).Once()
	repo.EXPECT().List(ctx, true).
		RunAndReturn(func(context.Context, bool) ([]*entity.Geofence, error) {
			return []*entity.Geofence{stored}, nil
		}).Once()
	cache.EXPECT().Store(ctx, mock.Anything).Return(int64(1), nil).Once()

	fence, err := svc.Create(ctx, testAdmin, usecase.CreateGeofenceInput{
		Name:         "  Gandhi Maidan  ",
		Center:       gandhiMaidan,
		RadiusMeters: 400,
		Safe:         true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Gandhi Maidan", fence.Name)
	assert.True(t, fence.Active)
	assert.Equal(t, testAdmin.UserID, fence.CreatedBy)
	assert.NotEqual(t, uuid.Nil, fence.ID)

	result, err := svc.Check(ctx, gandhiMaidan, 0)
	require.NoError(t, err)
	assert.True(t, result.InSafeZone)
	assert.False(t, result.InDanger)
	require.Len(t, result.Safe, 1)
	assert.Equal(t, fence.ID, result.Safe[0].ID)

	total, active := index.Len()
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, active)
}

func TestGeofenceService_CreateRejects(t *testing.T) {
	tests := []struct {
		name  string
		actor entity.Actor
		in    usecase.CreateGeofenceInput
		want  error
	}{
		{
			name:  "tourist",
			actor: testTourist,
			in:    usecase.CreateGeofenceInput{Name: "x", Center: gandhiMaidan, RadiusMeters: 10},
			want:  domainerrors.ErrForbidden,
		},
		{
			name:  "blank name",
			actor: testAdmin,
			in:    usecase.CreateGeofenceInput{Name: " ", Center: gandhiMaidan, RadiusMeters: 10},
			want:  domainerrors.ErrValidation,
		},
		{
			name:  "zero radius",
			actor: testAdmin,
			in:    usecase.CreateGeofenceInput{Name: "x", Center: gandhiMaidan},
			want:  domainerrors.ErrValidation,
		},
		{
			name:  "center out of range",
			actor: testAdmin,
			in:    usecase.CreateGeofenceInput{Name: "x", Center: entity.Coordinate{Latitude: 91}, RadiusMeters: 10},
			want:  domainerrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, repo, _ := newTestGeofenceService(t)

			_, err := svc.Create(context.Background(), tt.actor, tt.in)
			assert.ErrorIs(t, err, tt.want)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestGeofenceService_UpdateFlipsSafety(t *testing.T) {
	svc, index, repo, cache := newTestGeofenceService(t)
	ctx := context.Background()

	existing := &entity.Geofence{
		ID:           uuid.New(),
		Name:         "Ghat",
		Center:       gandhiMaidan,
		RadiusMeters: 200,
		Safe:         true,
		Active:       true,
	}
	require.NoError(t, index.Upsert(existing))

	repo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil).Once()
	repo.EXPECT().Update(ctx, mock.MatchedBy(func(f *entity.Geofence) bool { return !f.Safe })).Return(nil).Once()
	repo.EXPECT().List(ctx, true).Return(nil, errors.New("db down")).Once()

	unsafe := false
	_, err := svc.Update(ctx, testAdmin, existing.ID, usecase.UpdateGeofenceInput{Safe: &unsafe})
	require.NoError(t, err, "snapshot failures do not fail the update")

	containment, err := index.Containing(gandhiMaidan)
	require.NoError(t, err)
	assert.Empty(t, containment.Safe)
	require.Len(t, containment.Unsafe, 1)
	cache.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestGeofenceService_UpdateNotFound(t *testing.T) {
	svc, _, repo, _ := newTestGeofenceService(t)
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrGeofenceNotFound).Once()

	_, err := svc.Update(ctx, testAdmin, id, usecase.UpdateGeofenceInput{})
	assert.ErrorIs(t, err, domainerrors.ErrGeofenceNotFound)
}

func TestGeofenceService_Deactivate(t *testing.T) {
	svc, index, repo, cache := newTestGeofenceService(t)
	ctx := context.Background()

	fence := &entity.Geofence{ID: uuid.New(), Center: gandhiMaidan, RadiusMeters: 100, Active: true}
	require.NoError(t, index.Upsert(fence))

	repo.EXPECT().SetActive(ctx, fence.ID, false).Return(nil).Once()
	repo.EXPECT().List(ctx, true).Return([]*entity.Geofence{fence}, nil).Once()
	cache.EXPECT().Store(ctx, mock.Anything).Return(int64(2), nil).Once()

	require.NoError(t, svc.Deactivate(ctx, testAdmin, fence.ID))

	containment, err := index.Containing(gandhiMaidan)
	require.NoError(t, err)
	assert.Empty(t, containment.All())

	got, ok := index.Get(fence.ID)
	require.True(t, ok)
	assert.False(t, got.Active)
}

func TestGeofenceService_DeactivateUnknownIsNoOp(t *testing.T) {
	svc, _, repo, _ := newTestGeofenceService(t)
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().SetActive(ctx, id, false).Return(repository.ErrGeofenceNotFound).Once()

	assert.NoError(t, svc.Deactivate(ctx, testAdmin, id))
}

func TestGeofenceService_CheckRadiusLimit(t *testing.T) {
	svc, _, _, _ := newTestGeofenceService(t)

	_, err := svc.Check(context.Background(), gandhiMaidan, 50001)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = svc.Check(context.Background(), entity.Coordinate{Latitude: -100}, 100)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestGeofenceService_RefreshFromSnapshot(t *testing.T) {
	svc, index, _, cache := newTestGeofenceService(t)
	ctx := context.Background()

	fences := []*entity.Geofence{
		{ID: uuid.New(), Center: gandhiMaidan, RadiusMeters: 100, Active: true},
		{ID: uuid.New(), Center: gandhiMaidan, RadiusMeters: -1, Active: true},
	}
	cache.EXPECT().Version(ctx).Return(int64(7), nil).Twice()
	cache.EXPECT().Load(ctx).Return(fences, int64(7), true, nil).Once()

	require.NoError(t, svc.Refresh(ctx))
	total, _ := index.Len()
	assert.Equal(t, 1, total, "invalid fences are skipped")

	// Same version: nothing reloaded.
	require.NoError(t, svc.Refresh(ctx))
}

func TestGeofenceService_RefreshFallsBackToStorage(t *testing.T) {
	svc, index, repo, cache := newTestGeofenceService(t)
	ctx := context.Background()

	fences := []*entity.Geofence{{ID: uuid.New(), Center: gandhiMaidan, RadiusMeters: 100, Active: true}}
	cache.EXPECT().Version(ctx).Return(int64(0), errors.New("redis unavailable")).Once()
	repo.EXPECT().List(ctx, true).Return(fences, nil).Once()
	cache.EXPECT().Store(ctx, fences).Return(int64(0), errors.New("redis unavailable")).Once()

	require.NoError(t, svc.Refresh(ctx))
	_, active := index.Len()
	assert.Equal(t, 1, active)
}

func TestGeofenceService_RefreshStorageFailure(t *testing.T) {
	svc, _, repo, cache := newTestGeofenceService(t)
	ctx := context.Background()

	cache.EXPECT().Version(ctx).Return(int64(0), nil).Once()
	cache.EXPECT().Load(ctx).Return(nil, 0, false, nil).Once()
	repo.EXPECT().List(ctx, true).Return(nil, errors.New("db down")).Once()

	assert.Error(t, svc.Refresh(ctx))
}

func TestGeofenceService_GeoJSON(t *testing.T) {
	svc, _, repo, _ := newTestGeofenceService(t)
	ctx := context.Background()

	fence := &entity.Geofence{
		ID:           uuid.New(),
		Name:         "Old Market",
		Center:       entity.Coordinate{Latitude: 25.6, Longitude: 85.1},
		RadiusMeters: 250,
		Safe:         false,
		Active:       true,
	}
	repo.EXPECT().List(ctx, false).Return([]*entity.Geofence{fence}, nil).Once()

	fc, err := svc.GeoJSON(ctx)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	feature := fc.Features[0]
	assert.Equal(t, fence.ID.String(), feature.ID)
	assert.Equal(t, 85.1, feature.Point().X())
	assert.Equal(t, 25.6, feature.Point().Y())
	assert.Equal(t, "Old Market", feature.Properties["name"])
	assert.Equal(t, false, feature.Properties["safe"])
	assert.Equal(t, 250.0, feature.Properties["radius_meters"])
	assert.NotContains(t, feature.Properties, "description")
}
