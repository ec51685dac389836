package geofence

import (
	"testing"

	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluator_DangerZoneEntry(t *testing.T) {
	idx := NewIndex()
	f1 := newFence("F1", entity.Coordinate{Latitude: 25.5941, Longitude: 85.1376}, 500, false)
	require.NoError(t, idx.Upsert(f1))

	evaluator := NewEvaluator(idx)
	tourist := uuid.New()

	got, err := evaluator.Evaluate(tourist, entity.Coordinate{Latitude: 25.5943, Longitude: 85.1377}, nil)
	require.NoError(t, err)

	assert.Equal(t, tourist, got.TouristID)
	assert.Equal(t, []uuid.UUID{f1.ID}, fenceIDs(got.Containment.Unsafe))
	assert.Empty(t, got.Containment.Safe)
	assert.True(t, got.InDangerZone)
	assert.False(t, got.InSafeZone)
	assert.Equal(t, []uuid.UUID{f1.ID}, fenceIDs(got.Entered))
	assert.Equal(t, []uuid.UUID{f1.ID}, fenceIDs(got.EnteredUnsafe()))
	assert.Empty(t, got.Exited)
	assert.Equal(t, []uuid.UUID{f1.ID}, got.Membership)
}

func TestEvaluator_SecondUpdateInsideDoesNotReEnter(t *testing.T) {
	idx := NewIndex()
	f1 := newFence("F1", entity.Coordinate{Latitude: 25.5941, Longitude: 85.1376}, 500, false)
	require.NoError(t, idx.Upsert(f1))
	evaluator := NewEvaluator(idx)
	tourist := uuid.New()

	first, err := evaluator.Evaluate(tourist, entity.Coordinate{Latitude: 25.5943, Longitude: 85.1377}, nil)
	require.NoError(t, err)

	second, err := evaluator.Evaluate(tourist, entity.Coordinate{Latitude: 25.5942, Longitude: 85.1378}, first.Membership)
	require.NoError(t, err)
	assert.Empty(t, second.Entered)
	assert.Empty(t, second.Exited)
	assert.True(t, second.InDangerZone)
	assert.Equal(t, first.Membership, second.Membership)
}

func TestEvaluator_MembershipDiff(t *testing.T) {
	idx := NewIndex()
	origin := entity.Coordinate{Latitude: 40.7128, Longitude: -74.0060}

	a := newFence("A", origin, 300, true)
	b := newFence("B", destination(origin, 90, 400), 300, false)
	c := newFence("C", destination(origin, 90, 800), 300, true)
	for _, f := range []*entity.Geofence{a, b, c} {
		require.NoError(t, idx.Upsert(f))
	}
	evaluator := NewEvaluator(idx)
	tourist := uuid.New()

	// Inside A and B.
	p1 := destination(origin, 90, 200)
	m1, err := evaluator.Evaluate(tourist, p1, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, m1.Membership)
	assert.True(t, m1.InSafeZone)
	assert.True(t, m1.InDangerZone)

	// Inside B and C.
	p2 := destination(origin, 90, 600)
	m2, err := evaluator.Evaluate(tourist, p2, m1.Membership)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{b.ID, c.ID}, m2.Membership)
	assert.Equal(t, []uuid.UUID{c.ID}, fenceIDs(m2.Entered))
	assert.Equal(t, []uuid.UUID{a.ID}, fenceIDs(m2.Exited))
	assert.Empty(t, m2.EnteredUnsafe())
}

func TestEvaluator_ExitFromRemovedFence(t *testing.T) {
	idx := NewIndex()
	evaluator := NewEvaluator(idx)
	gone := uuid.New()

	got, err := evaluator.Evaluate(uuid.New(), entity.Coordinate{Latitude: 1, Longitude: 1}, []uuid.UUID{gone})
	require.NoError(t, err)
	require.Len(t, got.Exited, 1)
	assert.Equal(t, gone, got.Exited[0].ID)
	assert.Empty(t, got.Membership)
	assert.False(t, got.InSafeZone)
	assert.False(t, got.InDangerZone)
}

func TestEvaluator_DeactivatedFenceIsExited(t *testing.T) {
	idx := NewIndex()
	point := entity.Coordinate{Latitude: 1, Longitude: 1}
	f := newFence("f", point, 100, false)
	require.NoError(t, idx.Upsert(f))
	evaluator := NewEvaluator(idx)

	first, err := evaluator.Evaluate(uuid.New(), point, nil)
	require.NoError(t, err)

	idx.Deactivate(f.ID)
	second, err := evaluator.Evaluate(uuid.New(), point, first.Membership)
	require.NoError(t, err)
	require.Len(t, second.Exited, 1)
	assert.Equal(t, "f", second.Exited[0].Name)
	assert.False(t, second.Exited[0].Active)
}

func TestEvaluator_InvalidPoint(t *testing.T) {
	evaluator := NewEvaluator(NewIndex())
	_, err := evaluator.Evaluate(uuid.New(), entity.Coordinate{Latitude: 0, Longitude: 200}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}
