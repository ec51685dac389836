package geofence

import (
	"bytes"
	"math"
	"math/rand/v2"
	"slices"
	"sort"
	"sync"
	"testing"

	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Upsert_Validation(t *testing.T) {
	idx := NewIndex()
	center := entity.Coordinate{Latitude: 12.97, Longitude: 77.59}

	tests := []struct {
		name  string
		fence *entity.Geofence
	}{
		{name: "nil fence", fence: nil},
		{name: "zero radius", fence: newFence("a", center, 0, true)},
		{name: "negative radius", fence: newFence("a", center, -5, true)},
		{name: "NaN radius", fence: newFence("a", center, math.NaN(), true)},
		{name: "latitude out of range", fence: newFence("a", entity.Coordinate{Latitude: 91, Longitude: 0}, 10, true)},
		{name: "longitude out of range", fence: newFence("a", entity.Coordinate{Latitude: 0, Longitude: -181}, 10, true)},
		{name: "missing id", fence: &entity.Geofence{Center: center, RadiusMeters: 10, Active: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := idx.Upsert(tt.fence)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)

			total, _ := idx.Len()
			assert.Zero(t, total)
		})
	}
}

func TestIndex_Upsert_ReplacesByID(t *testing.T) {
	idx := NewIndex()
	point := entity.Coordinate{Latitude: 12.97, Longitude: 77.59}
	fence := newFence("market", point, 100, true)
	require.NoError(t, idx.Upsert(fence))

	moved := *fence
	moved.Center = entity.Coordinate{Latitude: 13.5, Longitude: 78}
	require.NoError(t, idx.Upsert(&moved))

	got, err := idx.Containing(point)
	require.NoError(t, err)
	assert.Empty(t, got.Safe)

	got, err = idx.Containing(moved.Center)
	require.NoError(t, err)
	require.Len(t, got.Safe, 1)
	assert.Equal(t, fence.ID, got.Safe[0].ID)

	total, active := idx.Len()
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, active)
}

func TestIndex_Upsert_CopiesInput(t *testing.T) {
	idx := NewIndex()
	point := entity.Coordinate{Latitude: 1, Longitude: 1}
	fence := newFence("a", point, 100, true)
	require.NoError(t, idx.Upsert(fence))

	fence.RadiusMeters = -1
	fence.Safe = false

	got, err := idx.Containing(point)
	require.NoError(t, err)
	require.Len(t, got.Safe, 1)
	assert.InDelta(t, 100, got.Safe[0].RadiusMeters, 0)
}

func TestIndex_Deactivate(t *testing.T) {
	idx := NewIndex()
	point := entity.Coordinate{Latitude: 1, Longitude: 1}
	fence := newFence("a", point, 100, false)
	require.NoError(t, idx.Upsert(fence))

	idx.Deactivate(fence.ID)
	idx.Deactivate(fence.ID)
	idx.Deactivate(uuid.New())

	got, err := idx.Containing(point)
	require.NoError(t, err)
	assert.Empty(t, got.Unsafe)

	stored, ok := idx.Get(fence.ID)
	require.True(t, ok)
	assert.False(t, stored.Active)

	nearby, err := idx.Nearby(point, 1000)
	require.NoError(t, err)
	assert.Empty(t, nearby)
}

func TestIndex_Containing_SplitAndOrder(t *testing.T) {
	idx := NewIndex()
	point := entity.Coordinate{Latitude: 28.6139, Longitude: 77.2090}

	near := newFence("near", destination(point, 0, 10), 500, true)
	far := newFence("far", destination(point, 90, 200), 500, true)
	danger := newFence("danger", destination(point, 180, 50), 100, false)
	outside := newFence("outside", destination(point, 270, 1000), 100, false)

	for _, f := range []*entity.Geofence{far, danger, outside, near} {
		require.NoError(t, idx.Upsert(f))
	}

	got, err := idx.Containing(point)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{near.ID, far.ID}, fenceIDs(got.Safe))
	assert.Equal(t, []uuid.UUID{danger.ID}, fenceIDs(got.Unsafe))
}

func TestIndex_Containing_TiesBrokenByID(t *testing.T) {
	idx := NewIndex()
	point := entity.Coordinate{Latitude: 0, Longitude: 0}

	fences := make([]*entity.Geofence, 5)
	for i := range fences {
		fences[i] = newFence("same", point, 100, true)
		require.NoError(t, idx.Upsert(fences[i]))
	}

	got, err := idx.Containing(point)
	require.NoError(t, err)

	expected := fenceIDs(fences)
	slices.SortFunc(expected, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	assert.Equal(t, expected, fenceIDs(got.Safe))
}

func TestIndex_Containing_InvalidPoint(t *testing.T) {
	idx := NewIndex()
	_, err := idx.Containing(entity.Coordinate{Latitude: 100, Longitude: 0})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestIndex_Containing_AcrossAntimeridian(t *testing.T) {
	idx := NewIndex()
	fence := newFence("dateline", entity.Coordinate{Latitude: 0, Longitude: 179.999}, 1000, false)
	require.NoError(t, idx.Upsert(fence))

	got, err := idx.Containing(entity.Coordinate{Latitude: 0, Longitude: -179.999})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{fence.ID}, fenceIDs(got.Unsafe))
}

func TestIndex_Nearby(t *testing.T) {
	idx := NewIndex()
	point := entity.Coordinate{Latitude: 48.8584, Longitude: 2.2945}

	inside := newFence("inside", point, 300, true)
	closeBy := newFence("close", destination(point, 45, 600), 200, false)
	tooFar := newFence("too far", destination(point, 90, 5000), 200, true)
	for _, f := range []*entity.Geofence{tooFar, closeBy, inside} {
		require.NoError(t, idx.Upsert(f))
	}

	got, err := idx.Nearby(point, 500)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, inside.ID, got[0].Fence.ID)
	assert.True(t, got[0].IsInside)
	assert.InDelta(t, 0, got[0].DistanceMeters, 1e-6)

	assert.Equal(t, closeBy.ID, got[1].Fence.ID)
	assert.False(t, got[1].IsInside)
	assert.InDelta(t, 600, got[1].DistanceMeters, 0.5)
}

// The index must give the same answers as a linear scan over all fences.
func TestIndex_MatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	idx := NewIndex()
	origin := entity.Coordinate{Latitude: 27.1751, Longitude: 78.0421}

	var fences []*entity.Geofence
	for i := 0; i < 300; i++ {
		center := destination(origin, rng.Float64()*360, rng.Float64()*20000)
		f := newFence("f", center, 50+rng.Float64()*3000, rng.IntN(2) == 0)
		if rng.IntN(10) == 0 {
			f.Active = false
		}
		fences = append(fences, f)
		require.NoError(t, idx.Upsert(f))
	}

	for i := 0; i < 200; i++ {
		point := destination(origin, rng.Float64()*360, rng.Float64()*25000)

		var wantSafe, wantUnsafe []uuid.UUID
		var wantNearby []uuid.UUID
		for _, f := range fences {
			if !f.Active {
				continue
			}
			if IsInside(point, f) {
				if f.Safe {
					wantSafe = append(wantSafe, f.ID)
				} else {
					wantUnsafe = append(wantUnsafe, f.ID)
				}
			}
			if DistanceToEdge(point, f) <= 1500 {
				wantNearby = append(wantNearby, f.ID)
			}
		}

		got, err := idx.Containing(point)
		require.NoError(t, err)
		assert.ElementsMatch(t, wantSafe, fenceIDs(got.Safe))
		assert.ElementsMatch(t, wantUnsafe, fenceIDs(got.Unsafe))
		assertSortedByDistance(t, point, got.Safe)
		assertSortedByDistance(t, point, got.Unsafe)

		nearby, err := idx.Nearby(point, 1500)
		require.NoError(t, err)
		gotNearby := make([]uuid.UUID, 0, len(nearby))
		for _, m := range nearby {
			gotNearby = append(gotNearby, m.Fence.ID)
		}
		assert.ElementsMatch(t, wantNearby, gotNearby)
		assert.True(t, sort.SliceIsSorted(nearby, func(a, b int) bool {
			return nearby[a].DistanceMeters-nearby[a].Fence.RadiusMeters < nearby[b].DistanceMeters-nearby[b].Fence.RadiusMeters-distanceTieMeters
		}))
	}
}

func TestIndex_Replace(t *testing.T) {
	idx := NewIndex()
	point := entity.Coordinate{Latitude: 1, Longitude: 1}
	old := newFence("old", point, 100, true)
	require.NoError(t, idx.Upsert(old))

	fresh := newFence("fresh", point, 100, false)
	bad := newFence("bad", point, 0, false)
	skipped := idx.Replace([]*entity.Geofence{fresh, bad, nil})
	assert.Equal(t, []uuid.UUID{bad.ID}, skipped)

	got, err := idx.Containing(point)
	require.NoError(t, err)
	assert.Empty(t, got.Safe)
	assert.Equal(t, []uuid.UUID{fresh.ID}, fenceIDs(got.Unsafe))

	_, ok := idx.Get(old.ID)
	assert.False(t, ok)
}

func TestIndex_ConcurrentAccess(t *testing.T) {
	idx := NewIndex()
	point := entity.Coordinate{Latitude: 1, Longitude: 1}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				f := newFence("w", destination(point, float64(j), 10), 100, j%2 == 0)
				_ = idx.Upsert(f)
				if j%3 == 0 {
					idx.Deactivate(f.ID)
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = idx.Containing(point)
				_, _ = idx.Nearby(point, 100)
			}
		}()
	}
	wg.Wait()

	total, active := idx.Len()
	assert.Equal(t, 400, total)
	assert.Less(t, active, total)
}

func assertSortedByDistance(t *testing.T, point entity.Coordinate, fences []*entity.Geofence) {
	t.Helper()
	for i := 1; i < len(fences); i++ {
		prev := HaversineMeters(point, fences[i-1].Center)
		cur := HaversineMeters(point, fences[i].Center)
		assert.LessOrEqual(t, prev, cur+distanceTieMeters)
	}
}
