package geofence

import (
	"bytes"
	"cmp"
	"math"
	"slices"
	"sync"

	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"

	"github.com/dhconnelly/rtreego"
	"github.com/google/uuid"
)

const (
	rtreeDimensions  = 2
	rtreeMinChildren = 25
	rtreeMaxChildren = 50

	// distanceTieMeters treats two distances as equal for ordering purposes.
	distanceTieMeters = 1e-6
)

// fenceItem is the rtree entry for one active fence.
type fenceItem struct {
	fence *entity.Geofence
	rect  *rtreego.Rect
}

func (f *fenceItem) Bounds() *rtreego.Rect {
	return f.rect
}

// Index is a concurrency-safe collection of geofences.
// Active fences are kept in an R-tree of their bounding boxes; every hit is
// confirmed with the haversine distance, so the tree only narrows the scan.
type Index struct {
	mu     sync.RWMutex
	fences map[uuid.UUID]*entity.Geofence
	items  map[uuid.UUID]*fenceItem
	tree   *rtreego.Rtree
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		fences: make(map[uuid.UUID]*entity.Geofence),
		items:  make(map[uuid.UUID]*fenceItem),
		tree:   rtreego.NewTree(rtreeDimensions, rtreeMinChildren, rtreeMaxChildren),
	}
}

// ValidateFence checks the invariants every stored fence must satisfy.
func ValidateFence(fence *entity.Geofence) error {
	if fence == nil {
		return domainerrors.ErrValidation.WithDetails("geofence is required")
	}
	if fence.ID == uuid.Nil {
		return domainerrors.ErrValidation.WithDetails("geofence id is required")
	}
	if !fence.Center.IsValid() {
		return domainerrors.ErrValidation.WithDetailsf("geofence center out of range: (%f, %f)", fence.Center.Latitude, fence.Center.Longitude)
	}
	if math.IsNaN(fence.RadiusMeters) || math.IsInf(fence.RadiusMeters, 0) || fence.RadiusMeters <= 0 {
		return domainerrors.ErrValidation.WithDetailsf("radius_meters must be > 0, got %v", fence.RadiusMeters)
	}

	return nil
}

// Upsert inserts or replaces a fence by id.
func (idx *Index) Upsert(fence *entity.Geofence) error {
	if err := ValidateFence(fence); err != nil {
		return err
	}

	stored := *fence

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.removeLocked(stored.ID)
	idx.fences[stored.ID] = &stored
	if stored.Active {
		idx.insertLocked(&stored)
	}

	return nil
}

// Deactivate marks a fence inactive. Unknown ids are ignored.
func (idx *Index) Deactivate(id uuid.UUID) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	fence, ok := idx.fences[id]
	if !ok {
		return
	}

	idx.removeLocked(id)
	updated := *fence
	updated.Active = false
	idx.fences[id] = &updated
}

// Replace swaps the whole content of the index, used when a fresh snapshot is loaded.
// Invalid fences are skipped and returned so the caller can report them.
func (idx *Index) Replace(fences []*entity.Geofence) (skipped []uuid.UUID) {
	nextFences := make(map[uuid.UUID]*entity.Geofence, len(fences))
	nextItems := make(map[uuid.UUID]*fenceItem, len(fences))
	spatials := make([]rtreego.Spatial, 0, len(fences))

	for _, fence := range fences {
		if err := ValidateFence(fence); err != nil {
			if fence != nil {
				skipped = append(skipped, fence.ID)
			}

			continue
		}

		stored := *fence
		nextFences[stored.ID] = &stored
		if stored.Active {
			item := newFenceItem(&stored)
			nextItems[stored.ID] = item
			spatials = append(spatials, item)
		}
	}

	tree := rtreego.NewTree(rtreeDimensions, rtreeMinChildren, rtreeMaxChildren)
	for _, item := range spatials {
		tree.Insert(item)
	}

	idx.mu.Lock()
	idx.fences = nextFences
	idx.items = nextItems
	idx.tree = tree
	idx.mu.Unlock()

	return skipped
}

// Get returns a copy of the fence with the given id, active or not.
func (idx *Index) Get(id uuid.UUID) (*entity.Geofence, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	fence, ok := idx.fences[id]
	if !ok {
		return nil, false
	}
	clone := *fence

	return &clone, true
}

// Len returns the number of stored fences and how many of them are active.
func (idx *Index) Len() (total, active int) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.fences), len(idx.items)
}

// Containing returns every active fence whose circle contains point, split by
// the safe flag. Each list is ordered by ascending distance to the fence center,
// ties (within 1e-6 m) broken by ascending id.
func (idx *Index) Containing(point entity.Coordinate) (entity.Containment, error) {
	if !point.IsValid() {
		return entity.Containment{}, domainerrors.ErrValidation.WithDetailsf("coordinate out of range: (%f, %f)", point.Latitude, point.Longitude)
	}

	matches := idx.search(point, 0, func(m entity.GeofenceMatch) bool { return m.IsInside })
	sortMatches(matches, func(m entity.GeofenceMatch) float64 { return m.DistanceMeters })

	result := entity.Containment{
		Safe:   []*entity.Geofence{},
		Unsafe: []*entity.Geofence{},
	}
	for _, m := range matches {
		if m.Fence.Safe {
			result.Safe = append(result.Safe, m.Fence)
		} else {
			result.Unsafe = append(result.Unsafe, m.Fence)
		}
	}

	return result, nil
}

// Nearby returns every active fence whose edge is within maxDistanceMeters of
// point, sorted by ascending distance to the edge. Fences containing the point
// have a negative edge distance and therefore come first.
func (idx *Index) Nearby(point entity.Coordinate, maxDistanceMeters float64) ([]entity.GeofenceMatch, error) {
	if !point.IsValid() {
		return nil, domainerrors.ErrValidation.WithDetailsf("coordinate out of range: (%f, %f)", point.Latitude, point.Longitude)
	}
	if math.IsNaN(maxDistanceMeters) {
		return nil, domainerrors.ErrValidation.WithDetails("max distance must be a number")
	}

	edge := func(m entity.GeofenceMatch) float64 { return m.DistanceMeters - m.Fence.RadiusMeters }
	matches := idx.search(point, maxDistanceMeters, func(m entity.GeofenceMatch) bool {
		return edge(m) <= maxDistanceMeters
	})
	sortMatches(matches, edge)

	return matches, nil
}

// search collects the active fences whose box may lie within reach of point and keeps those accepted by keep.
func (idx *Index) search(point entity.Coordinate, reachMeters float64, keep func(entity.GeofenceMatch) bool) []entity.GeofenceMatch {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var candidates []rtreego.Spatial
	if math.IsInf(reachMeters, 1) {
		candidates = make([]rtreego.Spatial, 0, len(idx.items))
		for _, item := range idx.items {
			candidates = append(candidates, item)
		}
	} else {
		candidates = idx.tree.SearchIntersect(toRect(boundAround(point, reachMeters)))
	}

	matches := make([]entity.GeofenceMatch, 0, len(candidates))
	for _, candidate := range candidates {
		item, ok := candidate.(*fenceItem)
		if !ok {
			continue
		}

		distance := HaversineMeters(point, item.fence.Center)
		clone := *item.fence
		match := entity.GeofenceMatch{
			Fence:          &clone,
			DistanceMeters: distance,
			IsInside:       distance <= clone.RadiusMeters,
		}
		if keep(match) {
			matches = append(matches, match)
		}
	}

	return matches
}

func (idx *Index) insertLocked(fence *entity.Geofence) {
	item := newFenceItem(fence)
	idx.items[fence.ID] = item
	idx.tree.Insert(item)
}

func (idx *Index) removeLocked(id uuid.UUID) {
	item, ok := idx.items[id]
	if !ok {
		return
	}
	idx.tree.Delete(item)
	delete(idx.items, id)
}

func newFenceItem(fence *entity.Geofence) *fenceItem {
	return &fenceItem{
		fence: fence,
		rect:  toRect(boundAround(fence.Center, fence.RadiusMeters)),
	}
}

func sortMatches(matches []entity.GeofenceMatch, key func(entity.GeofenceMatch) float64) {
	slices.SortStableFunc(matches, func(a, b entity.GeofenceMatch) int {
		ka, kb := key(a), key(b)
		if math.Abs(ka-kb) > distanceTieMeters {
			return cmp.Compare(ka, kb)
		}

		return bytes.Compare(a.Fence.ID[:], b.Fence.ID[:])
	})
}
