package geofence

import (
	"bytes"
	"slices"

	"tourguard/internal/domain/entity"

	"github.com/google/uuid"
)

// Evaluation is the outcome of evaluating one location update.
type Evaluation struct {
	TouristID    uuid.UUID
	Location     entity.Coordinate
	Containment  entity.Containment
	Entered      []*entity.Geofence
	Exited       []*entity.Geofence
	InSafeZone   bool
	InDangerZone bool
	// Membership is the id set of every fence containing Location, sorted by id.
	Membership []uuid.UUID
}

// EnteredUnsafe returns the unsafe fences among Entered.
func (e *Evaluation) EnteredUnsafe() []*entity.Geofence {
	var out []*entity.Geofence
	for _, fence := range e.Entered {
		if !fence.Safe {
			out = append(out, fence)
		}
	}

	return out
}

// Evaluator computes zone transitions from an index. It holds no per-tourist state.
type Evaluator struct {
	index *Index
}

// NewEvaluator creates an evaluator reading from index.
func NewEvaluator(index *Index) *Evaluator {
	return &Evaluator{index: index}
}

// Evaluate compares the fences containing point with the previous membership set.
// Entered lists safe fences before unsafe ones, each in containment order; Exited is ordered by id.
func (e *Evaluator) Evaluate(touristID uuid.UUID, point entity.Coordinate, previous []uuid.UUID) (*Evaluation, error) {
	containment, err := e.index.Containing(point)
	if err != nil {
		return nil, err
	}

	prev := make(map[uuid.UUID]struct{}, len(previous))
	for _, id := range previous {
		prev[id] = struct{}{}
	}

	current := containment.All()
	now := make(map[uuid.UUID]struct{}, len(current))
	entered := make([]*entity.Geofence, 0)
	for _, fence := range current {
		now[fence.ID] = struct{}{}
		if _, ok := prev[fence.ID]; !ok {
			entered = append(entered, fence)
		}
	}

	exitedIDs := make([]uuid.UUID, 0)
	for id := range prev {
		if _, ok := now[id]; !ok {
			exitedIDs = append(exitedIDs, id)
		}
	}
	sortIDs(exitedIDs)

	exited := make([]*entity.Geofence, 0, len(exitedIDs))
	for _, id := range exitedIDs {
		fence, ok := e.index.Get(id)
		if !ok {
			// Fence was removed entirely since the last update.
			fence = &entity.Geofence{ID: id}
		}
		exited = append(exited, fence)
	}

	membership := make([]uuid.UUID, 0, len(now))
	for id := range now {
		membership = append(membership, id)
	}
	sortIDs(membership)

	return &Evaluation{
		TouristID:    touristID,
		Location:     point,
		Containment:  containment,
		Entered:      entered,
		Exited:       exited,
		InSafeZone:   len(containment.Safe) > 0,
		InDangerZone: len(containment.Unsafe) > 0,
		Membership:   membership,
	}, nil
}

func sortIDs(ids []uuid.UUID) {
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
}
