package incident

import (
	"testing"
	"time"

	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin   = entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	tourist = entity.Actor{UserID: uuid.New(), Role: entity.RoleTourist}
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func newPending(t *testing.T, m *Machine, severity entity.Severity) *entity.Incident {
	t.Helper()
	inc, _, err := m.Create(CreateInput{
		TouristID: uuid.New(),
		Type:      entity.IncidentTypeTheft,
		Severity:  severity,
	})
	require.NoError(t, err)

	return inc
}

func TestMachine_Create(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	m := NewMachine(fixedClock(now))
	touristID := uuid.New()
	loc := &entity.Coordinate{Latitude: 15.4909, Longitude: 73.8278}

	inc, req, err := m.Create(CreateInput{
		TouristID:   touristID,
		Type:        entity.IncidentTypeMedical,
		Description: "fell on the beach",
		Location:    loc,
		Severity:    entity.SeverityHigh,
	})
	require.NoError(t, err)
	assert.Nil(t, req)
	assert.NotEqual(t, uuid.Nil, inc.ID)
	assert.Equal(t, touristID, inc.TouristID)
	assert.Equal(t, entity.IncidentStatusPending, inc.Status)
	assert.Equal(t, now, inc.CreatedAt)
	assert.Nil(t, inc.ResolvedAt)
	require.NotNil(t, inc.Location)
	assert.Equal(t, *loc, *inc.Location)

	loc.Latitude = 0
	assert.InDelta(t, 15.4909, inc.Location.Latitude, 0)
}

func TestMachine_Create_CriticalEmitsDispatch(t *testing.T) {
	t.Parallel()
	m := NewMachine(nil)

	inc, req, err := m.Create(CreateInput{
		TouristID: uuid.New(),
		Type:      entity.IncidentTypeEmergency,
		Severity:  entity.SeverityCritical,
	})
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, inc.ID, req.IncidentID)
	assert.Equal(t, inc.TouristID, req.TouristID)
	assert.Equal(t, entity.SeverityCritical, req.Severity)
	assert.Equal(t, ReasonCriticalCreated, req.Reason)
}

func TestMachine_Create_Validation(t *testing.T) {
	t.Parallel()
	m := NewMachine(nil)

	tests := []struct {
		name string
		in   CreateInput
	}{
		{
			name: "unknown type",
			in:   CreateInput{TouristID: uuid.New(), Type: "location_drop", Severity: entity.SeverityLow},
		},
		{
			name: "unknown severity",
			in:   CreateInput{TouristID: uuid.New(), Type: entity.IncidentTypeLost, Severity: "urgent"},
		},
		{
			name: "missing tourist",
			in:   CreateInput{Type: entity.IncidentTypeLost, Severity: entity.SeverityLow},
		},
		{
			name: "bad coordinate",
			in: CreateInput{
				TouristID: uuid.New(),
				Type:      entity.IncidentTypeLost,
				Severity:  entity.SeverityLow,
				Location:  &entity.Coordinate{Latitude: -91},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			inc, req, err := m.Create(tt.in)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)
			assert.Nil(t, inc)
			assert.Nil(t, req)
		})
	}
}

func TestMachine_Transition_Legality(t *testing.T) {
	t.Parallel()
	statuses := []entity.IncidentStatus{
		entity.IncidentStatusPending,
		entity.IncidentStatusAcknowledged,
		entity.IncidentStatusResolved,
		entity.IncidentStatusFalseAlarm,
	}
	legal := map[[2]entity.IncidentStatus]bool{
		{entity.IncidentStatusPending, entity.IncidentStatusAcknowledged}:    true,
		{entity.IncidentStatusPending, entity.IncidentStatusResolved}:        true,
		{entity.IncidentStatusPending, entity.IncidentStatusFalseAlarm}:      true,
		{entity.IncidentStatusAcknowledged, entity.IncidentStatusResolved}:   true,
		{entity.IncidentStatusAcknowledged, entity.IncidentStatusFalseAlarm}: true,
	}
	m := NewMachine(nil)

	for _, from := range statuses {
		for _, to := range statuses {
			if from == to {
				continue
			}
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				t.Parallel()
				inc := newPending(t, m, entity.SeverityLow)
				inc.Status = from

				next, out, err := m.Transition(inc, to, admin)
				if legal[[2]entity.IncidentStatus{from, to}] {
					require.NoError(t, err)
					assert.Equal(t, to, next.Status)
					assert.True(t, out.Changed)
				} else {
					assert.ErrorIs(t, err, domainerrors.ErrIllegalTransition)
					assert.Nil(t, next)
					assert.False(t, out.Changed)
				}
				assert.Equal(t, from, inc.Status, "input incident must not change")
			})
		}
	}
}

func TestMachine_Transition_TerminalSetsResolvedAt(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewMachine(fixedClock(now))

	for _, terminal := range []entity.IncidentStatus{entity.IncidentStatusResolved, entity.IncidentStatusFalseAlarm} {
		inc := newPending(t, m, entity.SeverityMedium)

		next, out, err := m.Transition(inc, terminal, admin)
		require.NoError(t, err)
		require.NotNil(t, next.ResolvedAt)
		assert.Equal(t, now, *next.ResolvedAt)
		assert.True(t, out.RevertProfile)
		assert.Nil(t, out.Dispatch, "terminal transitions never dispatch")
		assert.Nil(t, inc.ResolvedAt)
	}
}

func TestMachine_Transition_AcknowledgeDispatches(t *testing.T) {
	t.Parallel()
	m := NewMachine(nil)
	inc := newPending(t, m, entity.SeverityHigh)

	next, out, err := m.Transition(inc, entity.IncidentStatusAcknowledged, admin)
	require.NoError(t, err)
	require.NotNil(t, out.Dispatch)
	assert.Equal(t, inc.ID, out.Dispatch.IncidentID)
	assert.Equal(t, ReasonAcknowledged, out.Dispatch.Reason)
	assert.False(t, out.RevertProfile)
	assert.Nil(t, next.ResolvedAt)

	resolved, out, err := m.Transition(next, entity.IncidentStatusResolved, admin)
	require.NoError(t, err)
	assert.Nil(t, out.Dispatch)
	assert.True(t, out.RevertProfile)
	assert.Equal(t, entity.IncidentStatusResolved, resolved.Status)
}

func TestMachine_Transition_SameStatusIsNoOp(t *testing.T) {
	t.Parallel()
	m := NewMachine(nil)
	inc := newPending(t, m, entity.SeverityCritical)

	next, out, err := m.Transition(inc, entity.IncidentStatusPending, admin)
	require.NoError(t, err)
	assert.Same(t, inc, next)
	assert.Equal(t, Outcome{}, out)
}

func TestMachine_Transition_RequiresAdmin(t *testing.T) {
	t.Parallel()
	m := NewMachine(nil)
	inc := newPending(t, m, entity.SeverityLow)

	next, _, err := m.Transition(inc, entity.IncidentStatusResolved, tourist)
	assert.ErrorIs(t, err, domainerrors.ErrIllegalTransition)
	assert.Nil(t, next)
	assert.Equal(t, entity.IncidentStatusPending, inc.Status)
}

func TestMachine_Transition_UnknownStatus(t *testing.T) {
	t.Parallel()
	m := NewMachine(nil)
	inc := newPending(t, m, entity.SeverityLow)

	_, _, err := m.Transition(inc, "closed", admin)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}
