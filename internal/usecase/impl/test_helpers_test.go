package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"tourguard/config"
	"tourguard/internal/domain/entity"
	"tourguard/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Notifier: &config.NotifierConfig{Timeout: time.Second},
		Dispatch: &config.DispatchConfig{
			ChannelBySeverity: map[string]string{"critical": "call"},
			Contacts:          map[string]string{"call": "+911123456789"},
			DefaultChannel:    "push",
			DefaultContact:    "emergency@tourism.gov.in",
		},
		Geofence: &config.GeofenceConfig{
			RefreshInterval:     time.Minute,
			NearbyDefaultMeters: 1000,
			NearbyMaxMeters:     50000,
		},
	}
}

// memoryAlertRepository enforces the one-pending-per-incident-and-channel rule
// the way the partial unique index does in Postgres.
type memoryAlertRepository struct {
	mu         sync.Mutex
	alerts     map[uuid.UUID]*entity.Alert
	maxPending int
}

func newMemoryAlertRepository() *memoryAlertRepository {
	return &memoryAlertRepository{alerts: make(map[uuid.UUID]*entity.Alert)}
}

func (r *memoryAlertRepository) Create(_ context.Context, alert *entity.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if alert.Status == entity.AlertStatusPending && r.pendingLocked(alert.IncidentID, alert.Channel) != nil {
		return repository.ErrDuplicatePendingAlert
	}
	stored := *alert
	r.alerts[alert.ID] = &stored
	r.trackLocked()

	return nil
}

func (r *memoryAlertRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	alert, ok := r.alerts[id]
	if !ok {
		return nil, repository.ErrAlertNotFound
	}
	clone := *alert

	return &clone, nil
}

func (r *memoryAlertRepository) FindPending(_ context.Context, incidentID uuid.UUID, channel entity.Channel) (*entity.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	alert := r.pendingLocked(incidentID, channel)
	if alert == nil {
		return nil, repository.ErrAlertNotFound
	}
	clone := *alert

	return &clone, nil
}

func (r *memoryAlertRepository) ListByIncident(_ context.Context, incidentID uuid.UUID) ([]*entity.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Alert
	for _, a := range r.alerts {
		if a.IncidentID == incidentID {
			clone := *a
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *memoryAlertRepository) CompareAndSwapStatus(_ context.Context, next *entity.Alert, expected entity.AlertStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.alerts[next.ID]
	if !ok || stored.Status != expected {
		return repository.ErrStatusMismatch
	}
	if next.Status == entity.AlertStatusPending && expected != entity.AlertStatusPending {
		if r.pendingLocked(next.IncidentID, next.Channel) != nil {
			return repository.ErrDuplicatePendingAlert
		}
	}
	clone := *next
	r.alerts[next.ID] = &clone
	r.trackLocked()

	return nil
}

func (r *memoryAlertRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.alerts)
}

func (r *memoryAlertRepository) pendingLocked(incidentID uuid.UUID, channel entity.Channel) *entity.Alert {
	for _, a := range r.alerts {
		if a.IncidentID == incidentID && a.Channel == channel && a.Status == entity.AlertStatusPending {
			return a
		}
	}

	return nil
}

func (r *memoryAlertRepository) trackLocked() {
	pending := make(map[string]int)
	for _, a := range r.alerts {
		if a.Status == entity.AlertStatusPending {
			key := a.IncidentID.String() + string(a.Channel)
			pending[key]++
			r.maxPending = max(r.maxPending, pending[key])
		}
	}
}

// blockingNotifier holds every Send until release is closed.
type blockingNotifier struct {
	entered chan struct{}
	release chan struct{}
	mu      sync.Mutex
	calls   int
	err     error
}

func newBlockingNotifier() *blockingNotifier {
	return &blockingNotifier{
		entered: make(chan struct{}, 16),
		release: make(chan struct{}),
	}
}

func (n *blockingNotifier) Send(ctx context.Context, _ string, channel entity.Channel, _ string) (string, error) {
	n.mu.Lock()
	n.calls++
	n.mu.Unlock()

	n.entered <- struct{}{}
	select {
	case <-n.release:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	if n.err != nil {
		return "", n.err
	}

	return "delivered via " + string(channel), nil
}

func (n *blockingNotifier) callCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.calls
}

type nopBroadcaster struct{}

func (nopBroadcaster) Publish(context.Context, *entity.BroadcastEvent) error {
	return nil
}

func (nopBroadcaster) Close() error {
	return nil
}
