package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"tourguard/internal/domain/constants"
	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"
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

func newDispatchInput(incidentID uuid.UUID, channel entity.Channel) usecase.DispatchInput {
	return usecase.DispatchInput{
		IncidentID: incidentID,
		Channel:    channel,
		Message:    "ALERT: HIGH incident",
		Contact:    "emergency@tourism.gov.in",
	}
}

func TestAlertDispatcher_Dispatch_Sent(t *testing.T) {
	repo := newMemoryAlertRepository()
	notifier := mockSvc.NewMockNotifier(t)
	broadcaster := mockSvc.NewMockBroadcaster(t)
	dispatcher := NewAlertDispatcher(repo, notifier, broadcaster, newTestConfig(), newDiscardLogger())

	ctx := context.Background()
	incidentID := uuid.New()

	notifier.EXPECT().
		Send(mock.Anything, "emergency@tourism.gov.in", entity.ChannelSMS, "ALERT: HIGH incident").
		Return("queued:42", nil).
		Once()
	broadcaster.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *entity.BroadcastEvent) bool {
			return e.Topic == constants.TopicAlerts && e.Event == constants.EventAlertSent
		})).
		Return(nil).
		Once()

	alert, err := dispatcher.Dispatch(ctx, newDispatchInput(incidentID, entity.ChannelSMS))
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusSent, alert.Status)
	assert.Equal(t, "queued:42", alert.Detail)
	assert.NotNil(t, alert.SentAt)
	assert.Equal(t, 1, alert.Attempts)

	stored, err := repo.FindByID(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusSent, stored.Status)
}

func TestAlertDispatcher_Dispatch_NotifierFailureIsNotAnError(t *testing.T) {
	repo := newMemoryAlertRepository()
	notifier := mockSvc.NewMockNotifier(t)
	broadcaster := mockSvc.NewMockBroadcaster(t)
	dispatcher := NewAlertDispatcher(repo, notifier, broadcaster, newTestConfig(), newDiscardLogger())

	ctx := context.Background()

	notifier.EXPECT().
		Send(mock.Anything, mock.Anything, entity.ChannelPush, mock.Anything).
		Return("", errors.New("gateway unavailable")).
		Once()
	broadcaster.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *entity.BroadcastEvent) bool { return e.Event == constants.EventAlertFailed })).
		Return(errors.New("broker down")).
		Once()

	alert, err := dispatcher.Dispatch(ctx, newDispatchInput(uuid.New(), entity.ChannelPush))
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusFailed, alert.Status)
	assert.Equal(t, "gateway unavailable", alert.Detail)
	assert.Nil(t, alert.SentAt)
}

func TestAlertDispatcher_Dispatch_ReturnsExistingPending(t *testing.T) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	notifier := mockSvc.NewMockNotifier(t)
	dispatcher := NewAlertDispatcher(alertRepo, notifier, nopBroadcaster{}, newTestConfig(), newDiscardLogger())

	ctx := context.Background()
	pending := &entity.Alert{
		ID:         uuid.New(),
		IncidentID: uuid.New(),
		Channel:    entity.ChannelCall,
		Status:     entity.AlertStatusPending,
	}

	alertRepo.EXPECT().FindPending(ctx, pending.IncidentID, entity.ChannelCall).Return(pending, nil).Once()

	got, err := dispatcher.Dispatch(ctx, newDispatchInput(pending.IncidentID, entity.ChannelCall))
	require.NoError(t, err)
	assert.Same(t, pending, got)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAlertDispatcher_Dispatch_PersistenceFailureSkipsNotifier(t *testing.T) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	notifier := mockSvc.NewMockNotifier(t)
	dispatcher := NewAlertDispatcher(alertRepo, notifier, nopBroadcaster{}, newTestConfig(), newDiscardLogger())

	ctx := context.Background()
	incidentID := uuid.New()

	alertRepo.EXPECT().FindPending(ctx, incidentID, entity.ChannelSMS).Return(nil, repository.ErrAlertNotFound).Once()
	alertRepo.EXPECT().Create(ctx, mock.Anything).
		Return(domainerrors.NewPersistenceError(errors.New("connection reset"), "failed to create alert")).
		Once()

	got, err := dispatcher.Dispatch(ctx, newDispatchInput(incidentID, entity.ChannelSMS))
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrPersistence)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAlertDispatcher_Dispatch_LostInsertRaceReturnsWinner(t *testing.T) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	notifier := mockSvc.NewMockNotifier(t)
	dispatcher := NewAlertDispatcher(alertRepo, notifier, nopBroadcaster{}, newTestConfig(), newDiscardLogger())

	ctx := context.Background()
	incidentID := uuid.New()
	winner := &entity.Alert{ID: uuid.New(), IncidentID: incidentID, Channel: entity.ChannelSMS, Status: entity.AlertStatusPending}

	alertRepo.EXPECT().FindPending(ctx, incidentID, entity.ChannelSMS).Return(nil, repository.ErrAlertNotFound).Once()
	alertRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicatePendingAlert).Once()
	alertRepo.EXPECT().FindPending(ctx, incidentID, entity.ChannelSMS).Return(winner, nil).Once()

	got, err := dispatcher.Dispatch(ctx, newDispatchInput(incidentID, entity.ChannelSMS))
	require.NoError(t, err)
	assert.Equal(t, winner.ID, got.ID)
}

func newOutcomeRetryDispatcher(t *testing.T) (usecase.AlertUsecase, *mockRepo.MockAlertRepository, *mockSvc.MockNotifier) {
	t.Helper()

	alertRepo := mockRepo.NewMockAlertRepository(t)
	notifier := mockSvc.NewMockNotifier(t)
	dispatcher := NewAlertDispatcher(alertRepo, notifier, nopBroadcaster{}, newTestConfig(), newDiscardLogger())
	dispatcher.(*alertDispatcher).outcomeBackoff = 0

	return dispatcher, alertRepo, notifier
}

func TestAlertDispatcher_Dispatch_RetriesOutcomeWrite(t *testing.T) {
	dispatcher, alertRepo, notifier := newOutcomeRetryDispatcher(t)
	ctx := context.Background()
	incidentID := uuid.New()

	alertRepo.EXPECT().FindPending(ctx, incidentID, entity.ChannelSMS).Return(nil, repository.ErrAlertNotFound).Once()
	alertRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
	notifier.EXPECT().Send(mock.Anything, mock.Anything, entity.ChannelSMS, mock.Anything).Return("SM123", nil).Once()
	alertRepo.EXPECT().CompareAndSwapStatus(mock.Anything, mock.Anything, entity.AlertStatusPending).
		Return(domainerrors.NewPersistenceError(errors.New("connection reset"), "failed to update alert")).Once()
	alertRepo.EXPECT().CompareAndSwapStatus(mock.Anything, mock.MatchedBy(func(a *entity.Alert) bool {
		return a.Status == entity.AlertStatusSent
	}), entity.AlertStatusPending).Return(nil).Once()

	got, err := dispatcher.Dispatch(ctx, newDispatchInput(incidentID, entity.ChannelSMS))
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusSent, got.Status)
	assert.Equal(t, "SM123", got.Detail)
}

func TestAlertDispatcher_Dispatch_OutcomeWriteGivesUp(t *testing.T) {
	dispatcher, alertRepo, notifier := newOutcomeRetryDispatcher(t)
	ctx := context.Background()
	incidentID := uuid.New()

	alertRepo.EXPECT().FindPending(ctx, incidentID, entity.ChannelSMS).Return(nil, repository.ErrAlertNotFound).Once()
	alertRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
	notifier.EXPECT().Send(mock.Anything, mock.Anything, entity.ChannelSMS, mock.Anything).Return("", errors.New("gateway down")).Once()
	alertRepo.EXPECT().CompareAndSwapStatus(mock.Anything, mock.Anything, entity.AlertStatusPending).
		Return(domainerrors.NewPersistenceError(errors.New("connection refused"), "failed to update alert")).
		Times(maxOutcomeAttempts)

	got, err := dispatcher.Dispatch(ctx, newDispatchInput(incidentID, entity.ChannelSMS))
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrPersistence)
}

func TestAlertDispatcher_Dispatch_OutcomeCommittedDespiteError(t *testing.T) {
	dispatcher, alertRepo, notifier := newOutcomeRetryDispatcher(t)
	ctx := context.Background()
	incidentID := uuid.New()

	var created *entity.Alert
	alertRepo.EXPECT().FindPending(ctx, incidentID, entity.ChannelSMS).Return(nil, repository.ErrAlertNotFound).Once()
	alertRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, a *entity.Alert) { created = a }).
		Return(nil).Once()
	notifier.EXPECT().Send(mock.Anything, mock.Anything, entity.ChannelSMS, mock.Anything).Return("SM123", nil).Once()
	// The first write commits but its acknowledgement is lost.
	alertRepo.EXPECT().CompareAndSwapStatus(mock.Anything, mock.Anything, entity.AlertStatusPending).
		Return(domainerrors.NewPersistenceError(errors.New("unexpected EOF"), "failed to update alert")).Once()
	alertRepo.EXPECT().CompareAndSwapStatus(mock.Anything, mock.Anything, entity.AlertStatusPending).
		Return(repository.ErrStatusMismatch).Once()
	alertRepo.EXPECT().FindByID(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Alert, error) {
			stored := *created
			stored.Status = entity.AlertStatusSent
			stored.Detail = "SM123"

			return &stored, nil
		}).Once()

	got, err := dispatcher.Dispatch(ctx, newDispatchInput(incidentID, entity.ChannelSMS))
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusSent, got.Status)
	assert.Equal(t, created.ID, got.ID)
}

func TestAlertDispatcher_Dispatch_Validation(t *testing.T) {
	dispatcher := NewAlertDispatcher(mockRepo.NewMockAlertRepository(t), mockSvc.NewMockNotifier(t), nopBroadcaster{}, newTestConfig(), newDiscardLogger())

	tests := []struct {
		name string
		in   usecase.DispatchInput
	}{
		{name: "missing incident", in: newDispatchInput(uuid.Nil, entity.ChannelSMS)},
		{name: "unknown channel", in: newDispatchInput(uuid.New(), "pager")},
		{name: "missing contact", in: usecase.DispatchInput{IncidentID: uuid.New(), Channel: entity.ChannelSMS, Message: "m"}},
		{name: "missing message", in: usecase.DispatchInput{IncidentID: uuid.New(), Channel: entity.ChannelSMS, Contact: "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dispatcher.Dispatch(context.Background(), tt.in)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)
		})
	}
}

// Two overlapping dispatches for the same pair produce one row and the same id.
func TestAlertDispatcher_Dispatch_ConcurrentCallsShareOneAlert(t *testing.T) {
	repo := newMemoryAlertRepository()
	notifier := newBlockingNotifier()
	dispatcher := NewAlertDispatcher(repo, notifier, nopBroadcaster{}, newTestConfig(), newDiscardLogger())

	ctx := context.Background()
	incidentID := uuid.New()

	first := make(chan *entity.Alert, 1)
	go func() {
		alert, err := dispatcher.Dispatch(ctx, newDispatchInput(incidentID, entity.ChannelSMS))
		assert.NoError(t, err)
		first <- alert
	}()

	select {
	case <-notifier.entered:
	case <-time.After(5 * time.Second):
		t.Fatal("notifier was not called")
	}

	second, err := dispatcher.Dispatch(ctx, newDispatchInput(incidentID, entity.ChannelSMS))
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusPending, second.Status)

	close(notifier.release)
	winner := <-first

	assert.Equal(t, winner.ID, second.ID)
	assert.Equal(t, entity.AlertStatusSent, winner.Status)
	assert.Equal(t, 1, repo.count())
	assert.Equal(t, 1, notifier.callCount())
}

func TestAlertDispatcher_Dispatch_ManyConcurrentCallsKeepOnePending(t *testing.T) {
	repo := newMemoryAlertRepository()
	notifier := newBlockingNotifier()
	dispatcher := NewAlertDispatcher(repo, notifier, nopBroadcaster{}, newTestConfig(), newDiscardLogger())

	ctx := context.Background()
	incidentID := uuid.New()
	const callers = 16

	results := make(chan *entity.Alert, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			alert, err := dispatcher.Dispatch(ctx, newDispatchInput(incidentID, entity.ChannelPush))
			assert.NoError(t, err)
			results <- alert
		}()
	}

	// Every caller except the one holding the notifier returns the pending alert.
	ids := make(map[uuid.UUID]int)
	<-notifier.entered
	for i := 0; i < callers-1; i++ {
		alert := <-results
		ids[alert.ID]++
	}
	close(notifier.release)
	wg.Wait()
	close(results)
	for alert := range results {
		ids[alert.ID]++
	}

	assert.Len(t, ids, 1)
	assert.Equal(t, 1, repo.count())
	assert.Equal(t, 1, repo.maxPending)
	assert.Equal(t, 1, notifier.callCount())
}

func TestAlertDispatcher_Acknowledge(t *testing.T) {
	repo := newMemoryAlertRepository()
	dispatcher := NewAlertDispatcher(repo, mockSvc.NewMockNotifier(t), nopBroadcaster{}, newTestConfig(), newDiscardLogger())
	ctx := context.Background()
	admin := entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}

	sent := &entity.Alert{ID: uuid.New(), IncidentID: uuid.New(), Channel: entity.ChannelSMS, Status: entity.AlertStatusSent}
	require.NoError(t, repo.Create(ctx, sent))

	got, err := dispatcher.Acknowledge(ctx, sent.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusAcknowledged, got.Status)
	require.NotNil(t, got.AcknowledgedAt)
	require.NotNil(t, got.AcknowledgedBy)
	assert.Equal(t, admin.UserID, *got.AcknowledgedBy)

	_, err = dispatcher.Acknowledge(ctx, sent.ID, admin)
	assert.ErrorIs(t, err, domainerrors.ErrIllegalTransition)
}

func TestAlertDispatcher_Acknowledge_Rules(t *testing.T) {
	repo := newMemoryAlertRepository()
	dispatcher := NewAlertDispatcher(repo, mockSvc.NewMockNotifier(t), nopBroadcaster{}, newTestConfig(), newDiscardLogger())
	ctx := context.Background()
	admin := entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}

	failed := &entity.Alert{ID: uuid.New(), IncidentID: uuid.New(), Channel: entity.ChannelSMS, Status: entity.AlertStatusFailed}
	require.NoError(t, repo.Create(ctx, failed))

	_, err := dispatcher.Acknowledge(ctx, failed.ID, admin)
	assert.ErrorIs(t, err, domainerrors.ErrIllegalTransition)

	_, err = dispatcher.Acknowledge(ctx, failed.ID, entity.Actor{UserID: uuid.New(), Role: entity.RoleTourist})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = dispatcher.Acknowledge(ctx, uuid.New(), admin)
	assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
}

func TestAlertDispatcher_Retry(t *testing.T) {
	repo := newMemoryAlertRepository()
	notifier := mockSvc.NewMockNotifier(t)
	dispatcher := NewAlertDispatcher(repo, notifier, nopBroadcaster{}, newTestConfig(), newDiscardLogger())
	ctx := context.Background()

	failed := &entity.Alert{
		ID:               uuid.New(),
		IncidentID:       uuid.New(),
		Channel:          entity.ChannelEmail,
		AuthorityContact: "ops@example.org",
		Message:          "ALERT",
		Status:           entity.AlertStatusFailed,
		Detail:           "timeout",
		Attempts:         1,
	}
	require.NoError(t, repo.Create(ctx, failed))

	notifier.EXPECT().Send(mock.Anything, "ops@example.org", entity.ChannelEmail, "ALERT").Return("250 OK", nil).Once()

	got, err := dispatcher.Retry(ctx, failed.ID)
	require.NoError(t, err)
	assert.Equal(t, failed.ID, got.ID)
	assert.Equal(t, entity.AlertStatusSent, got.Status)
	assert.Equal(t, 2, got.Attempts)
	assert.Equal(t, "250 OK", got.Detail)

	_, err = dispatcher.Retry(ctx, failed.ID)
	assert.ErrorIs(t, err, domainerrors.ErrIllegalTransition)
}

func TestAlertDispatcher_Retry_YieldsToPendingAlert(t *testing.T) {
	repo := newMemoryAlertRepository()
	notifier := mockSvc.NewMockNotifier(t)
	dispatcher := NewAlertDispatcher(repo, notifier, nopBroadcaster{}, newTestConfig(), newDiscardLogger())
	ctx := context.Background()
	incidentID := uuid.New()

	failed := &entity.Alert{ID: uuid.New(), IncidentID: incidentID, Channel: entity.ChannelSMS, Status: entity.AlertStatusFailed}
	pending := &entity.Alert{ID: uuid.New(), IncidentID: incidentID, Channel: entity.ChannelSMS, Status: entity.AlertStatusPending}
	require.NoError(t, repo.Create(ctx, failed))
	require.NoError(t, repo.Create(ctx, pending))

	got, err := dispatcher.Retry(ctx, failed.ID)
	require.NoError(t, err)
	assert.Equal(t, pending.ID, got.ID)

	stored, err := repo.FindByID(ctx, failed.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusFailed, stored.Status)
	assert.Equal(t, 1, repo.maxPending)
}
