package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tourguard/config"
	deliverycontext "tourguard/internal/delivery/context"
	"tourguard/internal/domain/constants"
	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"
	"tourguard/internal/domain/repository"
	"tourguard/internal/domain/service"
	"tourguard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// maxCreateAttempts bounds the insert loop when a conflicting pending alert
// disappears between the failed insert and the re-read.
const maxCreateAttempts = 3

// maxOutcomeAttempts bounds writes of a delivery outcome. A notification has
// already gone out by then, so a transient database error must not leave the
// alert pending.
const maxOutcomeAttempts = 3

const defaultOutcomeBackoff = 100 * time.Millisecond

type alertDispatcher struct {
	alertRepo     repository.AlertRepository
	notifier      service.Notifier
	broadcaster   service.Broadcaster
	logger        *slog.Logger
	notifyTimeout time.Duration
	// outcomeBackoff is multiplied by the attempt number between outcome writes.
	outcomeBackoff time.Duration
	now            func() time.Time
}

// NewAlertDispatcher creates the alert use case.
func NewAlertDispatcher(
	alertRepo repository.AlertRepository,
	notifier service.Notifier,
	broadcaster service.Broadcaster,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AlertUsecase {
	timeout := 10 * time.Second
	if cfg.Notifier != nil && cfg.Notifier.Timeout > 0 {
		timeout = cfg.Notifier.Timeout
	}

	return &alertDispatcher{
		alertRepo:     alertRepo,
		notifier:      notifier,
		broadcaster:   broadcaster,
		logger:        logger,
		notifyTimeout:  timeout,
		outcomeBackoff: defaultOutcomeBackoff,
		now:            time.Now,
	}
}

func (d *alertDispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// Dispatch implements usecase.AlertUsecase.
func (d *alertDispatcher) Dispatch(ctx context.Context, in usecase.DispatchInput) (*entity.Alert, error) {
	if err := validateDispatchInput(in); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		existing, err := d.alertRepo.FindPending(ctx, in.IncidentID, in.Channel)
		if err == nil {
			d.log(ctx).Info("Pending alert already exists",
				slog.String("alertID", existing.ID.String()),
				slog.String("incidentID", in.IncidentID.String()),
				slog.String("channel", string(in.Channel)))

			return existing, nil
		}
		if !errors.Is(err, repository.ErrAlertNotFound) {
			return nil, errors.Wrap(err, "failed to look up pending alert")
		}

		id, err := uuid.NewV7()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate alert id")
		}

		alert := &entity.Alert{
			ID:               id,
			IncidentID:       in.IncidentID,
			AuthorityContact: in.Contact,
			Message:          in.Message,
			Channel:          in.Channel,
			Status:           entity.AlertStatusPending,
			Attempts:         1,
			CreatedAt:        d.now().UTC(),
		}

		err = d.alertRepo.Create(ctx, alert)
		if errors.Is(err, repository.ErrDuplicatePendingAlert) {
			// Lost the race to a concurrent dispatch; the winner's row is returned on the next lookup.
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to create alert")
		}

		return d.deliver(ctx, alert)
	}

	return nil, errors.Wrap(domainerrors.ErrConcurrentModification.WithDetails("pending alert changed during dispatch"), "dispatch")
}

// Acknowledge implements usecase.AlertUsecase.
func (d *alertDispatcher) Acknowledge(ctx context.Context, alertID uuid.UUID, actor entity.Actor) (*entity.Alert, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WithDetails("only admins may acknowledge alerts")
	}

	alert, err := d.find(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if alert.Status != entity.AlertStatusSent {
		return nil, domainerrors.ErrIllegalTransition.WithDetailsf("alert is %s, only sent alerts can be acknowledged", alert.Status)
	}

	now := d.now().UTC()
	next := *alert
	next.Status = entity.AlertStatusAcknowledged
	next.AcknowledgedAt = &now
	if actor.UserID != uuid.Nil {
		by := actor.UserID
		next.AcknowledgedBy = &by
	}

	if err := d.alertRepo.CompareAndSwapStatus(ctx, &next, entity.AlertStatusSent); err != nil {
		if errors.Is(err, repository.ErrStatusMismatch) {
			return nil, domainerrors.ErrConcurrentModification.WithDetails("alert status changed")
		}

		return nil, errors.Wrap(err, "failed to acknowledge alert")
	}

	d.log(ctx).Info("Alert acknowledged", slog.String("alertID", alertID.String()), slog.String("by", actor.UserID.String()))
	d.broadcast(ctx, constants.EventAlertAcknowledged, actor.UserID, &next)

	return &next, nil
}

// Retry implements usecase.AlertUsecase.
func (d *alertDispatcher) Retry(ctx context.Context, alertID uuid.UUID) (*entity.Alert, error) {
	alert, err := d.find(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if alert.Status != entity.AlertStatusFailed {
		return nil, domainerrors.ErrIllegalTransition.WithDetailsf("alert is %s, only failed alerts can be retried", alert.Status)
	}

	next := *alert
	next.Status = entity.AlertStatusPending
	next.Attempts++
	next.Detail = ""

	err = d.alertRepo.CompareAndSwapStatus(ctx, &next, entity.AlertStatusFailed)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrDuplicatePendingAlert):
		pending, findErr := d.alertRepo.FindPending(ctx, alert.IncidentID, alert.Channel)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAlertNotFound) {
				return nil, domainerrors.ErrConcurrentModification.WithDetails("pending alert changed during retry")
			}

			return nil, errors.Wrap(findErr, "failed to look up pending alert")
		}
		d.log(ctx).Info("Retry skipped, another alert is pending",
			slog.String("alertID", alertID.String()),
			slog.String("pendingAlertID", pending.ID.String()))

		return pending, nil
	case errors.Is(err, repository.ErrStatusMismatch):
		return nil, domainerrors.ErrConcurrentModification.WithDetails("alert status changed")
	default:
		return nil, errors.Wrap(err, "failed to reopen alert")
	}

	return d.deliver(ctx, &next)
}

// Get implements usecase.AlertUsecase.
func (d *alertDispatcher) Get(ctx context.Context, alertID uuid.UUID) (*entity.Alert, error) {
	return d.find(ctx, alertID)
}

// deliver calls the notifier for a pending alert and records the outcome.
// The outcome is written even if ctx was cancelled meanwhile, so a pending
// alert never stays pending because its caller went away.
func (d *alertDispatcher) deliver(ctx context.Context, alert *entity.Alert) (*entity.Alert, error) {
	notifyCtx, cancel := context.WithTimeout(ctx, d.notifyTimeout)
	detail, sendErr := d.notifier.Send(notifyCtx, alert.AuthorityContact, alert.Channel, alert.Message)
	cancel()

	next := *alert
	event := constants.EventAlertSent
	if sendErr != nil {
		next.Status = entity.AlertStatusFailed
		next.Detail = failureDetail(detail, sendErr)
		event = constants.EventAlertFailed
		d.log(ctx).Warn("Alert delivery failed",
			slog.String("alertID", alert.ID.String()),
			slog.String("channel", string(alert.Channel)),
			slog.Int("attempts", alert.Attempts),
			slog.Any("error", sendErr))
	} else {
		sentAt := d.now().UTC()
		next.Status = entity.AlertStatusSent
		next.SentAt = &sentAt
		next.Detail = detail
		d.log(ctx).Info("Alert sent",
			slog.String("alertID", alert.ID.String()),
			slog.String("channel", string(alert.Channel)))
	}

	recorded, err := d.recordOutcome(context.WithoutCancel(ctx), &next)
	if err != nil {
		return nil, err
	}
	next = *recorded

	d.broadcast(ctx, event, uuid.Nil, &next)

	return &next, nil
}

// recordOutcome moves a delivered alert out of pending, retrying persistence
// errors. A commit whose acknowledgement was lost shows up on the next attempt
// as a status mismatch, so the stored row is compared before giving up.
func (d *alertDispatcher) recordOutcome(ctx context.Context, next *entity.Alert) (*entity.Alert, error) {
	var err error
	for attempt := 1; attempt <= maxOutcomeAttempts; attempt++ {
		if attempt > 1 {
			time.Sleep(d.outcomeBackoff * time.Duration(attempt-1))
		}

		err = d.alertRepo.CompareAndSwapStatus(ctx, next, entity.AlertStatusPending)
		if err == nil {
			return next, nil
		}

		if errors.Is(err, repository.ErrStatusMismatch) {
			if attempt > 1 {
				if stored, findErr := d.alertRepo.FindByID(ctx, next.ID); findErr == nil &&
					stored.Status == next.Status && stored.Attempts == next.Attempts {
					return stored, nil
				}
			}

			return nil, domainerrors.ErrConcurrentModification.WithDetails("pending alert changed during delivery")
		}
		if !errors.Is(err, domainerrors.ErrPersistence) {
			break
		}

		d.log(ctx).Warn("Failed to record alert outcome",
			slog.String("alertID", next.ID.String()),
			slog.String("status", string(next.Status)),
			slog.Int("attempt", attempt),
			slog.Any("error", err))
	}

	d.log(ctx).Error("Alert left pending, outcome could not be recorded",
		slog.String("alertID", next.ID.String()),
		slog.String("status", string(next.Status)),
		slog.Any("error", err))

	return nil, errors.Wrap(err, "failed to record alert outcome")
}

func (d *alertDispatcher) find(ctx context.Context, alertID uuid.UUID) (*entity.Alert, error) {
	alert, err := d.alertRepo.FindByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, domainerrors.ErrAlertNotFound.WithDetailsf("alert %s", alertID)
		}

		return nil, errors.Wrap(err, "failed to find alert")
	}

	return alert, nil
}

func (d *alertDispatcher) broadcast(ctx context.Context, event string, actorID uuid.UUID, alert *entity.Alert) {
	publish(ctx, d.broadcaster, d.log(ctx), constants.TopicAlerts, event, actorID, alert, d.now())
}

func validateDispatchInput(in usecase.DispatchInput) error {
	switch {
	case in.IncidentID == uuid.Nil:
		return domainerrors.ErrValidation.WithDetails("incident id is required")
	case !in.Channel.IsValid():
		return domainerrors.ErrValidation.WithDetailsf("unknown channel %q", in.Channel)
	case strings.TrimSpace(in.Contact) == "":
		return domainerrors.ErrValidation.WithDetails("authority contact is required")
	case strings.TrimSpace(in.Message) == "":
		return domainerrors.ErrValidation.WithDetails("message is required")
	}

	return nil
}

func failureDetail(detail string, err error) string {
	if detail != "" {
		return detail
	}

	return err.Error()
}
