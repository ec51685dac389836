package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "tourguard/internal/delivery/context"
	"tourguard/internal/domain/constants"
	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"
	"tourguard/internal/domain/geofence"
	"tourguard/internal/domain/incident"
	"tourguard/internal/domain/repository"
	"tourguard/internal/domain/service"
	"tourguard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultIncidentListLimit = 50
	maxIncidentListLimit     = 200

	// maxSnapshotAttempts bounds re-reads when concurrent updates for the same
	// tourist keep replacing the location snapshot.
	maxSnapshotAttempts = 3
)

var errSnapshotRace = errors.New("location snapshot replaced concurrently")

// CoordinatorParams holds the coordinator's dependencies.
type CoordinatorParams struct {
	fx.In

	TxManager   repository.TransactionManager
	Evaluator   *geofence.Evaluator
	Machine     *incident.Machine
	Alerts      usecase.AlertUsecase
	Policy      *DispatchPolicy
	Broadcaster service.Broadcaster
	Logger      *slog.Logger
}

type coordinator struct {
	txManager   repository.TransactionManager
	evaluator   *geofence.Evaluator
	machine     *incident.Machine
	alerts      usecase.AlertUsecase
	policy      *DispatchPolicy
	broadcaster service.Broadcaster
	logger      *slog.Logger
	now         func() time.Time
}

// NewCoordinator creates the coordinator use case.
func NewCoordinator(params CoordinatorParams) usecase.CoordinatorUsecase {
	return &coordinator{
		txManager:   params.TxManager,
		evaluator:   params.Evaluator,
		machine:     params.Machine,
		alerts:      params.Alerts,
		policy:      params.Policy,
		broadcaster: params.Broadcaster,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (c *coordinator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// OnLocationUpdate implements usecase.CoordinatorUsecase.
func (c *coordinator) OnLocationUpdate(ctx context.Context, in usecase.LocationUpdateInput) (*usecase.LocationUpdateResult, error) {
	if in.TouristID == uuid.Nil {
		return nil, domainerrors.ErrValidation.WithDetails("tourist id is required")
	}
	if !in.Coordinate.IsValid() {
		return nil, domainerrors.ErrValidation.WithDetailsf("coordinate out of range: (%f, %f)", in.Coordinate.Latitude, in.Coordinate.Longitude)
	}
	recordedAt := in.Timestamp.UTC()
	if in.Timestamp.IsZero() {
		recordedAt = c.now().UTC()
	}

	entryID, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate history id")
	}

	// History records what was received, including updates rejected below as stale.
	err = c.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewLocationHistoryRepository().Append(ctx, &entity.LocationHistoryEntry{
			ID:         entryID,
			UserID:     in.TouristID,
			Coordinate: in.Coordinate,
			Accuracy:   in.Accuracy,
			Speed:      in.Speed,
			Heading:    in.Heading,
			RecordedAt: recordedAt,
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to append location history")
	}

	var (
		evaluation *geofence.Evaluation
		triggered  *entity.Incident
	)
	for attempt := 1; ; attempt++ {
		evaluation, triggered, err = c.applyLocation(ctx, in, recordedAt)
		if !errors.Is(err, errSnapshotRace) {
			break
		}
		if attempt == maxSnapshotAttempts {
			err = domainerrors.ErrConcurrentModification.WithDetailsf("location snapshot of tourist %s kept changing", in.TouristID)

			break
		}
		c.log(ctx).Debug("Location snapshot changed concurrently, re-reading",
			slog.String("touristID", in.TouristID.String()),
			slog.Int("attempt", attempt))
	}
	if err != nil {
		if errors.Is(err, domainerrors.ErrStaleLocation) {
			c.log(ctx).Warn("Stale location update rejected",
				slog.String("touristID", in.TouristID.String()),
				slog.Time("recordedAt", recordedAt))

			return nil, err
		}

		return nil, errors.Wrap(err, "failed to apply location update")
	}

	c.broadcastZoneChanges(ctx, evaluation)

	result := &usecase.LocationUpdateResult{Evaluation: evaluation}
	if triggered != nil {
		c.log(ctx).Warn("Tourist entered danger zone",
			slog.String("touristID", in.TouristID.String()),
			slog.String("incidentID", triggered.ID.String()))

		c.publish(ctx, constants.TopicIncidents, constants.EventIncidentCreated, entity.SystemActor.UserID, triggered)
		c.dispatch(ctx, triggered, incident.DangerZoneRequest(triggered))
		result.TriggeredIncident = triggered
	}

	return result, nil
}

// applyLocation runs the read-evaluate-write for one update in a transaction.
// It returns errSnapshotRace when the snapshot it read was replaced before the write.
func (c *coordinator) applyLocation(ctx context.Context, in usecase.LocationUpdateInput, recordedAt time.Time) (*geofence.Evaluation, *entity.Incident, error) {
	var (
		evaluation *geofence.Evaluation
		triggered  *entity.Incident
	)

	err := c.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		snapshots := repoFactory.NewTouristLocationRepository()

		var (
			previous []uuid.UUID
			expected *time.Time
		)
		stored, err := snapshots.FindForUpdate(ctx, in.TouristID)
		switch {
		case err == nil:
			if !recordedAt.After(stored.RecordedAt) {
				return staleLocation(recordedAt, stored.RecordedAt)
			}
			previous = stored.GeofenceIDs
			expected = &stored.RecordedAt
		case errors.Is(err, repository.ErrSnapshotNotFound):
			// First update: nothing to lock, the insert below settles concurrent first updates.
		default:
			return errors.Wrap(err, "failed to load location snapshot")
		}

		evaluation, err = c.evaluator.Evaluate(in.TouristID, in.Coordinate, previous)
		if err != nil {
			return err
		}

		swapped, err := snapshots.CompareAndSwap(ctx, &entity.MembershipSnapshot{
			TouristID:   in.TouristID,
			Coordinate:  in.Coordinate,
			GeofenceIDs: evaluation.Membership,
			RecordedAt:  recordedAt,
		}, expected)
		if err != nil {
			return errors.Wrap(err, "failed to store location snapshot")
		}
		if !swapped {
			return errSnapshotRace
		}

		unsafe := evaluation.EnteredUnsafe()
		if len(unsafe) == 0 {
			return nil
		}

		loc := in.Coordinate
		triggered, _, err = c.machine.Create(incident.CreateInput{
			TouristID:   in.TouristID,
			Type:        entity.IncidentTypeDangerZone,
			Description: dangerZoneDescription(unsafe),
			Location:    &loc,
			Severity:    entity.SeverityHigh,
		})
		if err != nil {
			return err
		}

		if err := repoFactory.NewIncidentRepository().Create(ctx, triggered); err != nil {
			return errors.Wrap(err, "failed to create danger zone incident")
		}

		if err := repoFactory.NewProfileRepository().SetStatus(ctx, in.TouristID, entity.ProfileStatusAlert); err != nil {
			return errors.Wrap(err, "failed to set profile status")
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return evaluation, triggered, nil
}

// revertProfile returns the tourist to active once no other incident is open.
// The profile row is locked before counting so two transactions closing the
// last incidents cannot both count the other one as still open.
func (c *coordinator) revertProfile(ctx context.Context, repoFactory repository.RepositoryFactory, closed *entity.Incident) error {
	profiles := repoFactory.NewProfileRepository()
	profile, err := profiles.FindForUpdate(ctx, closed.TouristID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to lock tourist profile")
	}

	open, err := repoFactory.NewIncidentRepository().CountOpenByTourist(ctx, closed.TouristID, closed.ID)
	if err != nil {
		return errors.Wrap(err, "failed to count open incidents")
	}
	if open > 0 || profile.Status == entity.ProfileStatusActive {
		return nil
	}

	if err := profiles.SetStatus(ctx, closed.TouristID, entity.ProfileStatusActive); err != nil {
		return errors.Wrap(err, "failed to revert profile status")
	}

	return nil
}

// OnIncidentReport implements usecase.CoordinatorUsecase.
func (c *coordinator) OnIncidentReport(ctx context.Context, actor entity.Actor, in usecase.IncidentReportInput) (*entity.Incident, error) {
	touristID := actor.UserID
	if actor.IsAdmin() && in.TouristID != uuid.Nil {
		touristID = in.TouristID
	}
	if in.Type == entity.IncidentTypeDangerZone {
		return nil, domainerrors.ErrValidation.WithDetails("danger_zone incidents are raised by the system")
	}
	severity := in.Severity
	if severity == "" {
		severity = entity.SeverityMedium
	}

	inc, req, err := c.machine.Create(incident.CreateInput{
		TouristID:   touristID,
		Type:        in.Type,
		Description: strings.TrimSpace(in.Description),
		Location:    in.Location,
		Severity:    severity,
	})
	if err != nil {
		return nil, err
	}

	err = c.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewIncidentRepository().Create(ctx, inc); err != nil {
			return errors.Wrap(err, "failed to create incident")
		}

		return repoFactory.NewProfileRepository().SetStatus(ctx, touristID, entity.ProfileStatusAlert)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to report incident")
	}

	c.log(ctx).Info("Incident reported",
		slog.String("incidentID", inc.ID.String()),
		slog.String("type", string(inc.Type)),
		slog.String("severity", string(inc.Severity)))
	c.publish(ctx, constants.TopicIncidents, constants.EventIncidentCreated, actor.UserID, inc)

	if req != nil {
		c.dispatch(ctx, inc, req)
	}

	return inc, nil
}

// OnIncidentTransition implements usecase.CoordinatorUsecase.
func (c *coordinator) OnIncidentTransition(ctx context.Context, in usecase.IncidentTransitionInput) (*entity.Incident, error) {
	var (
		next    *entity.Incident
		outcome incident.Outcome
	)

	err := c.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		incidents := repoFactory.NewIncidentRepository()

		current, err := incidents.FindByID(ctx, in.IncidentID)
		if err != nil {
			if errors.Is(err, repository.ErrIncidentNotFound) {
				return domainerrors.ErrIncidentNotFound.WithDetailsf("incident %s", in.IncidentID)
			}

			return errors.Wrap(err, "failed to find incident")
		}

		next, outcome, err = c.machine.Transition(current, in.Status, in.Actor)
		if err != nil {
			return err
		}

		reassigned := in.AssignedTo != nil && !sameAssignee(current.AssignedTo, in.AssignedTo)
		if !outcome.Changed && !reassigned {
			return nil
		}
		if reassigned {
			if next == current {
				clone := *current
				clone.UpdatedAt = c.now().UTC()
				next = &clone
			}
			assignee := *in.AssignedTo
			next.AssignedTo = &assignee
		}

		if err := incidents.CompareAndSwapStatus(ctx, next, current.Status); err != nil {
			if errors.Is(err, repository.ErrStatusMismatch) {
				return domainerrors.ErrConcurrentModification.WithDetailsf("incident %s changed status", in.IncidentID)
			}

			return errors.Wrap(err, "failed to update incident")
		}

		if outcome.RevertProfile {
			if err := c.revertProfile(ctx, repoFactory, next); err != nil {
				return err
			}
		}

		outcome.Changed = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !outcome.Changed {
		return next, nil
	}

	c.log(ctx).Info("Incident updated",
		slog.String("incidentID", next.ID.String()),
		slog.String("status", string(next.Status)),
		slog.String("by", in.Actor.UserID.String()))
	c.publish(ctx, constants.TopicIncidents, constants.EventIncidentUpdated, in.Actor.UserID, next)

	if outcome.Dispatch != nil {
		c.dispatch(ctx, next, outcome.Dispatch)
	}

	return next, nil
}

// GetIncident implements usecase.CoordinatorUsecase.
func (c *coordinator) GetIncident(ctx context.Context, actor entity.Actor, incidentID uuid.UUID) (*entity.Incident, error) {
	var inc *entity.Incident

	err := c.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewIncidentRepository().FindByID(ctx, incidentID)
		if err != nil {
			if errors.Is(err, repository.ErrIncidentNotFound) {
				return domainerrors.ErrIncidentNotFound.WithDetailsf("incident %s", incidentID)
			}

			return errors.Wrap(err, "failed to find incident")
		}
		if !actor.IsAdmin() && found.TouristID != actor.UserID {
			return domainerrors.ErrIncidentNotFound.WithDetailsf("incident %s", incidentID)
		}

		alerts, err := repoFactory.NewAlertRepository().ListByIncident(ctx, incidentID)
		if err != nil {
			return errors.Wrap(err, "failed to list alerts")
		}
		found.Alerts = alerts
		inc = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return inc, nil
}

// ListIncidents implements usecase.CoordinatorUsecase.
func (c *coordinator) ListIncidents(ctx context.Context, actor entity.Actor, in usecase.IncidentListInput) ([]*entity.Incident, error) {
	filter := repository.IncidentFilter{
		Status: in.Status,
		Limit:  in.Limit,
		Offset: max(in.Offset, 0),
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultIncidentListLimit
	}
	filter.Limit = min(filter.Limit, maxIncidentListLimit)
	if in.Status != nil && !in.Status.IsValid() {
		return nil, domainerrors.ErrValidation.WithDetailsf("unknown incident status %q", *in.Status)
	}
	if !actor.IsAdmin() {
		touristID := actor.UserID
		filter.TouristID = &touristID
	}

	var incidents []*entity.Incident
	err := c.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewIncidentRepository().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list incidents")
		}
		incidents = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return incidents, nil
}

// SendAlert implements usecase.CoordinatorUsecase.
func (c *coordinator) SendAlert(ctx context.Context, actor entity.Actor, in usecase.ManualAlertInput) (*entity.Alert, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WithDetails("only admins may send alerts")
	}

	channel := in.Channel
	if channel == "" {
		channel = c.policy.DefaultChannel()
	}
	if !channel.IsValid() {
		return nil, domainerrors.ErrValidation.WithDetailsf("unknown channel %q", channel)
	}

	var inc *entity.Incident
	err := c.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewIncidentRepository().FindByID(ctx, in.IncidentID)
		if err != nil {
			if errors.Is(err, repository.ErrIncidentNotFound) {
				return domainerrors.ErrIncidentNotFound.WithDetailsf("incident %s", in.IncidentID)
			}

			return errors.Wrap(err, "failed to find incident")
		}
		inc = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	message := strings.TrimSpace(in.Message)
	if message == "" {
		message = c.policy.Message(inc)
	}
	contact := strings.TrimSpace(in.Contact)
	if contact == "" {
		contact = c.policy.ContactFor(channel)
	}

	return c.alerts.Dispatch(ctx, usecase.DispatchInput{
		IncidentID: inc.ID,
		Channel:    channel,
		Message:    message,
		Contact:    contact,
	})
}

// dispatch forwards a dispatch request to the alert use case. The incident is
// already stored, so a failure here is logged rather than returned; the alert
// can be sent again through SendAlert.
func (c *coordinator) dispatch(ctx context.Context, inc *entity.Incident, req *incident.DispatchRequest) {
	channel := c.policy.ChannelFor(req.Severity)

	alert, err := c.alerts.Dispatch(ctx, usecase.DispatchInput{
		IncidentID: req.IncidentID,
		Channel:    channel,
		Message:    c.policy.Message(inc),
		Contact:    c.policy.ContactFor(channel),
	})
	if err != nil {
		c.log(ctx).Error("Alert dispatch failed",
			slog.String("incidentID", req.IncidentID.String()),
			slog.String("reason", string(req.Reason)),
			slog.String("channel", string(channel)),
			slog.Any("error", err))

		return
	}

	inc.Alerts = append(inc.Alerts, alert)
}

func (c *coordinator) broadcastZoneChanges(ctx context.Context, evaluation *geofence.Evaluation) {
	for _, fence := range evaluation.Entered {
		c.publish(ctx, constants.TopicGeofences, constants.EventZoneEntered, evaluation.TouristID, zoneEvent(evaluation, fence))
	}
	for _, fence := range evaluation.Exited {
		c.publish(ctx, constants.TopicGeofences, constants.EventZoneExited, evaluation.TouristID, zoneEvent(evaluation, fence))
	}
}

func (c *coordinator) publish(ctx context.Context, topic, event string, actorID uuid.UUID, payload any) {
	publish(ctx, c.broadcaster, c.log(ctx), topic, event, actorID, payload, c.now())
}

// ZoneEvent is the payload of zone_entered and zone_exited broadcasts.
type ZoneEvent struct {
	TouristID  uuid.UUID         `json:"tourist_id"`
	GeofenceID uuid.UUID         `json:"geofence_id"`
	Name       string            `json:"name,omitempty"`
	Safe       bool              `json:"safe"`
	Location   entity.Coordinate `json:"location"`
}

func zoneEvent(evaluation *geofence.Evaluation, fence *entity.Geofence) *ZoneEvent {
	return &ZoneEvent{
		TouristID:  evaluation.TouristID,
		GeofenceID: fence.ID,
		Name:       fence.Name,
		Safe:       fence.Safe,
		Location:   evaluation.Location,
	}
}

func dangerZoneDescription(fences []*entity.Geofence) string {
	names := make([]string, 0, len(fences))
	for _, f := range fences {
		if f.Name != "" {
			names = append(names, f.Name)
		} else {
			names = append(names, f.ID.String())
		}
	}

	return "Entered danger zone: " + strings.Join(names, ", ")
}

func staleLocation(recordedAt, stored time.Time) error {
	return domainerrors.ErrStaleLocation.WithDetailsf("update at %s is not newer than %s",
		recordedAt.Format(time.RFC3339Nano), stored.Format(time.RFC3339Nano))
}

func sameAssignee(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
