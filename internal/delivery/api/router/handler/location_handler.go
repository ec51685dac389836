package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tourguard/internal/delivery/api/middleware"
	"tourguard/internal/delivery/api/response"
	"tourguard/internal/domain/entity"
	"tourguard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	CoordinatorUC usecase.CoordinatorUsecase
	Logger        *slog.Logger
}

// LocationHandler receives position reports from tourist devices
type LocationHandler struct {
	coordinatorUC usecase.CoordinatorUsecase
	logger        *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		coordinatorUC: params.CoordinatorUC,
		logger:        params.Logger,
	}
}

// LocationUpdateRequest is the body of POST /locations.
// Admins may report on behalf of a tourist with TouristID.
type LocationUpdateRequest struct {
	TouristID *uuid.UUID `json:"tourist_id"`
	Latitude  *float64   `json:"latitude" validate:"required,latitude"`
	Longitude *float64   `json:"longitude" validate:"required,longitude"`
	Timestamp *time.Time `json:"timestamp"`
	Accuracy  *float64   `json:"accuracy" validate:"omitempty,gte=0"`
	Speed     *float64   `json:"speed" validate:"omitempty,gte=0"`
	Heading   *float64   `json:"heading" validate:"omitempty,gte=0,lt=360"`
}

// LocationUpdateResponse summarizes the geofence evaluation of an update.
type LocationUpdateResponse struct {
	TouristID    uuid.UUID          `json:"tourist_id"`
	Location     entity.Coordinate  `json:"location"`
	InSafeZone   bool               `json:"in_safe_zone"`
	InDangerZone bool               `json:"in_danger_zone"`
	Geofences    entity.Containment `json:"geofences"`
	Entered      []*entity.Geofence `json:"entered"`
	Exited       []*entity.Geofence `json:"exited"`
	Incident     *entity.Incident   `json:"incident,omitempty"`
}

// UpdateLocation handles POST /api/v1/locations
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing credentials")
	}

	var req LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	touristID, err := resolveTourist(actor, req.TouristID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	in := usecase.LocationUpdateInput{
		TouristID:  touristID,
		Coordinate: entity.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude},
		Accuracy:   req.Accuracy,
		Speed:      req.Speed,
		Heading:    req.Heading,
	}
	if req.Timestamp != nil {
		in.Timestamp = *req.Timestamp
	}

	result, err := h.coordinatorUC.OnLocationUpdate(c.Request().Context(), in)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	eval := result.Evaluation

	return response.Success(c, http.StatusOK, LocationUpdateResponse{
		TouristID:    eval.TouristID,
		Location:     eval.Location,
		InSafeZone:   eval.InSafeZone,
		InDangerZone: eval.InDangerZone,
		Geofences:    eval.Containment,
		Entered:      eval.Entered,
		Exited:       eval.Exited,
		Incident:     result.TriggeredIncident,
	})
}
