package handler

import (
	"log/slog"
	"net/http"

	"tourguard/internal/delivery/api/middleware"
	"tourguard/internal/delivery/api/response"
	"tourguard/internal/domain/entity"
	"tourguard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IncidentHandlerParams holds dependencies for IncidentHandler, injected by Fx.
type IncidentHandlerParams struct {
	fx.In

	CoordinatorUC usecase.CoordinatorUsecase
	Logger        *slog.Logger
}

// IncidentHandler holds dependencies for incident-related handlers
type IncidentHandler struct {
	coordinatorUC usecase.CoordinatorUsecase
	logger        *slog.Logger
}

// NewIncidentHandler is the constructor for IncidentHandler
func NewIncidentHandler(params IncidentHandlerParams) *IncidentHandler {
	return &IncidentHandler{
		coordinatorUC: params.CoordinatorUC,
		logger:        params.Logger,
	}
}

// ReportIncidentRequest is the body of POST /incidents
type ReportIncidentRequest struct {
	TouristID   *uuid.UUID `json:"tourist_id"`
	Type        string     `json:"type" validate:"required,oneof=emergency medical theft harassment lost other"`
	Description string     `json:"description" validate:"max=2000"`
	Latitude    *float64   `json:"latitude" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude   *float64   `json:"longitude" validate:"required_with=Latitude,omitempty,longitude"`
	Severity    string     `json:"severity" validate:"omitempty,oneof=low medium high critical"`
}

// TransitionIncidentRequest is the body of PATCH /incidents/:id
type TransitionIncidentRequest struct {
	Status     string     `json:"status" validate:"required,oneof=pending acknowledged resolved false_alarm"`
	AssignedTo *uuid.UUID `json:"assigned_to"`
}

// ListIncidentsQuery holds the query parameters of GET /incidents
type ListIncidentsQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=pending acknowledged resolved false_alarm"`
	Limit  int    `query:"limit" validate:"gte=0,lte=200"`
	Offset int    `query:"offset" validate:"gte=0"`
}

// ReportIncident handles POST /api/v1/incidents
func (h *IncidentHandler) ReportIncident(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing credentials")
	}

	var req ReportIncidentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid incident input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	touristID, err := resolveTourist(actor, req.TouristID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	in := usecase.IncidentReportInput{
		TouristID:   touristID,
		Type:        entity.IncidentType(req.Type),
		Description: req.Description,
		Severity:    entity.Severity(req.Severity),
	}
	if req.Latitude != nil && req.Longitude != nil {
		in.Location = &entity.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	inc, err := h.coordinatorUC.OnIncidentReport(c.Request().Context(), actor, in)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, inc)
}

// ListIncidents handles GET /api/v1/incidents
func (h *IncidentHandler) ListIncidents(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing credentials")
	}

	var query ListIncidentsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}
	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	in := usecase.IncidentListInput{Limit: query.Limit, Offset: query.Offset}
	if query.Status != "" {
		status := entity.IncidentStatus(query.Status)
		in.Status = &status
	}

	incidents, err := h.coordinatorUC.ListIncidents(c.Request().Context(), actor, in)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, incidents)
}

// GetIncident handles GET /api/v1/incidents/:id
func (h *IncidentHandler) GetIncident(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing credentials")
	}

	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid incident ID")
	}

	inc, err := h.coordinatorUC.GetIncident(c.Request().Context(), actor, incidentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, inc)
}

// TransitionIncident handles PATCH /api/v1/incidents/:id
func (h *IncidentHandler) TransitionIncident(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing credentials")
	}

	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid incident ID")
	}

	var req TransitionIncidentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transition input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	inc, err := h.coordinatorUC.OnIncidentTransition(c.Request().Context(), usecase.IncidentTransitionInput{
		IncidentID: incidentID,
		Status:     entity.IncidentStatus(req.Status),
		AssignedTo: req.AssignedTo,
		Actor:      actor,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, inc)
}
