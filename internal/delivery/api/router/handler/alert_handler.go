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

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	CoordinatorUC usecase.CoordinatorUsecase
	AlertUC       usecase.AlertUsecase
	Logger        *slog.Logger
}

// AlertHandler holds dependencies for alert-related handlers. All routes are admin only.
type AlertHandler struct {
	coordinatorUC usecase.CoordinatorUsecase
	alertUC       usecase.AlertUsecase
	logger        *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		coordinatorUC: params.CoordinatorUC,
		alertUC:       params.AlertUC,
		logger:        params.Logger,
	}
}

// SendAlertRequest is the body of POST /alerts. Empty fields use the configured defaults.
type SendAlertRequest struct {
	IncidentID uuid.UUID `json:"incident_id" validate:"required"`
	Channel    string    `json:"channel" validate:"omitempty,oneof=sms email push call"`
	Message    string    `json:"message" validate:"max=1000"`
	Contact    string    `json:"contact" validate:"max=255"`
}

// SendAlert handles POST /api/v1/alerts
func (h *AlertHandler) SendAlert(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing credentials")
	}

	var req SendAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	alert, err := h.coordinatorUC.SendAlert(c.Request().Context(), actor, usecase.ManualAlertInput{
		IncidentID: req.IncidentID,
		Channel:    entity.Channel(req.Channel),
		Message:    req.Message,
		Contact:    req.Contact,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, alert)
}

// GetAlert handles GET /api/v1/alerts/:id
func (h *AlertHandler) GetAlert(c echo.Context) error {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	alert, err := h.alertUC.Get(c.Request().Context(), alertID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert)
}

// AcknowledgeAlert handles POST /api/v1/alerts/:id/acknowledge
func (h *AlertHandler) AcknowledgeAlert(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing credentials")
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	alert, err := h.alertUC.Acknowledge(c.Request().Context(), alertID, actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert)
}

// RetryAlert handles POST /api/v1/alerts/:id/retry
func (h *AlertHandler) RetryAlert(c echo.Context) error {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	alert, err := h.alertUC.Retry(c.Request().Context(), alertID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert)
}
