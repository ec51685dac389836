package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tourguard/internal/delivery/api/middleware"
	"tourguard/internal/delivery/api/response"
	"tourguard/internal/domain/entity"
	"tourguard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeofenceHandlerParams holds dependencies for GeofenceHandler, injected by Fx.
type GeofenceHandlerParams struct {
	fx.In

	GeofenceUC usecase.GeofenceUsecase
	Logger     *slog.Logger
}

// GeofenceHandler holds dependencies for geofence-related handlers
type GeofenceHandler struct {
	geofenceUC usecase.GeofenceUsecase
	logger     *slog.Logger
}

// NewGeofenceHandler is the constructor for GeofenceHandler
func NewGeofenceHandler(params GeofenceHandlerParams) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: params.GeofenceUC,
		logger:     params.Logger,
	}
}

// CreateGeofenceRequest is the body of POST /geofences
type CreateGeofenceRequest struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Description  string   `json:"description" validate:"max=2000"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	RadiusMeters float64  `json:"radius_meters" validate:"required,gt=0"`
	Safe         *bool    `json:"safe" validate:"required"`
}

// UpdateGeofenceRequest is the body of PATCH /geofences/:id. Omitted fields are kept.
type UpdateGeofenceRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string  `json:"description" validate:"omitempty,max=2000"`
	Latitude     *float64 `json:"latitude" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required_with=Latitude,omitempty,longitude"`
	RadiusMeters *float64 `json:"radius_meters" validate:"omitempty,gt=0"`
	Safe         *bool    `json:"safe"`
	Active       *bool    `json:"active"`
}

// CheckGeofenceQuery holds the query parameters of GET /geofences/check
type CheckGeofenceQuery struct {
	Latitude  string `query:"lat" validate:"required,latitude"`
	Longitude string `query:"lng" validate:"required,longitude"`
	Radius    string `query:"radius" validate:"omitempty,numeric"`
}

// ListGeofences handles GET /api/v1/geofences
func (h *GeofenceHandler) ListGeofences(c echo.Context) error {
	includeInactive := c.QueryParam("all") == "true"

	fences, err := h.geofenceUC.List(c.Request().Context(), includeInactive)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fences)
}

// CreateGeofence handles POST /api/v1/geofences
func (h *GeofenceHandler) CreateGeofence(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing credentials")
	}

	var req CreateGeofenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	fence, err := h.geofenceUC.Create(c.Request().Context(), actor, usecase.CreateGeofenceInput{
		Name:         req.Name,
		Description:  req.Description,
		Center:       entity.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude},
		RadiusMeters: req.RadiusMeters,
		Safe:         *req.Safe,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, fence)
}

// UpdateGeofence handles PATCH /api/v1/geofences/:id
func (h *GeofenceHandler) UpdateGeofence(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing credentials")
	}

	fenceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid geofence ID")
	}

	var req UpdateGeofenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	in := usecase.UpdateGeofenceInput{
		Name:         req.Name,
		Description:  req.Description,
		RadiusMeters: req.RadiusMeters,
		Safe:         req.Safe,
		Active:       req.Active,
	}
	if req.Latitude != nil && req.Longitude != nil {
		in.Center = &entity.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	fence, err := h.geofenceUC.Update(c.Request().Context(), actor, fenceID, in)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fence)
}

// DeactivateGeofence handles DELETE /api/v1/geofences/:id
func (h *GeofenceHandler) DeactivateGeofence(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing credentials")
	}

	fenceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid geofence ID")
	}

	if err := h.geofenceUC.Deactivate(c.Request().Context(), actor, fenceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CheckGeofences handles GET /api/v1/geofences/check
func (h *GeofenceHandler) CheckGeofences(c echo.Context) error {
	var query CheckGeofenceQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}
	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	// validated above
	lat, _ := strconv.ParseFloat(query.Latitude, 64)
	lng, _ := strconv.ParseFloat(query.Longitude, 64)
	var radius float64
	if query.Radius != "" {
		radius, _ = strconv.ParseFloat(query.Radius, 64)
	}

	point := entity.Coordinate{Latitude: lat, Longitude: lng}
	result, err := h.geofenceUC.Check(c.Request().Context(), point, radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GeoJSON handles GET /api/v1/geofences/geojson. The collection is returned bare
// so map clients can load it directly.
func (h *GeofenceHandler) GeoJSON(c echo.Context) error {
	collection, err := h.geofenceUC.GeoJSON(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body, err := collection.MarshalJSON()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "application/geo+json", body)
}
