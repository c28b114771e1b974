package handler

import (
	"log/slog"
	"net/http"

	"showmyshop/internal/delivery/api/response"
	"showmyshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlaceHandlerParams holds dependencies for PlaceHandler, injected by Fx.
type PlaceHandlerParams struct {
	fx.In

	PlaceUC   usecase.PlaceUsecase
	GeocodeUC usecase.GeocodeUsecase
	Logger    *slog.Logger
}

// PlaceHandler serves map lookups: nearby points of interest and geocoding
type PlaceHandler struct {
	placeUC   usecase.PlaceUsecase
	geocodeUC usecase.GeocodeUsecase
	logger    *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler
func NewPlaceHandler(params PlaceHandlerParams) *PlaceHandler {
	return &PlaceHandler{
		placeUC:   params.PlaceUC,
		geocodeUC: params.GeocodeUC,
		logger:    params.Logger,
	}
}

// NearbyRequest represents the radius of a nearby lookup
type NearbyRequest struct {
	Radius int `query:"radius" validate:"omitempty,min=1"`
}

// Nearby handles GET /places/nearby?lat=&lng=&radius=
func (h *PlaceHandler) Nearby(c echo.Context) error {
	lat, lng, err := requiredCoordinates(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req NearbyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid radius")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	places, err := h.placeUC.Nearby(c.Request().Context(), &usecase.NearbyPlacesInput{
		Lat:    lat,
		Lng:    lng,
		Radius: req.Radius,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, places)
}

// GeocodeSearch handles GET /geocode/search?q=
func (h *PlaceHandler) GeocodeSearch(c echo.Context) error {
	result, err := h.geocodeUC.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GeocodeReverse handles GET /geocode/reverse?lat=&lng=
func (h *PlaceHandler) GeocodeReverse(c echo.Context) error {
	lat, lng, err := requiredCoordinates(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.geocodeUC.Reverse(c.Request().Context(), lat, lng)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
