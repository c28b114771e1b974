// Package handler contains the REST handlers of the shop API.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"showmyshop/internal/delivery/api/response"
	"showmyshop/internal/delivery/api/validator"
	deliverycontext "showmyshop/internal/delivery/context"
	"showmyshop/internal/domain/entity"
	domainerrors "showmyshop/internal/domain/errors"
	"showmyshop/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// okResponse is the body of successful deletes.
type okResponse struct {
	OK bool `json:"ok"`
}

// requireCaller returns the caller stored by the auth middleware.
func requireCaller(c echo.Context) (*entity.Caller, error) {
	caller, ok := deliverycontext.GetCaller(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return caller, nil
}

// shopIDParam parses the :id path parameter. An id that is not a UUID cannot
// name a stored shop, so it is reported as not found.
func shopIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrShopNotFound
	}

	return id, nil
}

// validationFailed answers with the static validation message and the
// failing fields as details.
func validationFailed(c echo.Context, err error) error {
	var details any
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		details = verr.Fields
	}

	return response.BadRequestWithDetails(c,
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(),
		details,
	)
}

// optionalFloatQuery parses a float query parameter, returning nil when absent.
func optionalFloatQuery(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	return &v, nil
}

// requiredCoordinates parses the lat and lng query parameters.
func requiredCoordinates(c echo.Context) (float64, float64, error) {
	lat, err := optionalFloatQuery(c, "lat")
	if err != nil {
		return 0, 0, err
	}
	lng, err := optionalFloatQuery(c, "lng")
	if err != nil {
		return 0, 0, err
	}
	if lat == nil || lng == nil {
		return 0, 0, domainerrors.ErrInvalidCoordinates
	}

	return *lat, *lng, nil
}
