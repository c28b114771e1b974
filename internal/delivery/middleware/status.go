package middleware

import (
	"net/http"

	domainerrors "showmyshop/internal/domain/errors"
	"showmyshop/internal/errors"

	"github.com/labstack/echo/v4"
)

// responseStatus returns the status the error handler will write for err.
// The chain returns before the error handler runs, so the response status
// is still unset for failed requests.
func responseStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
