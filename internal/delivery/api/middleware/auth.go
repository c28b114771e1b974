package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "showmyshop/internal/delivery/context"
	domainerrors "showmyshop/internal/domain/errors"
	"showmyshop/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware verifies identity provider tokens and enforces roles.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate requires a valid bearer token and stores the verified caller
// on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return domainerrors.ErrInvalidToken
		}

		caller, err := m.verifier.Verify(c.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Token verification failed", slog.Any("error", err))

			return domainerrors.ErrInvalidToken
		}

		deliverycontext.SetCaller(c, caller)

		return next(c)
	}
}

// RequireAdmin only lets admin callers through. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, ok := deliverycontext.GetCaller(c)
		if !ok {
			return domainerrors.ErrUnauthorized
		}

		if !caller.Admin {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}
