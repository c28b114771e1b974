package handler

import (
	"net/http"

	"showmyshop/internal/delivery/api/response"
	"showmyshop/internal/domain/entity"
	"showmyshop/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	// Issuer is nil unless the local identity provider is configured.
	Issuer service.TokenIssuer `optional:"true"`
}

// TestHandler handles test endpoints for local development
type TestHandler struct {
	issuer service.TokenIssuer
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{issuer: params.Issuer}
}

// IssueTokenRequest represents the identity to sign a local token for
type IssueTokenRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

// TestAuthMiddleware echoes the verified caller.
// This endpoint requires a valid bearer token in the Authorization header
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	caller, err := requireCaller(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Authentication middleware test successful",
		"caller":  caller,
		"status":  "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}

// IssueToken signs a token with the local identity provider
func (h *TestHandler) IssueToken(c echo.Context) error {
	if h.issuer == nil {
		return response.NotFound(c, "TOKEN_ISSUER_DISABLED", "Local token issuing is not enabled")
	}

	var req IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	token, err := h.issuer.Issue(&entity.Caller{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"token": token})
}
