package handler

import (
	"log/slog"
	"net/http"

	"showmyshop/internal/delivery/api/response"
	"showmyshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler holds dependencies for moderation handlers
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ApproveShopRequest represents the request body for the moderation flag
type ApproveShopRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// ListShops handles listing every shop for moderation
func (h *AdminHandler) ListShops(c echo.Context) error {
	shops, err := h.adminUC.ListShops(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops)
}

// ApproveShop handles setting a shop's approval flag
func (h *AdminHandler) ApproveShop(c echo.Context) error {
	shopID, err := shopIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ApproveShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid approval input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	shop, err := h.adminUC.SetApproval(c.Request().Context(), shopID, *req.Approved)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// DeleteShop handles removing any shop
func (h *AdminHandler) DeleteShop(c echo.Context) error {
	shopID, err := shopIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.DeleteShop(c.Request().Context(), shopID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, okResponse{OK: true})
}
