package handler

import (
	"log/slog"
	"net/http"

	"showmyshop/internal/delivery/api/response"
	"showmyshop/internal/domain/entity"
	"showmyshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ShopHandler holds dependencies for shop registry handlers
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// CreateShopRequest represents the request body for registering a shop
type CreateShopRequest struct {
	VendorEmail string   `json:"vendorEmail" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Products    string   `json:"products" validate:"required"`
	Description string   `json:"description"`
	Timings     string   `json:"timings"`
	Address     string   `json:"address" validate:"required"`
	Number      string   `json:"number" validate:"required"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

// UpdateShopRequest represents a partial shop update. Absent fields are left unchanged.
type UpdateShopRequest struct {
	Name        *string  `json:"name"`
	Products    *string  `json:"products"`
	Description *string  `json:"description"`
	Timings     *string  `json:"timings"`
	Address     *string  `json:"address"`
	Number      *string  `json:"number"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

// CreateShop handles shop registration
func (h *ShopHandler) CreateShop(c echo.Context) error {
	caller, err := requireCaller(c)
	if err != nil {
		return err
	}

	var req CreateShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid shop input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	shop, err := h.shopUC.CreateShop(c.Request().Context(), caller, &usecase.CreateShopInput{
		VendorEmail: req.VendorEmail,
		Name:        req.Name,
		Products:    req.Products,
		Description: req.Description,
		Timings:     req.Timings,
		Address:     req.Address,
		Number:      req.Number,
		Lat:         req.Lat,
		Lng:         req.Lng,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, shop)
}

// ListShops handles listing shops, optionally by vendor
func (h *ShopHandler) ListShops(c echo.Context) error {
	shops, err := h.shopUC.ListShops(c.Request().Context(), entity.ShopFilter{
		VendorEmail: c.QueryParam("vendorEmail"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops)
}

// GetShop handles retrieving one shop
func (h *ShopHandler) GetShop(c echo.Context) error {
	shopID, err := shopIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.shopUC.GetShop(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// UpdateShop handles partial shop updates
func (h *ShopHandler) UpdateShop(c echo.Context) error {
	caller, err := requireCaller(c)
	if err != nil {
		return err
	}

	shopID, err := shopIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid shop input")
	}

	shop, err := h.shopUC.UpdateShop(c.Request().Context(), caller, shopID, &usecase.UpdateShopInput{
		Name:        req.Name,
		Products:    req.Products,
		Description: req.Description,
		Timings:     req.Timings,
		Address:     req.Address,
		Number:      req.Number,
		Lat:         req.Lat,
		Lng:         req.Lng,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// DeleteShop handles removing a shop and its reviews
func (h *ShopHandler) DeleteShop(c echo.Context) error {
	caller, err := requireCaller(c)
	if err != nil {
		return err
	}

	shopID, err := shopIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.shopUC.DeleteShop(c.Request().Context(), caller, shopID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, okResponse{OK: true})
}

// ShopQRCode handles rendering the listing QR code as PNG
func (h *ShopHandler) ShopQRCode(c echo.Context) error {
	shopID, err := shopIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.shopUC.ShopQRCode(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}
