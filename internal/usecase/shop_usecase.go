package usecase

import (
	"context"

	"showmyshop/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateShopInput represents the input for registering a shop
type CreateShopInput struct {
	VendorEmail string   `json:"vendorEmail"`
	Name        string   `json:"name"`
	Products    string   `json:"products"`
	Description string   `json:"description"`
	Timings     string   `json:"timings"`
	Address     string   `json:"address"`
	Number      string   `json:"number"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// UpdateShopInput represents a partial update of a shop. Nil fields are left as they are.
type UpdateShopInput struct {
	Name        *string  `json:"name,omitempty"`
	Products    *string  `json:"products,omitempty"`
	Description *string  `json:"description,omitempty"`
	Timings     *string  `json:"timings,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Number      *string  `json:"number,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// ShopUsecase defines the interface for the shop registry
type ShopUsecase interface {
	CreateShop(ctx context.Context, caller *entity.Caller, input *CreateShopInput) (*entity.Shop, error)
	ListShops(ctx context.Context, filter entity.ShopFilter) ([]*entity.Shop, error)
	GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error)
	UpdateShop(ctx context.Context, caller *entity.Caller, shopID uuid.UUID, input *UpdateShopInput) (*entity.Shop, error)
	DeleteShop(ctx context.Context, caller *entity.Caller, shopID uuid.UUID) error

	// ShopQRCode renders a PNG QR code linking to the shop listing.
	ShopQRCode(ctx context.Context, shopID uuid.UUID) ([]byte, error)
}
