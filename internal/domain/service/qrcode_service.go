package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for shop listing QR codes
type QRCodeService interface {
	// GenerateShopQR renders a PNG QR code that opens the shop listing
	GenerateShopQR(shopID uuid.UUID) ([]byte, error)

	// ShopURL returns the listing URL encoded in the QR code
	ShopURL(shopID uuid.UUID) string
}
