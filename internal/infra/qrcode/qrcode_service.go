package qrcode

import (
	"strings"

	"showmyshop/config"
	"showmyshop/internal/domain/service"
	"showmyshop/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.QRCodeConfig) service.QRCodeService {
	return &qrcodeService{
		size:                 cfg.Size,
		errorCorrectionLevel: recoveryLevel(cfg.ErrorCorrectionLevel),
		baseURL:              strings.TrimRight(cfg.BaseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ShopURL returns the public listing page of a shop
func (s *qrcodeService) ShopURL(shopID uuid.UUID) string {
	return s.baseURL + "/shops/" + shopID.String()
}

// GenerateShopQR renders the shop listing URL as a PNG
func (s *qrcodeService) GenerateShopQR(shopID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ShopURL(shopID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
