package impl

import (
	"context"
	"log/slog"
	"strings"

	"showmyshop/internal/domain/catalog"
	"showmyshop/internal/domain/entity"
	domainerrors "showmyshop/internal/domain/errors"
	"showmyshop/internal/domain/service"
	"showmyshop/internal/usecase"

	"github.com/pkg/errors"
)

// geocodeService implements the GeocodeUsecase interface.
type geocodeService struct {
	geocoder service.Geocoder
	logger   *slog.Logger
}

// NewGeocodeService is the constructor for geocodeService.
func NewGeocodeService(geocoder service.Geocoder, logger *slog.Logger) usecase.GeocodeUsecase {
	return &geocodeService{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Search resolves an address to its best match.
func (srv *geocodeService) Search(ctx context.Context, address string) (*entity.GeocodeResult, error) {
	if strings.TrimSpace(address) == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	result, err := srv.geocoder.Forward(ctx, address)
	if err != nil {
		return nil, srv.mapError(ctx, err)
	}

	return result, nil
}

// Reverse resolves coordinates to a display address.
func (srv *geocodeService) Reverse(ctx context.Context, lat, lng float64) (*entity.GeocodeResult, error) {
	if !catalog.ValidCoordinate(lat, lng) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	result, err := srv.geocoder.Reverse(ctx, lat, lng)
	if err != nil {
		return nil, srv.mapError(ctx, err)
	}

	return result, nil
}

func (srv *geocodeService) mapError(ctx context.Context, err error) error {
	if errors.Is(err, service.ErrNoGeocodeResult) {
		return domainerrors.ErrAddressNotFound
	}

	srv.logger.WarnContext(ctx, "Geocoding request failed", slog.Any("error", err))

	return errors.Wrap(domainerrors.ErrUpstreamFailed, err.Error())
}
