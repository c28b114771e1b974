package impl

import (
	"context"
	"log/slog"

	"showmyshop/config"
	"showmyshop/internal/domain/catalog"
	"showmyshop/internal/domain/entity"
	domainerrors "showmyshop/internal/domain/errors"
	"showmyshop/internal/domain/service"
	"showmyshop/internal/usecase"

	"github.com/pkg/errors"
)

// placeService implements the PlaceUsecase interface.
type placeService struct {
	finder        service.PlaceFinder
	defaultRadius int
	maxRadius     int
	logger        *slog.Logger
}

// NewPlaceService is the constructor for placeService.
func NewPlaceService(finder service.PlaceFinder, cfg *config.Config, logger *slog.Logger) usecase.PlaceUsecase {
	return &placeService{
		finder:        finder,
		defaultRadius: cfg.Places.DefaultRadius,
		maxRadius:     cfg.Places.MaxRadius,
		logger:        logger,
	}
}

// Nearby lists mapped shops around a point. The radius falls back to the
// default when unset and is capped at the maximum.
func (srv *placeService) Nearby(ctx context.Context, input *usecase.NearbyPlacesInput) ([]*entity.Place, error) {
	if !catalog.ValidCoordinate(input.Lat, input.Lng) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	radius := input.Radius
	if radius <= 0 {
		radius = srv.defaultRadius
	}
	if srv.maxRadius > 0 && radius > srv.maxRadius {
		radius = srv.maxRadius
	}

	places, err := srv.finder.Nearby(ctx, input.Lat, input.Lng, radius)
	if err != nil {
		srv.logger.WarnContext(ctx, "Nearby place lookup failed",
			slog.Int("radius", radius),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrUpstreamFailed, err.Error())
	}

	return places, nil
}
