package impl

import (
	"context"
	"log/slog"

	"showmyshop/internal/domain/constants"
	"showmyshop/internal/domain/repository"
	"showmyshop/internal/domain/service"
	"showmyshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// backfillService implements the BackfillUsecase interface.
type backfillService struct {
	shopRepo repository.ShopRepository
	geocoder service.Geocoder
	logger   *slog.Logger
}

// NewBackfillService is the constructor for backfillService.
func NewBackfillService(shopRepo repository.ShopRepository, geocoder service.Geocoder, logger *slog.Logger) usecase.BackfillUsecase {
	return &backfillService{
		shopRepo: shopRepo,
		geocoder: geocoder,
		logger:   logger,
	}
}

// HandleEvent geocodes the address carried by a geocode request and stores
// the coordinates if the shop is still unlocated at that address. Returning
// an error asks the broker to redeliver; events that can never succeed are
// acknowledged.
func (srv *backfillService) HandleEvent(ctx context.Context, event *service.ShopEvent) error {
	logger := srv.logger.With(
		slog.String("topic", event.Topic),
		slog.String("shop_id", event.ShopID),
	)

	if event.Topic != constants.TopicShopGeocodeRequested {
		logger.DebugContext(ctx, "Ignoring event")

		return nil
	}

	shopID, err := uuid.Parse(event.ShopID)
	if err != nil {
		logger.WarnContext(ctx, "Dropping event with invalid shop ID")

		return nil
	}

	if event.Address == "" {
		logger.WarnContext(ctx, "Dropping geocode request without address")

		return nil
	}

	result, err := srv.geocoder.Forward(ctx, event.Address)
	if err != nil {
		if errors.Is(err, service.ErrNoGeocodeResult) {
			logger.InfoContext(ctx, "Address has no geocoding result, giving up")

			return nil
		}

		return errors.Wrap(err, "failed to geocode address")
	}

	updated, err := srv.shopRepo.SetLocationIfMissing(ctx, shopID, event.Address, orb.Point{result.Lng, result.Lat})
	if err != nil {
		return errors.Wrap(err, "failed to store shop location")
	}

	logger.InfoContext(ctx, "Geocode backfill processed",
		slog.Bool("updated", updated),
		slog.Float64("lat", result.Lat),
		slog.Float64("lng", result.Lng),
	)

	return nil
}
