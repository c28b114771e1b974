// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "showmyshop/internal/delivery/context"
	"showmyshop/internal/domain/constants"
	"showmyshop/internal/domain/entity"
	domainerrors "showmyshop/internal/domain/errors"
	"showmyshop/internal/domain/repository"
	"showmyshop/internal/domain/service"
	"showmyshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager repository.TransactionManager
	shopRepo  repository.ShopRepository
	geocoder  service.Geocoder
	publisher service.EventPublisher
	qrService service.QRCodeService
	logger    *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(
	txManager repository.TransactionManager,
	shopRepo repository.ShopRepository,
	geocoder service.Geocoder,
	publisher service.EventPublisher,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.ShopUsecase {
	return &shopService{
		txManager: txManager,
		shopRepo:  shopRepo,
		geocoder:  geocoder,
		publisher: publisher,
		qrService: qrService,
		logger:    logger,
	}
}

// CreateShop registers a shop. Coordinates missing from the input are resolved
// from the address; if that fails the shop is stored without them and a backfill
// event is published.
func (srv *shopService) CreateShop(ctx context.Context, caller *entity.Caller, input *usecase.CreateShopInput) (*entity.Shop, error) {
	if input.VendorEmail == "" || input.Name == "" || input.Products == "" || input.Address == "" || input.Number == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	if !caller.ActsAs(input.VendorEmail) {
		return nil, errors.Wrap(domainerrors.ErrShopOwnershipViolation, "vendor email does not match caller")
	}

	shop := &entity.Shop{
		ID:          uuid.New(),
		VendorEmail: input.VendorEmail,
		Name:        input.Name,
		Products:    input.Products,
		Description: input.Description,
		Timings:     input.Timings,
		Address:     input.Address,
		Number:      input.Number,
		Lat:         input.Lat,
		Lng:         input.Lng,
		Approved:    true,
	}

	if !shop.HasLocation() {
		shop.Lat, shop.Lng = nil, nil
		if point, ok := srv.geocode(ctx, shop.Address); ok {
			shop.SetLocation(point)
		}
	}

	if err := srv.shopRepo.Create(ctx, shop); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	srv.logger.InfoContext(ctx, "Shop created",
		slog.String("shop_id", shop.ID.String()),
		slog.Bool("located", shop.HasLocation()),
	)

	if !shop.HasLocation() {
		srv.publish(ctx, &service.ShopEvent{
			Topic:   constants.TopicShopGeocodeRequested,
			ShopID:  shop.ID.String(),
			Address: shop.Address,
		})
	}

	return shop, nil
}

// ListShops returns all shops newest first, optionally for one vendor.
func (srv *shopService) ListShops(ctx context.Context, filter entity.ShopFilter) ([]*entity.Shop, error) {
	shops, err := srv.shopRepo.List(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list shops")
	}

	return shops, nil
}

// GetShop returns a single shop.
func (srv *shopService) GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error) {
	return srv.findShop(ctx, shopID)
}

// UpdateShop applies a partial update. A new address without explicit
// coordinates is re-geocoded; the stored coordinates change only on success.
func (srv *shopService) UpdateShop(ctx context.Context, caller *entity.Caller, shopID uuid.UUID, input *usecase.UpdateShopInput) (*entity.Shop, error) {
	shop, err := srv.findShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if !caller.CanManage(shop) {
		return nil, errors.Wrap(domainerrors.ErrShopOwnershipViolation, "caller does not own shop")
	}

	applyShopUpdates(shop, input)

	if input.Address != nil && (input.Lat == nil || input.Lng == nil) {
		if point, ok := srv.geocode(ctx, *input.Address); ok {
			shop.SetLocation(point)
		}
	}

	if err := srv.shopRepo.Update(ctx, shop); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update shop")
	}

	return srv.findShop(ctx, shopID)
}

// applyShopUpdates copies the supplied fields onto the shop.
func applyShopUpdates(shop *entity.Shop, input *usecase.UpdateShopInput) {
	if input.Name != nil {
		shop.Name = *input.Name
	}
	if input.Products != nil {
		shop.Products = *input.Products
	}
	if input.Description != nil {
		shop.Description = *input.Description
	}
	if input.Timings != nil {
		shop.Timings = *input.Timings
	}
	if input.Address != nil {
		shop.Address = *input.Address
	}
	if input.Number != nil {
		shop.Number = *input.Number
	}
	if input.Lat != nil {
		shop.Lat = input.Lat
	}
	if input.Lng != nil {
		shop.Lng = input.Lng
	}
}

// DeleteShop removes a shop and its reviews.
func (srv *shopService) DeleteShop(ctx context.Context, caller *entity.Caller, shopID uuid.UUID) error {
	shop, err := srv.findShop(ctx, shopID)
	if err != nil {
		return err
	}

	if !caller.CanManage(shop) {
		return errors.Wrap(domainerrors.ErrShopOwnershipViolation, "caller does not own shop")
	}

	return deleteShopCascade(ctx, srv.txManager, shopID)
}

// ShopQRCode renders the listing QR code of an existing shop.
func (srv *shopService) ShopQRCode(ctx context.Context, shopID uuid.UUID) ([]byte, error) {
	if _, err := srv.findShop(ctx, shopID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateShopQR(shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate shop QR code")
	}

	return png, nil
}

func (srv *shopService) findShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find shop")
	}

	return shop, nil
}

// geocode resolves an address. Failures are logged and reported as !ok.
func (srv *shopService) geocode(ctx context.Context, address string) (orb.Point, bool) {
	result, err := srv.geocoder.Forward(ctx, address)
	if err != nil {
		srv.logger.WarnContext(ctx, "Geocoding failed, continuing without coordinates",
			slog.String("address", address),
			slog.Any("error", err),
		)

		return orb.Point{}, false
	}

	return orb.Point{result.Lng, result.Lat}, true
}

func (srv *shopService) publish(ctx context.Context, event *service.ShopEvent) {
	publishEvent(ctx, srv.publisher, srv.logger, event)
}

// deleteShopCascade removes a shop's reviews and then the shop in one transaction.
func deleteShopCascade(ctx context.Context, txManager repository.TransactionManager, shopID uuid.UUID) error {
	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ReviewRepo().DeleteByShop(ctx, shopID); err != nil {
			return errors.Wrap(err, "failed to delete reviews")
		}

		return repoFactory.ShopRepo().Delete(ctx, shopID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return domainerrors.ErrShopNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete shop")
	}

	return nil
}

// publishEvent sends an event, tagging it with the request ID. Publish
// failures never fail the request.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.ShopEvent) {
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish shop event",
			slog.String("topic", event.Topic),
			slog.String("shop_id", event.ShopID),
			slog.Any("error", err),
		)
	}
}
