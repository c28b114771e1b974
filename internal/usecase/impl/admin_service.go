package impl

import (
	"context"
	"log/slog"

	"showmyshop/internal/domain/entity"
	domainerrors "showmyshop/internal/domain/errors"
	"showmyshop/internal/domain/repository"
	"showmyshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	shopRepo  repository.ShopRepository
	logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	txManager repository.TransactionManager,
	shopRepo repository.ShopRepository,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		txManager: txManager,
		shopRepo:  shopRepo,
		logger:    logger,
	}
}

// ListShops returns every shop, newest first.
func (srv *adminService) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	shops, err := srv.shopRepo.List(ctx, entity.ShopFilter{})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list shops")
	}

	return shops, nil
}

// SetApproval sets a shop's moderation flag.
func (srv *adminService) SetApproval(ctx context.Context, shopID uuid.UUID, approved bool) (*entity.Shop, error) {
	shop, err := srv.shopRepo.SetApproved(ctx, shopID, approved)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to set shop approval")
	}

	srv.logger.InfoContext(ctx, "Shop approval changed",
		slog.String("shop_id", shopID.String()),
		slog.Bool("approved", approved),
	)

	return shop, nil
}

// DeleteShop removes any shop and its reviews.
func (srv *adminService) DeleteShop(ctx context.Context, shopID uuid.UUID) error {
	if err := deleteShopCascade(ctx, srv.txManager, shopID); err != nil {
		return err
	}

	srv.logger.InfoContext(ctx, "Shop deleted by admin", slog.String("shop_id", shopID.String()))

	return nil
}
