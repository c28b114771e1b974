package usecase

import (
	"context"

	"showmyshop/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase defines the moderation operations. Callers are expected to be admins.
type AdminUsecase interface {
	ListShops(ctx context.Context) ([]*entity.Shop, error)
	SetApproval(ctx context.Context, shopID uuid.UUID, approved bool) (*entity.Shop, error)
	DeleteShop(ctx context.Context, shopID uuid.UUID) error
}
