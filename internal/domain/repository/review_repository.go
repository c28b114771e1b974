package repository

import (
	"context"

	"showmyshop/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines the interface for review-related database operations.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// ListByShop returns one page of a shop's reviews, newest first.
	ListByShop(ctx context.Context, shopID uuid.UUID, page entity.ReviewPage) ([]*entity.Review, error)

	// DeleteByShop removes every review of a shop.
	DeleteByShop(ctx context.Context, shopID uuid.UUID) error
}
