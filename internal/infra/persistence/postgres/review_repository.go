package postgres

import (
	"context"

	"showmyshop/internal/domain/entity"
	domainerrors "showmyshop/internal/domain/errors"
	"showmyshop/internal/domain/repository"
	"showmyshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.CreatedAt.IsZero() {
		review.CreatedAt = storeNow()
	}
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrShopNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	return nil
}

// ListByShop returns one page of reviews, newest first.
func (repo *reviewRepository) ListByShop(ctx context.Context, shopID uuid.UUID, page entity.ReviewPage) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	query := repo.db.WithContext(ctx).Where("shop_id = ?", shopID)
	if page.After != nil {
		query = query.Where("((created_at < ?) OR (created_at = ? AND id < ?))",
			page.After.CreatedAt, page.After.CreatedAt, page.After.ID)
	}

	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(page.Limit).
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// DeleteByShop removes every review of a shop.
func (repo *reviewRepository) DeleteByShop(ctx context.Context, shopID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Delete(&model.ReviewModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete reviews")
	}

	return nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		ShopID:    data.ShopID,
		UserEmail: data.UserEmail,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        data.ID,
		ShopID:    data.ShopID,
		UserEmail: data.UserEmail,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
	}
}
