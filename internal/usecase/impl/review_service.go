package impl

import (
	"context"
	"log/slog"

	"showmyshop/internal/domain/constants"
	"showmyshop/internal/domain/entity"
	domainerrors "showmyshop/internal/domain/errors"
	"showmyshop/internal/domain/repository"
	"showmyshop/internal/domain/service"
	"showmyshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	shopRepo   repository.ShopRepository
	reviewRepo repository.ReviewRepository
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	shopRepo repository.ShopRepository,
	reviewRepo repository.ReviewRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  txManager,
		shopRepo:   shopRepo,
		reviewRepo: reviewRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// AddReview records a rating and folds it into the shop aggregate. The
// aggregate is updated by the store in one atomic write, so concurrent
// reviews never lose an update.
func (srv *reviewService) AddReview(ctx context.Context, caller *entity.Caller, shopID uuid.UUID, input *usecase.AddReviewInput) (*usecase.ReviewSummary, error) {
	if input.UserEmail == "" {
		return nil, domainerrors.ErrValidationFailed
	}
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, domainerrors.ErrInvalidRating
	}

	if !caller.ActsAs(input.UserEmail) {
		return nil, errors.Wrap(domainerrors.ErrReviewerMismatch, "user email does not match caller")
	}

	review := &entity.Review{
		ID:        uuid.New(),
		ShopID:    shopID,
		UserEmail: input.UserEmail,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	var (
		shop   *entity.Shop
		recent []*entity.Review
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		updated, err := repoFactory.ShopRepo().ApplyRating(ctx, shopID, input.Rating)
		if err != nil {
			return err
		}
		shop = updated

		if err := repoFactory.ReviewRepo().Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		recent, err = repoFactory.ReviewRepo().ListByShop(ctx, shopID, entity.ReviewPage{Limit: constants.RecentReviewsLimit})
		if err != nil {
			return errors.Wrap(err, "failed to list recent reviews")
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrShopNotFound):
			return nil, domainerrors.ErrShopNotFound
		case errors.Is(err, domainerrors.ErrInvalidRating):
			return nil, domainerrors.ErrInvalidRating
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add review")
	}

	srv.logger.InfoContext(ctx, "Review added",
		slog.String("shop_id", shopID.String()),
		slog.Int("rating", input.Rating),
		slog.Float64("average_rating", shop.AverageRating),
		slog.Int("ratings_count", shop.RatingsCount),
	)

	publishEvent(ctx, srv.publisher, srv.logger, &service.ShopEvent{
		Topic:         constants.TopicReviewAdded,
		ShopID:        shopID.String(),
		Rating:        input.Rating,
		AverageRating: shop.AverageRating,
		RatingsCount:  shop.RatingsCount,
	})

	return &usecase.ReviewSummary{
		AverageRating: shop.AverageRating,
		RatingsCount:  shop.RatingsCount,
		Reviews:       nonNilReviews(recent),
	}, nil
}

// ListReviews returns the aggregate and one page of reviews, newest first.
func (srv *reviewService) ListReviews(ctx context.Context, shopID uuid.UUID, input *usecase.ListReviewsInput) (*usecase.ReviewSummary, error) {
	page := entity.ReviewPage{Limit: clampReviewLimit(input.Limit)}

	if input.Cursor != "" {
		after, err := entity.DecodeReviewCursor(input.Cursor)
		if err != nil {
			return nil, domainerrors.ErrInvalidCursor
		}
		page.After = after
	}

	shop, err := srv.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find shop")
	}

	// One extra row tells whether another page exists.
	limit := page.Limit
	page.Limit++

	reviews, err := srv.reviewRepo.ListByShop(ctx, shopID, page)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list reviews")
	}

	summary := &usecase.ReviewSummary{
		AverageRating: shop.AverageRating,
		RatingsCount:  shop.RatingsCount,
	}

	if len(reviews) > limit {
		reviews = reviews[:limit]
		summary.NextCursor = entity.CursorAfter(reviews[limit-1]).Encode()
	}
	summary.Reviews = nonNilReviews(reviews)

	return summary, nil
}

func clampReviewLimit(limit int) int {
	switch {
	case limit <= 0:
		return constants.DefaultReviewsLimit
	case limit > constants.MaxReviewsLimit:
		return constants.MaxReviewsLimit
	default:
		return limit
	}
}

func nonNilReviews(reviews []*entity.Review) []*entity.Review {
	if reviews == nil {
		return []*entity.Review{}
	}

	return reviews
}
