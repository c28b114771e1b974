package usecase

import (
	"context"

	"showmyshop/internal/domain/entity"

	"github.com/google/uuid"
)

// AddReviewInput represents the input for rating a shop
type AddReviewInput struct {
	UserEmail string `json:"userEmail"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// ListReviewsInput selects a page of reviews
type ListReviewsInput struct {
	Limit  int
	Cursor string
}

// ReviewSummary is a shop's rating aggregate with a window of its reviews, newest first.
type ReviewSummary struct {
	AverageRating float64          `json:"averageRating"`
	RatingsCount  int              `json:"ratingsCount"`
	Reviews       []*entity.Review `json:"reviews"`
	NextCursor    string           `json:"nextCursor"`
}

// ReviewUsecase defines the interface for reviews and the rating aggregate
type ReviewUsecase interface {
	AddReview(ctx context.Context, caller *entity.Caller, shopID uuid.UUID, input *AddReviewInput) (*ReviewSummary, error)
	ListReviews(ctx context.Context, shopID uuid.UUID, input *ListReviewsInput) (*ReviewSummary, error)
}
