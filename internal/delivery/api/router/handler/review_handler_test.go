package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"showmyshop/internal/domain/entity"
	domainerrors "showmyshop/internal/domain/errors"
	mockUsecase "showmyshop/internal/mocks/usecase"
	"showmyshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestReviewHandler(t *testing.T) (*ReviewHandler, *mockUsecase.MockReviewUsecase) {
	reviewUC := mockUsecase.NewMockReviewUsecase(t)

	return NewReviewHandler(ReviewHandlerParams{ReviewUC: reviewUC, Logger: newDiscardLogger()}), reviewUC
}

func TestReviewHandler_AddReview(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t)
	shopID := uuid.New()

	reviewUC.EXPECT().
		AddReview(mock.Anything, vendor, shopID, &usecase.AddReviewInput{UserEmail: vendor.Email, Rating: 5}).
		Return(&usecase.ReviewSummary{
			AverageRating: 4,
			RatingsCount:  2,
			Reviews:       []*entity.Review{{ID: uuid.New(), ShopID: shopID, UserEmail: vendor.Email, Rating: 5}},
		}, nil)

	rec := serve(t, h.AddReview, request{
		method: http.MethodPost,
		target: "/api/shops/" + shopID.String() + "/reviews",
		body:   `{"userEmail":"vendor@example.com","rating":5}`,
		params: map[string]string{"id": shopID.String()},
		caller: vendor,
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var summary usecase.ReviewSummary
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &summary))
	assert.Equal(t, 4.0, summary.AverageRating)
	assert.Equal(t, 2, summary.RatingsCount)
	require.Len(t, summary.Reviews, 1)
	assert.Empty(t, summary.Reviews[0].Comment)
}

func TestReviewHandler_AddReview_MissingRating(t *testing.T) {
	h, _ := newTestReviewHandler(t)
	shopID := uuid.New()

	rec := serve(t, h.AddReview, request{
		method: http.MethodPost,
		target: "/api/shops/" + shopID.String() + "/reviews",
		body:   `{"userEmail":"vendor@example.com","comment":"nice"}`,
		params: map[string]string{"id": shopID.String()},
		caller: vendor,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestReviewHandler_AddReview_OutOfRange(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t)
	shopID := uuid.New()

	reviewUC.EXPECT().AddReview(mock.Anything, vendor, shopID, mock.Anything).Return(nil, domainerrors.ErrInvalidRating)

	rec := serve(t, h.AddReview, request{
		method: http.MethodPost,
		target: "/api/shops/" + shopID.String() + "/reviews",
		body:   `{"userEmail":"vendor@example.com","rating":7}`,
		params: map[string]string{"id": shopID.String()},
		caller: vendor,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestReviewHandler_ListReviews(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t)
	shopID := uuid.New()

	reviewUC.EXPECT().
		ListReviews(mock.Anything, shopID, &usecase.ListReviewsInput{Limit: 5, Cursor: "abc"}).
		Return(&usecase.ReviewSummary{Reviews: []*entity.Review{}, NextCursor: "def"}, nil)

	rec := serve(t, h.ListReviews, request{
		method: http.MethodGet,
		target: "/api/shops/" + shopID.String() + "/reviews?limit=5&cursor=abc",
		params: map[string]string{"id": shopID.String()},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"averageRating":0,"ratingsCount":0,"reviews":[],"nextCursor":"def"}`, string(decode(t, rec).Data))
}

func TestReviewHandler_ListReviews_InvalidCursor(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t)
	shopID := uuid.New()

	reviewUC.EXPECT().ListReviews(mock.Anything, shopID, mock.Anything).Return(nil, domainerrors.ErrInvalidCursor)

	rec := serve(t, h.ListReviews, request{
		method: http.MethodGet,
		target: "/api/shops/" + shopID.String() + "/reviews?cursor=%25%25",
		params: map[string]string{"id": shopID.String()},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CURSOR", decode(t, rec).Error.Code)
}

func TestReviewHandler_ListReviews_BadLimit(t *testing.T) {
	h, _ := newTestReviewHandler(t)
	shopID := uuid.New()

	rec := serve(t, h.ListReviews, request{
		method: http.MethodGet,
		target: "/api/shops/" + shopID.String() + "/reviews?limit=ten",
		params: map[string]string{"id": shopID.String()},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
