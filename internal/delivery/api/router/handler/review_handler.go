package handler

import (
	"log/slog"
	"net/http"

	"showmyshop/internal/delivery/api/response"
	"showmyshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// AddReviewRequest represents the request body for rating a shop
type AddReviewRequest struct {
	UserEmail string `json:"userEmail" validate:"required"`
	Rating    int    `json:"rating" validate:"required"`
	Comment   string `json:"comment"`
}

// ListReviewsRequest represents the review page query
type ListReviewsRequest struct {
	Limit  int    `query:"limit"`
	Cursor string `query:"cursor"`
}

// AddReview handles adding a review to a shop
func (h *ReviewHandler) AddReview(c echo.Context) error {
	caller, err := requireCaller(c)
	if err != nil {
		return err
	}

	shopID, err := shopIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	summary, err := h.reviewUC.AddReview(c.Request().Context(), caller, shopID, &usecase.AddReviewInput{
		UserEmail: req.UserEmail,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, summary)
}

// ListReviews handles retrieving the aggregate and a page of reviews
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	shopID, err := shopIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ListReviewsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid page parameters")
	}

	summary, err := h.reviewUC.ListReviews(c.Request().Context(), shopID, &usecase.ListReviewsInput{
		Limit:  req.Limit,
		Cursor: req.Cursor,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
