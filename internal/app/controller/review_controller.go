package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mstore/storefront-backend/internal/app/service"
	apperrors "github.com/mstore/storefront-backend/internal/errors"
	"github.com/mstore/storefront-backend/internal/middleware"
)

// ReviewController serves reviews nested under a product. The product comes
// from the URL path only; a product id in the body is ignored.
type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

type ReviewRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
}

// GetReviews returns all reviews of a product
// GET /api/v1/products/:id/reviews
func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reviews, err := ctrl.reviewService.ListReviews(productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "product not found")
			return
		}
		log.Error("Failed to fetch reviews", err, map[string]interface{}{
			"product_id": productID,
		})
		apperrors.InternalError(c, "failed to fetch reviews")
		return
	}

	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, toReviewResponse(&reviews[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": out,
		"count":   len(out),
	})
}

// GetReviewByID returns one review of a product
// GET /api/v1/products/:id/reviews/:review_id
func (ctrl *ReviewController) GetReviewByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	reviewID, ok := parseIDParam(c, "review_id")
	if !ok {
		return
	}

	review, err := ctrl.reviewService.GetReview(productID, reviewID)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "review not found")
			return
		}
		log.Error("Failed to fetch review", err, map[string]interface{}{
			"product_id": productID,
			"review_id":  reviewID,
		})
		apperrors.InternalError(c, "failed to fetch review")
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": toReviewResponse(review)})
}

// CreateReview creates a review under a product
// POST /api/v1/products/:id/reviews
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFieldErrors(err))
		return
	}

	review, err := ctrl.reviewService.CreateReview(productID, service.ReviewInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "product not found")
			return
		}
		log.Error("Failed to create review", err, map[string]interface{}{
			"product_id": productID,
		})
		apperrors.InternalError(c, "failed to create review")
		return
	}

	log.Info("Review created", map[string]interface{}{
		"review_id":  review.ID,
		"product_id": productID,
	})

	c.JSON(http.StatusCreated, gin.H{"review": toReviewResponse(review)})
}

// UpdateReview updates a review of a product
// PUT /api/v1/products/:id/reviews/:review_id
func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	reviewID, ok := parseIDParam(c, "review_id")
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFieldErrors(err))
		return
	}

	review, err := ctrl.reviewService.UpdateReview(productID, reviewID, service.ReviewInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "review not found")
			return
		}
		log.Error("Failed to update review", err, map[string]interface{}{
			"product_id": productID,
			"review_id":  reviewID,
		})
		apperrors.InternalError(c, "failed to update review")
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": toReviewResponse(review)})
}

// DeleteReview deletes a review of a product
// DELETE /api/v1/products/:id/reviews/:review_id
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	reviewID, ok := parseIDParam(c, "review_id")
	if !ok {
		return
	}

	if err := ctrl.reviewService.DeleteReview(productID, reviewID); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "review not found")
			return
		}
		log.Error("Failed to delete review", err, map[string]interface{}{
			"product_id": productID,
			"review_id":  reviewID,
		})
		apperrors.InternalError(c, "failed to delete review")
		return
	}

	c.Status(http.StatusNoContent)
}
