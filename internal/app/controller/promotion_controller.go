package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mstore/storefront-backend/internal/app/service"
	apperrors "github.com/mstore/storefront-backend/internal/errors"
	"github.com/mstore/storefront-backend/internal/middleware"
)

type PromotionController struct {
	promotionService service.PromotionService
}

func NewPromotionController(promotionService service.PromotionService) *PromotionController {
	return &PromotionController{
		promotionService: promotionService,
	}
}

type PromotionRequest struct {
	Description string  `json:"description" binding:"required,max=255"`
	Discount    float64 `json:"discount" binding:"gte=0"`
}

// GetPromotions returns all promotions
// GET /api/v1/promotions
func (ctrl *PromotionController) GetPromotions(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	promotions, err := ctrl.promotionService.ListPromotions()
	if err != nil {
		log.Error("Failed to fetch promotions", err, nil)
		apperrors.InternalError(c, "failed to fetch promotions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"promotions": promotions,
		"count":      len(promotions),
	})
}

// GetPromotionByID returns a single promotion
// GET /api/v1/promotions/:id
func (ctrl *PromotionController) GetPromotionByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	promotion, err := ctrl.promotionService.GetPromotionByID(id)
	if err != nil {
		if errors.Is(err, service.ErrPromotionNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "promotion not found")
			return
		}
		log.Error("Failed to fetch promotion", err, map[string]interface{}{
			"promotion_id": id,
		})
		apperrors.InternalError(c, "failed to fetch promotion")
		return
	}

	c.JSON(http.StatusOK, gin.H{"promotion": promotion})
}

// CreatePromotion creates a new promotion
// POST /api/v1/promotions
func (ctrl *PromotionController) CreatePromotion(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFieldErrors(err))
		return
	}

	promotion, err := ctrl.promotionService.CreatePromotion(service.PromotionInput{
		Description: req.Description,
		Discount:    req.Discount,
	})
	if err != nil {
		log.Error("Failed to create promotion", err, nil)
		apperrors.InternalError(c, "failed to create promotion")
		return
	}

	log.Info("Promotion created", map[string]interface{}{
		"promotion_id": promotion.ID,
	})

	c.JSON(http.StatusCreated, gin.H{"promotion": promotion})
}

// UpdatePromotion updates an existing promotion
// PUT /api/v1/promotions/:id
func (ctrl *PromotionController) UpdatePromotion(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFieldErrors(err))
		return
	}

	promotion, err := ctrl.promotionService.UpdatePromotion(id, service.PromotionInput{
		Description: req.Description,
		Discount:    req.Discount,
	})
	if err != nil {
		if errors.Is(err, service.ErrPromotionNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "promotion not found")
			return
		}
		log.Error("Failed to update promotion", err, map[string]interface{}{
			"promotion_id": id,
		})
		apperrors.InternalError(c, "failed to update promotion")
		return
	}

	c.JSON(http.StatusOK, gin.H{"promotion": promotion})
}

// DeletePromotion deletes a promotion and detaches it from products
// DELETE /api/v1/promotions/:id
func (ctrl *PromotionController) DeletePromotion(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.promotionService.DeletePromotion(id); err != nil {
		if errors.Is(err, service.ErrPromotionNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "promotion not found")
			return
		}
		log.Error("Failed to delete promotion", err, map[string]interface{}{
			"promotion_id": id,
		})
		apperrors.InternalError(c, "failed to delete promotion")
		return
	}

	c.Status(http.StatusNoContent)
}
