package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mstore/storefront-backend/internal/app/service"
	apperrors "github.com/mstore/storefront-backend/internal/errors"
	"github.com/mstore/storefront-backend/internal/middleware"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

func parseCartID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "invalid cart id")
		return uuid.Nil, false
	}
	return id, true
}

// CreateCart creates an empty anonymous cart
// POST /api/v1/carts
func (ctrl *CartController) CreateCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	cart, err := ctrl.cartService.CreateCart()
	if err != nil {
		log.Error("Failed to create cart", err, nil)
		apperrors.InternalError(c, "failed to create cart")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"cart": toCartResponse(cart)})
}

// GetCart returns a cart with its items and totals
// GET /api/v1/carts/:id
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseCartID(c)
	if !ok {
		return
	}

	cart, err := ctrl.cartService.GetCart(id)
	if err != nil {
		if errors.Is(err, service.ErrCartNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "cart not found")
			return
		}
		log.Error("Failed to fetch cart", err, map[string]interface{}{
			"cart_id": id,
		})
		apperrors.InternalError(c, "failed to fetch cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": toCartResponse(cart)})
}

// DeleteCart deletes a cart and all of its items
// DELETE /api/v1/carts/:id
func (ctrl *CartController) DeleteCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseCartID(c)
	if !ok {
		return
	}

	if err := ctrl.cartService.DeleteCart(id); err != nil {
		if errors.Is(err, service.ErrCartNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "cart not found")
			return
		}
		log.Error("Failed to delete cart", err, map[string]interface{}{
			"cart_id": id,
		})
		apperrors.InternalError(c, "failed to delete cart")
		return
	}

	log.Info("Cart deleted", map[string]interface{}{
		"cart_id": id,
	})

	c.Status(http.StatusNoContent)
}

// AddCartItem adds a product to a cart, merging quantities for repeat adds
// POST /api/v1/carts/:id/items
func (ctrl *CartController) AddCartItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	cartID, ok := parseCartID(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFieldErrors(err))
		return
	}

	item, err := ctrl.cartService.AddItem(cartID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "cart not found")
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.RespondWithValidationError(c, map[string]string{
				"product_id": "product does not exist",
			})
		case errors.Is(err, service.ErrInvalidQuantity):
			apperrors.RespondWithValidationError(c, map[string]string{
				"quantity": "must be positive",
			})
		default:
			log.Error("Failed to add cart item", err, map[string]interface{}{
				"cart_id":    cartID,
				"product_id": req.ProductID,
			})
			apperrors.InternalError(c, "failed to add cart item")
		}
		return
	}

	log.Info("Cart item added", map[string]interface{}{
		"cart_id":      cartID,
		"cart_item_id": item.ID,
	})

	c.JSON(http.StatusCreated, gin.H{"item": toCartItemResponse(item)})
}

// UpdateCartItem replaces the quantity of a cart line
// PATCH /api/v1/carts/:id/items/:item_id
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	cartID, ok := parseCartID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFieldErrors(err))
		return
	}

	item, err := ctrl.cartService.UpdateItem(cartID, itemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartItemNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "cart item not found")
		case errors.Is(err, service.ErrInvalidQuantity):
			apperrors.RespondWithValidationError(c, map[string]string{
				"quantity": "must be positive",
			})
		default:
			log.Error("Failed to update cart item", err, map[string]interface{}{
				"cart_id":      cartID,
				"cart_item_id": itemID,
			})
			apperrors.InternalError(c, "failed to update cart item")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": toCartItemResponse(item)})
}

// DeleteCartItem removes a line from a cart
// DELETE /api/v1/carts/:id/items/:item_id
func (ctrl *CartController) DeleteCartItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	cartID, ok := parseCartID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	if err := ctrl.cartService.RemoveItem(cartID, itemID); err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "cart item not found")
			return
		}
		log.Error("Failed to delete cart item", err, map[string]interface{}{
			"cart_id":      cartID,
			"cart_item_id": itemID,
		})
		apperrors.InternalError(c, "failed to delete cart item")
		return
	}

	c.Status(http.StatusNoContent)
}
