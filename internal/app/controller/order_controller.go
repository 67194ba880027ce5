package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/internal/app/service"
	apperrors "github.com/mstore/storefront-backend/internal/errors"
	"github.com/mstore/storefront-backend/internal/middleware"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

type CreateOrderRequest struct {
	CustomerID uint                     `json:"customer_id" binding:"required"`
	Items      []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type CreateOrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

type UpdateOrderRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=pending complete failed"`
}

// GetOrders returns all orders, optionally scoped to one customer
// GET /api/v1/orders?customer_id=
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var customerID *uint
	if raw := c.Query("customer_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidID, "customer_id must be a positive integer")
			return
		}
		cid := uint(id)
		customerID = &cid
	}

	orders, err := ctrl.orderService.ListOrders(customerID)
	if err != nil {
		log.Error("Failed to fetch orders", err, nil)
		apperrors.InternalError(c, "failed to fetch orders")
		return
	}

	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": out,
		"count":  len(out),
	})
}

// GetOrderByID returns a single order with its items
// GET /api/v1/orders/:id
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := ctrl.orderService.GetOrderByID(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "order not found")
			return
		}
		log.Error("Failed to fetch order", err, map[string]interface{}{
			"order_id": id,
		})
		apperrors.InternalError(c, "failed to fetch order")
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": toOrderResponse(order)})
}

// CreateOrder places an order, snapshotting each product's current price
// POST /api/v1/orders
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFieldErrors(err))
		return
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := ctrl.orderService.CreateOrder(req.CustomerID, items)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCustomerNotFound):
			apperrors.RespondWithValidationError(c, map[string]string{
				"customer_id": "customer does not exist",
			})
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.RespondWithValidationError(c, map[string]string{
				"items": "one or more products do not exist",
			})
		case errors.Is(err, service.ErrEmptyOrder):
			apperrors.RespondWithValidationError(c, map[string]string{
				"items": "order must contain at least one item",
			})
		case errors.Is(err, service.ErrInvalidQuantity):
			apperrors.RespondWithValidationError(c, map[string]string{
				"items": "quantities must be positive",
			})
		default:
			log.Error("Failed to create order", err, map[string]interface{}{
				"customer_id": req.CustomerID,
			})
			apperrors.InternalError(c, "failed to create order")
		}
		return
	}

	log.Info("Order placed", map[string]interface{}{
		"order_id":    order.ID,
		"customer_id": order.CustomerID,
		"item_count":  len(order.OrderItems),
	})

	c.JSON(http.StatusCreated, gin.H{"order": toOrderResponse(order)})
}

// UpdateOrder changes an order's payment status
// PATCH /api/v1/orders/:id
func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFieldErrors(err))
		return
	}

	if err := ctrl.orderService.UpdatePaymentStatus(id, model.PaymentStatus(req.PaymentStatus)); err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "order not found")
		case errors.Is(err, service.ErrInvalidPaymentStatus):
			apperrors.RespondWithValidationError(c, map[string]string{
				"payment_status": "must be pending, complete or failed",
			})
		default:
			log.Error("Failed to update order", err, map[string]interface{}{
				"order_id": id,
			})
			apperrors.InternalError(c, "failed to update order")
		}
		return
	}

	order, err := ctrl.orderService.GetOrderByID(id)
	if err != nil {
		log.Error("Failed to reload order", err, map[string]interface{}{
			"order_id": id,
		})
		apperrors.InternalError(c, "failed to fetch order")
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": toOrderResponse(order)})
}

// DeleteOrder deletes an order; refused while it still has items
// DELETE /api/v1/orders/:id
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.orderService.DeleteOrder(id); err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "order not found")
		case errors.Is(err, service.ErrOrderHasItems):
			apperrors.Conflict(c, apperrors.OrderHasItems, "order still has items")
		default:
			log.Error("Failed to delete order", err, map[string]interface{}{
				"order_id": id,
			})
			apperrors.InternalError(c, "failed to delete order")
		}
		return
	}

	log.Info("Order deleted", map[string]interface{}{
		"order_id": id,
	})

	c.Status(http.StatusNoContent)
}
