package service

import (
	"errors"

	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/internal/app/repository"
	"github.com/mstore/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderHasItems        = errors.New("order is referenced by one or more order items")
	ErrEmptyOrder           = errors.New("order must contain at least one item")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

type OrderItemInput struct {
	ProductID uint
	Quantity  int
}

type OrderService interface {
	ListOrders(customerID *uint) ([]model.Order, error)
	GetOrderByID(id uint) (*model.Order, error)
	CreateOrder(customerID uint, items []OrderItemInput) (*model.Order, error)
	UpdatePaymentStatus(id uint, status model.PaymentStatus) error
	DeleteOrder(id uint) error
}

type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	db           *gorm.DB
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	db *gorm.DB,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		db:           db,
	}
}

func (s *orderService) ListOrders(customerID *uint) ([]model.Order, error) {
	if customerID != nil {
		return s.orderRepo.FindByCustomerID(*customerID)
	}
	return s.orderRepo.FindAll()
}

func (s *orderService) GetOrderByID(id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// CreateOrder persists the order and its items atomically, snapshotting
// each product's unit price at order time.
func (s *orderService) CreateOrder(customerID uint, items []OrderItemInput) (*model.Order, error) {
	logger.Info("Creating order", map[string]interface{}{
		"customer_id": customerID,
		"item_count":  len(items),
	})

	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	if _, err := s.customerRepo.FindByID(customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	var orderID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order := &model.Order{
			CustomerID:    customerID,
			PaymentStatus: model.PaymentStatusPending,
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, item := range items {
			var product model.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return err
			}

			orderItem := &model.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.UnitPrice,
			}
			if err := tx.Create(orderItem).Error; err != nil {
				return err
			}
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		logger.Error("Failed to create order", err, map[string]interface{}{
			"customer_id": customerID,
		})
		return nil, err
	}

	return s.GetOrderByID(orderID)
}

func (s *orderService) UpdatePaymentStatus(id uint, status model.PaymentStatus) error {
	switch status {
	case model.PaymentStatusPending, model.PaymentStatusComplete, model.PaymentStatusFailed:
	default:
		return ErrInvalidPaymentStatus
	}

	if err := s.orderRepo.UpdatePaymentStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

// DeleteOrder enforces the protect rule on order items: an order still
// carrying items can not be removed.
func (s *orderService) DeleteOrder(id uint) error {
	if _, err := s.GetOrderByID(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var items int64
		if err := tx.Model(&model.OrderItem{}).Where("order_id = ?", id).Count(&items).Error; err != nil {
			return err
		}
		if items > 0 {
			logger.Warn("Order delete rejected: items still attached", map[string]interface{}{
				"order_id": id,
				"items":    items,
			})
			return ErrOrderHasItems
		}
		return tx.Delete(&model.Order{}, id).Error
	})
}
