package repository

import (
	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

type OrderRepository interface {
	FindAll() ([]model.Order, error)
	FindByID(id uint) (*model.Order, error)
	FindByCustomerID(customerID uint) ([]model.Order, error)
	UpdatePaymentStatus(id uint, status model.PaymentStatus) error
	CountItems(orderID uint) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) base() *gorm.DB {
	return r.db.Model(&model.Order{}).Preload("OrderItems").Preload("OrderItems.Product")
}

func (r *orderRepository) FindAll() ([]model.Order, error) {
	var orders []model.Order
	if err := r.base().Order("placed_at DESC").Find(&orders).Error; err != nil {
		logger.Error("Failed to list orders", err, nil)
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	if err := r.base().First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByCustomerID(customerID uint) ([]model.Order, error) {
	var orders []model.Order
	err := r.base().Where("customer_id = ?", customerID).Order("placed_at DESC").Find(&orders).Error
	if err != nil {
		logger.Error("Failed to list customer orders", err, map[string]interface{}{
			"customer_id": customerID,
		})
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdatePaymentStatus(id uint, status model.PaymentStatus) error {
	result := r.db.Model(&model.Order{}).Where("id = ?", id).Update("payment_status", status)
	if result.Error != nil {
		logger.Error("Failed to update payment status", result.Error, map[string]interface{}{
			"order_id": id,
			"status":   status,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepository) CountItems(orderID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.OrderItem{}).Where("order_id = ?", orderID).Count(&count).Error
	return count, err
}
