package repository

import (
	"github.com/google/uuid"
	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

type CartRepository interface {
	Create(cart *model.Cart) error
	FindByID(id uuid.UUID) (*model.Cart, error)
	CreateItem(item *model.CartItem) error
	FindItemByID(id uint) (*model.CartItem, error)
	FindItemByCartAndProduct(cartID uuid.UUID, productID uint) (*model.CartItem, error)
	UpdateItem(item *model.CartItem) error
	DeleteItem(id uint) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(cart *model.Cart) error {
	if err := r.db.Create(cart).Error; err != nil {
		logger.Error("Failed to create cart", err, nil)
		return err
	}
	logger.Debug("Cart created", map[string]interface{}{
		"cart_id": cart.ID,
	})
	return nil
}

func (r *cartRepository) FindByID(id uuid.UUID) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.Preload("Items").Preload("Items.Product").First(&cart, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) CreateItem(item *model.CartItem) error {
	if err := r.db.Create(item).Error; err != nil {
		logger.Error("Failed to create cart item", err, map[string]interface{}{
			"cart_id":    item.CartID,
			"product_id": item.ProductID,
		})
		return err
	}
	return nil
}

func (r *cartRepository) FindItemByID(id uint) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.Preload("Product").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) FindItemByCartAndProduct(cartID uuid.UUID, productID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) UpdateItem(item *model.CartItem) error {
	if err := r.db.Save(item).Error; err != nil {
		logger.Error("Failed to update cart item", err, map[string]interface{}{
			"cart_item_id": item.ID,
		})
		return err
	}
	return nil
}

func (r *cartRepository) DeleteItem(id uint) error {
	if err := r.db.Delete(&model.CartItem{}, id).Error; err != nil {
		logger.Error("Failed to delete cart item", err, map[string]interface{}{
			"cart_item_id": id,
		})
		return err
	}
	return nil
}
