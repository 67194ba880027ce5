package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/internal/app/repository"
	"github.com/mstore/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)

type CartService interface {
	CreateCart() (*model.Cart, error)
	GetCart(id uuid.UUID) (*model.Cart, error)
	DeleteCart(id uuid.UUID) error
	AddItem(cartID uuid.UUID, productID uint, quantity int) (*model.CartItem, error)
	UpdateItem(cartID uuid.UUID, itemID uint, quantity int) (*model.CartItem, error)
	RemoveItem(cartID uuid.UUID, itemID uint) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
}

func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	db *gorm.DB,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		db:          db,
	}
}

func (s *cartService) CreateCart() (*model.Cart, error) {
	cart := &model.Cart{}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}
	logger.Info("Cart created", map[string]interface{}{
		"cart_id": cart.ID,
	})
	return cart, nil
}

func (s *cartService) GetCart(id uuid.UUID) (*model.Cart, error) {
	cart, err := s.cartRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return cart, nil
}

// DeleteCart removes the cart and cascades to its items.
func (s *cartService) DeleteCart(id uuid.UUID) error {
	if _, err := s.GetCart(id); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", id).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Cart{}, "id = ?", id).Error
	})
}

// AddItem merges the quantity into an existing line for the same product
// instead of creating a duplicate row.
func (s *cartService) AddItem(cartID uuid.UUID, productID uint, quantity int) (*model.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if _, err := s.GetCart(cartID); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	existing, err := s.cartRepo.FindItemByCartAndProduct(cartID, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.Quantity += quantity
		if err := s.cartRepo.UpdateItem(existing); err != nil {
			return nil, err
		}
		logger.Debug("Cart item quantity merged", map[string]interface{}{
			"cart_item_id": existing.ID,
			"quantity":     existing.Quantity,
		})
		return s.cartRepo.FindItemByID(existing.ID)
	}

	item := &model.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.CreateItem(item); err != nil {
		return nil, err
	}
	return s.cartRepo.FindItemByID(item.ID)
}

func (s *cartService) UpdateItem(cartID uuid.UUID, itemID uint, quantity int) (*model.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.cartRepo.FindItemByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	if item.CartID != cartID {
		return nil, ErrCartItemNotFound
	}

	item.Quantity = quantity
	if err := s.cartRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return s.cartRepo.FindItemByID(item.ID)
}

func (s *cartService) RemoveItem(cartID uuid.UUID, itemID uint) error {
	item, err := s.cartRepo.FindItemByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartItemNotFound
		}
		return err
	}
	if item.CartID != cartID {
		return ErrCartItemNotFound
	}
	return s.cartRepo.DeleteItem(itemID)
}
