package service

import (
	"errors"

	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/internal/app/repository"
	"github.com/mstore/storefront-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductInOrder    = errors.New("product is referenced by one or more order items")
	ErrInvalidUnitPrice  = errors.New("unit price must not be negative")
	ErrInvalidInventory  = errors.New("inventory must not be negative")
	ErrPromotionNotFound = errors.New("promotion not found")
)

type ProductInput struct {
	Title        string
	Slug         string
	Description  *string
	UnitPrice    decimal.Decimal
	Inventory    int
	CollectionID uint
	PromotionIDs []uint
}

// ProductUpdate carries only the fields the caller wants to change; nil
// fields keep their current values (partial update semantics).
type ProductUpdate struct {
	Title        *string
	Slug         *string
	Description  *string
	UnitPrice    *decimal.Decimal
	Inventory    *int
	CollectionID *uint
	PromotionIDs *[]uint
}

type ProductService interface {
	ListProducts(filter repository.ProductFilter) ([]model.Product, int64, error)
	GetProductByID(id uint) (*model.Product, error)
	CreateProduct(input ProductInput) (*model.Product, error)
	UpdateProduct(id uint, update ProductUpdate) (*model.Product, error)
	DeleteProduct(id uint) error
}

type productService struct {
	productRepo    repository.ProductRepository
	collectionRepo repository.CollectionRepository
	promotionRepo  repository.PromotionRepository
	db             *gorm.DB
}

func NewProductService(
	productRepo repository.ProductRepository,
	collectionRepo repository.CollectionRepository,
	promotionRepo repository.PromotionRepository,
	db *gorm.DB,
) ProductService {
	return &productService{
		productRepo:    productRepo,
		collectionRepo: collectionRepo,
		promotionRepo:  promotionRepo,
		db:             db,
	}
}

func (s *productService) ListProducts(filter repository.ProductFilter) ([]model.Product, int64, error) {
	return s.productRepo.FindWithFilter(filter)
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) validate(unitPrice decimal.Decimal, inventory int, collectionID uint) error {
	if unitPrice.IsNegative() {
		return ErrInvalidUnitPrice
	}
	if inventory < 0 {
		return ErrInvalidInventory
	}
	if _, err := s.collectionRepo.FindByID(collectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCollectionNotFound
		}
		return err
	}
	return nil
}

func (s *productService) resolvePromotions(ids []uint) ([]model.Promotion, error) {
	promotions, err := s.promotionRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(promotions) != len(ids) {
		return nil, ErrPromotionNotFound
	}
	return promotions, nil
}

func (s *productService) CreateProduct(input ProductInput) (*model.Product, error) {
	logger.Info("Creating product", map[string]interface{}{
		"title":         input.Title,
		"collection_id": input.CollectionID,
	})

	if err := s.validate(input.UnitPrice, input.Inventory, input.CollectionID); err != nil {
		return nil, err
	}
	promotions, err := s.resolvePromotions(input.PromotionIDs)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		Title:        input.Title,
		Slug:         input.Slug,
		Description:  input.Description,
		UnitPrice:    input.UnitPrice,
		Inventory:    input.Inventory,
		CollectionID: input.CollectionID,
		Promotions:   promotions,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return s.GetProductByID(product.ID)
}

func (s *productService) UpdateProduct(id uint, update ProductUpdate) (*model.Product, error) {
	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		product.Title = *update.Title
	}
	if update.Slug != nil {
		product.Slug = *update.Slug
	}
	if update.Description != nil {
		product.Description = update.Description
	}
	if update.UnitPrice != nil {
		product.UnitPrice = *update.UnitPrice
	}
	if update.Inventory != nil {
		product.Inventory = *update.Inventory
	}
	if update.CollectionID != nil {
		product.CollectionID = *update.CollectionID
	}

	if err := s.validate(product.UnitPrice, product.Inventory, product.CollectionID); err != nil {
		return nil, err
	}

	if update.PromotionIDs != nil {
		promotions, err := s.resolvePromotions(*update.PromotionIDs)
		if err != nil {
			return nil, err
		}
		if err := s.productRepo.ReplacePromotions(product, promotions); err != nil {
			return nil, err
		}
		product.Promotions = promotions
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return s.GetProductByID(id)
}

// DeleteProduct implements the per-relation delete policies in one
// transaction: order items protect the product, reviews and cart items
// cascade, and collections featuring it fall back to no featured product.
func (s *productService) DeleteProduct(id uint) error {
	if _, err := s.GetProductByID(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var orderItems int64
		if err := tx.Model(&model.OrderItem{}).Where("product_id = ?", id).Count(&orderItems).Error; err != nil {
			return err
		}
		if orderItems > 0 {
			logger.Warn("Product delete rejected: order items reference it", map[string]interface{}{
				"product_id":  id,
				"order_items": orderItems,
			})
			return ErrProductInOrder
		}

		if err := tx.Model(&model.Collection{}).
			Where("featured_product_id = ?", id).
			Update("featured_product_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM product_promotions WHERE product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, id).Error
	})
}
