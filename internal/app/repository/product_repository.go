package repository

import (
	"fmt"
	"strings"

	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductSort string

const (
	ProductSortUnitPrice  ProductSort = "unit_price"
	ProductSortLastUpdate ProductSort = "last_update"
)

type ProductFilter struct {
	CollectionID  *uint
	UnitPriceMin  *decimal.Decimal
	UnitPriceMax  *decimal.Decimal
	Search        string
	SortBy        ProductSort
	SortAscending bool
	Pagination    Pagination
}

type ProductRepository interface {
	Create(product *model.Product) error
	BulkCreate(products []model.Product, batchSize int) error
	FindWithFilter(filter ProductFilter) ([]model.Product, int64, error)
	FindByID(id uint) (*model.Product, error)
	Update(product *model.Product) error
	ReplacePromotions(product *model.Product, promotions []model.Promotion) error
	CountOrderItems(productID uint) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product", err, map[string]interface{}{
			"title":         product.Title,
			"collection_id": product.CollectionID,
		})
		return err
	}
	logger.Debug("Product created", map[string]interface{}{
		"product_id": product.ID,
		"title":      product.Title,
	})
	return nil
}

func (r *productRepository) BulkCreate(products []model.Product, batchSize int) error {
	if len(products) == 0 {
		return nil
	}
	if err := r.db.CreateInBatches(products, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create products", err, map[string]interface{}{
			"count": len(products),
		})
		return err
	}
	logger.Info("Products bulk created", map[string]interface{}{
		"count": len(products),
	})
	return nil
}

func (r *productRepository) FindWithFilter(filter ProductFilter) ([]model.Product, int64, error) {
	logger.Debug("Finding products with filter", map[string]interface{}{
		"collection_id": filter.CollectionID,
		"search":        filter.Search,
		"sort_by":       filter.SortBy,
		"ascending":     filter.SortAscending,
	})

	query := r.db.Model(&model.Product{}).Preload("Collection").Preload("Promotions")

	if filter.CollectionID != nil {
		query = query.Where("collection_id = ?", *filter.CollectionID)
	}
	if filter.UnitPriceMin != nil {
		query = query.Where("unit_price >= ?", *filter.UnitPriceMin)
	}
	if filter.UnitPriceMax != nil {
		query = query.Where("unit_price <= ?", *filter.UnitPriceMax)
	}
	if filter.Search != "" {
		// case-insensitive on both backends
		like := fmt.Sprintf("%%%s%%", strings.ToLower(filter.Search))
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count products", err, nil)
		return nil, 0, err
	}

	switch filter.SortBy {
	case ProductSortUnitPrice, ProductSortLastUpdate:
		direction := "DESC"
		if filter.SortAscending {
			direction = "ASC"
		}
		query = query.Order(string(filter.SortBy) + " " + direction)
	default:
		// Products list alphabetically unless the caller orders otherwise.
		query = query.Order("title ASC")
	}

	page := filter.Pagination.Normalize()
	query = query.Limit(page.Limit()).Offset(page.Offset())

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		logger.Error("Failed to find products with filter", err, map[string]interface{}{
			"search": filter.Search,
		})
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Collection").Preload("Promotions").First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(product *model.Product) error {
	if err := r.db.Save(product).Error; err != nil {
		logger.Error("Failed to update product", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}

func (r *productRepository) ReplacePromotions(product *model.Product, promotions []model.Promotion) error {
	return r.db.Model(product).Association("Promotions").Replace(promotions)
}

func (r *productRepository) CountOrderItems(productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.OrderItem{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}
