package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mstore/storefront-backend/internal/app/repository"
	"github.com/mstore/storefront-backend/internal/app/service"
	apperrors "github.com/mstore/storefront-backend/internal/errors"
	"github.com/mstore/storefront-backend/internal/middleware"
	"github.com/shopspring/decimal"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

type CreateProductRequest struct {
	Title        string  `json:"title" binding:"required,max=255"`
	Slug         string  `json:"slug" binding:"required,max=255"`
	Description  *string `json:"description"`
	UnitPrice    string  `json:"unit_price" binding:"required"`
	Inventory    int     `json:"inventory" binding:"gte=0"`
	CollectionID uint    `json:"collection" binding:"required"`
	PromotionIDs []uint  `json:"promotions"`
}

type UpdateProductRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=255"`
	Slug         *string `json:"slug" binding:"omitempty,max=255"`
	Description  *string `json:"description"`
	UnitPrice    *string `json:"unit_price"`
	Inventory    *int    `json:"inventory" binding:"omitempty,gte=0"`
	CollectionID *uint   `json:"collection"`
	PromotionIDs *[]uint `json:"promotions"`
}

// parseProductFilter maps list query parameters onto a repository filter.
// Supported: collection_id, unit_price_min, unit_price_max, search,
// ordering (unit_price, last_update, prefix "-" for descending),
// page, page_size.
func parseProductFilter(c *gin.Context) (repository.ProductFilter, error) {
	var filter repository.ProductFilter

	if raw := c.Query("collection_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, errors.New("collection_id must be a positive integer")
		}
		cid := uint(id)
		filter.CollectionID = &cid
	}
	if raw := c.Query("unit_price_min"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, errors.New("unit_price_min must be a decimal number")
		}
		filter.UnitPriceMin = &min
	}
	if raw := c.Query("unit_price_max"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, errors.New("unit_price_max must be a decimal number")
		}
		filter.UnitPriceMax = &max
	}
	filter.Search = c.Query("search")

	if ordering := c.Query("ordering"); ordering != "" {
		ascending := true
		if ordering[0] == '-' {
			ascending = false
			ordering = ordering[1:]
		}
		switch repository.ProductSort(ordering) {
		case repository.ProductSortUnitPrice, repository.ProductSortLastUpdate:
			filter.SortBy = repository.ProductSort(ordering)
			filter.SortAscending = ascending
		default:
			return filter, errors.New("ordering must be unit_price or last_update")
		}
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	filter.Pagination = repository.Pagination{Page: page, PageSize: pageSize}

	return filter, nil
}

// GetProducts returns a filtered, paginated product page
// GET /api/v1/products
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	filter, err := parseProductFilter(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	products, total, err := ctrl.productService.ListProducts(filter)
	if err != nil {
		log.Error("Failed to fetch products", err, nil)
		apperrors.InternalError(c, "failed to fetch products")
		return
	}

	page := filter.Pagination.Normalize()

	c.JSON(http.StatusOK, gin.H{
		"products":  toProductResponses(products),
		"total":     total,
		"page":      page.Page,
		"page_size": page.PageSize,
	})
}

// GetProductByID returns a single product
// GET /api/v1/products/:id
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := ctrl.productService.GetProductByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "product not found")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": toProductResponse(product)})
}

// CreateProduct creates a new product
// POST /api/v1/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFieldErrors(err))
		return
	}

	unitPrice, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		apperrors.RespondWithValidationError(c, map[string]string{
			"unit_price": "must be a decimal number",
		})
		return
	}

	product, err := ctrl.productService.CreateProduct(service.ProductInput{
		Title:        req.Title,
		Slug:         req.Slug,
		Description:  req.Description,
		UnitPrice:    unitPrice,
		Inventory:    req.Inventory,
		CollectionID: req.CollectionID,
		PromotionIDs: req.PromotionIDs,
	})
	if err != nil {
		if respondProductInputError(c, err) {
			return
		}
		log.Error("Failed to create product", err, nil)
		apperrors.InternalError(c, "failed to create product")
		return
	}

	log.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
	})

	c.JSON(http.StatusCreated, gin.H{"product": toProductResponse(product)})
}

// UpdateProduct partially updates a product; absent fields are untouched
// PATCH /api/v1/products/:id
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFieldErrors(err))
		return
	}

	update := service.ProductUpdate{
		Title:        req.Title,
		Slug:         req.Slug,
		Description:  req.Description,
		Inventory:    req.Inventory,
		CollectionID: req.CollectionID,
		PromotionIDs: req.PromotionIDs,
	}
	if req.UnitPrice != nil {
		unitPrice, err := decimal.NewFromString(*req.UnitPrice)
		if err != nil {
			apperrors.RespondWithValidationError(c, map[string]string{
				"unit_price": "must be a decimal number",
			})
			return
		}
		update.UnitPrice = &unitPrice
	}

	product, err := ctrl.productService.UpdateProduct(id, update)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "product not found")
			return
		}
		if respondProductInputError(c, err) {
			return
		}
		log.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "failed to update product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": toProductResponse(product)})
}

// DeleteProduct deletes a product; refused while order items reference it
// DELETE /api/v1/products/:id
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.productService.DeleteProduct(id); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "product not found")
		case errors.Is(err, service.ErrProductInOrder):
			apperrors.Conflict(c, apperrors.ProductHasOrderItems, "product is referenced by order items")
		default:
			log.Error("Failed to delete product", err, map[string]interface{}{
				"product_id": id,
			})
			apperrors.InternalError(c, "failed to delete product")
		}
		return
	}

	log.Info("Product deleted", map[string]interface{}{
		"product_id": id,
	})

	c.Status(http.StatusNoContent)
}

func respondProductInputError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrInvalidUnitPrice):
		apperrors.RespondWithValidationError(c, map[string]string{
			"unit_price": "must not be negative",
		})
	case errors.Is(err, service.ErrInvalidInventory):
		apperrors.RespondWithValidationError(c, map[string]string{
			"inventory": "must not be negative",
		})
	case errors.Is(err, service.ErrCollectionNotFound):
		apperrors.RespondWithValidationError(c, map[string]string{
			"collection": "collection does not exist",
		})
	case errors.Is(err, service.ErrPromotionNotFound):
		apperrors.RespondWithValidationError(c, map[string]string{
			"promotions": "one or more promotions do not exist",
		})
	default:
		return false
	}
	return true
}
