package service

import (
	"testing"

	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/internal/app/repository"
	"github.com/mstore/storefront-backend/internal/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (ProductService, *model.Collection, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	productRepo := repository.NewProductRepository(testDB)
	collectionRepo := repository.NewCollectionRepository(testDB)
	promotionRepo := repository.NewPromotionRepository(testDB)
	productService := NewProductService(productRepo, collectionRepo, promotionRepo, testDB)

	collection := &model.Collection{Title: "Pantry"}
	require.NoError(t, testDB.Create(collection).Error)

	return productService, collection, testDB
}

func TestProductService_Create(t *testing.T) {
	productService, collection, _ := setupProductServiceTest(t)

	product, err := productService.CreateProduct(ProductInput{
		Title:        "Wheat Flour",
		Slug:         "wheat-flour",
		UnitPrice:    decimal.RequireFromString("10.00"),
		Inventory:    50,
		CollectionID: collection.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.True(t, decimal.RequireFromString("11.00").Equal(product.PriceWithTax()))
}

func TestProductService_CreateValidation(t *testing.T) {
	productService, collection, _ := setupProductServiceTest(t)

	t.Run("Negative unit price", func(t *testing.T) {
		_, err := productService.CreateProduct(ProductInput{
			Title:        "Bad",
			Slug:         "bad",
			UnitPrice:    decimal.RequireFromString("-1.00"),
			CollectionID: collection.ID,
		})
		assert.ErrorIs(t, err, ErrInvalidUnitPrice)
	})

	t.Run("Negative inventory", func(t *testing.T) {
		_, err := productService.CreateProduct(ProductInput{
			Title:        "Bad",
			Slug:         "bad",
			UnitPrice:    decimal.RequireFromString("1.00"),
			Inventory:    -1,
			CollectionID: collection.ID,
		})
		assert.ErrorIs(t, err, ErrInvalidInventory)
	})

	t.Run("Missing collection", func(t *testing.T) {
		_, err := productService.CreateProduct(ProductInput{
			Title:        "Bad",
			Slug:         "bad",
			UnitPrice:    decimal.RequireFromString("1.00"),
			CollectionID: 9999,
		})
		assert.ErrorIs(t, err, ErrCollectionNotFound)
	})

	t.Run("Missing promotion", func(t *testing.T) {
		_, err := productService.CreateProduct(ProductInput{
			Title:        "Bad",
			Slug:         "bad",
			UnitPrice:    decimal.RequireFromString("1.00"),
			CollectionID: collection.ID,
			PromotionIDs: []uint{9999},
		})
		assert.ErrorIs(t, err, ErrPromotionNotFound)
	})
}

func TestProductService_PartialUpdate(t *testing.T) {
	productService, collection, _ := setupProductServiceTest(t)

	product, err := productService.CreateProduct(ProductInput{
		Title:        "Wheat Flour",
		Slug:         "wheat-flour",
		UnitPrice:    decimal.RequireFromString("10.00"),
		Inventory:    50,
		CollectionID: collection.ID,
	})
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("19.99")
	updated, err := productService.UpdateProduct(product.ID, ProductUpdate{
		UnitPrice: &newPrice,
	})
	require.NoError(t, err)

	// Untouched fields survive, price and its derivation change
	assert.Equal(t, "Wheat Flour", updated.Title)
	assert.Equal(t, 50, updated.Inventory)
	assert.True(t, newPrice.Equal(updated.UnitPrice))
	assert.True(t, decimal.RequireFromString("21.99").Equal(updated.PriceWithTax()))
}

func TestProductService_AttachPromotions(t *testing.T) {
	productService, collection, testDB := setupProductServiceTest(t)

	promotion := model.Promotion{Description: "Summer sale", Discount: 0.2}
	require.NoError(t, testDB.Create(&promotion).Error)

	product, err := productService.CreateProduct(ProductInput{
		Title:        "Juice",
		Slug:         "juice",
		UnitPrice:    decimal.RequireFromString("2.00"),
		CollectionID: collection.ID,
		PromotionIDs: []uint{promotion.ID},
	})
	require.NoError(t, err)
	require.Len(t, product.Promotions, 1)
	assert.Equal(t, promotion.ID, product.Promotions[0].ID)

	// Clearing the set detaches all promotions
	empty := []uint{}
	updated, err := productService.UpdateProduct(product.ID, ProductUpdate{
		PromotionIDs: &empty,
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Promotions)
}

func TestProductService_DeleteGuardedByOrderItems(t *testing.T) {
	productService, collection, testDB := setupProductServiceTest(t)

	product, err := productService.CreateProduct(ProductInput{
		Title:        "Ordered",
		Slug:         "ordered",
		UnitPrice:    decimal.RequireFromString("2.00"),
		CollectionID: collection.ID,
	})
	require.NoError(t, err)

	customer := model.Customer{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "010-0000-0001"}
	require.NoError(t, testDB.Create(&customer).Error)
	order := model.Order{CustomerID: customer.ID}
	require.NoError(t, testDB.Create(&order).Error)
	item := model.OrderItem{OrderID: order.ID, ProductID: product.ID, Quantity: 1, UnitPrice: product.UnitPrice}
	require.NoError(t, testDB.Create(&item).Error)

	err = productService.DeleteProduct(product.ID)
	assert.ErrorIs(t, err, ErrProductInOrder)

	_, err = productService.GetProductByID(product.ID)
	assert.NoError(t, err)
}

func TestProductService_DeleteCascadesReviewsAndCartItems(t *testing.T) {
	productService, collection, testDB := setupProductServiceTest(t)

	product, err := productService.CreateProduct(ProductInput{
		Title:        "Doomed",
		Slug:         "doomed",
		UnitPrice:    decimal.RequireFromString("2.00"),
		CollectionID: collection.ID,
	})
	require.NoError(t, err)

	review := model.Review{ProductID: product.ID, Name: "Ada", Description: "Fine"}
	require.NoError(t, testDB.Create(&review).Error)

	cart := model.Cart{}
	require.NoError(t, testDB.Create(&cart).Error)
	cartItem := model.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}
	require.NoError(t, testDB.Create(&cartItem).Error)

	err = productService.DeleteProduct(product.ID)
	require.NoError(t, err)

	_, err = productService.GetProductByID(product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	var reviews, cartItems int64
	require.NoError(t, testDB.Model(&model.Review{}).Where("product_id = ?", product.ID).Count(&reviews).Error)
	require.NoError(t, testDB.Model(&model.CartItem{}).Where("product_id = ?", product.ID).Count(&cartItems).Error)
	assert.EqualValues(t, 0, reviews)
	assert.EqualValues(t, 0, cartItems)
}

func TestProductService_DeleteClearsFeaturedReference(t *testing.T) {
	productService, collection, testDB := setupProductServiceTest(t)

	product, err := productService.CreateProduct(ProductInput{
		Title:        "Featured",
		Slug:         "featured",
		UnitPrice:    decimal.RequireFromString("2.00"),
		CollectionID: collection.ID,
	})
	require.NoError(t, err)

	require.NoError(t, testDB.Model(&model.Collection{}).
		Where("id = ?", collection.ID).
		Update("featured_product_id", product.ID).Error)

	require.NoError(t, productService.DeleteProduct(product.ID))

	var found model.Collection
	require.NoError(t, testDB.First(&found, collection.ID).Error)
	assert.Nil(t, found.FeaturedProductID)
}
