package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/internal/app/repository"
	"github.com/mstore/storefront-backend/internal/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (CartService, *model.Product, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cartRepo := repository.NewCartRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	cartService := NewCartService(cartRepo, productRepo, testDB)

	collection := &model.Collection{Title: "Pantry"}
	require.NoError(t, testDB.Create(collection).Error)

	product := &model.Product{
		Title:        "Wheat Flour",
		Slug:         "wheat-flour",
		UnitPrice:    decimal.RequireFromString("5.00"),
		Inventory:    50,
		CollectionID: collection.ID,
	}
	require.NoError(t, testDB.Create(product).Error)

	return cartService, product, testDB
}

func TestCartService_CreateAssignsUUID(t *testing.T) {
	cartService, _, _ := setupCartServiceTest(t)

	cart, err := cartService.CreateCart()
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, cart.ID)

	second, err := cartService.CreateCart()
	require.NoError(t, err)
	assert.NotEqual(t, cart.ID, second.ID)
}

func TestCartService_GetMissing(t *testing.T) {
	cartService, _, _ := setupCartServiceTest(t)

	_, err := cartService.GetCart(uuid.New())
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCartService_AddItemMergesQuantity(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	cart, err := cartService.CreateCart()
	require.NoError(t, err)

	first, err := cartService.AddItem(cart.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	merged, err := cartService.AddItem(cart.ID, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, 5, merged.Quantity)

	found, err := cartService.GetCart(cart.ID)
	require.NoError(t, err)
	assert.Len(t, found.Items, 1)
}

func TestCartService_AddItemValidation(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	cart, err := cartService.CreateCart()
	require.NoError(t, err)

	t.Run("Missing cart", func(t *testing.T) {
		_, err := cartService.AddItem(uuid.New(), product.ID, 1)
		assert.ErrorIs(t, err, ErrCartNotFound)
	})

	t.Run("Missing product", func(t *testing.T) {
		_, err := cartService.AddItem(cart.ID, 9999, 1)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("Non-positive quantity", func(t *testing.T) {
		_, err := cartService.AddItem(cart.ID, product.ID, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestCartService_Totals(t *testing.T) {
	cartService, product, testDB := setupCartServiceTest(t)

	cart, err := cartService.CreateCart()
	require.NoError(t, err)

	t.Run("Empty cart totals zero", func(t *testing.T) {
		found, err := cartService.GetCart(cart.ID)
		require.NoError(t, err)
		assert.True(t, decimal.Zero.Equal(found.TotalPrice()))
	})

	other := &model.Product{
		Title:        "Sugar",
		Slug:         "sugar",
		UnitPrice:    decimal.RequireFromString("3.00"),
		Inventory:    10,
		CollectionID: product.CollectionID,
	}
	require.NoError(t, testDB.Create(other).Error)

	_, err = cartService.AddItem(cart.ID, product.ID, 2)
	require.NoError(t, err)
	_, err = cartService.AddItem(cart.ID, other.ID, 1)
	require.NoError(t, err)

	found, err := cartService.GetCart(cart.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 2)
	assert.True(t, decimal.RequireFromString("13.00").Equal(found.TotalPrice()))
}

func TestCartService_UpdateItemScopedToCart(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	cart, err := cartService.CreateCart()
	require.NoError(t, err)
	otherCart, err := cartService.CreateCart()
	require.NoError(t, err)

	item, err := cartService.AddItem(cart.ID, product.ID, 1)
	require.NoError(t, err)

	updated, err := cartService.UpdateItem(cart.ID, item.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)

	// The same item is invisible through another cart
	_, err = cartService.UpdateItem(otherCart.ID, item.ID, 1)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartService_RemoveItem(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	cart, err := cartService.CreateCart()
	require.NoError(t, err)

	item, err := cartService.AddItem(cart.ID, product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, cartService.RemoveItem(cart.ID, item.ID))

	found, err := cartService.GetCart(cart.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Items)

	err = cartService.RemoveItem(cart.ID, item.ID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartService_DeleteCartCascades(t *testing.T) {
	cartService, product, testDB := setupCartServiceTest(t)

	cart, err := cartService.CreateCart()
	require.NoError(t, err)
	_, err = cartService.AddItem(cart.ID, product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, cartService.DeleteCart(cart.ID))

	_, err = cartService.GetCart(cart.ID)
	assert.ErrorIs(t, err, ErrCartNotFound)

	var items int64
	require.NoError(t, testDB.Model(&model.CartItem{}).Where("cart_id = ?", cart.ID).Count(&items).Error)
	assert.EqualValues(t, 0, items)
}
