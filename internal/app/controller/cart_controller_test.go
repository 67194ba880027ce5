package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartController_CreateReturnsUUID(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := performRequest(engine, http.MethodPost, "/api/v1/carts", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	cart := decodeBody(t, w)["cart"].(map[string]interface{})
	id, err := uuid.Parse(cart["id"].(string))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Empty(t, cart["items"])
}

func TestCartController_InvalidCartID(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := performRequest(engine, http.MethodGet, "/api/v1/carts/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(engine, http.MethodGet, "/api/v1/carts/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartController_ItemLifecycle(t *testing.T) {
	engine, testDB := setupTestServer(t)
	pantry := seedCollection(t, testDB, "Pantry")
	flour := seedProduct(t, testDB, pantry.ID, "flour", "5.00")
	sugar := seedProduct(t, testDB, pantry.ID, "sugar", "3.00")

	w := performRequest(engine, http.MethodPost, "/api/v1/carts", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	cartID := decodeBody(t, w)["cart"].(map[string]interface{})["id"].(string)

	// Add two lines
	w = performRequest(engine, http.MethodPost, "/api/v1/carts/"+cartID+"/items",
		map[string]interface{}{"product_id": flour.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code)
	item := decodeBody(t, w)["item"].(map[string]interface{})
	itemID := item["id"]

	w = performRequest(engine, http.MethodPost, "/api/v1/carts/"+cartID+"/items",
		map[string]interface{}{"product_id": sugar.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	// Totals: 2 x 5.00 + 1 x 3.00
	w = performRequest(engine, http.MethodGet, "/api/v1/carts/"+cartID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart := decodeBody(t, w)["cart"].(map[string]interface{})
	total, err := decimal.NewFromString(cart["total_price"].(string))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("13.00").Equal(total))
	assert.Len(t, cart["items"].([]interface{}), 2)

	// Repeat add merges into the existing line
	w = performRequest(engine, http.MethodPost, "/api/v1/carts/"+cartID+"/items",
		map[string]interface{}{"product_id": flour.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	merged := decodeBody(t, w)["item"].(map[string]interface{})
	assert.EqualValues(t, 3, merged["quantity"])

	// Update quantity
	w = performRequest(engine, http.MethodPatch,
		fmt.Sprintf("/api/v1/carts/%s/items/%v", cartID, itemID),
		map[string]interface{}{"quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody(t, w)["item"].(map[string]interface{})
	assert.EqualValues(t, 1, updated["quantity"])

	// Remove the line
	w = performRequest(engine, http.MethodDelete,
		fmt.Sprintf("/api/v1/carts/%s/items/%v", cartID, itemID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(engine, http.MethodGet, "/api/v1/carts/"+cartID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart = decodeBody(t, w)["cart"].(map[string]interface{})
	assert.Len(t, cart["items"].([]interface{}), 1)
}

func TestCartController_AddItemValidation(t *testing.T) {
	engine, testDB := setupTestServer(t)
	pantry := seedCollection(t, testDB, "Pantry")
	flour := seedProduct(t, testDB, pantry.ID, "flour", "5.00")

	w := performRequest(engine, http.MethodPost, "/api/v1/carts", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	cartID := decodeBody(t, w)["cart"].(map[string]interface{})["id"].(string)

	t.Run("Unknown product", func(t *testing.T) {
		w := performRequest(engine, http.MethodPost, "/api/v1/carts/"+cartID+"/items",
			map[string]interface{}{"product_id": 9999, "quantity": 1})
		require.Equal(t, http.StatusBadRequest, w.Code)
		fields := decodeBody(t, w)["fields"].(map[string]interface{})
		assert.Contains(t, fields, "product_id")
	})

	t.Run("Zero quantity", func(t *testing.T) {
		w := performRequest(engine, http.MethodPost, "/api/v1/carts/"+cartID+"/items",
			map[string]interface{}{"product_id": flour.ID, "quantity": 0})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown cart", func(t *testing.T) {
		w := performRequest(engine, http.MethodPost, "/api/v1/carts/"+uuid.NewString()+"/items",
			map[string]interface{}{"product_id": flour.ID, "quantity": 1})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCartController_DeleteCart(t *testing.T) {
	engine, testDB := setupTestServer(t)
	pantry := seedCollection(t, testDB, "Pantry")
	flour := seedProduct(t, testDB, pantry.ID, "flour", "5.00")

	w := performRequest(engine, http.MethodPost, "/api/v1/carts", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	cartID := decodeBody(t, w)["cart"].(map[string]interface{})["id"].(string)

	w = performRequest(engine, http.MethodPost, "/api/v1/carts/"+cartID+"/items",
		map[string]interface{}{"product_id": flour.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(engine, http.MethodDelete, "/api/v1/carts/"+cartID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(engine, http.MethodGet, "/api/v1/carts/"+cartID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
