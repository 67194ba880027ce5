package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionController_CreateAndList(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := performRequest(engine, http.MethodPost, "/api/v1/collections",
		map[string]interface{}{"title": "Beverages"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)["collection"].(map[string]interface{})
	assert.EqualValues(t, 0, created["products_count"])

	w = performRequest(engine, http.MethodGet, "/api/v1/collections", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["count"])
}

func TestCollectionController_ProductsCount(t *testing.T) {
	engine, testDB := setupTestServer(t)
	collection := seedCollection(t, testDB, "Pantry")
	seedProduct(t, testDB, collection.ID, "flour", "1.00")
	seedProduct(t, testDB, collection.ID, "sugar", "2.00")

	w := performRequest(engine, http.MethodGet,
		fmt.Sprintf("/api/v1/collections/%d", collection.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	found := decodeBody(t, w)["collection"].(map[string]interface{})
	assert.EqualValues(t, 2, found["products_count"])
}

func TestCollectionController_DeleteConflict(t *testing.T) {
	engine, testDB := setupTestServer(t)
	collection := seedCollection(t, testDB, "Pantry")
	product := seedProduct(t, testDB, collection.ID, "flour", "1.00")

	w := performRequest(engine, http.MethodDelete,
		fmt.Sprintf("/api/v1/collections/%d", collection.ID), nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "COLLECTION_HAS_PRODUCTS", decodeBody(t, w)["error"])

	// Removing the product clears the conflict
	w = performRequest(engine, http.MethodDelete,
		fmt.Sprintf("/api/v1/products/%d", product.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(engine, http.MethodDelete,
		fmt.Sprintf("/api/v1/collections/%d", collection.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCollectionController_Validation(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := performRequest(engine, http.MethodPost, "/api/v1/collections",
		map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := decodeBody(t, w)["fields"].(map[string]interface{})
	assert.Contains(t, fields, "title")

	w = performRequest(engine, http.MethodGet, "/api/v1/collections/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(engine, http.MethodGet, "/api/v1/collections/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
