package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleController_CreateComputesCount(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := performRequest(engine, http.MethodPost, "/api/v1/articles",
		map[string]interface{}{"title": "Greeting", "body": "Hello"})
	require.Equal(t, http.StatusCreated, w.Code)

	article := decodeBody(t, w)["article"].(map[string]interface{})
	assert.EqualValues(t, 5, article["character_count"])
	assert.Equal(t, true, article["published"])
}

func TestArticleController_CountIgnoresClientValue(t *testing.T) {
	engine, _ := setupTestServer(t)

	// character_count in the request body is not a known field and is dropped
	w := performRequest(engine, http.MethodPost, "/api/v1/articles",
		map[string]interface{}{
			"title":           "Greeting",
			"body":            "Hello",
			"character_count": 999,
		})
	require.Equal(t, http.StatusCreated, w.Code)

	article := decodeBody(t, w)["article"].(map[string]interface{})
	assert.EqualValues(t, 5, article["character_count"])
}

func TestArticleController_UpdateRecomputesCount(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := performRequest(engine, http.MethodPost, "/api/v1/articles",
		map[string]interface{}{"title": "Greeting", "body": "Hello"})
	require.Equal(t, http.StatusCreated, w.Code)
	article := decodeBody(t, w)["article"].(map[string]interface{})

	w = performRequest(engine, http.MethodPatch,
		fmt.Sprintf("/api/v1/articles/%v", article["id"]),
		map[string]interface{}{"body": "Hello world"})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeBody(t, w)["article"].(map[string]interface{})
	assert.EqualValues(t, 11, updated["character_count"])
}

func TestArticleController_ExplicitUnpublished(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := performRequest(engine, http.MethodPost, "/api/v1/articles",
		map[string]interface{}{"title": "Draft", "body": "text", "published": false})
	require.Equal(t, http.StatusCreated, w.Code)

	article := decodeBody(t, w)["article"].(map[string]interface{})
	assert.Equal(t, false, article["published"])
}

func TestArticleController_Validation(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := performRequest(engine, http.MethodPost, "/api/v1/articles",
		map[string]interface{}{"body": "no title"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := decodeBody(t, w)["fields"].(map[string]interface{})
	assert.Contains(t, fields, "title")
}
