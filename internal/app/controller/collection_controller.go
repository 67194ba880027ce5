package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mstore/storefront-backend/internal/app/service"
	apperrors "github.com/mstore/storefront-backend/internal/errors"
	"github.com/mstore/storefront-backend/internal/middleware"
)

type CollectionController struct {
	collectionService service.CollectionService
}

func NewCollectionController(collectionService service.CollectionService) *CollectionController {
	return &CollectionController{
		collectionService: collectionService,
	}
}

type CollectionRequest struct {
	Title             string `json:"title" binding:"required,max=255"`
	FeaturedProductID *uint  `json:"featured_product_id"`
}

// GetCollections returns all collections with their product counts
// GET /api/v1/collections
func (ctrl *CollectionController) GetCollections(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	collections, err := ctrl.collectionService.ListCollections()
	if err != nil {
		log.Error("Failed to fetch collections", err, nil)
		apperrors.InternalError(c, "failed to fetch collections")
		return
	}

	out := make([]CollectionResponse, 0, len(collections))
	for i := range collections {
		out = append(out, toCollectionResponse(&collections[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"collections": out,
		"count":       len(out),
	})
}

// GetCollectionByID returns a single collection
// GET /api/v1/collections/:id
func (ctrl *CollectionController) GetCollectionByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	collection, err := ctrl.collectionService.GetCollectionByID(id)
	if err != nil {
		if errors.Is(err, service.ErrCollectionNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "collection not found")
			return
		}
		log.Error("Failed to fetch collection", err, map[string]interface{}{
			"collection_id": id,
		})
		apperrors.InternalError(c, "failed to fetch collection")
		return
	}

	c.JSON(http.StatusOK, gin.H{"collection": toCollectionResponse(collection)})
}

// CreateCollection creates a new collection
// POST /api/v1/collections
func (ctrl *CollectionController) CreateCollection(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFieldErrors(err))
		return
	}

	collection, err := ctrl.collectionService.CreateCollection(service.CollectionInput{
		Title:             req.Title,
		FeaturedProductID: req.FeaturedProductID,
	})
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "featured product does not exist")
			return
		}
		log.Error("Failed to create collection", err, nil)
		apperrors.InternalError(c, "failed to create collection")
		return
	}

	log.Info("Collection created", map[string]interface{}{
		"collection_id": collection.ID,
	})

	c.JSON(http.StatusCreated, gin.H{"collection": toCollectionResponse(collection)})
}

// UpdateCollection updates an existing collection
// PUT /api/v1/collections/:id
func (ctrl *CollectionController) UpdateCollection(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFieldErrors(err))
		return
	}

	collection, err := ctrl.collectionService.UpdateCollection(id, service.CollectionInput{
		Title:             req.Title,
		FeaturedProductID: req.FeaturedProductID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCollectionNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "collection not found")
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "featured product does not exist")
		default:
			log.Error("Failed to update collection", err, map[string]interface{}{
				"collection_id": id,
			})
			apperrors.InternalError(c, "failed to update collection")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"collection": toCollectionResponse(collection)})
}

// DeleteCollection deletes a collection; refused while products reference it
// DELETE /api/v1/collections/:id
func (ctrl *CollectionController) DeleteCollection(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.collectionService.DeleteCollection(id); err != nil {
		switch {
		case errors.Is(err, service.ErrCollectionNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "collection not found")
		case errors.Is(err, service.ErrCollectionHasProducts):
			apperrors.Conflict(c, apperrors.CollectionHasProducts, "collection still has products")
		default:
			log.Error("Failed to delete collection", err, map[string]interface{}{
				"collection_id": id,
			})
			apperrors.InternalError(c, "failed to delete collection")
		}
		return
	}

	log.Info("Collection deleted", map[string]interface{}{
		"collection_id": id,
	})

	c.Status(http.StatusNoContent)
}

// parseIDParam reads a numeric path parameter, responding 400 on garbage.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}
