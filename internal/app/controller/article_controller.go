package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mstore/storefront-backend/internal/app/service"
	apperrors "github.com/mstore/storefront-backend/internal/errors"
	"github.com/mstore/storefront-backend/internal/middleware"
)

type ArticleController struct {
	articleService service.ArticleService
}

func NewArticleController(articleService service.ArticleService) *ArticleController {
	return &ArticleController{
		articleService: articleService,
	}
}

// character_count never appears here: the store derives it from the body on
// every save and it is not writable.

type CreateArticleRequest struct {
	Title     string `json:"title" binding:"required,max=100"`
	Body      string `json:"body" binding:"required"`
	Published *bool  `json:"published"`
}

type UpdateArticleRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=100"`
	Body      *string `json:"body"`
	Published *bool   `json:"published"`
}

// GetArticles returns all articles
// GET /api/v1/articles
func (ctrl *ArticleController) GetArticles(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	articles, err := ctrl.articleService.ListArticles()
	if err != nil {
		log.Error("Failed to fetch articles", err, nil)
		apperrors.InternalError(c, "failed to fetch articles")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"count":    len(articles),
	})
}

// GetArticleByID returns a single article
// GET /api/v1/articles/:id
func (ctrl *ArticleController) GetArticleByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	article, err := ctrl.articleService.GetArticleByID(id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "article not found")
			return
		}
		log.Error("Failed to fetch article", err, map[string]interface{}{
			"article_id": id,
		})
		apperrors.InternalError(c, "failed to fetch article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// CreateArticle creates a new article
// POST /api/v1/articles
func (ctrl *ArticleController) CreateArticle(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFieldErrors(err))
		return
	}

	article, err := ctrl.articleService.CreateArticle(service.ArticleInput{
		Title:     req.Title,
		Body:      req.Body,
		Published: req.Published,
	})
	if err != nil {
		log.Error("Failed to create article", err, nil)
		apperrors.InternalError(c, "failed to create article")
		return
	}

	log.Info("Article created", map[string]interface{}{
		"article_id": article.ID,
	})

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// UpdateArticle partially updates an article; absent fields are untouched
// PATCH /api/v1/articles/:id
func (ctrl *ArticleController) UpdateArticle(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFieldErrors(err))
		return
	}

	article, err := ctrl.articleService.UpdateArticle(id, service.ArticleUpdate{
		Title:     req.Title,
		Body:      req.Body,
		Published: req.Published,
	})
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "article not found")
			return
		}
		log.Error("Failed to update article", err, map[string]interface{}{
			"article_id": id,
		})
		apperrors.InternalError(c, "failed to update article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// DeleteArticle deletes an article
// DELETE /api/v1/articles/:id
func (ctrl *ArticleController) DeleteArticle(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.articleService.DeleteArticle(id); err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "article not found")
			return
		}
		log.Error("Failed to delete article", err, map[string]interface{}{
			"article_id": id,
		})
		apperrors.InternalError(c, "failed to delete article")
		return
	}

	c.Status(http.StatusNoContent)
}
