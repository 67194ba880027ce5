package repository

import (
	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *model.Article) error
	FindAll() ([]model.Article, error)
	FindByID(id uint) (*model.Article, error)
	Update(article *model.Article) error
	Delete(id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *model.Article) error {
	// Published carries a schema default of true; list the columns so an
	// explicit false is not dropped as a zero value.
	err := r.db.Select("Title", "Body", "Published", "Created", "CharacterCount").
		Create(article).Error
	if err != nil {
		logger.Error("Failed to create article", err, map[string]interface{}{
			"title": article.Title,
		})
		return err
	}
	return nil
}

func (r *articleRepository) FindAll() ([]model.Article, error) {
	var articles []model.Article
	if err := r.db.Order("created DESC").Find(&articles).Error; err != nil {
		logger.Error("Failed to list articles", err, nil)
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) FindByID(id uint) (*model.Article, error) {
	var article model.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) Update(article *model.Article) error {
	if err := r.db.Save(article).Error; err != nil {
		logger.Error("Failed to update article", err, map[string]interface{}{
			"article_id": article.ID,
		})
		return err
	}
	return nil
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&model.Article{}, id).Error
}
