package service

import (
	"errors"

	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/internal/app/repository"
	"github.com/mstore/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrArticleNotFound = errors.New("article not found")

type ArticleInput struct {
	Title     string
	Body      string
	Published *bool
}

type ArticleUpdate struct {
	Title     *string
	Body      *string
	Published *bool
}

type ArticleService interface {
	ListArticles() ([]model.Article, error)
	GetArticleByID(id uint) (*model.Article, error)
	CreateArticle(input ArticleInput) (*model.Article, error)
	UpdateArticle(id uint, update ArticleUpdate) (*model.Article, error)
	DeleteArticle(id uint) error
}

type articleService struct {
	articleRepo repository.ArticleRepository
}

func NewArticleService(articleRepo repository.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

func (s *articleService) ListArticles() ([]model.Article, error) {
	return s.articleRepo.FindAll()
}

func (s *articleService) GetArticleByID(id uint) (*model.Article, error) {
	article, err := s.articleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return article, nil
}

func (s *articleService) CreateArticle(input ArticleInput) (*model.Article, error) {
	published := true
	if input.Published != nil {
		published = *input.Published
	}

	article := &model.Article{
		Title:     input.Title,
		Body:      input.Body,
		Published: published,
	}
	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}
	logger.Info("Article created", map[string]interface{}{
		"article_id":      article.ID,
		"character_count": article.CharacterCount,
	})
	return article, nil
}

func (s *articleService) UpdateArticle(id uint, update ArticleUpdate) (*model.Article, error) {
	article, err := s.GetArticleByID(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		article.Title = *update.Title
	}
	if update.Body != nil {
		article.Body = *update.Body
	}
	if update.Published != nil {
		article.Published = *update.Published
	}

	// CharacterCount follows Body through the store's write hook.
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) DeleteArticle(id uint) error {
	if _, err := s.GetArticleByID(id); err != nil {
		return err
	}
	return s.articleRepo.Delete(id)
}
