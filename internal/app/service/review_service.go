package service

import (
	"errors"

	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/internal/app/repository"
	"github.com/mstore/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewInput struct {
	Name        string
	Description string
}

type ReviewService interface {
	ListReviews(productID uint) ([]model.Review, error)
	GetReview(productID, reviewID uint) (*model.Review, error)
	// CreateReview binds the review to the product from the URL path; any
	// product reference in the request body is ignored.
	CreateReview(productID uint, input ReviewInput) (*model.Review, error)
	UpdateReview(productID, reviewID uint, input ReviewInput) (*model.Review, error)
	DeleteReview(productID, reviewID uint) error
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

func (s *reviewService) ensureProduct(productID uint) error {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

func (s *reviewService) ListReviews(productID uint) ([]model.Review, error) {
	if err := s.ensureProduct(productID); err != nil {
		return nil, err
	}
	return s.reviewRepo.FindByProductID(productID)
}

func (s *reviewService) GetReview(productID, reviewID uint) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if review.ProductID != productID {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

func (s *reviewService) CreateReview(productID uint, input ReviewInput) (*model.Review, error) {
	if err := s.ensureProduct(productID); err != nil {
		return nil, err
	}

	review := &model.Review{
		ProductID:   productID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	logger.Info("Review created", map[string]interface{}{
		"review_id":  review.ID,
		"product_id": productID,
	})
	return review, nil
}

func (s *reviewService) UpdateReview(productID, reviewID uint, input ReviewInput) (*model.Review, error) {
	review, err := s.GetReview(productID, reviewID)
	if err != nil {
		return nil, err
	}

	review.Name = input.Name
	review.Description = input.Description
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) DeleteReview(productID, reviewID uint) error {
	if _, err := s.GetReview(productID, reviewID); err != nil {
		return err
	}
	return s.reviewRepo.Delete(reviewID)
}
