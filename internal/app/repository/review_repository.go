package repository

import (
	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *model.Review) error
	FindByProductID(productID uint) ([]model.Review, error)
	FindByID(id uint) (*model.Review, error)
	Update(review *model.Review) error
	Delete(id uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	if err := r.db.Create(review).Error; err != nil {
		logger.Error("Failed to create review", err, map[string]interface{}{
			"product_id": review.ProductID,
		})
		return err
	}
	return nil
}

func (r *reviewRepository) FindByProductID(productID uint) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.Where("product_id = ?", productID).Order("date DESC").Find(&reviews).Error
	if err != nil {
		logger.Error("Failed to list reviews", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindByID(id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Update(review *model.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) Delete(id uint) error {
	return r.db.Delete(&model.Review{}, id).Error
}
