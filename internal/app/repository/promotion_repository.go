package repository

import (
	"github.com/mstore/storefront-backend/internal/app/model"
	"gorm.io/gorm"
)

type PromotionRepository interface {
	Create(promotion *model.Promotion) error
	FindAll() ([]model.Promotion, error)
	FindByID(id uint) (*model.Promotion, error)
	FindByIDs(ids []uint) ([]model.Promotion, error)
	Update(promotion *model.Promotion) error
	Delete(id uint) error
}

type promotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) Create(promotion *model.Promotion) error {
	return r.db.Create(promotion).Error
}

func (r *promotionRepository) FindAll() ([]model.Promotion, error) {
	var promotions []model.Promotion
	if err := r.db.Order("id ASC").Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *promotionRepository) FindByID(id uint) (*model.Promotion, error) {
	var promotion model.Promotion
	if err := r.db.First(&promotion, id).Error; err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *promotionRepository) FindByIDs(ids []uint) ([]model.Promotion, error) {
	var promotions []model.Promotion
	if len(ids) == 0 {
		return promotions, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *promotionRepository) Update(promotion *model.Promotion) error {
	return r.db.Save(promotion).Error
}

func (r *promotionRepository) Delete(id uint) error {
	// Join rows go first; the m2m has no lifecycle of its own.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM product_promotions WHERE promotion_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Promotion{}, id).Error
	})
}
