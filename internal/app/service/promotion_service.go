package service

import (
	"errors"

	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/internal/app/repository"
	"gorm.io/gorm"
)

type PromotionInput struct {
	Description string
	Discount    float64
}

type PromotionService interface {
	ListPromotions() ([]model.Promotion, error)
	GetPromotionByID(id uint) (*model.Promotion, error)
	CreatePromotion(input PromotionInput) (*model.Promotion, error)
	UpdatePromotion(id uint, input PromotionInput) (*model.Promotion, error)
	DeletePromotion(id uint) error
}

type promotionService struct {
	promotionRepo repository.PromotionRepository
}

func NewPromotionService(promotionRepo repository.PromotionRepository) PromotionService {
	return &promotionService{promotionRepo: promotionRepo}
}

func (s *promotionService) ListPromotions() ([]model.Promotion, error) {
	return s.promotionRepo.FindAll()
}

func (s *promotionService) GetPromotionByID(id uint) (*model.Promotion, error) {
	promotion, err := s.promotionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, err
	}
	return promotion, nil
}

func (s *promotionService) CreatePromotion(input PromotionInput) (*model.Promotion, error) {
	promotion := &model.Promotion{
		Description: input.Description,
		Discount:    input.Discount,
	}
	if err := s.promotionRepo.Create(promotion); err != nil {
		return nil, err
	}
	return promotion, nil
}

func (s *promotionService) UpdatePromotion(id uint, input PromotionInput) (*model.Promotion, error) {
	promotion, err := s.GetPromotionByID(id)
	if err != nil {
		return nil, err
	}
	promotion.Description = input.Description
	promotion.Discount = input.Discount
	if err := s.promotionRepo.Update(promotion); err != nil {
		return nil, err
	}
	return promotion, nil
}

func (s *promotionService) DeletePromotion(id uint) error {
	if _, err := s.GetPromotionByID(id); err != nil {
		return err
	}
	return s.promotionRepo.Delete(id)
}
