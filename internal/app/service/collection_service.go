package service

import (
	"errors"

	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/internal/app/repository"
	"github.com/mstore/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCollectionNotFound    = errors.New("collection not found")
	ErrCollectionHasProducts = errors.New("collection is referenced by one or more products")
)

type CollectionInput struct {
	Title             string
	FeaturedProductID *uint
}

type CollectionService interface {
	ListCollections() ([]model.Collection, error)
	GetCollectionByID(id uint) (*model.Collection, error)
	CreateCollection(input CollectionInput) (*model.Collection, error)
	UpdateCollection(id uint, input CollectionInput) (*model.Collection, error)
	DeleteCollection(id uint) error
}

type collectionService struct {
	collectionRepo repository.CollectionRepository
	productRepo    repository.ProductRepository
	db             *gorm.DB
}

func NewCollectionService(
	collectionRepo repository.CollectionRepository,
	productRepo repository.ProductRepository,
	db *gorm.DB,
) CollectionService {
	return &collectionService{
		collectionRepo: collectionRepo,
		productRepo:    productRepo,
		db:             db,
	}
}

func (s *collectionService) ListCollections() ([]model.Collection, error) {
	return s.collectionRepo.FindAll()
}

func (s *collectionService) GetCollectionByID(id uint) (*model.Collection, error) {
	collection, err := s.collectionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}
	return collection, nil
}

func (s *collectionService) resolveFeaturedProduct(id *uint) error {
	if id == nil {
		return nil
	}
	if _, err := s.productRepo.FindByID(*id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

func (s *collectionService) CreateCollection(input CollectionInput) (*model.Collection, error) {
	logger.Info("Creating collection", map[string]interface{}{
		"title": input.Title,
	})

	if err := s.resolveFeaturedProduct(input.FeaturedProductID); err != nil {
		return nil, err
	}

	collection := &model.Collection{
		Title:             input.Title,
		FeaturedProductID: input.FeaturedProductID,
	}
	if err := s.collectionRepo.Create(collection); err != nil {
		return nil, err
	}
	return s.GetCollectionByID(collection.ID)
}

func (s *collectionService) UpdateCollection(id uint, input CollectionInput) (*model.Collection, error) {
	collection, err := s.GetCollectionByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.resolveFeaturedProduct(input.FeaturedProductID); err != nil {
		return nil, err
	}

	collection.Title = input.Title
	collection.FeaturedProductID = input.FeaturedProductID
	if err := s.collectionRepo.Update(collection); err != nil {
		return nil, err
	}
	return s.GetCollectionByID(id)
}

// DeleteCollection enforces the protect rule: a collection still holding
// products can not be removed.
func (s *collectionService) DeleteCollection(id uint) error {
	if _, err := s.GetCollectionByID(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Product{}).Where("collection_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			logger.Warn("Collection delete rejected: products still attached", map[string]interface{}{
				"collection_id": id,
				"products":      count,
			})
			return ErrCollectionHasProducts
		}
		return tx.Delete(&model.Collection{}, id).Error
	})
}
