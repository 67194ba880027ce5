package repository

import (
	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

type CollectionRepository interface {
	Create(collection *model.Collection) error
	FindAll() ([]model.Collection, error)
	FindByID(id uint) (*model.Collection, error)
	Update(collection *model.Collection) error
	Delete(id uint) error
	CountProducts(id uint) (int64, error)
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

// annotated joins the product count in so listings never load product rows.
func (r *collectionRepository) annotated() *gorm.DB {
	return r.db.Model(&model.Collection{}).
		Select("collections.*, COUNT(products.id) AS products_count").
		Joins("LEFT JOIN products ON products.collection_id = collections.id").
		Group("collections.id")
}

func (r *collectionRepository) Create(collection *model.Collection) error {
	if err := r.db.Create(collection).Error; err != nil {
		logger.Error("Failed to create collection", err, map[string]interface{}{
			"title": collection.Title,
		})
		return err
	}
	logger.Debug("Collection created", map[string]interface{}{
		"collection_id": collection.ID,
		"title":         collection.Title,
	})
	return nil
}

func (r *collectionRepository) FindAll() ([]model.Collection, error) {
	var collections []model.Collection
	if err := r.annotated().Order("collections.id ASC").Find(&collections).Error; err != nil {
		logger.Error("Failed to list collections", err, nil)
		return nil, err
	}
	return collections, nil
}

func (r *collectionRepository) FindByID(id uint) (*model.Collection, error) {
	var collection model.Collection
	if err := r.annotated().Where("collections.id = ?", id).First(&collection).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) Update(collection *model.Collection) error {
	if err := r.db.Save(collection).Error; err != nil {
		logger.Error("Failed to update collection", err, map[string]interface{}{
			"collection_id": collection.ID,
		})
		return err
	}
	return nil
}

func (r *collectionRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Collection{}, id).Error; err != nil {
		logger.Error("Failed to delete collection", err, map[string]interface{}{
			"collection_id": id,
		})
		return err
	}
	return nil
}

func (r *collectionRepository) CountProducts(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("collection_id = ?", id).Count(&count).Error
	return count, err
}
