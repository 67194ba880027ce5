package db

import (
	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Collection{},
		&model.Product{},
		&model.Promotion{},
		&model.Customer{},
		&model.Order{},
		&model.OrderItem{},
		&model.Cart{},
		&model.CartItem{},
		&model.Address{},
		&model.Review{},
		&model.Article{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
