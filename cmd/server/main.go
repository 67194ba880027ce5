package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mstore/storefront-backend/config"
	"github.com/mstore/storefront-backend/internal/app/controller"
	"github.com/mstore/storefront-backend/internal/app/repository"
	"github.com/mstore/storefront-backend/internal/app/service"
	"github.com/mstore/storefront-backend/internal/db"
	"github.com/mstore/storefront-backend/internal/router"
	"github.com/mstore/storefront-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Storefront Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories
	collectionRepo := repository.NewCollectionRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	promotionRepo := repository.NewPromotionRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())
	cartRepo := repository.NewCartRepository(db.GetDB())
	customerRepo := repository.NewCustomerRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	articleRepo := repository.NewArticleRepository(db.GetDB())

	// Initialize services
	collectionService := service.NewCollectionService(collectionRepo, productRepo, db.GetDB())
	productService := service.NewProductService(productRepo, collectionRepo, promotionRepo, db.GetDB())
	promotionService := service.NewPromotionService(promotionRepo)
	reviewService := service.NewReviewService(reviewRepo, productRepo)
	cartService := service.NewCartService(cartRepo, productRepo, db.GetDB())
	customerService := service.NewCustomerService(customerRepo, db.GetDB())
	orderService := service.NewOrderService(orderRepo, customerRepo, db.GetDB())
	articleService := service.NewArticleService(articleRepo)

	// Initialize controllers
	collectionController := controller.NewCollectionController(collectionService)
	productController := controller.NewProductController(productService)
	reviewController := controller.NewReviewController(reviewService)
	cartController := controller.NewCartController(cartService)
	customerController := controller.NewCustomerController(customerService)
	orderController := controller.NewOrderController(orderService)
	promotionController := controller.NewPromotionController(promotionService)
	articleController := controller.NewArticleController(articleService)

	// Setup router
	r := router.NewRouter(
		collectionController,
		productController,
		reviewController,
		cartController,
		customerController,
		orderController,
		promotionController,
		articleController,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
