package router

import (
	"github.com/gin-gonic/gin"
	"github.com/mstore/storefront-backend/config"
	"github.com/mstore/storefront-backend/internal/app/controller"
	"github.com/mstore/storefront-backend/internal/middleware"
)

type Router struct {
	collectionController *controller.CollectionController
	productController    *controller.ProductController
	reviewController     *controller.ReviewController
	cartController       *controller.CartController
	customerController   *controller.CustomerController
	orderController      *controller.OrderController
	promotionController  *controller.PromotionController
	articleController    *controller.ArticleController
	config               *config.Config
}

func NewRouter(
	collectionController *controller.CollectionController,
	productController *controller.ProductController,
	reviewController *controller.ReviewController,
	cartController *controller.CartController,
	customerController *controller.CustomerController,
	orderController *controller.OrderController,
	promotionController *controller.PromotionController,
	articleController *controller.ArticleController,
	cfg *config.Config,
) *Router {
	return &Router{
		collectionController: collectionController,
		productController:    productController,
		reviewController:     reviewController,
		cartController:       cartController,
		customerController:   customerController,
		orderController:      orderController,
		promotionController:  promotionController,
		articleController:    articleController,
		config:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Storefront API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		collections := v1.Group("/collections")
		{
			collections.GET("", r.collectionController.GetCollections)
			collections.GET("/:id", r.collectionController.GetCollectionByID)
			collections.POST("", r.collectionController.CreateCollection)
			collections.PUT("/:id", r.collectionController.UpdateCollection)
			collections.DELETE("/:id", r.collectionController.DeleteCollection)
		}

		products := v1.Group("/products")
		{
			products.GET("", r.productController.GetProducts)
			products.GET("/:id", r.productController.GetProductByID)
			products.POST("", r.productController.CreateProduct)
			// PUT and PATCH share partial-update semantics: omitted
			// fields keep their current values
			products.PUT("/:id", r.productController.UpdateProduct)
			products.PATCH("/:id", r.productController.UpdateProduct)
			products.DELETE("/:id", r.productController.DeleteProduct)

			reviews := products.Group("/:id/reviews")
			{
				reviews.GET("", r.reviewController.GetReviews)
				reviews.GET("/:review_id", r.reviewController.GetReviewByID)
				reviews.POST("", r.reviewController.CreateReview)
				reviews.PUT("/:review_id", r.reviewController.UpdateReview)
				reviews.DELETE("/:review_id", r.reviewController.DeleteReview)
			}
		}

		carts := v1.Group("/carts")
		{
			carts.POST("", r.cartController.CreateCart)
			carts.GET("/:id", r.cartController.GetCart)
			carts.DELETE("/:id", r.cartController.DeleteCart)

			items := carts.Group("/:id/items")
			{
				items.POST("", r.cartController.AddCartItem)
				items.PATCH("/:item_id", r.cartController.UpdateCartItem)
				items.DELETE("/:item_id", r.cartController.DeleteCartItem)
			}
		}

		customers := v1.Group("/customers")
		{
			customers.GET("", r.customerController.GetCustomers)
			customers.GET("/:id", r.customerController.GetCustomerByID)
			customers.POST("", r.customerController.CreateCustomer)
			customers.PUT("/:id", r.customerController.UpdateCustomer)
			customers.DELETE("/:id", r.customerController.DeleteCustomer)
			customers.GET("/:id/addresses", r.customerController.GetAddresses)
			customers.POST("/:id/addresses", r.customerController.CreateAddress)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("", r.orderController.GetOrders)
			orders.GET("/:id", r.orderController.GetOrderByID)
			orders.POST("", r.orderController.CreateOrder)
			orders.PATCH("/:id", r.orderController.UpdateOrder)
			orders.PUT("/:id/payment-status", r.orderController.UpdateOrder)
			orders.DELETE("/:id", r.orderController.DeleteOrder)
		}

		promotions := v1.Group("/promotions")
		{
			promotions.GET("", r.promotionController.GetPromotions)
			promotions.GET("/:id", r.promotionController.GetPromotionByID)
			promotions.POST("", r.promotionController.CreatePromotion)
			promotions.PUT("/:id", r.promotionController.UpdatePromotion)
			promotions.DELETE("/:id", r.promotionController.DeletePromotion)
		}

		articles := v1.Group("/articles")
		{
			articles.GET("", r.articleController.GetArticles)
			articles.GET("/:id", r.articleController.GetArticleByID)
			articles.POST("", r.articleController.CreateArticle)
			articles.PUT("/:id", r.articleController.UpdateArticle)
			articles.PATCH("/:id", r.articleController.UpdateArticle)
			articles.DELETE("/:id", r.articleController.DeleteArticle)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
