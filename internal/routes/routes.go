package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/staterastore/statera-api/internal/audit"
	"github.com/staterastore/statera-api/internal/cart"
	"github.com/staterastore/statera-api/internal/config"
	"github.com/staterastore/statera-api/internal/handlers"
	infraRepo "github.com/staterastore/statera-api/internal/infra/repository"
	"github.com/staterastore/statera-api/internal/media"
	"github.com/staterastore/statera-api/internal/middleware"
	"github.com/staterastore/statera-api/internal/payment"
	ucorder "github.com/staterastore/statera-api/internal/usecase/order"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	orderRepo := infraRepo.NewOrderGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	cartStore := cart.NewStore(rdb)
	uploader := media.NewUploader(cfg)

	payments, err := payment.NewService(cfg)
	if err != nil {
		log.Fatalf("failed to init payment service: %v", err)
	}

	// ======================================================
	// USE CASES — ORDERS
	// ======================================================
	createOrderUC := ucorder.NewCreateOrder(orderRepo, auditDispatcher)
	listOrdersUC := ucorder.NewListOrders(orderRepo)
	getOrderUC := ucorder.NewGetOrder(orderRepo)
	updateOrderUC := ucorder.NewUpdateOrder(orderRepo, auditDispatcher)
	removeOrderUC := ucorder.NewRemoveOrder(orderRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, cfg)
	productHandler := handlers.NewProductHandler(db, uploader)
	cartHandler := handlers.NewCartHandler(cartStore)

	orderHandler := handlers.NewOrderHandler(
		createOrderUC,
		listOrdersUC,
		getOrderUC,
		updateOrderUC,
		removeOrderUC,
		payments,
	)

	webhookHandler := handlers.NewWebhookHandler(payments, updateOrderUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH + USERS
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/users", userHandler.Create)

		// ------------------------------
		// PUBLIC CATALOG + CART
		// ------------------------------
		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)

		api.GET("/cart", cartHandler.Get)
		api.POST("/cart/items", cartHandler.AddItem)
		api.PATCH("/cart/items/:productId", cartHandler.UpdateItem)
		api.DELETE("/cart/items/:productId", cartHandler.RemoveItem)
		api.DELETE("/cart", cartHandler.Clear)

		// ------------------------------
		// PAYMENT WEBHOOKS
		// ------------------------------
		api.POST("/webhooks/mercadopago", webhookHandler.MercadoPago)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/users", userHandler.List)
			secured.GET("/users/:id", userHandler.Get)
			secured.PATCH("/users/:id", userHandler.Update)
			secured.DELETE("/users/:id", userHandler.Delete)

			secured.POST("/products", productHandler.Create)
			secured.POST("/products/:id/image", productHandler.UploadImage)

			// ------------------------------
			// ORDERS
			// ------------------------------
			secured.POST("/orders", orderHandler.Create)
			secured.GET("/orders", orderHandler.List)
			secured.GET("/orders/:id", orderHandler.Get)
			secured.PATCH("/orders/:id", orderHandler.Update)
			secured.DELETE("/orders/:id", orderHandler.Delete)

			secured.GET("/admin/orders", orderHandler.ListAll)
		}
	}
}
