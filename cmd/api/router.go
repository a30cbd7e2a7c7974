package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"watchitup-backend/internal/shared/middleware"
	"watchitup-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupCartRoutes(v1, c)
		setupOrderRoutes(v1, c)
		setupWalletRoutes(v1, c)
		setupPaymentRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// CART ROUTES
// ========================================
func setupCartRoutes(v1 *gin.RouterGroup, c *container.Container) {
	cart := v1.Group("/cart")
	cart.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		cart.GET("", c.CartHandler.GetCart)
		cart.POST("/items", c.CartHandler.AddItem)
		cart.PUT("/items/:id", c.CartHandler.UpdateItemQuantity)
		cart.DELETE("/items/:id", c.CartHandler.RemoveItem)
		cart.POST("/coupon", c.CartHandler.ApplyCoupon)
		cart.DELETE("/coupon", c.CartHandler.RemoveCoupon)
	}
}

// ========================================
// ORDER ROUTES
// ========================================
func setupOrderRoutes(v1 *gin.RouterGroup, c *container.Container) {
	orders := v1.Group("/orders")
	orders.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		orders.POST("", c.OrderHandler.PlaceOrder)
		orders.GET("", c.OrderHandler.ListOrders)
		orders.GET("/:id", c.OrderHandler.GetOrder)
		orders.POST("/:id/cancel", c.OrderHandler.CancelOrder)
		orders.POST("/:id/cancel-items", c.OrderHandler.CancelItems)
		orders.POST("/:id/return", c.OrderHandler.RequestReturn)
	}
}

// ========================================
// WALLET ROUTES
// ========================================
func setupWalletRoutes(v1 *gin.RouterGroup, c *container.Container) {
	wallet := v1.Group("/wallet")
	wallet.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		wallet.GET("", c.WalletHandler.GetBalance)
		wallet.GET("/transactions", c.WalletHandler.ListTransactions)
	}
}

// ========================================
// PAYMENT ROUTES
// ========================================
func setupPaymentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	if c.PaymentHandler == nil {
		return
	}

	payments := v1.Group("/payments")
	payments.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		payments.POST("/intents", c.PaymentHandler.CreateIntent)
	}

	// The gateway authenticates webhooks via payload signature.
	v1.POST("/webhooks/razorpay", c.PaymentHandler.Webhook)
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.Config.JWT.Secret), middleware.AdminMiddleware())
	{
		admin.GET("/orders", c.OrderHandler.ListAllOrders)
		admin.PATCH("/orders/:id/status", c.OrderHandler.UpdateStatus)
		admin.POST("/orders/:id/reactivate", c.OrderHandler.Reactivate)

		admin.POST("/returns/:id/approve", c.OrderHandler.ApproveReturn)
		admin.POST("/returns/:id/reject", c.OrderHandler.RejectReturn)
		admin.POST("/returns/:id/complete", c.OrderHandler.CompleteReturn)

		admin.POST("/offers", c.OfferHandler.Create)
		admin.DELETE("/offers/product/:id", c.OfferHandler.DeactivateProductOffer)
		admin.DELETE("/offers/category/:id", c.OfferHandler.DeactivateCategoryOffer)

		admin.POST("/coupons", c.CouponHandler.Create)
		admin.DELETE("/coupons/:id", c.CouponHandler.Deactivate)

		admin.POST("/wallets/:userId/adjust", c.WalletHandler.Adjust)
	}
}

// healthCheckHandler reports API and dependency health.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		dbStatus := "up"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "down"
		}

		redisStatus := "up"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			redisStatus = "down"
		}

		ctx.JSON(status, gin.H{
			"status":   dbStatus,
			"database": dbStatus,
			"redis":    redisStatus,
		})
	}
}
