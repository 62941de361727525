package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopsphere/storefront-api/internal/application/service"
	"github.com/shopsphere/storefront-api/internal/config"
	"github.com/shopsphere/storefront-api/internal/presentation/http/handler"
	"github.com/shopsphere/storefront-api/internal/presentation/http/middleware"
	"github.com/shopsphere/storefront-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth   *handler.AuthHandler
	Cart   *handler.CartHandler
	Order  *handler.OrderHandler
	Report *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager  *utils.JWTManager
	Cfg         *config.Config
	CartService *service.CartService
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())
		protected.Use(middleware.CartCounterMiddleware(deps.CartService))

		registerProtectedRoutes(protected, h)
		registerAdminRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)

	// Cart
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.GetCart)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items/:itemId", h.Cart.UpdateItem)
		cart.DELETE("/items/:itemId", h.Cart.RemoveItem)
	}

	// Addresses
	addresses := protected.Group("/addresses")
	{
		addresses.GET("", h.Order.ListAddresses)
		addresses.POST("", h.Order.AddAddress)
		addresses.DELETE("/:id", h.Order.DeleteAddress)
	}

	// Orders
	orders := protected.Group("/orders")
	{
		orders.POST("", h.Order.PlaceOrder)
		orders.GET("", h.Order.ListOrders)
		orders.GET("/:id", h.Order.GetOrder)
		orders.POST("/:id/cancel", h.Order.CancelOrder)
		orders.POST("/:id/return", h.Order.RequestReturn)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.PATCH("/orders/:id/status", h.Order.UpdateStatus)

		reports := admin.Group("/reports")
		{
			reports.GET("/sales", h.Report.GetSalesReport)
			reports.GET("/sales/pdf", h.Report.DownloadPDF)
			reports.GET("/sales/excel", h.Report.DownloadExcel)
		}
	}
}
