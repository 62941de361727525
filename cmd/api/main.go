package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/shopsphere/storefront-api/internal/application/service"
	"github.com/shopsphere/storefront-api/internal/config"
	"github.com/shopsphere/storefront-api/internal/infrastructure/database"
	"github.com/shopsphere/storefront-api/internal/infrastructure/repository"
	"github.com/shopsphere/storefront-api/internal/presentation/http/handler"
	"github.com/shopsphere/storefront-api/internal/presentation/http/routes"
	"github.com/shopsphere/storefront-api/pkg/email"
	"github.com/shopsphere/storefront-api/pkg/oauth"
	"github.com/shopsphere/storefront-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the admin account
	if err := database.SeedAdminUser(db); err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	returnRepo := repository.NewReturnRequestRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuthService)
	cartService := service.NewCartService(cartRepo, productRepo)
	orderService := service.NewOrderService(
		orderRepo,
		returnRepo,
		cartRepo,
		productRepo,
		addressRepo,
		emailService,
		cfg.Checkout.DeliveryFee,
		cfg.Checkout.FreeDeliveryMin,
	)
	reportService := service.NewReportService(orderRepo, cfg.Report.FetchTimeout, cfg.Report.Currency)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:   handler.NewAuthHandler(authService),
		Cart:   handler.NewCartHandler(cartService),
		Order:  handler.NewOrderHandler(orderService),
		Report: handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:  jwtManager,
		Cfg:         cfg,
		CartService: cartService,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
