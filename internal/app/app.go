package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"influmatch_backend/internal/auth"
	"influmatch_backend/internal/config"
	"influmatch_backend/internal/database"
	"influmatch_backend/internal/handlers"
	"influmatch_backend/internal/logger"
	"influmatch_backend/internal/middleware"
	"influmatch_backend/internal/models"
	"influmatch_backend/internal/payments"
	"influmatch_backend/internal/repositories"
	"influmatch_backend/internal/routes"
	"influmatch_backend/internal/services"
	"influmatch_backend/internal/validator"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("production")
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers into a ready
// gin engine. Exported so integration tests can mount the full API on
// a test database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	serviceContainer := initializeServices(cfg, gormDB, tokens)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers, tokens)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, tokens *auth.TokenManager) handlers.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	campaignRepo := repositories.NewCampaignRepository(gormDB)
	paymentRepo := repositories.NewPaymentRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	planRepo := repositories.NewPlanRepository(gormDB)

	commissionRate, err := decimal.NewFromString(cfg.Payment.CommissionRate)
	if err != nil {
		logger.Fatal("Invalid commission rate in config", "value", cfg.Payment.CommissionRate, "error", err)
	}

	var provider payments.Provider
	if cfg.Payment.StripeSecretKey != "" {
		provider = payments.NewStripeProvider(cfg.Payment.StripeSecretKey, "usd")
		logger.Info("Stripe payment provider initialized")
	} else {
		provider = payments.NewMockProvider()
		logger.Warn("No Stripe key configured, using mock payment provider")
	}

	notificationService := services.NewNotificationService(notificationRepo)
	trialService := services.NewTrialService(userRepo, services.TrialConfig{
		Duration: time.Duration(cfg.Trial.DurationHours) * time.Hour,
	})
	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo, notificationService)
	profileService := services.NewProfileService(profileRepo, userRepo, trialService)
	campaignService := services.NewCampaignService(campaignRepo, userRepo, profileRepo, notificationService)
	paymentService := services.NewPaymentService(paymentRepo, campaignRepo, userRepo, provider, notificationService, services.PaymentConfig{
		CommissionRate: commissionRate,
		CaptureTimeout: time.Duration(cfg.Payment.CaptureTimeoutSeconds) * time.Second,
	})
	planService := services.NewPlanService(planRepo, userRepo)

	return handlers.ServiceContainer{
		Auth:         authService,
		User:         userService,
		Trial:        trialService,
		Profile:      profileService,
		Campaign:     campaignService,
		Payment:      paymentService,
		Notification: notificationService,
		Plan:         planService,
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin creates the platform admin account on first boot.
// Admin accounts cannot be self-registered.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.Email
	adminPassword := cfg.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		FullName:     "Platform Administrator",
		Role:         models.UserRoleAdmin,
		IsActive:     true,
		IsApproved:   true,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
