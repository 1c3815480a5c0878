package app

import (
	"fmt"

	"jobboard_backend/database"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPSender(cfg)
	} else {
		logger.Warn("SMTP is not configured, using mock email provider")
		emailProvider = &MockEmailProvider{}
	}

	accountRepo := repositories.NewAccountRepository(gormDB)
	userRepo := repositories.NewUserRepository(gormDB)
	companyRepo := repositories.NewCompanyRepository(gormDB)
	profileRepo := repositories.NewEmployerProfileRepository(gormDB)
	onboardingRepo := repositories.NewOnboardingRepository(gormDB)
	jobRepo := repositories.NewJobPostRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:       services.NewAuthService(accountRepo, emailProvider),
		OnboardingService: services.NewOnboardingService(userRepo, companyRepo, profileRepo, onboardingRepo),
		JobService:        services.NewJobService(jobRepo, companyRepo, profileRepo),
		PublicJobService:  services.NewPublicJobService(jobRepo),
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(baseHandler, services.AuthService),
		OnboardingHandler: handlers.NewOnboardingHandler(baseHandler, services.OnboardingService),
		JobHandler:        handlers.NewJobHandler(baseHandler, services.JobService, services.PublicJobService),
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
