package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/pospoint/terminal-api/internal/application/service"
	"github.com/pospoint/terminal-api/internal/config"
	"github.com/pospoint/terminal-api/internal/infrastructure/backend"
	"github.com/pospoint/terminal-api/internal/infrastructure/database"
	infraRepo "github.com/pospoint/terminal-api/internal/infrastructure/repository"
	"github.com/pospoint/terminal-api/internal/presentation/http/handler"
	"github.com/pospoint/terminal-api/internal/presentation/http/middleware"
	"github.com/pospoint/terminal-api/internal/presentation/http/routes"
	"github.com/pospoint/terminal-api/pkg/email"
	"github.com/pospoint/terminal-api/pkg/printer"
	"github.com/pospoint/terminal-api/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.App.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Local store
	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to open local database", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := database.SeedDefaultState(db); err != nil {
		logger.Fatal("Failed to seed default state", zap.Error(err))
	}

	// Repositories
	stateRepo := infraRepo.NewClientStateRepository(db)
	pendingRepo := infraRepo.NewPendingSaleRepository(db)
	customerCacheRepo := infraRepo.NewCustomerCacheRepository(db)
	operatorRepo := infraRepo.NewOperatorRepository(db)

	// Backend client
	backendClient := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	// Printer
	p, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.DevicePath, cfg.Printer.Address)
	if err != nil {
		logger.Fatal("Failed to configure printer", zap.Error(err))
	}
	defer p.Close()

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Services
	resolver := service.NewOutletResolver()
	sessions := service.NewSessionService(resolver)
	roleService, err := service.NewRoleService(context.Background(), stateRepo, logger)
	if err != nil {
		logger.Fatal("Failed to load active role", zap.Error(err))
	}
	taxPolicy := service.ZeroTaxPolicy{}
	pricing := service.NewPricingService(taxPolicy)
	builder := service.NewSaleBuilder(taxPolicy)
	receipts := service.NewReceiptService()
	searcher := service.NewCustomerSearcher(backendClient, customerCacheRepo, logger, cfg.Search.Debounce)
	checkout := service.NewCheckoutService(sessions, pricing, builder, receipts, backendClient, pendingRepo, logger)
	printing := service.NewPrintingService(p, receipts, cfg.Printer.Type, cfg.Printer.Width, logger)
	authService := service.NewAuthService(backendClient, operatorRepo, jwtManager, logger)

	mailer := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.Host,
		SMTPPort:     cfg.Email.Port,
		SMTPUsername: cfg.Email.Username,
		SMTPPassword: cfg.Email.Password,
		FromName:     cfg.App.Name,
		FromEmail:    cfg.Email.From,
	})

	// HTTP surface
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(logger))

	routes.SetupRoutes(router, routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Session:  handler.NewSessionHandler(sessions, resolver, backendClient),
		POS:      handler.NewPOSHandler(sessions, checkout),
		Customer: handler.NewCustomerHandler(searcher),
		Role:     handler.NewRoleHandler(roleService),
		Receipt:  handler.NewReceiptHandler(receipts, printing, sessions, resolver, mailer),
	}, roleService, jwtManager, cfg)

	logger.Info("Terminal API starting",
		zap.String("port", cfg.App.Port),
		zap.String("backend", cfg.Backend.BaseURL),
	)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}
