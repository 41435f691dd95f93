package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "github.com/JadanTechnologies/estateflowdemo-sub000/internal/api/http"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/config"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/logger"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/repository/postgres"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/security"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/service"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting EstateFlow backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Storage Service
	var mockStorage *storage.MockStorageService
	if cfg.Storage.Type == "" || cfg.Storage.Type == "mock" {
		logger.Info("Using mock storage (local filesystem)", "upload_dir", cfg.Storage.UploadDir)
		mockStorage, err = storage.NewMockStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
	} else {
		logger.Error("Unsupported storage type", "type", cfg.Storage.Type)
		log.Fatalf("Storage type '%s' not yet implemented", cfg.Storage.Type)
	}

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.Provider == "sendgrid" {
		emailSvc = service.NewSendGridEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		logger.Info("Using log email provider, no email will be sent")
		emailSvc = service.NewLogEmailService()
	}
	messenger := service.NewSimulatedMessenger(store.NotificationRepository)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	propertySvc := service.NewPropertyService(store.PropertyRepository, store.TenantRepository)
	tenantSvc := service.NewTenantService(
		store.TenantRepository,
		store.PropertyRepository,
		store.PaymentRepository,
		emailSvc,
	)
	paymentSvc := service.NewPaymentService(
		store.PaymentRepository,
		store.TenantRepository,
		store.PropertyRepository,
		store.UserRepository,
		emailSvc,
		messenger,
	)
	reportSvc := service.NewReportService(
		store.PropertyRepository,
		store.TenantRepository,
		store.PaymentRepository,
		store.UserRepository,
		store.MaintenanceRepository,
	)
	maintenanceSvc := service.NewMaintenanceService(
		store.MaintenanceRepository,
		store.PropertyRepository,
		store.TenantRepository,
	)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Build the router and serve
	router := httpapi.NewRouter(httpapi.Services{
		Auth:         authSvc,
		Property:     propertySvc,
		Tenant:       tenantSvc,
		Payment:      paymentSvc,
		Report:       reportSvc,
		Maintenance:  maintenanceSvc,
		Notification: noteSvc,
		Tokens:       tokenManager,
		MockStorage:  mockStorage,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
