package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "motorent-backend/internal/api/http"
	"motorent-backend/internal/config"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/repository/postgres"
	"motorent-backend/internal/security"
	"motorent-backend/internal/service"
	"motorent-backend/internal/storage"
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
	logger.Info("Starting MotoRent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Email configuration", "provider", cfg.Email.Provider)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
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

	// Initialize Image Storage
	imageStore, err := storage.NewLocalImageStore(cfg.Storage.UploadDir, cfg.Storage.AllowedTypes)
	if err != nil {
		logger.Error("Failed to initialize image storage", "error", err)
		log.Fatalf("Failed to initialize image storage: %v", err)
	}
	logger.Info("Image storage initialized", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Email Service
	emailSvc := newEmailService(cfg)

	// Initialize Services
	authSvc := service.NewAuthService(store.EmployeeRepository, tokenManager)
	contractSvc := service.NewContractService(
		store.ContractRepository,
		store.MotorbikeRepository,
		store.DiscountRepository,
		store.CustomerRepository,
		store.IncidentRepository,
		store.PaymentRepository,
		store.NotificationRepository,
		emailSvc,
	)
	motorbikeSvc := service.NewMotorbikeService(store.MotorbikeRepository)
	discountSvc := service.NewDiscountService(store.DiscountRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository, store.ContractRepository)
	statsSvc := service.NewStatisticsService(store.StatisticsRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	imageSvc := service.NewIncidentImageService(store.IncidentRepository, imageStore)

	// Seed the initial admin account
	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		if err := authSvc.SeedAdmin(context.Background(), cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			logger.Error("Failed to seed admin employee", "error", err)
		}
	}

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Auth:          authSvc,
		Contracts:     contractSvc,
		Motorbikes:    motorbikeSvc,
		Discounts:     discountSvc,
		Customers:     customerSvc,
		Statistics:    statsSvc,
		Notifications: noteSvc,
		IncidentImage: imageSvc,
	}, tokenManager, cfg.Storage.MaxFileSize*1024*1024)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Received shutdown signal", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}

func newEmailService(cfg *config.Config) service.EmailService {
	if cfg.Email.Provider == "sendgrid" {
		return service.NewSendGridEmailService(cfg.Email.SendGridAPIKey, cfg.Email.From, "MotoRent")
	}
	return service.NewEmailService(
		cfg.Email.SMTPHost,
		fmt.Sprintf("%d", cfg.Email.SMTPPort),
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.From,
	)
}
