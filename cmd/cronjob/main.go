package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"motorent-backend/internal/config"
	"motorent-backend/internal/jobs"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/repository/postgres"
	"motorent-backend/internal/scheduler"
	"motorent-backend/internal/service"
	"motorent-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'send-expiry-reminders', 'cleanup-orphan-images', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting MotoRent Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Image Storage
	imageStore, err := storage.NewLocalImageStore(cfg.Storage.UploadDir, cfg.Storage.AllowedTypes)
	if err != nil {
		logger.Error("Failed to initialize image storage", "error", err)
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.Provider == "sendgrid" {
		emailSvc = service.NewSendGridEmailService(cfg.Email.SendGridAPIKey, cfg.Email.From, "MotoRent")
	} else {
		emailSvc = service.NewEmailService(
			cfg.Email.SMTPHost,
			fmt.Sprintf("%d", cfg.Email.SMTPPort),
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.From,
		)
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(db, store, emailSvc, imageStore, cfg)

	// Run-once mode for manual execution and testing
	if *runOnce != "" {
		runSingleJob(jobRunner, *runOnce)
		return
	}

	// Start Scheduler
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Received shutdown signal", "signal", sig.String())

	sched.Stop()
	logger.Info("Cronjob runner stopped")
}

func runSingleJob(jobRunner *jobs.JobRunner, jobName string) {
	logger.Info("Running single job", "job", jobName)

	switch jobName {
	case "send-expiry-reminders":
		jobRunner.SendExpiryReminders()
	case "cleanup-orphan-images":
		jobRunner.CleanupOrphanImages()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		log.Fatalf("Unknown job: %s. Valid jobs: send-expiry-reminders, cleanup-orphan-images, all-nightly", jobName)
	}
}
