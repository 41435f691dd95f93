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

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/config"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/jobs"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/logger"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/repository/postgres"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/scheduler"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'send-rent-reminders', 'all-nightly', 'all-monthly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting EstateFlow cronjob runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Services
	var emailSvc service.EmailService
	if cfg.Email.Provider == "sendgrid" {
		emailSvc = service.NewSendGridEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		emailSvc = service.NewLogEmailService()
	}
	messenger := service.NewSimulatedMessenger(store.NotificationRepository)

	tenantSvc := service.NewTenantService(
		store.TenantRepository,
		store.PropertyRepository,
		store.PaymentRepository,
		emailSvc,
	)
	reportSvc := service.NewReportService(
		store.PropertyRepository,
		store.TenantRepository,
		store.PaymentRepository,
		store.UserRepository,
		store.MaintenanceRepository,
	)

	jobServices := &jobs.Services{
		Email:     emailSvc,
		Messenger: messenger,
		Tenant:    tenantSvc,
		Report:    reportSvc,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(db, store, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "send-rent-reminders":
		jobRunner.SendRentReminders()
	case "send-overdue-notices":
		jobRunner.SendOverdueNotices()
	case "send-commission-statements":
		jobRunner.SendCommissionStatements()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	case "all-monthly":
		jobRunner.RunAllMonthlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - send-rent-reminders\n")
		fmt.Printf("  - send-overdue-notices\n")
		fmt.Printf("  - send-commission-statements\n")
		fmt.Printf("  - all-nightly\n")
		fmt.Printf("  - all-monthly\n")
		os.Exit(1)
	}
}
