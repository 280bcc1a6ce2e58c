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

	"github.com/CaL7598/Goodlife-gym/internal/config"
	"github.com/CaL7598/Goodlife-gym/internal/jobs"
	"github.com/CaL7598/Goodlife-gym/internal/logger"
	"github.com/CaL7598/Goodlife-gym/internal/membership"
	"github.com/CaL7598/Goodlife-gym/internal/repository/postgres"
	"github.com/CaL7598/Goodlife-gym/internal/scheduler"
	"github.com/CaL7598/Goodlife-gym/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'refresh-member-statuses', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Goodlife Gym Cronjob Runner...", "log_level", cfg.Log.Level)

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

	clock := membership.SystemClock()

	// Initialize Services
	emailSender := service.NewSendGridSender(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	smsSender := service.NewTwilioSender(cfg.SMS.AccountSID, cfg.SMS.AuthToken, cfg.SMS.FromNumber)
	notifier := service.NewNotificationGateway(emailSender, smsSender)
	activity := service.NewActivityRecorder(store.ActivityLogRepository)

	subscriptionSvc := service.NewSubscriptionService(
		store.MemberRepository,
		store.PaymentRepository,
		notifier,
		activity,
		clock,
	)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(&jobs.Services{
		Subscription: subscriptionSvc,
		Notifier:     notifier,
	}, cfg)

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
	case "refresh-member-statuses":
		jobRunner.RefreshMemberStatuses()
	case "send-expiry-reminders":
		jobRunner.SendExpiryReminders()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - refresh-member-statuses\n")
		fmt.Printf("  - send-expiry-reminders\n")
		fmt.Printf("  - all-nightly\n")
		os.Exit(1)
	}
}
