package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "github.com/CaL7598/Goodlife-gym/internal/api/http"
	"github.com/CaL7598/Goodlife-gym/internal/config"
	"github.com/CaL7598/Goodlife-gym/internal/jobs"
	"github.com/CaL7598/Goodlife-gym/internal/logger"
	"github.com/CaL7598/Goodlife-gym/internal/membership"
	"github.com/CaL7598/Goodlife-gym/internal/repository/postgres"
	"github.com/CaL7598/Goodlife-gym/internal/scheduler"
	"github.com/CaL7598/Goodlife-gym/internal/security"
	"github.com/CaL7598/Goodlife-gym/internal/service"
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
	logger.Info("Starting Goodlife Gym Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

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
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	clock := membership.SystemClock()

	// Outbound gateways
	emailSender := service.NewSendGridSender(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	smsSender := service.NewTwilioSender(cfg.SMS.AccountSID, cfg.SMS.AuthToken, cfg.SMS.FromNumber)
	notifier := service.NewNotificationGateway(emailSender, smsSender)
	activity := service.NewActivityRecorder(store.ActivityLogRepository)

	// Initialize Services
	memberSvc := service.NewMemberService(store.MemberRepository, activity, clock)
	paymentSvc := service.NewPaymentService(store.PaymentRepository, store.MemberRepository, notifier, activity, clock)
	subscriptionSvc := service.NewSubscriptionService(store.MemberRepository, store.PaymentRepository, notifier, activity, clock)
	staffSvc := service.NewStaffService(store.StaffRepository, tokenManager, activity)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository, activity)
	expenseSvc := service.NewExpenseService(store.ExpenseRepository, activity)
	checkInSvc := service.NewCheckInService(store.CheckInRepository, clock)
	announcementSvc := service.NewAnnouncementService(store.AnnouncementRepository, activity, clock)
	communicationSvc := service.NewCommunicationService(store.MemberRepository, notifier, activity)

	// Initialize HTTP handlers
	handlers := &httpapi.Handlers{
		Auth:     httpapi.NewAuthHandler(staffSvc),
		Members:  httpapi.NewMemberHandler(memberSvc, subscriptionSvc),
		Payments: httpapi.NewPaymentHandler(paymentSvc),
		Staff:    httpapi.NewStaffHandler(staffSvc),
		Operations: httpapi.NewOperationsHandler(
			equipmentSvc,
			expenseSvc,
			checkInSvc,
			announcementSvc,
			communicationSvc,
			store.ActivityLogRepository,
		),
	}
	router := httpapi.NewRouter(handlers, httpapi.NewAuthMiddleware(tokenManager))

	// Initialize background jobs
	jobRunner := jobs.NewJobRunner(&jobs.Services{
		Subscription: subscriptionSvc,
		Notifier:     notifier,
	}, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down...")
	cronScheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
