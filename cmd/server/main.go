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

	"volunteerhub-backend/internal/api"
	"volunteerhub-backend/internal/config"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository/postgres"
	"volunteerhub-backend/internal/security"
	"volunteerhub-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting VolunteerHub API server...", "log_level", cfg.Log.Level)

	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)
	tokens := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	emailService := service.NewEmailService(cfg.SMTP)
	authService := service.NewAuthService(store.UserRepository, tokens)
	orgService := service.NewOrgService(store.OrganizationRepository, store.MemberRepository)
	adminService := service.NewAdminService(store.OrganizationRepository)
	staffService := service.NewStaffService(store.OrganizationRepository, store.MemberRepository,
		store.StaffApplicationRepository, store.UserRepository, emailService)
	eventService := service.NewEventService(store.EventRepository, store.OrganizationRepository, store.MemberRepository)
	appService := service.NewApplicationService(store.EventApplicationRepository, store.EventRepository,
		store.MemberRepository, store.UserRepository, emailService)
	attendanceService := service.NewAttendanceService(store.AttendanceRepository, store.EventApplicationRepository,
		store.EventRepository, store.MemberRepository)
	certService := service.NewCertificateService(store.CertificateRepository)

	handlers := api.NewHandlers(authService, orgService, adminService, staffService,
		eventService, appService, attendanceService, certService)
	router := api.NewRouter(handlers, tokens, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
