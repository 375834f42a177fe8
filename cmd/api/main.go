package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/medicore/hospital-api/internal/config"
	"github.com/medicore/hospital-api/internal/email"
	"github.com/medicore/hospital-api/internal/handler"
	appointmentHandler "github.com/medicore/hospital-api/internal/handler/appointment"
	authHandler "github.com/medicore/hospital-api/internal/handler/auth"
	dashboardHandler "github.com/medicore/hospital-api/internal/handler/dashboard"
	financialHandler "github.com/medicore/hospital-api/internal/handler/financial"
	laboratoryHandler "github.com/medicore/hospital-api/internal/handler/laboratory"
	navigationHandler "github.com/medicore/hospital-api/internal/handler/navigation"
	notificationHandler "github.com/medicore/hospital-api/internal/handler/notification"
	patientHandler "github.com/medicore/hospital-api/internal/handler/patient"
	pharmacyHandler "github.com/medicore/hospital-api/internal/handler/pharmacy"
	staffHandler "github.com/medicore/hospital-api/internal/handler/staff"
	"github.com/medicore/hospital-api/internal/middleware"
	"github.com/medicore/hospital-api/internal/navigation"
	"github.com/medicore/hospital-api/internal/repository/postgres"
	"github.com/medicore/hospital-api/internal/router"
	appointmentService "github.com/medicore/hospital-api/internal/service/appointment"
	authService "github.com/medicore/hospital-api/internal/service/auth"
	dashboardService "github.com/medicore/hospital-api/internal/service/dashboard"
	financialService "github.com/medicore/hospital-api/internal/service/financial"
	laboratoryService "github.com/medicore/hospital-api/internal/service/laboratory"
	notificationService "github.com/medicore/hospital-api/internal/service/notification"
	patientService "github.com/medicore/hospital-api/internal/service/patient"
	pharmacyService "github.com/medicore/hospital-api/internal/service/pharmacy"
	staffService "github.com/medicore/hospital-api/internal/service/staff"
	"github.com/medicore/hospital-api/internal/session"
	"github.com/medicore/hospital-api/internal/token"
	"github.com/medicore/hospital-api/pkg/auth"
	"github.com/medicore/hospital-api/pkg/logger"
	"github.com/medicore/hospital-api/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLog := logger.NewLogger(nil)

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Initialize repositories
	base := postgres.NewBaseRepository(db)
	userRepo := postgres.NewUserRepository(base)
	patientRepo := postgres.NewPatientRepository(base)
	appointmentRepo := postgres.NewAppointmentRepository(base)
	medicationRepo := postgres.NewMedicationRepository(base)
	labOrderRepo := postgres.NewLabOrderRepository(base)
	transactionRepo := postgres.NewTransactionRepository(base)
	notificationRepo := postgres.NewNotificationRepository(base)

	// Token persistence: Redis when configured, in-memory otherwise.
	var tokens token.Store
	if cfg.Redis.URL != "" {
		tokens, err = token.NewRedisStore(cfg.Redis.URL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, falling back to in-memory token store")
			tokens = token.NewMemoryStore()
		}
	} else {
		tokens = token.NewMemoryStore()
	}

	// Authentication stack
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	authSvc := authService.NewService(userRepo, jwtSvc, hasher)

	sessions := session.NewStore(authSvc, tokens, session.Config{
		TokenTTL:     time.Duration(cfg.JWT.ExpiryHours) * time.Hour,
		LoginTimeout: cfg.Auth.LoginTimeout(),
	}, appLog)

	// Restore any persisted session before serving traffic.
	if err := sessions.Rehydrate(context.Background()); err != nil {
		log.Warn().Err(err).Msg("failed to rehydrate session")
	}

	// Email: SMTP when configured, otherwise discard.
	var emailSvc email.Service = email.NoopService{}
	if emailCfg, err := email.ConfigFromEnv(); err == nil && emailCfg.Username != "" {
		emailSvc = email.NewSMTPService(emailCfg)
	}

	// Initialize services
	notificationSvc := notificationService.NewService(notificationRepo, userRepo, emailSvc, appLog)
	patientSvc := patientService.NewService(patientRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo)
	pharmacySvc := pharmacyService.NewService(medicationRepo, notificationSvc, appLog)
	laboratorySvc := laboratoryService.NewService(labOrderRepo)
	staffSvc := staffService.NewService(userRepo, hasher)
	financialSvc := financialService.NewService(transactionRepo)
	dashboardSvc := dashboardService.NewService(patientRepo, appointmentRepo, medicationRepo, labOrderRepo, notificationRepo)

	// Custom binding validators
	handler.RegisterValidations()

	registry := navigation.Default()
	guard := middleware.NewGuard(sessions)

	// Initialize handlers
	h := handler.NewHandler(db)
	r := router.NewRouter(
		guard,
		registry,
		authHandler.NewHandler(sessions),
		navigationHandler.NewHandler(registry),
		dashboardHandler.NewHandler(dashboardSvc),
		patientHandler.NewHandler(patientSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		pharmacyHandler.NewHandler(pharmacySvc),
		laboratoryHandler.NewHandler(laboratorySvc),
		staffHandler.NewHandler(staffSvc),
		financialHandler.NewHandler(financialSvc),
		notificationHandler.NewHandler(notificationSvc),
		h,
		router.Config{
			RateLimit:     rate.Limit(cfg.Server.RateLimit),
			RateBurst:     cfg.Server.RateBurst,
			MetricsPrefix: "hospital_api",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()
	log.Info().Int("port", cfg.Server.Port).Msg("server started")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
