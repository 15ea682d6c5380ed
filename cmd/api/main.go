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

	"github.com/jwalitptl/clinic-booking-api/internal/config"
	"github.com/jwalitptl/clinic-booking-api/internal/email"
	appointmentHandler "github.com/jwalitptl/clinic-booking-api/internal/handler/appointment"
	authHandler "github.com/jwalitptl/clinic-booking-api/internal/handler/auth"
	directoryHandler "github.com/jwalitptl/clinic-booking-api/internal/handler/directory"
	healthHandler "github.com/jwalitptl/clinic-booking-api/internal/handler/health"
	symptomHandler "github.com/jwalitptl/clinic-booking-api/internal/handler/symptom"
	"github.com/jwalitptl/clinic-booking-api/internal/middleware"
	"github.com/jwalitptl/clinic-booking-api/internal/repository/memory"
	"github.com/jwalitptl/clinic-booking-api/internal/router"
	analysisService "github.com/jwalitptl/clinic-booking-api/internal/service/analysis"
	appointmentService "github.com/jwalitptl/clinic-booking-api/internal/service/appointment"
	authService "github.com/jwalitptl/clinic-booking-api/internal/service/auth"
	directoryService "github.com/jwalitptl/clinic-booking-api/internal/service/directory"
	workflowService "github.com/jwalitptl/clinic-booking-api/internal/service/workflow"
	"github.com/jwalitptl/clinic-booking-api/internal/worker"
	pkgauth "github.com/jwalitptl/clinic-booking-api/pkg/auth"
	"github.com/jwalitptl/clinic-booking-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(nil)

	// Seed the in-memory repositories with the demo dataset
	seed := memory.NewSeedData()
	userRepo := memory.NewUserRepository(seed.Users)
	doctorRepo := memory.NewDoctorRepository(seed.Doctors, seed.Specialties)
	availabilityRepo := memory.NewAvailabilityRepository(seed.Slots)
	appointmentRepo := memory.NewAppointmentRepository(seed.Appointments)

	// Initialize services
	jwtSvc := pkgauth.NewJWTService(cfg.JWT.Secret, cfg.JWTExpiry())
	authSvc := authService.NewService(userRepo, jwtSvc, cfg.JWTExpiry())
	emailSvc := email.NewService(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, appLogger)
	analyzerSvc := analysisService.NewService(memory.ConditionCatalog(), memory.GeneralAdvice(), cfg.AnalysisLatency(), nil)
	directorySvc := directoryService.NewService(doctorRepo, availabilityRepo, cfg.SlotsLatency())
	appointmentSvc := appointmentService.NewService(appointmentRepo, doctorRepo, availabilityRepo, emailSvc, appLogger, cfg.BookingLatency())
	workflowSvc := workflowService.NewService(analyzerSvc, directorySvc, appointmentSvc, appLogger, cfg.WorkflowTTL())

	// Initialize middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		directoryHandler.NewHandler(directorySvc),
		appointmentHandler.NewHandler(appointmentSvc),
		symptomHandler.NewHandler(workflowSvc),
		healthHandler.NewHandler(),
		router.RouterConfig{
			RateLimitRPS: cfg.RateLimit.RPS,
			RateBurst:    cfg.RateLimit.Burst,
			Timeout:      cfg.ServerTimeout(),
			CORSConfig:   middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	// Start the workflow session sweeper
	sweeperCtx, cancelSweeper := context.WithCancel(context.Background())
	defer cancelSweeper()
	sweeper := worker.NewWorkflowSweeper(workflowSvc, cfg.SweepInterval(), appLogger)
	go sweeper.Start(sweeperCtx)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

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
