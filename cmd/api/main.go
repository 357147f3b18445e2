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

	"github.com/inaaqc/clinical-api/internal/config"
	"github.com/inaaqc/clinical-api/internal/handler"
	admissionHandler "github.com/inaaqc/clinical-api/internal/handler/admission"
	authHandler "github.com/inaaqc/clinical-api/internal/handler/auth"
	diagnosisHandler "github.com/inaaqc/clinical-api/internal/handler/diagnosis"
	fileHandler "github.com/inaaqc/clinical-api/internal/handler/file"
	observationHandler "github.com/inaaqc/clinical-api/internal/handler/observation"
	observationTypeHandler "github.com/inaaqc/clinical-api/internal/handler/observationtype"
	ocrHandler "github.com/inaaqc/clinical-api/internal/handler/ocr"
	patientHandler "github.com/inaaqc/clinical-api/internal/handler/patient"
	reviewHandler "github.com/inaaqc/clinical-api/internal/handler/review"
	roleHandler "github.com/inaaqc/clinical-api/internal/handler/role"
	userHandler "github.com/inaaqc/clinical-api/internal/handler/user"
	"github.com/inaaqc/clinical-api/internal/middleware"
	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/repository/postgres"
	"github.com/inaaqc/clinical-api/internal/router"
	admissionService "github.com/inaaqc/clinical-api/internal/service/admission"
	authService "github.com/inaaqc/clinical-api/internal/service/auth"
	diagnosisService "github.com/inaaqc/clinical-api/internal/service/diagnosis"
	fileService "github.com/inaaqc/clinical-api/internal/service/file"
	observationService "github.com/inaaqc/clinical-api/internal/service/observation"
	observationTypeService "github.com/inaaqc/clinical-api/internal/service/observationtype"
	ocrService "github.com/inaaqc/clinical-api/internal/service/ocr"
	patientService "github.com/inaaqc/clinical-api/internal/service/patient"
	reviewService "github.com/inaaqc/clinical-api/internal/service/review"
	roleService "github.com/inaaqc/clinical-api/internal/service/role"
	userService "github.com/inaaqc/clinical-api/internal/service/user"
	"github.com/inaaqc/clinical-api/internal/storage"
	"github.com/inaaqc/clinical-api/pkg/auth"
	"github.com/inaaqc/clinical-api/pkg/logger"
	"github.com/inaaqc/clinical-api/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})

	model.RegisterValidations()

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	store, err := storage.NewDiskStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare upload directory")
	}

	// Repositories
	patientRepo := postgres.NewPatientRepository(db)
	admissionRepo := postgres.NewAdmissionRepository(db)
	diagnosisRepo := postgres.NewSecondaryDiagnosisRepository(db)
	fileRepo := postgres.NewFileRepository(db)
	ocrRepo := postgres.NewOCRTextRepository(db)
	obsTypeRepo := postgres.NewObservationTypeRepository(db)
	obsRepo := postgres.NewObservationRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	userRoleRepo := postgres.NewUserRoleRepository(db)

	// Services
	hasher := security.NewBcryptHasher(12)
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry())

	patientSvc := patientService.NewService(patientRepo)
	admissionSvc := admissionService.NewService(admissionRepo)
	diagnosisSvc := diagnosisService.NewService(diagnosisRepo, admissionRepo)
	fileSvc := fileService.NewService(fileRepo, store)
	ocrSvc := ocrService.NewService(ocrRepo, fileRepo)
	obsTypeSvc := observationTypeService.NewService(obsTypeRepo)
	obsSvc := observationService.NewService(obsRepo)
	reviewSvc := reviewService.NewService(reviewRepo, obsRepo)
	userSvc := userService.NewService(userRepo, roleRepo, userRoleRepo, hasher)
	roleSvc := roleService.NewService(roleRepo, userRoleRepo, userRepo)
	authSvc := authService.NewService(userRepo, jwtSvc, hasher)

	// Middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	healthH := handler.NewHealthHandler(db)
	authH := authHandler.NewHandler(authSvc)

	protected := []router.Handler{
		router.HandlerFunc(authH.RegisterProtectedRoutes),
		patientHandler.NewHandler(patientSvc),
		admissionHandler.NewHandler(admissionSvc),
		diagnosisHandler.NewHandler(diagnosisSvc),
		fileHandler.NewHandler(fileSvc),
		ocrHandler.NewHandler(ocrSvc),
		observationTypeHandler.NewHandler(obsTypeSvc),
		observationHandler.NewHandler(obsSvc),
		reviewHandler.NewHandler(reviewSvc),
		userHandler.NewHandler(userSvc),
		roleHandler.NewHandler(roleSvc),
	}

	r := router.NewRouter(authMiddleware, healthH, authH, protected, router.Config{
		RateLimitRPS:   cfg.Rate.RPS,
		RateLimitBurst: cfg.Rate.Burst,
		CORSConfig:     middleware.DefaultCORSConfig(),
	})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
