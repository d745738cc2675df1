package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skill-extraction-backend/config"
	_ "skill-extraction-backend/docs" // Important for Swagger
	v1 "skill-extraction-backend/internal/delivery/http/v1"
	"skill-extraction-backend/internal/repository/postgres"
	"skill-extraction-backend/internal/usecase"
	"skill-extraction-backend/pkg/analysis"
	"skill-extraction-backend/pkg/auth"
	"skill-extraction-backend/pkg/database"
	"skill-extraction-backend/pkg/database/migrations"
	"skill-extraction-backend/pkg/docrender"
	"skill-extraction-backend/pkg/logger"
	"skill-extraction-backend/pkg/storage"
	"skill-extraction-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Skill Extraction API
// @version         1.0
// @description     CV upload and AI-driven skill extraction backend.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting skill extraction backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Run Migrations
	if err := migrations.Run(context.Background(), cfg.DBUrl); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	cvRepo := postgres.NewCvUploadRepository(dbPool)

	// 6. Setup Infrastructure Services
	fileStorage, err := storage.NewLocalStorage(cfg.CvStoragePath)
	if err != nil {
		logger.Log.Error("Failed to initialize file storage", "error", err)
		os.Exit(1)
	}
	renderer := docrender.NewRenderer()
	analyzer := analysis.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, time.Duration(cfg.OpenAITimeoutSeconds)*time.Second)
	tokenIssuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTExpirationMinutes)

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	authUC := usecase.NewAuthUsecase(userRepo, tokenIssuer, validate)
	cvUC := usecase.NewCvUsecase(cvRepo, fileStorage, renderer, analyzer)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		CvUC:        cvUC,
		TokenIssuer: tokenIssuer,
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
