package main

import (
	"context"
	"log/slog"
	"os"

	"batas-backend/config"
	"batas-backend/handlers"
	"batas-backend/llm"
	"batas-backend/logging"
	"batas-backend/repository"
	"batas-backend/service"
	"batas-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Try current directory first, then project root (relative to cmd/server/)
	envLoaded := true
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			envLoaded = false
		}
	}

	// LOG_FORMAT and LOG_LEVEL may come from .env
	logger := logging.SetDefault()
	if !envLoaded {
		logger.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	locale, _ := service.LocaleFor(cfg.OutputLanguage) // validated by config.Load

	// Reference data and attachment records
	var store repository.ReferenceStore = repository.NewStaticReferenceStore(nil, nil)
	var recorder service.AttachmentRecorder
	if cfg.HasDatabase() {
		db, err := initPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to initialize Postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		store = repository.NewCachedReferenceStore(
			repository.NewPostgresReferenceStore(db),
			cfg.ReferenceCacheTTL,
		)
		recorder = repository.NewAttachmentRepository(db)
		logger.Info("reference data served from Postgres", "cache_ttl", cfg.ReferenceCacheTTL)
	} else {
		logger.Info("DATABASE_URL not set, serving built-in reference catalog")
	}

	// Initialize storage
	fileStorage, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	logger.Info("storage initialized", "type", cfg.Storage.Type)

	analysisOpts := []service.AnalysisServiceOption{
		service.AnalysisWithReferenceStore(store),
		service.AnalysisWithPreferredModels(cfg.PreferredModels),
		service.AnalysisWithFallbackModels(cfg.FallbackModels),
		service.AnalysisWithLocale(locale),
		service.AnalysisWithLawyerLimit(cfg.LawyerLimit),
		service.AnalysisWithLawLimit(cfg.LawLimit),
		service.AnalysisWithLogger(logger),
	}

	// Initialize Gemini; without a key /api/analyze answers CONFIGURATION_ERROR
	if cfg.HasProvider() {
		var geminiOpts []llm.GeminiOption
		if cfg.Temperature != nil {
			geminiOpts = append(geminiOpts, llm.GeminiWithTemperature(*cfg.Temperature))
		}
		provider, err := llm.NewGeminiProvider(ctx, cfg.GeminiAPIKey, geminiOpts...)
		if err != nil {
			logger.Error("failed to initialize Gemini", "error", err)
			os.Exit(1)
		}
		defer provider.Close()

		analysisOpts = append(analysisOpts, service.AnalysisWithProvider(provider))
		logger.Info("Gemini client initialized", "fallback_models", cfg.FallbackModels)
	} else {
		logger.Warn("GEMINI_API_KEY not set, analysis requests will fail")
	}

	// Initialize services
	analysisService := service.NewAnalysisService(analysisOpts...)
	referenceService := service.NewReferenceService(store)

	attachmentOpts := []service.AttachmentServiceOption{
		service.AttachmentWithStorage(fileStorage),
		service.AttachmentWithMaxSize(cfg.MaxAttachmentBytes),
		service.AttachmentWithLogger(logger),
	}
	if recorder != nil {
		attachmentOpts = append(attachmentOpts, service.AttachmentWithRecorder(recorder))
	}
	attachmentService := service.NewAttachmentService(attachmentOpts...)

	// Initialize handlers
	router := handlers.NewRouter(handlers.Routes{
		Analysis:    handlers.NewAnalysisHandler(analysisService, attachmentService, logger),
		Reference:   handlers.NewReferenceHandler(referenceService, logger),
		Attachments: handlers.NewAttachmentHandler(attachmentService, logger),
		Logger:      logger,
	})

	logger.Info("server starting", "port", cfg.Port, "output_language", locale.Code)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}

func initPostgres(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	slog.Info("Postgres connection established")
	return pool, nil
}
