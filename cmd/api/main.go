package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/meeting-insights/docs"
	pkgvalidator "github.com/johnquangdev/meeting-insights/pkg/validator"

	"github.com/johnquangdev/meeting-insights/internal/adapter/handler"
	"github.com/johnquangdev/meeting-insights/internal/adapter/repository"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/storage"
	aiuse "github.com/johnquangdev/meeting-insights/internal/usecase/ai"
	"github.com/johnquangdev/meeting-insights/internal/usecase/meeting"
	pkgai "github.com/johnquangdev/meeting-insights/pkg/ai"
	"github.com/johnquangdev/meeting-insights/pkg/config"
	"github.com/johnquangdev/meeting-insights/pkg/langdetect"
	pkglogger "github.com/johnquangdev/meeting-insights/pkg/logger"
)

// @title           Meeting Insights API
// @version         1.0
// @description     Transcribes meeting audio, translates it to English, summarizes, moderates and extracts action items with assignees.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /api/v1

const (
	// startupTimeout bounds connecting to Redis and MinIO
	startupTimeout = 45 * time.Second

	// detectorMinConfidence filters out unreliable local language guesses
	detectorMinConfidence = 0.3

	cacheKeyPrefix = "meeting-insights:"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := pkglogger.New(pkglogger.Options{
		Level:       cfg.Log.Level,
		ErrorFile:   cfg.Log.ErrorFile,
		Development: cfg.IsDevelopment(),
	})
	defer logger.Sync()

	// Initialize dependencies
	logger.Info("🔧 Initializing dependencies...")
	startCtx, cancelStart := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStart()

	logger.Info("📦 Connecting to key/value store...", zap.String("type", cfg.Cache.Type))
	kv, err := newCacheStore(startCtx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize cache store", zap.Error(err))
	}
	defer kv.Close()

	logger.Info("🗄️  Initializing audio storage...", zap.String("type", cfg.Storage.Type))
	audioStore, err := newAudioStore(startCtx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize audio storage", zap.Error(err))
	}

	// Initialize repositories
	logger.Info("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(kv)
	uploadRepo := repository.NewUploadRepository(kv)

	// Initialize AI clients
	logger.Info("🤖 Initializing AI components...", zap.String("transcriber", cfg.Pipeline.Transcriber))
	groqClient := pkgai.NewGroqClient(&cfg.Groq)
	transcriber := newTranscriber(cfg, groqClient)
	if !groqClient.Configured() {
		logger.Warn("⚠️  GROQ_API_KEY not set; generation endpoints will fail until it is configured")
	}
	if !transcriber.Configured() {
		logger.Warn("⚠️  Transcription credential not set; transcription endpoints will fail until it is configured")
	}

	aiService := aiuse.NewAIService(
		transcriber,
		groqClient,
		langdetect.NewDetector(detectorMinConfidence),
		cfg.Pipeline.Timeout,
		logger,
	)
	meetingService := meeting.NewMeetingService(
		meetingRepo,
		uploadRepo,
		audioStore,
		cfg.Storage.UploadTTL,
		cfg.MaxUploadBytes(),
		logger,
	)

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = false
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.ErrorHandler(logger)

	e.Use(middleware.RequestID())

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Multipart framing adds a little on top of the file itself
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", cfg.Server.MaxUploadMB+1)))

	// Setup router with handlers
	logger.Info("🛣️  Setting up routes...")
	meetingHandler := handler.NewMeetingHandler(meetingService, aiService, cfg.Storage.UploadTTL, cfg.MaxUploadBytes(), logger)
	aiController := handler.NewAIController(aiService, logger)
	router := handler.NewRouter(cfg, meetingHandler, aiController)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("✅ Server stopped gracefully")
}

func newCacheStore(ctx context.Context, cfg *config.Config) (cache.Store, error) {
	if strings.EqualFold(cfg.Cache.Type, "redis") {
		return cache.NewRedisStore(ctx, cfg, cacheKeyPrefix)
	}
	return cache.NewMemoryStore(time.Minute), nil
}

func newAudioStore(ctx context.Context, cfg *config.Config) (storage.AudioStore, error) {
	if strings.EqualFold(cfg.Storage.Type, "minio") {
		return storage.NewMinIOStore(ctx, &cfg.Storage)
	}
	return storage.NewLocalStore(cfg.Storage.Dir)
}

func newTranscriber(cfg *config.Config, groqClient *pkgai.GroqClient) aiuse.Transcriber {
	if strings.EqualFold(cfg.Pipeline.Transcriber, "assemblyai") {
		return pkgai.NewAssemblyAITranscriber(&cfg.Assembly)
	}
	return groqClient
}
