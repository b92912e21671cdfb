package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/workhub-team/workhub/pkg/validator"

	"github.com/workhub-team/workhub/internal/adapter/handler"
	"github.com/workhub-team/workhub/internal/adapter/repository"
	"github.com/workhub-team/workhub/internal/infrastructure/cache"
	"github.com/workhub-team/workhub/internal/infrastructure/database"
	httpmw "github.com/workhub-team/workhub/internal/infrastructure/http/middleware"
	"github.com/workhub-team/workhub/internal/infrastructure/notify"
	"github.com/workhub-team/workhub/internal/usecase/canonical"
	"github.com/workhub-team/workhub/internal/usecase/meeting"
	"github.com/workhub-team/workhub/pkg/config"
	"github.com/workhub-team/workhub/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate in CI/CD.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running sql-migrate (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	revisionRepo := repository.NewRevisionRepository(db)
	decisionRepo := repository.NewDecisionRepository(db)
	actionRepo := repository.NewActionRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	// Initialize meeting cache
	log.Println("🗃️  Initializing meeting cache...")
	meetingCache := cache.NewMeetingCache(redisClient, cfg.Redis.CacheTTL)

	// Initialize mention notifier
	log.Println("🔔 Initializing mention notifier...")
	var notifier meeting.MentionNotifier = meeting.NoopNotifier{}
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.Notify, logger)
		log.Printf("✅ Mention webhook: %s", cfg.Notify.WebhookURL)
	} else {
		log.Println("⚠️  No mention webhook configured; notifications disabled")
	}

	// Initialize meeting sync service
	log.Println("📋 Initializing meeting service...")
	meetingService := meeting.NewService(
		meetingRepo,
		revisionRepo,
		decisionRepo,
		actionRepo,
		historyRepo,
		meetingCache,
		notifier,
		logger,
	)

	// Initialize canonical entity service
	log.Println("🗂️  Initializing canonical entity service...")
	canonicalService := canonical.NewService(decisionRepo, actionRepo, historyRepo)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	meetingHandler := handler.NewMeetingHandler(meetingService, logger)
	entityHandler := handler.NewEntityHandler(canonicalService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	authEchoMW := httpmw.EchoAuth(jwtManager, memberRepo)
	router := handler.NewRouter(cfg, meetingHandler, entityHandler, authEchoMW)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
