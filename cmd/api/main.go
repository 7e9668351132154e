package main

// @title Places Directory API
// @version 1.0.0
// @description Content API for categorized points of interest with multilingual text, opening hours, images, boolean attribute tags, per-device likes and a wheel-spin random selection endpoint.

// @contact.name API Support

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/places-directory/docs"
	"github.com/places-directory/internal/config"
	httpDelivery "github.com/places-directory/internal/delivery/http"
	"github.com/places-directory/internal/delivery/http/handler"
	"github.com/places-directory/internal/pkg/logger"
	"github.com/places-directory/internal/repository/cache"
	"github.com/places-directory/internal/repository/postgres"
	"github.com/places-directory/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Places Directory API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Load the service timezone used for working-hours computation
	location, err := time.LoadLocation(cfg.I18n.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone", zap.String("timezone", cfg.I18n.Timezone), zap.Error(err))
	}

	// 4. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 5. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 6. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 7. Initialize repositories
	languageRepo := postgres.NewLanguageRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	definitionRepo := postgres.NewDefinitionRepository(db)
	placeRepo := postgres.NewPlaceRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 8. Initialize use cases
	presenter := usecase.NewPresenter(cfg.I18n.DefaultLanguage, log)

	placeUC := usecase.NewPlaceUseCase(placeRepo, definitionRepo, presenter, location, log)
	wheelSpinUC := usecase.NewWheelSpinUseCase(placeRepo, placeUC, log)
	referenceUC := usecase.NewReferenceUseCase(
		languageRepo,
		categoryRepo,
		definitionRepo,
		cacheRepo,
		presenter,
		cfg.I18n.DefaultLanguage,
		cfg.Cache.ReferenceTTL,
		cfg.Cache.FilterOptionsTTL,
		log,
	)

	// 9. Initialize HTTP handlers
	languageHandler := handler.NewLanguageHandler(referenceUC, log)
	categoryHandler := handler.NewCategoryHandler(referenceUC, log)
	placeHandler := handler.NewPlaceHandler(placeUC, log)
	filterOptionsHandler := handler.NewFilterOptionsHandler(referenceUC, log)
	wheelSpinHandler := handler.NewWheelSpinHandler(wheelSpinUC, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		languageHandler,
		categoryHandler,
		placeHandler,
		filterOptionsHandler,
		wheelSpinHandler,
	)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
