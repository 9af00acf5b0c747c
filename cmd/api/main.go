// @title DSA Catalog API
// @version 1.0
// @description Read-only catalog of data structures and algorithms learning topics and their quizzes.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "dsa-catalog/cmd/api/docs"
	"dsa-catalog/internal/adapter"
	"dsa-catalog/internal/cache"
	"dsa-catalog/internal/catalog"
	"dsa-catalog/internal/config"
	"dsa-catalog/internal/database"
	"dsa-catalog/internal/domain"
	"dsa-catalog/internal/handler"
	"dsa-catalog/internal/logger"
	"dsa-catalog/internal/middleware"
	"dsa-catalog/internal/repository"
	"dsa-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	var repo domain.TopicRepository
	switch cfg.Store.Driver {
	case config.StoreOracle:
		db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		repo = repository.NewTopicDatabaseAdapter(db)
		appLogger.Info("Serving topics from Oracle", zap.String("host", cfg.DB.Host), zap.String("db", cfg.DB.DBName))
	default:
		repo = repository.NewCatalogRepository(catalog.Default())
		appLogger.Info("Serving built-in topics", zap.Int("topics", catalog.Default().Len()))
	}

	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Info("Redis address not set, response cache disabled")
	}

	topicService := service.NewTopicService(repo, cacheAdapter, cfg)

	report, err := topicService.ValidateCatalog(ctx)
	if err != nil {
		appLogger.Fatal("Failed to validate catalog content", zap.Error(err))
	}
	for _, issue := range report.Errors {
		appLogger.Error("Catalog content error", zap.String("field", issue.Field), zap.String("message", issue.Message))
	}
	for _, issue := range report.Warnings {
		appLogger.Warn("Catalog content warning", zap.String("field", issue.Field), zap.String("message", issue.Message))
	}
	if !report.Valid && cfg.Catalog.Strict {
		appLogger.Fatal("Refusing to serve invalid catalog content", zap.Int("errors", len(report.Errors)))
	}
	appLogger.Info("Catalog content loaded",
		zap.Int("topics", report.TopicCount),
		zap.Int("quiz_questions", report.QuizCount),
		zap.Bool("valid", report.Valid),
	)

	topicHandler := handler.NewTopicHandler(topicService)
	healthHandler := handler.NewHealthHandler(repo, cacheAdapter)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept," + middleware.RequestIDHeader,
		ExposeHeaders: middleware.RequestIDHeader,
		MaxAge:        300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", healthHandler.Health)

	apiGroup := app.Group("/api")
	apiGroup.Get("/health", healthHandler.Health)
	topicHandler.RegisterRoutes(apiGroup)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("store", cfg.Store.Driver))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
