package main

import (
	"context"
	"log"
	"time"

	"dsa-catalog/internal/adapter"
	"dsa-catalog/internal/cache"
	"dsa-catalog/internal/catalog"
	"dsa-catalog/internal/config"
	"dsa-catalog/internal/database"
	"dsa-catalog/internal/domain"
	"dsa-catalog/internal/logger"
	"dsa-catalog/internal/repository"
	"dsa-catalog/internal/service"

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Cached responses from the previous content are dropped after the sync.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unreachable, cached responses will expire on their own", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		}
	}

	seedService := service.NewSeedService(
		repository.NewTopicDatabaseAdapter(db),
		repository.NewTransactionManagerAdapter(db),
		cacheAdapter,
	)

	result, err := seedService.Sync(ctx, catalog.Default())
	if err != nil {
		appLogger.Fatal("Failed to seed catalog", zap.Error(err))
	}
	appLogger.Info("Seed finished", zap.Any("result", result))
}
