package main

import (
	"context"
	"log"
	"time"

	"dsa-catalog/internal/config"
	"dsa-catalog/internal/database"
	"dsa-catalog/internal/logger"

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

	fsys, err := database.Migrations(cfg.Catalog.MigrationsDir)
	if err != nil {
		appLogger.Fatal("Failed to open migrations", zap.Error(err))
	}
	migrations, err := database.LoadMigrations(fsys)
	if err != nil {
		appLogger.Fatal("Failed to load migrations", zap.Error(err))
	}

	applied, err := database.RunMigrations(ctx, db, migrations)
	if err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err), zap.Strings("applied", applied))
	}
	appLogger.Info("Database is up to date", zap.Strings("applied", applied), zap.Int("known", len(migrations)))
}
