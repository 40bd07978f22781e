package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/tamaverse/TamaPet_Go/internal/bootstrap"
	"github.com/tamaverse/TamaPet_Go/internal/config"
	"github.com/tamaverse/TamaPet_Go/internal/database"
	"github.com/tamaverse/TamaPet_Go/internal/database/postgres"
	"github.com/tamaverse/TamaPet_Go/internal/logger"
)

// Seeds the shop catalog from configs/shop_items.json without starting
// the server. Useful for CI and fresh environments.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat,
		logger.DefaultServiceName, cfg.Version, cfg.Environment, false))

	ctx := context.Background()

	dbPool, err := database.NewPool(ctx, cfg)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	shopRepo := postgres.NewShopRepository(dbPool)

	if err := bootstrap.SyncShopCatalog(ctx, shopRepo); err != nil {
		slog.Error("Shop catalog sync failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Seed completed")
}
