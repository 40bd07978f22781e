package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tamaverse/TamaPet_Go/internal/bootstrap"
	"github.com/tamaverse/TamaPet_Go/internal/concurrency"
	"github.com/tamaverse/TamaPet_Go/internal/config"
	"github.com/tamaverse/TamaPet_Go/internal/database"
	"github.com/tamaverse/TamaPet_Go/internal/monster"
	"github.com/tamaverse/TamaPet_Go/internal/server"
	"github.com/tamaverse/TamaPet_Go/internal/shop"
	"github.com/tamaverse/TamaPet_Go/internal/wallet"
)

const shutdownTimeout = 30 * time.Second

// @title TamaPet API
// @version 1.0
// @description Virtual pet economy and progression service.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Logger setup failed: %v", err)
	}
	defer logFile.Close()

	// Production deployments must declare their environment explicitly;
	// dev falls back to the defaults baked into config.Load.
	if cfg.Environment == "prod" {
		warnings, err := config.ValidateEnvWithWarnings()
		if err != nil {
			slog.Error("Environment validation failed", "error", err)
			os.Exit(1)
		}
		for _, warning := range warnings {
			slog.Warn("Environment warning", "warning", warning)
		}
	}

	ctx := context.Background()

	dbPool, err := database.NewPool(ctx, cfg)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := bootstrap.InitializeRepositories(dbPool)

	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Event system initialization failed", "error", err)
		os.Exit(1)
	}

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{EventBus: eventBus}); err != nil {
		slog.Error("Event handler registration failed", "error", err)
		os.Exit(1)
	}

	if err := bootstrap.SyncShopCatalog(ctx, repos.Shop); err != nil {
		slog.Error("Shop catalog sync failed", "error", err)
		os.Exit(1)
	}

	locks := concurrency.NewLockManager()

	walletService := wallet.NewService(repos.Wallet, locks, resilientPublisher)
	shopService := shop.NewService(repos.Shop, repos.Inventory, repos.Monster, locks, resilientPublisher, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)
	monsterService := monster.NewService(repos.Monster, locks, resilientPublisher)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, walletService, shopService, monsterService)

	// Run the server in a goroutine so shutdown signals can be handled
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:             srv,
			ResilientPublisher: resilientPublisher,
		})
	}
}
