package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tamaverse/TamaPet_Go/internal/config"
	"github.com/tamaverse/TamaPet_Go/internal/repository"
	"github.com/tamaverse/TamaPet_Go/internal/shop"
)

// SyncShopCatalog loads, validates, and syncs the shop catalog configuration to database.
// It handles the complete lifecycle: load JSON → validate → sync to DB → log results.
func SyncShopCatalog(ctx context.Context, shopRepo repository.Shop) error {
	slog.Info(LogMsgSyncingShopCatalog)
	catalogLoader := shop.NewLoader()

	catalogConfig, err := catalogLoader.Load(config.ConfigPathShopItems)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadShopCatalog, err)
	}

	if err := catalogLoader.Validate(catalogConfig); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidShopCatalog, err)
	}

	syncResult, err := catalogLoader.SyncToDatabase(ctx, catalogConfig, shopRepo)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncShopCatalog, err)
	}

	if syncResult.ItemsInserted > 0 || syncResult.ItemsUpdated > 0 {
		slog.Info(LogMsgShopCatalogSynced,
			"inserted", syncResult.ItemsInserted,
			"updated", syncResult.ItemsUpdated,
			"skipped", syncResult.ItemsSkipped)
	} else {
		slog.Info(LogMsgShopCatalogUnchanged)
	}

	return nil
}
