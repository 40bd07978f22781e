package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tamaverse/TamaPet_Go/internal/database/postgres"
	"github.com/tamaverse/TamaPet_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Wallet    repository.Wallet
	Shop      repository.Shop
	Inventory repository.Inventory
	Monster   repository.Monster
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Wallet:    postgres.NewWalletRepository(dbPool),
		Shop:      postgres.NewShopRepository(dbPool),
		Inventory: postgres.NewInventoryRepository(dbPool),
		Monster:   postgres.NewMonsterRepository(dbPool),
	}
}
