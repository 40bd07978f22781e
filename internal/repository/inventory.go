package repository

import (
	"context"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
)

// Inventory defines the interface for inventory-item persistence
type Inventory interface {
	GetByMonsterID(ctx context.Context, monsterID string) ([]*domain.InventoryItem, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.InventoryItem, error)
	GetItem(ctx context.Context, inventoryItemID string) (*domain.InventoryItem, error)
	AddItem(ctx context.Context, item domain.InventoryItem) error
	RemoveItem(ctx context.Context, inventoryItemID string) error
	UpdateItem(ctx context.Context, item domain.InventoryItem) error
	HasItem(ctx context.Context, monsterID, shopItemID string) (bool, error)
	GetEquippedItems(ctx context.Context, monsterID string) ([]*domain.InventoryItem, error)

	BeginTx(ctx context.Context) (InventoryTx, error)
}

// InventoryTx defines the interface for inventory transactions. It carries
// WalletOps so the purchase commit (debit + grant + ledger entry) is one
// atomic unit.
type InventoryTx interface {
	Tx
	WalletOps
	GetByMonsterID(ctx context.Context, monsterID string) ([]*domain.InventoryItem, error)
	AddItem(ctx context.Context, item domain.InventoryItem) error
	UpdateItem(ctx context.Context, item domain.InventoryItem) error
}
