package repository

import (
	"context"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
)

// Shop defines the interface for catalog persistence. Catalog entries are
// read-mostly; writes happen during seeding and admin availability toggles.
type Shop interface {
	GetAvailableItems(ctx context.Context) ([]domain.ShopItem, error)
	GetItemByID(ctx context.Context, itemID string) (*domain.ShopItem, error)
	GetItemByName(ctx context.Context, name string) (*domain.ShopItem, error)
	GetItemsByCategory(ctx context.Context, category domain.ItemCategory) ([]domain.ShopItem, error)
	GetItemsByRarity(ctx context.Context, rarity domain.ItemRarity) ([]domain.ShopItem, error)
	CreateItem(ctx context.Context, item domain.ShopItem) error
	UpdateItem(ctx context.Context, item domain.ShopItem) error
	DeleteItem(ctx context.Context, itemID string) error
}
