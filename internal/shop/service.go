package shop

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tamaverse/TamaPet_Go/internal/concurrency"
	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/event"
	"github.com/tamaverse/TamaPet_Go/internal/logger"
	"github.com/tamaverse/TamaPet_Go/internal/repository"
)

// PurchaseResult contains the result of a purchase operation
type PurchaseResult struct {
	InventoryItemID string `json:"inventory_item_id"`
	NewBalance      int    `json:"new_balance"`
}

// Service defines the interface for catalog, purchase and equip operations
type Service interface {
	GetCatalog(ctx context.Context) ([]domain.ShopItem, error)
	GetItem(ctx context.Context, itemID string) (*domain.ShopItem, error)
	GetItemsByCategory(ctx context.Context, category domain.ItemCategory) ([]domain.ShopItem, error)
	GetInventory(ctx context.Context, monsterID string) ([]*domain.InventoryItem, error)
	Purchase(ctx context.Context, ownerID, monsterID, itemID string) (*PurchaseResult, error)
	Equip(ctx context.Context, ownerID, monsterID, inventoryItemID string) error
	Unequip(ctx context.Context, ownerID, monsterID, inventoryItemID string) error
	SetItemAvailability(ctx context.Context, itemID string, available bool) error
}

type service struct {
	catalog   repository.Shop
	inventory repository.Inventory
	monsters  repository.Monster
	locks     *concurrency.LockManager
	publisher event.Publisher
	cache     *expirable.LRU[string, []domain.ShopItem]
	now       func() time.Time
}

// NewService creates a new shop service. Catalog reads go through an
// expiring LRU since the catalog only changes on seed or admin toggles.
func NewService(catalog repository.Shop, inventory repository.Inventory, monsters repository.Monster, locks *concurrency.LockManager, publisher event.Publisher, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		catalog:   catalog,
		inventory: inventory,
		monsters:  monsters,
		locks:     locks,
		publisher: publisher,
		cache:     expirable.NewLRU[string, []domain.ShopItem](cacheSize, nil, cacheTTL),
		now:       time.Now,
	}
}

// GetCatalog returns every item currently offered in the shop.
func (s *service) GetCatalog(ctx context.Context) ([]domain.ShopItem, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetCatalogCalled)

	if items, ok := s.cache.Get(cacheKeyAvailable); ok {
		log.Debug(LogMsgCatalogCacheHit, "items", len(items))
		return items, nil
	}

	items, err := s.catalog.GetAvailableItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}

	s.cache.Add(cacheKeyAvailable, items)
	return items, nil
}

// GetItem returns a single catalog entry by id.
func (s *service) GetItem(ctx context.Context, itemID string) (*domain.ShopItem, error) {
	logger.FromContext(ctx).Info(LogMsgGetItemCalled, "item_id", itemID)

	item, err := s.catalog.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// GetItemsByCategory returns available items in one cosmetic slot.
func (s *service) GetItemsByCategory(ctx context.Context, category domain.ItemCategory) ([]domain.ShopItem, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGetCatalogCalled, "category", category)

	if !category.Valid() {
		return nil, fmt.Errorf("%w: item category %q", domain.ErrInvalidInput, category)
	}

	key := cacheKeyCategoryPrefix + string(category)
	if items, ok := s.cache.Get(key); ok {
		log.Debug(LogMsgCatalogCacheHit, "category", category, "items", len(items))
		return items, nil
	}

	items, err := s.catalog.GetItemsByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}

	s.cache.Add(key, items)
	return items, nil
}

// GetInventory returns every item a monster owns.
func (s *service) GetInventory(ctx context.Context, monsterID string) ([]*domain.InventoryItem, error) {
	logger.FromContext(ctx).Info(LogMsgGetInventoryCalled, "monster_id", monsterID)

	if _, err := s.monsters.GetMonsterByID(ctx, monsterID); err != nil {
		return nil, fmt.Errorf(ErrMsgGetMonsterFailed, err)
	}
	return s.inventory.GetByMonsterID(ctx, monsterID)
}

// SetItemAvailability toggles whether an item is offered, and purges the
// catalog cache.
func (s *service) SetItemAvailability(ctx context.Context, itemID string, available bool) error {
	item, err := s.catalog.GetItemByID(ctx, itemID)
	if err != nil {
		return err
	}

	if available {
		item.MakeAvailable()
	} else {
		item.MakeUnavailable()
	}

	if err := s.catalog.UpdateItem(ctx, *item); err != nil {
		return err
	}

	s.cache.Purge()
	return nil
}

// loadOwnedMonster fetches a monster and verifies the caller owns it.
func (s *service) loadOwnedMonster(ctx context.Context, ownerID, monsterID string) (*domain.Monster, error) {
	monster, err := s.monsters.GetMonsterByID(ctx, monsterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetMonsterFailed, err)
	}
	if monster.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: monster %s does not belong to %s", domain.ErrOwnershipMismatch, monsterID, ownerID)
	}
	return monster, nil
}
