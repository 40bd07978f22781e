package shop

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/event"
	"github.com/tamaverse/TamaPet_Go/internal/repository"
)

// MockCatalog implements repository.Shop for testing
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetAvailableItems(ctx context.Context) ([]domain.ShopItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopItem), args.Error(1)
}

func (m *MockCatalog) GetItemByID(ctx context.Context, itemID string) (*domain.ShopItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopItem), args.Error(1)
}

func (m *MockCatalog) GetItemByName(ctx context.Context, name string) (*domain.ShopItem, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopItem), args.Error(1)
}

func (m *MockCatalog) GetItemsByCategory(ctx context.Context, category domain.ItemCategory) ([]domain.ShopItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopItem), args.Error(1)
}

func (m *MockCatalog) GetItemsByRarity(ctx context.Context, rarity domain.ItemRarity) ([]domain.ShopItem, error) {
	args := m.Called(ctx, rarity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopItem), args.Error(1)
}

func (m *MockCatalog) CreateItem(ctx context.Context, item domain.ShopItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalog) UpdateItem(ctx context.Context, item domain.ShopItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalog) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

// MockInventory implements repository.Inventory for testing
type MockInventory struct {
	mock.Mock
}

func (m *MockInventory) GetByMonsterID(ctx context.Context, monsterID string) ([]*domain.InventoryItem, error) {
	args := m.Called(ctx, monsterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InventoryItem), args.Error(1)
}

func (m *MockInventory) GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.InventoryItem, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InventoryItem), args.Error(1)
}

func (m *MockInventory) GetItem(ctx context.Context, inventoryItemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, inventoryItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventory) AddItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventory) RemoveItem(ctx context.Context, inventoryItemID string) error {
	args := m.Called(ctx, inventoryItemID)
	return args.Error(0)
}

func (m *MockInventory) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventory) HasItem(ctx context.Context, monsterID, shopItemID string) (bool, error) {
	args := m.Called(ctx, monsterID, shopItemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventory) GetEquippedItems(ctx context.Context, monsterID string) ([]*domain.InventoryItem, error) {
	args := m.Called(ctx, monsterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InventoryItem), args.Error(1)
}

func (m *MockInventory) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.InventoryTx), args.Error(1)
}

// MockInventoryTx implements repository.InventoryTx for testing
type MockInventoryTx struct {
	mock.Mock
}

func (m *MockInventoryTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInventoryTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInventoryTx) GetWalletForUpdate(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockInventoryTx) UpdateWallet(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockInventoryTx) CreateTransaction(ctx context.Context, transaction domain.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockInventoryTx) GetByMonsterID(ctx context.Context, monsterID string) ([]*domain.InventoryItem, error) {
	args := m.Called(ctx, monsterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryTx) AddItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryTx) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// MockMonsters implements repository.Monster for testing
type MockMonsters struct {
	mock.Mock
}

func (m *MockMonsters) GetMonsterByID(ctx context.Context, monsterID string) (*domain.Monster, error) {
	args := m.Called(ctx, monsterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Monster), args.Error(1)
}

func (m *MockMonsters) GetMonstersByOwnerID(ctx context.Context, ownerID string) ([]*domain.Monster, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Monster), args.Error(1)
}

func (m *MockMonsters) CountByOwnerID(ctx context.Context, ownerID string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *MockMonsters) UpdateMonster(ctx context.Context, monster domain.Monster) error {
	args := m.Called(ctx, monster)
	return args.Error(0)
}

func (m *MockMonsters) DeleteMonster(ctx context.Context, monsterID string) error {
	args := m.Called(ctx, monsterID)
	return args.Error(0)
}

func (m *MockMonsters) BeginTx(ctx context.Context) (repository.MonsterTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.MonsterTx), args.Error(1)
}

// MockPublisher implements event.Publisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.Called(ctx, evt)
}

// Ensure mocks implement their interfaces
var (
	_ repository.Shop        = (*MockCatalog)(nil)
	_ repository.Inventory   = (*MockInventory)(nil)
	_ repository.InventoryTx = (*MockInventoryTx)(nil)
	_ repository.Monster     = (*MockMonsters)(nil)
	_ event.Publisher        = (*MockPublisher)(nil)
)
