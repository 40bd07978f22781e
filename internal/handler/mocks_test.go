package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/monster"
	"github.com/tamaverse/TamaPet_Go/internal/shop"
	"github.com/tamaverse/TamaPet_Go/internal/wallet"
)

// MockWalletService is a testify mock for wallet.Service
type MockWalletService struct {
	mock.Mock
}

var _ wallet.Service = (*MockWalletService)(nil)

func (m *MockWalletService) GetOrCreateWallet(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	args := m.Called(ctx, ownerID)
	if w := args.Get(0); w != nil {
		return w.(*domain.Wallet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWalletService) GetBalance(ctx context.Context, ownerID string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *MockWalletService) Credit(ctx context.Context, ownerID string, amount int, reason domain.TransactionReason, description string) (*domain.Wallet, error) {
	args := m.Called(ctx, ownerID, amount, reason, description)
	if w := args.Get(0); w != nil {
		return w.(*domain.Wallet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWalletService) Debit(ctx context.Context, ownerID string, amount int, reason domain.TransactionReason, description string) (*domain.Wallet, error) {
	args := m.Called(ctx, ownerID, amount, reason, description)
	if w := args.Get(0); w != nil {
		return w.(*domain.Wallet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWalletService) GetTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, filter)
	if txs := args.Get(0); txs != nil {
		return txs.([]domain.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockShopService is a testify mock for shop.Service
type MockShopService struct {
	mock.Mock
}

var _ shop.Service = (*MockShopService)(nil)

func (m *MockShopService) GetCatalog(ctx context.Context) ([]domain.ShopItem, error) {
	args := m.Called(ctx)
	if items := args.Get(0); items != nil {
		return items.([]domain.ShopItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShopService) GetItem(ctx context.Context, itemID string) (*domain.ShopItem, error) {
	args := m.Called(ctx, itemID)
	if item := args.Get(0); item != nil {
		return item.(*domain.ShopItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShopService) GetItemsByCategory(ctx context.Context, category domain.ItemCategory) ([]domain.ShopItem, error) {
	args := m.Called(ctx, category)
	if items := args.Get(0); items != nil {
		return items.([]domain.ShopItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShopService) GetInventory(ctx context.Context, monsterID string) ([]*domain.InventoryItem, error) {
	args := m.Called(ctx, monsterID)
	if items := args.Get(0); items != nil {
		return items.([]*domain.InventoryItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShopService) Purchase(ctx context.Context, ownerID, monsterID, itemID string) (*shop.PurchaseResult, error) {
	args := m.Called(ctx, ownerID, monsterID, itemID)
	if result := args.Get(0); result != nil {
		return result.(*shop.PurchaseResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShopService) Equip(ctx context.Context, ownerID, monsterID, inventoryItemID string) error {
	args := m.Called(ctx, ownerID, monsterID, inventoryItemID)
	return args.Error(0)
}

func (m *MockShopService) Unequip(ctx context.Context, ownerID, monsterID, inventoryItemID string) error {
	args := m.Called(ctx, ownerID, monsterID, inventoryItemID)
	return args.Error(0)
}

func (m *MockShopService) SetItemAvailability(ctx context.Context, itemID string, available bool) error {
	args := m.Called(ctx, itemID, available)
	return args.Error(0)
}

// MockMonsterService is a testify mock for monster.Service
type MockMonsterService struct {
	mock.Mock
}

var _ monster.Service = (*MockMonsterService)(nil)

func (m *MockMonsterService) CreateMonster(ctx context.Context, ownerID, name string) (*monster.CreateResult, error) {
	args := m.Called(ctx, ownerID, name)
	if result := args.Get(0); result != nil {
		return result.(*monster.CreateResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMonsterService) GetMonster(ctx context.Context, ownerID, monsterID string) (*domain.Monster, error) {
	args := m.Called(ctx, ownerID, monsterID)
	if mon := args.Get(0); mon != nil {
		return mon.(*domain.Monster), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMonsterService) ListMonsters(ctx context.Context, ownerID string) ([]*domain.Monster, error) {
	args := m.Called(ctx, ownerID)
	if monsters := args.Get(0); monsters != nil {
		return monsters.([]*domain.Monster), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMonsterService) NextMonsterPrice(ctx context.Context, ownerID string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *MockMonsterService) PerformAction(ctx context.Context, ownerID, monsterID string, action domain.CareAction) (*monster.ActionResult, error) {
	args := m.Called(ctx, ownerID, monsterID, action)
	if result := args.Get(0); result != nil {
		return result.(*monster.ActionResult), args.Error(1)
	}
	return nil, args.Error(1)
}
