package monster

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/event"
	"github.com/tamaverse/TamaPet_Go/internal/repository"
)

// MockRepository implements repository.Monster for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetMonsterByID(ctx context.Context, monsterID string) (*domain.Monster, error) {
	args := m.Called(ctx, monsterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Monster), args.Error(1)
}

func (m *MockRepository) GetMonstersByOwnerID(ctx context.Context, ownerID string) ([]*domain.Monster, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Monster), args.Error(1)
}

func (m *MockRepository) CountByOwnerID(ctx context.Context, ownerID string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) UpdateMonster(ctx context.Context, monster domain.Monster) error {
	args := m.Called(ctx, monster)
	return args.Error(0)
}

func (m *MockRepository) DeleteMonster(ctx context.Context, monsterID string) error {
	args := m.Called(ctx, monsterID)
	return args.Error(0)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.MonsterTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.MonsterTx), args.Error(1)
}

// MockTx implements repository.MonsterTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) GetWalletForUpdate(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockTx) UpdateWallet(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockTx) CreateTransaction(ctx context.Context, transaction domain.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTx) GetMonsterForUpdate(ctx context.Context, monsterID string) (*domain.Monster, error) {
	args := m.Called(ctx, monsterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Monster), args.Error(1)
}

func (m *MockTx) UpdateMonster(ctx context.Context, monster domain.Monster) error {
	args := m.Called(ctx, monster)
	return args.Error(0)
}

func (m *MockTx) CreateMonster(ctx context.Context, monster domain.Monster) error {
	args := m.Called(ctx, monster)
	return args.Error(0)
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
	_ repository.Monster   = (*MockRepository)(nil)
	_ repository.MonsterTx = (*MockTx)(nil)
	_ event.Publisher      = (*MockPublisher)(nil)
)
