package repository

import (
	"context"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
)

// Monster defines the interface for monster persistence
type Monster interface {
	GetMonsterByID(ctx context.Context, monsterID string) (*domain.Monster, error)
	GetMonstersByOwnerID(ctx context.Context, ownerID string) ([]*domain.Monster, error)
	CountByOwnerID(ctx context.Context, ownerID string) (int, error)
	UpdateMonster(ctx context.Context, monster domain.Monster) error
	DeleteMonster(ctx context.Context, monsterID string) error

	BeginTx(ctx context.Context) (MonsterTx, error)
}

// MonsterTx defines the interface for monster transactions. WalletOps is
// included so a care-action reward or creation fee commits atomically with
// the monster write.
type MonsterTx interface {
	Tx
	WalletOps
	GetMonsterForUpdate(ctx context.Context, monsterID string) (*domain.Monster, error)
	UpdateMonster(ctx context.Context, monster domain.Monster) error
	CreateMonster(ctx context.Context, monster domain.Monster) error
}
