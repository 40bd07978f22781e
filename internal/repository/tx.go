package repository

import (
	"context"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// WalletOps are the ledger operations available inside a transaction.
// Every commit unit that touches money (purchase, action reward, monster
// creation) composes these with its own writes so the wallet update and the
// matching Transaction row always land together.
type WalletOps interface {
	GetWalletForUpdate(ctx context.Context, ownerID string) (*domain.Wallet, error)
	UpdateWallet(ctx context.Context, wallet domain.Wallet) error
	CreateTransaction(ctx context.Context, transaction domain.Transaction) error
}
