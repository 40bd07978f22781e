package repository

import (
	"context"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
)

// Wallet defines the interface for wallet and transaction-log persistence
type Wallet interface {
	GetWalletByOwnerID(ctx context.Context, ownerID string) (*domain.Wallet, error)
	GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)
	WalletExists(ctx context.Context, ownerID string) (bool, error)
	DeleteWallet(ctx context.Context, walletID string) error

	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	GetTransactionsByWalletID(ctx context.Context, walletID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
	GetRecentTransactions(ctx context.Context, walletID string, limit int) ([]domain.Transaction, error)
	CountTransactionsByWalletID(ctx context.Context, walletID string) (int, error)
	GetTransactionsByTypeAndReason(ctx context.Context, txType domain.TransactionType, reason domain.TransactionReason) ([]domain.Transaction, error)

	BeginTx(ctx context.Context) (WalletTx, error)
}

// WalletTx defines the interface for wallet transactions
type WalletTx interface {
	Tx
	WalletOps
	CreateWallet(ctx context.Context, wallet domain.Wallet) error
}
