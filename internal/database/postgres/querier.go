// Package postgres implements the repository interfaces on pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
)

// DBTX is the querying surface shared by a pool and an open transaction, so
// the same statement helpers serve both paths.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const walletColumns = `wallet_id, owner_id, balance, currency, total_earned, total_spent, created_at, updated_at`

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(&w.ID, &w.OwnerID, &w.Balance, &w.Currency, &w.TotalEarned, &w.TotalSpent, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}
		return nil, fmt.Errorf("scan wallet: %w", err)
	}
	return &w, nil
}

// walletOps gives every transaction type the ledger operations, so any commit
// unit that moves money shares one implementation.
type walletOps struct {
	db DBTX
}

func (o walletOps) GetWalletForUpdate(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	row := o.db.QueryRow(ctx, `
		SELECT `+walletColumns+`
		FROM wallets WHERE owner_id = $1 FOR UPDATE`, ownerID)
	return scanWallet(row)
}

func (o walletOps) UpdateWallet(ctx context.Context, w domain.Wallet) error {
	tag, err := o.db.Exec(ctx, `
		UPDATE wallets
		SET balance = $2, total_earned = $3, total_spent = $4, updated_at = $5
		WHERE wallet_id = $1`,
		w.ID, w.Balance, w.TotalEarned, w.TotalSpent, w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWalletNotFound
	}
	return nil
}

func (o walletOps) CreateTransaction(ctx context.Context, t domain.Transaction) error {
	_, err := o.db.Exec(ctx, `
		INSERT INTO transactions (transaction_id, wallet_id, tx_type, amount, reason, description, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.ID, t.WalletID, t.Type, t.Amount, t.Reason, t.Description, t.Metadata, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}
