package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/repository"
)

const transactionColumns = `transaction_id, wallet_id, tx_type, amount, reason, description, metadata, created_at`

// WalletRepository is the pgx-backed implementation of repository.Wallet
type WalletRepository struct {
	pool *pgxpool.Pool
}

// NewWalletRepository creates a new WalletRepository
func NewWalletRepository(pool *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{pool: pool}
}

func (r *WalletRepository) GetWalletByOwnerID(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+walletColumns+`
		FROM wallets WHERE owner_id = $1`, ownerID)
	return scanWallet(row)
}

func (r *WalletRepository) GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+walletColumns+`
		FROM wallets WHERE wallet_id = $1`, walletID)
	return scanWallet(row)
}

func (r *WalletRepository) WalletExists(ctx context.Context, ownerID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM wallets WHERE owner_id = $1)`, ownerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check wallet exists: %w", err)
	}
	return exists, nil
}

func (r *WalletRepository) DeleteWallet(ctx context.Context, walletID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM wallets WHERE wallet_id = $1`, walletID)
	if err != nil {
		return fmt.Errorf("delete wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWalletNotFound
	}
	return nil
}

func (r *WalletRepository) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions WHERE transaction_id = $1`, transactionID)
	return scanTransaction(row)
}

func (r *WalletRepository) GetTransactionsByWalletID(ctx context.Context, walletID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions WHERE wallet_id = $1`
	args := []any{walletID}

	if filter.Type != nil {
		args = append(args, *filter.Type)
		query += fmt.Sprintf(" AND tx_type = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (r *WalletRepository) GetRecentTransactions(ctx context.Context, walletID string, limit int) ([]domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions WHERE wallet_id = $1
		ORDER BY created_at DESC LIMIT $2`, walletID, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (r *WalletRepository) CountTransactionsByWalletID(ctx context.Context, walletID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM transactions WHERE wallet_id = $1`, walletID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

func (r *WalletRepository) GetTransactionsByTypeAndReason(ctx context.Context, txType domain.TransactionType, reason domain.TransactionReason) ([]domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions WHERE tx_type = $1 AND reason = $2
		ORDER BY created_at DESC`, txType, reason)
	if err != nil {
		return nil, fmt.Errorf("query transactions by type and reason: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (r *WalletRepository) BeginTx(ctx context.Context) (repository.WalletTx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return &walletTx{tx: tx, walletOps: walletOps{db: tx}}, nil
}

type walletTx struct {
	tx pgx.Tx
	walletOps
}

func (t *walletTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *walletTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

func (t *walletTx) CreateWallet(ctx context.Context, w domain.Wallet) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO wallets (`+walletColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		w.ID, w.OwnerID, w.Balance, w.Currency, w.TotalEarned, w.TotalSpent, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(&t.ID, &t.WalletID, &t.Type, &t.Amount, &t.Reason, &t.Description, &t.Metadata, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	return &t, nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return transactions, nil
}

var _ repository.Wallet = (*WalletRepository)(nil)
