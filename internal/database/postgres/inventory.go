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

const inventoryItemColumns = `inventory_item_id, item_id, monster_id, owner_id, is_equipped, purchased_at`

// InventoryRepository is the pgx-backed implementation of repository.Inventory
type InventoryRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{pool: pool}
}

func (r *InventoryRepository) GetByMonsterID(ctx context.Context, monsterID string) ([]*domain.InventoryItem, error) {
	return queryInventoryItems(ctx, r.pool, `
		SELECT `+inventoryItemColumns+`
		FROM inventory_items WHERE monster_id = $1
		ORDER BY purchased_at`, monsterID)
}

func (r *InventoryRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.InventoryItem, error) {
	return queryInventoryItems(ctx, r.pool, `
		SELECT `+inventoryItemColumns+`
		FROM inventory_items WHERE owner_id = $1
		ORDER BY purchased_at`, ownerID)
}

func (r *InventoryRepository) GetItem(ctx context.Context, inventoryItemID string) (*domain.InventoryItem, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+inventoryItemColumns+`
		FROM inventory_items WHERE inventory_item_id = $1`, inventoryItemID)
	return scanInventoryItem(row)
}

func (r *InventoryRepository) AddItem(ctx context.Context, item domain.InventoryItem) error {
	return insertInventoryItem(ctx, r.pool, item)
}

func (r *InventoryRepository) RemoveItem(ctx context.Context, inventoryItemID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM inventory_items WHERE inventory_item_id = $1`, inventoryItemID)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInventoryItemNotFound
	}
	return nil
}

func (r *InventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	return updateInventoryItem(ctx, r.pool, item)
}

func (r *InventoryRepository) HasItem(ctx context.Context, monsterID, shopItemID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM inventory_items WHERE monster_id = $1 AND item_id = $2
		)`, monsterID, shopItemID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check inventory item: %w", err)
	}
	return exists, nil
}

func (r *InventoryRepository) GetEquippedItems(ctx context.Context, monsterID string) ([]*domain.InventoryItem, error) {
	return queryInventoryItems(ctx, r.pool, `
		SELECT `+inventoryItemColumns+`
		FROM inventory_items WHERE monster_id = $1 AND is_equipped
		ORDER BY purchased_at`, monsterID)
}

func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return &inventoryTx{tx: tx, walletOps: walletOps{db: tx}}, nil
}

type inventoryTx struct {
	tx pgx.Tx
	walletOps
}

func (t *inventoryTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *inventoryTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

func (t *inventoryTx) GetByMonsterID(ctx context.Context, monsterID string) ([]*domain.InventoryItem, error) {
	return queryInventoryItems(ctx, t.tx, `
		SELECT `+inventoryItemColumns+`
		FROM inventory_items WHERE monster_id = $1
		ORDER BY purchased_at`, monsterID)
}

func (t *inventoryTx) AddItem(ctx context.Context, item domain.InventoryItem) error {
	return insertInventoryItem(ctx, t.tx, item)
}

func (t *inventoryTx) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	return updateInventoryItem(ctx, t.tx, item)
}

func insertInventoryItem(ctx context.Context, db DBTX, item domain.InventoryItem) error {
	_, err := db.Exec(ctx, `
		INSERT INTO inventory_items (`+inventoryItemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.ItemID, item.MonsterID, item.OwnerID, item.IsEquipped, item.PurchasedAt)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

func updateInventoryItem(ctx context.Context, db DBTX, item domain.InventoryItem) error {
	tag, err := db.Exec(ctx, `
		UPDATE inventory_items SET is_equipped = $2
		WHERE inventory_item_id = $1`, item.ID, item.IsEquipped)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInventoryItemNotFound
	}
	return nil
}

func scanInventoryItem(row pgx.Row) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := row.Scan(&item.ID, &item.ItemID, &item.MonsterID, &item.OwnerID, &item.IsEquipped, &item.PurchasedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInventoryItemNotFound
		}
		return nil, fmt.Errorf("scan inventory item: %w", err)
	}
	return &item, nil
}

func queryInventoryItems(ctx context.Context, db DBTX, query string, args ...any) ([]*domain.InventoryItem, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query inventory items: %w", err)
	}
	defer rows.Close()

	items := []*domain.InventoryItem{}
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory items: %w", err)
	}
	return items, nil
}

var _ repository.Inventory = (*InventoryRepository)(nil)
