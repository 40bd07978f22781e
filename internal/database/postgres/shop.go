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

const shopItemColumns = `item_id, name, description, category, rarity, price, image_url, is_available, background_type, created_at`

// ShopRepository is the pgx-backed implementation of repository.Shop
type ShopRepository struct {
	pool *pgxpool.Pool
}

// NewShopRepository creates a new ShopRepository
func NewShopRepository(pool *pgxpool.Pool) *ShopRepository {
	return &ShopRepository{pool: pool}
}

func (r *ShopRepository) GetAvailableItems(ctx context.Context) ([]domain.ShopItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+shopItemColumns+`
		FROM shop_items WHERE is_available
		ORDER BY category, rarity, name`)
	if err != nil {
		return nil, fmt.Errorf("query available items: %w", err)
	}
	defer rows.Close()

	return collectShopItems(rows)
}

func (r *ShopRepository) GetItemByID(ctx context.Context, itemID string) (*domain.ShopItem, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+shopItemColumns+`
		FROM shop_items WHERE item_id = $1`, itemID)
	return scanShopItem(row)
}

func (r *ShopRepository) GetItemByName(ctx context.Context, name string) (*domain.ShopItem, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+shopItemColumns+`
		FROM shop_items WHERE name = $1`, name)
	return scanShopItem(row)
}

func (r *ShopRepository) GetItemsByCategory(ctx context.Context, category domain.ItemCategory) ([]domain.ShopItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+shopItemColumns+`
		FROM shop_items WHERE category = $1 AND is_available
		ORDER BY rarity, name`, category)
	if err != nil {
		return nil, fmt.Errorf("query items by category: %w", err)
	}
	defer rows.Close()

	return collectShopItems(rows)
}

func (r *ShopRepository) GetItemsByRarity(ctx context.Context, rarity domain.ItemRarity) ([]domain.ShopItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+shopItemColumns+`
		FROM shop_items WHERE rarity = $1 AND is_available
		ORDER BY category, name`, rarity)
	if err != nil {
		return nil, fmt.Errorf("query items by rarity: %w", err)
	}
	defer rows.Close()

	return collectShopItems(rows)
}

func (r *ShopRepository) CreateItem(ctx context.Context, item domain.ShopItem) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO shop_items (`+shopItemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		item.ID, item.Name, item.Description, item.Category, item.Rarity,
		item.Price, item.ImageURL, item.IsAvailable, item.BackgroundType, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert shop item: %w", err)
	}
	return nil
}

func (r *ShopRepository) UpdateItem(ctx context.Context, item domain.ShopItem) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE shop_items
		SET name = $2, description = $3, category = $4, rarity = $5,
		    price = $6, image_url = $7, is_available = $8, background_type = $9
		WHERE item_id = $1`,
		item.ID, item.Name, item.Description, item.Category, item.Rarity,
		item.Price, item.ImageURL, item.IsAvailable, item.BackgroundType)
	if err != nil {
		return fmt.Errorf("update shop item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *ShopRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM shop_items WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete shop item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func scanShopItem(row pgx.Row) (*domain.ShopItem, error) {
	var item domain.ShopItem
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Category, &item.Rarity,
		&item.Price, &item.ImageURL, &item.IsAvailable, &item.BackgroundType, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("scan shop item: %w", err)
	}
	return &item, nil
}

func collectShopItems(rows pgx.Rows) ([]domain.ShopItem, error) {
	items := []domain.ShopItem{}
	for rows.Next() {
		item, err := scanShopItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shop items: %w", err)
	}
	return items, nil
}

var _ repository.Shop = (*ShopRepository)(nil)
