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

const monsterColumns = `monster_id, owner_id, name, level, xp, xp_to_next_level, emotional_state, created_at, updated_at`

// MonsterRepository is the pgx-backed implementation of repository.Monster
type MonsterRepository struct {
	pool *pgxpool.Pool
}

// NewMonsterRepository creates a new MonsterRepository
func NewMonsterRepository(pool *pgxpool.Pool) *MonsterRepository {
	return &MonsterRepository{pool: pool}
}

func (r *MonsterRepository) GetMonsterByID(ctx context.Context, monsterID string) (*domain.Monster, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+monsterColumns+`
		FROM monsters WHERE monster_id = $1`, monsterID)
	return scanMonster(row)
}

func (r *MonsterRepository) GetMonstersByOwnerID(ctx context.Context, ownerID string) ([]*domain.Monster, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+monsterColumns+`
		FROM monsters WHERE owner_id = $1
		ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query monsters: %w", err)
	}
	defer rows.Close()

	monsters := []*domain.Monster{}
	for rows.Next() {
		m, err := scanMonster(rows)
		if err != nil {
			return nil, err
		}
		monsters = append(monsters, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate monsters: %w", err)
	}
	return monsters, nil
}

func (r *MonsterRepository) CountByOwnerID(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM monsters WHERE owner_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count monsters: %w", err)
	}
	return count, nil
}

func (r *MonsterRepository) UpdateMonster(ctx context.Context, m domain.Monster) error {
	return updateMonster(ctx, r.pool, m)
}

func (r *MonsterRepository) DeleteMonster(ctx context.Context, monsterID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM monsters WHERE monster_id = $1`, monsterID)
	if err != nil {
		return fmt.Errorf("delete monster: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMonsterNotFound
	}
	return nil
}

func (r *MonsterRepository) BeginTx(ctx context.Context) (repository.MonsterTx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return &monsterTx{tx: tx, walletOps: walletOps{db: tx}}, nil
}

type monsterTx struct {
	tx pgx.Tx
	walletOps
}

func (t *monsterTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *monsterTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

func (t *monsterTx) GetMonsterForUpdate(ctx context.Context, monsterID string) (*domain.Monster, error) {
	row := t.tx.QueryRow(ctx, `
		SELECT `+monsterColumns+`
		FROM monsters WHERE monster_id = $1 FOR UPDATE`, monsterID)
	return scanMonster(row)
}

func (t *monsterTx) UpdateMonster(ctx context.Context, m domain.Monster) error {
	return updateMonster(ctx, t.tx, m)
}

func (t *monsterTx) CreateMonster(ctx context.Context, m domain.Monster) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO monsters (`+monsterColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.OwnerID, m.Name, m.Level, m.XP, m.XPToNextLevel, m.State, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert monster: %w", err)
	}
	return nil
}

func updateMonster(ctx context.Context, db DBTX, m domain.Monster) error {
	tag, err := db.Exec(ctx, `
		UPDATE monsters
		SET name = $2, level = $3, xp = $4, xp_to_next_level = $5,
		    emotional_state = $6, updated_at = $7
		WHERE monster_id = $1`,
		m.ID, m.Name, m.Level, m.XP, m.XPToNextLevel, m.State, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update monster: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMonsterNotFound
	}
	return nil
}

func scanMonster(row pgx.Row) (*domain.Monster, error) {
	var m domain.Monster
	err := row.Scan(&m.ID, &m.OwnerID, &m.Name, &m.Level, &m.XP, &m.XPToNextLevel, &m.State, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMonsterNotFound
		}
		return nil, fmt.Errorf("scan monster: %w", err)
	}
	return &m, nil
}

var _ repository.Monster = (*MonsterRepository)(nil)
