package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jameshwang7534/Family-Tree/pkg/tree"
)

// TreeRepository implements tree.Repository backed by PostgreSQL (pgx).
type TreeRepository struct {
	pool *pgxpool.Pool
}

func NewTreeRepository(pool *pgxpool.Pool) (*TreeRepository, error) {
	r := &TreeRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *TreeRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS trees (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			icon_url TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_trees_user ON trees(user_id);
	`)
	return err
}

func (r *TreeRepository) Create(ctx context.Context, t tree.Tree) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO trees (id, user_id, name, description, icon_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, t.ID, t.UserID, t.Name, t.Description, t.IconURL, t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *TreeRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (tree.Tree, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, description, icon_url, created_at, updated_at
		FROM trees WHERE id = $1 AND user_id = $2
	`, id, ownerID)
	return scanTree(row)
}

func (r *TreeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]tree.Tree, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, description, icon_url, created_at, updated_at
		FROM trees WHERE user_id = $1
		ORDER BY created_at
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tree.Tree, 0)
	for rows.Next() {
		t, err := scanTree(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTree(row pgx.Row) (tree.Tree, error) {
	var t tree.Tree
	var createdAt, updatedAt time.Time
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Description, &t.IconURL, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tree.Tree{}, tree.ErrNotFound
		}
		return tree.Tree{}, err
	}
	t.CreatedAt = createdAt.UTC()
	t.UpdatedAt = updatedAt.UTC()
	return t, nil
}
