package team

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healer/healer-api/internal/platform/render"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func scanTeam(row pgx.Row) (*Team, error) {
	var t Team
	err := row.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, render.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repoPG) Create(ctx context.Context, t *Team) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO teams (name) VALUES ($1)
		RETURNING id, created_at, updated_at`, t.Name).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *repoPG) Get(ctx context.Context, id int64) (*Team, error) {
	return scanTeam(r.pool.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at FROM teams WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Team, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, created_at, updated_at FROM teams
		ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, t *Team) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE teams SET name = $2, updated_at = NOW() WHERE id = $1`,
		t.ID, t.Name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return render.ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return render.ErrNotFound
	}
	return nil
}
