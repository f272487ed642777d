package clinicalcase

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

const caseSelect = `
	SELECT c.id, c.patient_id, c.anatomy, c.side, c.status, c.created_at, c.updated_at
	FROM cases c
	JOIN patients p ON p.id = c.patient_id AND p.status = 'active'
	WHERE c.status = 'active'`

func scanCase(row pgx.Row) (*Case, error) {
	var c Case
	err := row.Scan(&c.ID, &c.PatientID, &c.Anatomy, &c.Side, &c.Status,
		&c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, render.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repoPG) Create(ctx context.Context, c *Case) error {
	c.Status = StatusActive
	return r.pool.QueryRow(ctx, `
		INSERT INTO cases (patient_id, anatomy, side, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		c.PatientID, c.Anatomy, c.Side, c.Status).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *repoPG) Get(ctx context.Context, id int64) (*Case, error) {
	return scanCase(r.pool.QueryRow(ctx, caseSelect+` AND c.id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, patientID *int64) ([]*Case, error) {
	query := caseSelect
	var args []interface{}
	if patientID != nil {
		query += ` AND c.patient_id = $1`
		args = append(args, *patientID)
	}
	query += ` ORDER BY c.id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, c *Case) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE cases
		SET anatomy = $2, side = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'active'`,
		c.ID, c.Anatomy, c.Side)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return render.ErrNotFound
	}
	return nil
}

func (r *repoPG) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE cases
		SET status = 'deleted', updated_at = NOW()
		WHERE id = $1 AND status = 'active'`,
		id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return render.ErrNotFound
	}
	return nil
}
