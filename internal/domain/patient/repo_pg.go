package patient

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

const patientCols = `id, name, birth, gender, death, status, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Birth, &p.Gender, &p.Death,
		&p.Status, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, render.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.Status = StatusActive
	return r.pool.QueryRow(ctx, `
		INSERT INTO patients (name, birth, gender, death, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		p.Name, p.Birth, p.Gender, p.Death, p.Status).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *repoPG) Get(ctx context.Context, id int64) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1 AND status = $2`,
		id, StatusActive))
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patients WHERE status = $1
		 ORDER BY id LIMIT $2 OFFSET $3`,
		StatusActive, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patients SET name = $2, birth = $3, gender = $4, death = $5, updated_at = NOW()
		WHERE id = $1 AND status = $6`,
		p.ID, p.Name, p.Birth, p.Gender, p.Death, StatusActive)
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
		UPDATE patients SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3`,
		id, StatusDeleted, StatusActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return render.ErrNotFound
	}
	return nil
}
