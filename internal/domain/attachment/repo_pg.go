package attachment

import (
	"context"
	"errors"
	"fmt"

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

const attachmentSelect = `
	SELECT id, record_type, record_id, description, document_file_name,
	       document_content_type, document_file_size, document_updated_at,
	       created_at, updated_at
	FROM attachments`

func scanAttachment(row pgx.Row) (*Attachment, error) {
	var a Attachment
	err := row.Scan(&a.ID, &a.Record.Kind, &a.Record.ID, &a.Description,
		&a.DocumentFileName, &a.DocumentContentType, &a.DocumentFileSize,
		&a.DocumentUpdatedAt, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, render.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repoPG) Create(ctx context.Context, a *Attachment) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO attachments (record_type, record_id, description,
			document_file_name, document_content_type, document_file_size,
			document_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		a.Record.Kind, a.Record.ID, a.Description, a.DocumentFileName,
		a.DocumentContentType, a.DocumentFileSize, a.DocumentUpdatedAt).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *repoPG) Get(ctx context.Context, id int64) (*Attachment, error) {
	return scanAttachment(r.pool.QueryRow(ctx, attachmentSelect+` WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, ref *RecordRef, limit, offset int) ([]*Attachment, error) {
	query := attachmentSelect
	var args []interface{}
	if ref != nil {
		query += ` WHERE record_type = $1 AND record_id = $2`
		args = append(args, ref.Kind, ref.ID)
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Attachment
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, a *Attachment) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE attachments
		SET description = $2, document_file_name = $3, document_content_type = $4,
		    document_file_size = $5, document_updated_at = $6, updated_at = NOW()
		WHERE id = $1`,
		a.ID, a.Description, a.DocumentFileName, a.DocumentContentType,
		a.DocumentFileSize, a.DocumentUpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return render.ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM attachments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return render.ErrNotFound
	}
	return nil
}
