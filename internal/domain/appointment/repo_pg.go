package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healer/healer-api/internal/domain/patient"
	"github.com/healer/healer-api/internal/platform/render"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

// The patient join is the visibility gate: it runs on every read, so a
// patient deleted a moment ago immediately hides its appointments.
const apptSelect = `
	SELECT a.id, a.patient_id, a.trip_id, a.start_time, a.start_ordinal,
	       a.end_time, a.location, a.created_at, a.updated_at,
	       p.id, p.name, p.birth, p.gender, p.death, p.status, p.created_at, p.updated_at
	FROM appointments a
	JOIN patients p ON p.id = a.patient_id AND p.status = 'active'`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	var p patient.Patient
	err := row.Scan(&a.ID, &a.PatientID, &a.TripID, &a.StartTime, &a.StartOrdinal,
		&a.EndTime, &a.Location, &a.CreatedAt, &a.UpdatedAt,
		&p.ID, &p.Name, &p.Birth, &p.Gender, &p.Death, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, render.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	a.Patient = &p
	return &a, nil
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO appointments (patient_id, trip_id, start_time, start_ordinal, end_time, location)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		a.PatientID, a.TripID, a.StartTime, a.StartOrdinal, a.EndTime, a.Location).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *repoPG) Get(ctx context.Context, id int64) (*Appointment, error) {
	return scanAppointment(r.pool.QueryRow(ctx, apptSelect+` WHERE a.id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, f Filter) ([]*Appointment, error) {
	query := apptSelect
	var conds []string
	var args []interface{}
	if f.Location != nil {
		args = append(args, *f.Location)
		conds = append(conds, fmt.Sprintf("a.location = $%d", len(args)))
	}
	if f.TripID != nil {
		args = append(args, *f.TripID)
		conds = append(conds, fmt.Sprintf("a.trip_id = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY a.start_time, a.start_ordinal, a.id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, a *Appointment) error {
	// patient_id is deliberately absent: the association is immutable.
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointments
		SET trip_id = $2, start_time = $3, start_ordinal = $4, end_time = $5,
		    location = $6, updated_at = NOW()
		WHERE id = $1`,
		a.ID, a.TripID, a.StartTime, a.StartOrdinal, a.EndTime, a.Location)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return render.ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return render.ErrNotFound
	}
	return nil
}
