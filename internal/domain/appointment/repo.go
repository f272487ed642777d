package appointment

import "context"

// Repository resolves appointments through the patient visibility gate:
// reads never return an appointment whose owner is deleted, even though
// the row itself exists. Delete is physical.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	Get(ctx context.Context, id int64) (*Appointment, error)
	List(ctx context.Context, f Filter) ([]*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id int64) error
}
