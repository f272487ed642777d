package patient

import "context"

// Repository exposes only active patients; soft-deleted rows are
// invisible to every read and write except the status flip itself.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	Get(ctx context.Context, id int64) (*Patient, error)
	List(ctx context.Context, limit, offset int) ([]*Patient, error)
	Update(ctx context.Context, p *Patient) error
	SoftDelete(ctx context.Context, id int64) error
}
