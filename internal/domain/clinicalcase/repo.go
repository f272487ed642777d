package clinicalcase

import "context"

// Repository reads resolve through two gates at once: the case's own
// status and the owning patient's. A case whose patient is deleted is
// as absent as one that was soft deleted itself.
type Repository interface {
	Create(ctx context.Context, c *Case) error
	Get(ctx context.Context, id int64) (*Case, error)
	List(ctx context.Context, patientID *int64) ([]*Case, error)
	Update(ctx context.Context, c *Case) error
	SoftDelete(ctx context.Context, id int64) error
}
