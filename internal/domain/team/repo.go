package team

import "context"

type Repository interface {
	Create(ctx context.Context, t *Team) error
	Get(ctx context.Context, id int64) (*Team, error)
	List(ctx context.Context, limit, offset int) ([]*Team, error)
	Update(ctx context.Context, t *Team) error
	Delete(ctx context.Context, id int64) error
}
