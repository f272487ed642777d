package attachment

import "context"

type Repository interface {
	Create(ctx context.Context, a *Attachment) error
	Get(ctx context.Context, id int64) (*Attachment, error)
	// List narrows by record reference when ref is non-nil.
	List(ctx context.Context, ref *RecordRef, limit, offset int) ([]*Attachment, error)
	Update(ctx context.Context, a *Attachment) error
	Delete(ctx context.Context, id int64) error
}
