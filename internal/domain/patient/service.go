package patient

import (
	"context"
	"time"

	"github.com/healer/healer-api/internal/platform/audit"
	"github.com/healer/healer-api/internal/platform/render"
)

type Service struct {
	patients Repository
	events   audit.Recorder
}

func NewService(patients Repository, events audit.Recorder) *Service {
	return &Service{patients: patients, events: events}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return render.Validationf("patient name is required")
	}
	if p.Birth.IsZero() {
		return render.Validationf("patient birth is required")
	}
	if len(p.Gender) > 10 {
		return render.Validationf("patient gender must be at most 10 characters")
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	return s.patients.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, error) {
	return s.patients.List(ctx, limit, offset)
}

// UpdateParams carries a partial update; nil fields are left unchanged.
type UpdateParams struct {
	Name   *string
	Birth  *time.Time
	Gender *string
	Death  *time.Time
}

func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Patient, error) {
	p, err := s.patients.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		if *params.Name == "" {
			return nil, render.Validationf("patient name is required")
		}
		p.Name = *params.Name
	}
	if params.Birth != nil {
		p.Birth = *params.Birth
	}
	if params.Gender != nil {
		if len(*params.Gender) > 10 {
			return nil, render.Validationf("patient gender must be at most 10 characters")
		}
		p.Gender = *params.Gender
	}
	if params.Death != nil {
		p.Death = params.Death
	}

	if err := s.patients.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete flips the patient to deleted and emits a deletion event. The
// row persists; dependent cases and appointments become invisible.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.patients.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.events.Record(ctx, audit.Deletion(id, "Patient"))
	return nil
}

// FindActive is the visibility gate used by dependent resources. It
// returns ErrNotFound for missing and deleted patients alike, and is
// evaluated per call, never cached.
func (s *Service) FindActive(ctx context.Context, id int64) (*Patient, error) {
	return s.patients.Get(ctx, id)
}
