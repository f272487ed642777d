package clinicalcase

import (
	"context"

	"github.com/healer/healer-api/internal/domain/patient"
	"github.com/healer/healer-api/internal/platform/audit"
	"github.com/healer/healer-api/internal/platform/render"
)

// PatientGate resolves an active patient or reports ErrNotFound for
// missing and deleted patients alike.
type PatientGate interface {
	FindActive(ctx context.Context, id int64) (*patient.Patient, error)
}

type Service struct {
	cases    Repository
	patients PatientGate
	events   audit.Recorder
}

func NewService(cases Repository, patients PatientGate, events audit.Recorder) *Service {
	return &Service{cases: cases, patients: patients, events: events}
}

type CreateParams struct {
	PatientID *int64
	Anatomy   *string
	Side      *string
}

// Create starts every case active, whatever the client sent.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Case, error) {
	if params.PatientID == nil {
		return nil, render.Validationf("patient_id is required")
	}
	if _, err := s.patients.FindActive(ctx, *params.PatientID); err != nil {
		return nil, err
	}

	c := &Case{PatientID: *params.PatientID, Status: StatusActive}
	if params.Anatomy != nil {
		c.Anatomy = *params.Anatomy
	}
	if params.Side != nil {
		c.Side = *params.Side
	}
	if err := s.cases.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Case, error) {
	return s.cases.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, patientID *int64) ([]*Case, error) {
	return s.cases.List(ctx, patientID)
}

type UpdateParams struct {
	Anatomy *string
	Side    *string
}

func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Case, error) {
	c, err := s.cases.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Anatomy != nil {
		c.Anatomy = *params.Anatomy
	}
	if params.Side != nil {
		c.Side = *params.Side
	}

	if err := s.cases.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete flips the case to deleted and emits a deletion event. The row
// is never physically removed.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.cases.Get(ctx, id); err != nil {
		return err
	}
	if err := s.cases.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.events.Record(ctx, audit.Deletion(id, "Case"))
	return nil
}
