package appointment

import (
	"context"
	"time"

	"github.com/healer/healer-api/internal/domain/patient"
	"github.com/healer/healer-api/internal/platform/render"
)

// PatientGate resolves an active patient or reports ErrNotFound for
// missing and deleted patients alike.
type PatientGate interface {
	FindActive(ctx context.Context, id int64) (*patient.Patient, error)
}

type Service struct {
	appointments Repository
	patients     PatientGate
}

func NewService(appointments Repository, patients PatientGate) *Service {
	return &Service{appointments: appointments, patients: patients}
}

// CreateParams carries the client payload for a new appointment.
type CreateParams struct {
	PatientID    *int64
	TripID       *int64
	StartTime    *time.Time
	StartOrdinal *int
	EndTime      *time.Time
	Location     *string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Appointment, error) {
	if params.PatientID == nil {
		return nil, render.Validationf("patient_id is required")
	}

	p, err := s.patients.FindActive(ctx, *params.PatientID)
	if err != nil {
		return nil, err
	}

	a := &Appointment{
		PatientID:    *params.PatientID,
		TripID:       params.TripID,
		StartTime:    params.StartTime,
		StartOrdinal: params.StartOrdinal,
		EndTime:      params.EndTime,
		Location:     params.Location,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	a.Patient = p
	return a, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	return s.appointments.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]*Appointment, error) {
	return s.appointments.List(ctx, f)
}

// UpdateParams carries a partial update. The patient association and
// nested patient attributes are not part of it: the handler drops them
// from the payload, so the original values always survive.
type UpdateParams struct {
	TripID       *int64
	StartTime    *time.Time
	StartOrdinal *int
	EndTime      *time.Time
	Location     *string
}

func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Appointment, error) {
	a, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.TripID != nil {
		a.TripID = params.TripID
	}
	if params.StartTime != nil {
		a.StartTime = params.StartTime
	}
	if params.StartOrdinal != nil {
		a.StartOrdinal = params.StartOrdinal
	}
	if params.EndTime != nil {
		a.EndTime = params.EndTime
	}
	if params.Location != nil {
		a.Location = params.Location
	}

	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes the row for good. Resolution goes through the same
// gated read as Get, so a deleted owner yields the uniform Not Found.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.appointments.Get(ctx, id); err != nil {
		return err
	}
	return s.appointments.Delete(ctx, id)
}
