package appointment

import (
	"time"

	"github.com/healer/healer-api/internal/domain/patient"
	"github.com/healer/healer-api/internal/platform/render"
)

// Appointment maps to the appointments table. The patient association
// is set once at creation and never changes; deletion is a hard delete,
// unlike the soft-deleted patients and cases.
type Appointment struct {
	ID           int64
	PatientID    int64
	TripID       *int64
	StartTime    *time.Time
	StartOrdinal *int
	EndTime      *time.Time
	Location     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Patient is the owning patient, populated on every read. Reads
	// only ever see appointments whose patient is active.
	Patient *patient.Patient
}

// Filter narrows a listing; criteria compose with AND semantics.
type Filter struct {
	Location *string
	TripID   *int64
}

type Response struct {
	ID           int64             `json:"id"`
	PatientID    int64             `json:"patientId"`
	TripID       *int64            `json:"tripId"`
	StartTime    *render.DateTime  `json:"startTime"`
	StartOrdinal *int              `json:"startOrdinal"`
	EndTime      *render.DateTime  `json:"endTime"`
	Location     *string           `json:"location"`
	CreatedAt    render.DateTime   `json:"createdAt"`
	UpdatedAt    render.DateTime   `json:"updatedAt"`
	Patient      *patient.Response `json:"patient,omitempty"`
}

func (a *Appointment) Render() *Response {
	resp := &Response{
		ID:           a.ID,
		PatientID:    a.PatientID,
		TripID:       a.TripID,
		StartTime:    render.DateTimePtr(a.StartTime),
		StartOrdinal: a.StartOrdinal,
		EndTime:      render.DateTimePtr(a.EndTime),
		Location:     a.Location,
		CreatedAt:    render.NewDateTime(a.CreatedAt),
		UpdatedAt:    render.NewDateTime(a.UpdatedAt),
	}
	if a.Patient != nil {
		resp.Patient = a.Patient.Render()
	}
	return resp
}
