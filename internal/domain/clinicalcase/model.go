package clinicalcase

import (
	"time"

	"github.com/healer/healer-api/internal/platform/render"
)

const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

// Case maps to the cases table. Like patients, cases are soft deleted:
// the row stays, the status flips, and reads stop seeing it.
type Case struct {
	ID        int64
	PatientID int64
	Anatomy   string
	Side      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active reports whether the status is exactly "active". Anything else,
// including the empty string, counts as inactive.
func (c *Case) Active() bool {
	return c.Status == StatusActive
}

type Response struct {
	ID        int64           `json:"id"`
	PatientID int64           `json:"patientId"`
	Anatomy   string          `json:"anatomy"`
	Side      string          `json:"side"`
	CreatedAt render.DateTime `json:"createdAt"`
	UpdatedAt render.DateTime `json:"updatedAt"`
}

func (c *Case) Render() *Response {
	return &Response{
		ID:        c.ID,
		PatientID: c.PatientID,
		Anatomy:   c.Anatomy,
		Side:      c.Side,
		CreatedAt: render.NewDateTime(c.CreatedAt),
		UpdatedAt: render.NewDateTime(c.UpdatedAt),
	}
}
