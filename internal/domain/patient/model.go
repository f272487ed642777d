package patient

import (
	"time"

	"github.com/healer/healer-api/internal/platform/render"
)

const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

// Patient maps to the patients table. Deletion is a status flip; the
// row is never removed, and a deleted patient hides every dependent
// case and appointment from reads.
type Patient struct {
	ID        int64
	Name      string
	Birth     time.Time
	Gender    string
	Death     *time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active reports whether the status field literally equals "active".
func (p *Patient) Active() bool {
	return p.Status == StatusActive
}

// Response is the public wire representation. Lifecycle status is not
// exposed; deleted patients are never rendered at all.
type Response struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Birth     render.Date     `json:"birth"`
	Gender    string          `json:"gender"`
	Death     *render.Date    `json:"death"`
	CreatedAt render.DateTime `json:"createdAt"`
	UpdatedAt render.DateTime `json:"updatedAt"`
}

func (p *Patient) Render() *Response {
	return &Response{
		ID:        p.ID,
		Name:      p.Name,
		Birth:     render.NewDate(p.Birth),
		Gender:    p.Gender,
		Death:     render.DatePtr(p.Death),
		CreatedAt: render.NewDateTime(p.CreatedAt),
		UpdatedAt: render.NewDateTime(p.UpdatedAt),
	}
}
