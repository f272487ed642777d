package team

import (
	"time"

	"github.com/healer/healer-api/internal/platform/render"
)

type Team struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Response struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	CreatedAt render.DateTime `json:"createdAt"`
	UpdatedAt render.DateTime `json:"updatedAt"`
}

func (t *Team) Render() *Response {
	return &Response{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: render.NewDateTime(t.CreatedAt),
		UpdatedAt: render.NewDateTime(t.UpdatedAt),
	}
}
