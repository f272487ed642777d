package attachment

import (
	"time"

	"github.com/healer/healer-api/internal/platform/render"
)

// Kind names the record type an attachment hangs off.
type Kind string

const (
	KindPatient     Kind = "Patient"
	KindCase        Kind = "Case"
	KindAppointment Kind = "Appointment"
)

func (k Kind) Valid() bool {
	switch k {
	case KindPatient, KindCase, KindAppointment:
		return true
	}
	return false
}

// RecordRef is the tagged reference to the owning record.
type RecordRef struct {
	Kind Kind
	ID   int64
}

// Attachment holds document metadata only; file content lives elsewhere.
type Attachment struct {
	ID                  int64
	Record              RecordRef
	Description         *string
	DocumentFileName    *string
	DocumentContentType *string
	DocumentFileSize    *int64
	DocumentUpdatedAt   *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Response struct {
	ID                  int64            `json:"id"`
	RecordType          Kind             `json:"recordType"`
	RecordID            int64            `json:"recordId"`
	Description         *string          `json:"description"`
	DocumentFileName    *string          `json:"documentFileName"`
	DocumentContentType *string          `json:"documentContentType"`
	DocumentFileSize    *int64           `json:"documentFileSize"`
	DocumentUpdatedAt   *render.DateTime `json:"documentUpdatedAt"`
	CreatedAt           render.DateTime  `json:"createdAt"`
	UpdatedAt           render.DateTime  `json:"updatedAt"`
}

func (a *Attachment) Render() *Response {
	return &Response{
		ID:                  a.ID,
		RecordType:          a.Record.Kind,
		RecordID:            a.Record.ID,
		Description:         a.Description,
		DocumentFileName:    a.DocumentFileName,
		DocumentContentType: a.DocumentContentType,
		DocumentFileSize:    a.DocumentFileSize,
		DocumentUpdatedAt:   render.DateTimePtr(a.DocumentUpdatedAt),
		CreatedAt:           render.NewDateTime(a.CreatedAt),
		UpdatedAt:           render.NewDateTime(a.UpdatedAt),
	}
}
