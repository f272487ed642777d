package attachment

import (
	"context"
	"time"

	"github.com/healer/healer-api/internal/platform/render"
)

type Service struct {
	attachments Repository
}

func NewService(attachments Repository) *Service {
	return &Service{attachments: attachments}
}

type CreateParams struct {
	RecordType          *Kind
	RecordID            *int64
	Description         *string
	DocumentFileName    *string
	DocumentContentType *string
	DocumentFileSize    *int64
	DocumentUpdatedAt   *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Attachment, error) {
	if params.RecordType == nil || params.RecordID == nil {
		return nil, render.Validationf("record_type and record_id are required")
	}
	if !params.RecordType.Valid() {
		return nil, render.Validationf("record_type must be Patient, Case or Appointment")
	}

	a := &Attachment{
		Record:              RecordRef{Kind: *params.RecordType, ID: *params.RecordID},
		Description:         params.Description,
		DocumentFileName:    params.DocumentFileName,
		DocumentContentType: params.DocumentContentType,
		DocumentFileSize:    params.DocumentFileSize,
		DocumentUpdatedAt:   params.DocumentUpdatedAt,
	}
	if err := s.attachments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Attachment, error) {
	return s.attachments.Get(ctx, id)
}

// List narrows by record reference when both filter halves are given;
// a half-specified reference is rejected rather than ignored.
func (s *Service) List(ctx context.Context, recordType *Kind, recordID *int64, limit, offset int) ([]*Attachment, error) {
	var ref *RecordRef
	if recordType != nil || recordID != nil {
		if recordType == nil || recordID == nil {
			return nil, render.Validationf("record_type and record_id must be given together")
		}
		if !recordType.Valid() {
			return nil, render.Validationf("record_type must be Patient, Case or Appointment")
		}
		ref = &RecordRef{Kind: *recordType, ID: *recordID}
	}
	return s.attachments.List(ctx, ref, limit, offset)
}

// UpdateParams never includes the record reference: an attachment stays
// with the record it was created for.
type UpdateParams struct {
	Description         *string
	DocumentFileName    *string
	DocumentContentType *string
	DocumentFileSize    *int64
	DocumentUpdatedAt   *time.Time
}

func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Attachment, error) {
	a, err := s.attachments.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Description != nil {
		a.Description = params.Description
	}
	if params.DocumentFileName != nil {
		a.DocumentFileName = params.DocumentFileName
	}
	if params.DocumentContentType != nil {
		a.DocumentContentType = params.DocumentContentType
	}
	if params.DocumentFileSize != nil {
		a.DocumentFileSize = params.DocumentFileSize
	}
	if params.DocumentUpdatedAt != nil {
		a.DocumentUpdatedAt = params.DocumentUpdatedAt
	}

	if err := s.attachments.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.attachments.Delete(ctx, id)
}
