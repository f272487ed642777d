package team

import (
	"context"

	"github.com/healer/healer-api/internal/platform/render"
)

type Service struct {
	teams Repository
}

func NewService(teams Repository) *Service {
	return &Service{teams: teams}
}

func (s *Service) Create(ctx context.Context, t *Team) error {
	if t.Name == "" {
		return render.Validationf("team name is required")
	}
	return s.teams.Create(ctx, t)
}

func (s *Service) Get(ctx context.Context, id int64) (*Team, error) {
	return s.teams.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Team, error) {
	return s.teams.List(ctx, limit, offset)
}

func (s *Service) Update(ctx context.Context, id int64, name *string) (*Team, error) {
	t, err := s.teams.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		if *name == "" {
			return nil, render.Validationf("team name is required")
		}
		t.Name = *name
	}
	if err := s.teams.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.teams.Delete(ctx, id)
}
