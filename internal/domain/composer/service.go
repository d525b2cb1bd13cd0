package composer

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, input CreateComposerInput) (*Composer, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" {
		return nil, fmt.Errorf("firstName is required")
	}
	if lastName == "" {
		return nil, fmt.Errorf("lastName is required")
	}

	composer := Composer{
		FirstName: firstName,
		LastName:  lastName,
	}

	if err := s.repo.Create(ctx, &composer); err != nil {
		return nil, err
	}

	return &composer, nil
}

func (s *Service) List(ctx context.Context) ([]Composer, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, composerID string) (*Composer, error) {
	return s.repo.GetByID(ctx, composerID)
}
