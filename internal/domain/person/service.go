package person

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores the person as submitted. Roles and dependents pass through
// verbatim; absent sequences become empty rather than null.
func (s *Service) Create(ctx context.Context, input CreatePersonInput) (*Person, error) {
	roles := input.Roles
	if roles == nil {
		roles = []Role{}
	}
	dependents := input.Dependents
	if dependents == nil {
		dependents = []Dependent{}
	}

	person := Person{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Roles:      roles,
		Dependents: dependents,
		BirthDate:  input.BirthDate,
	}

	if err := s.repo.Create(ctx, &person); err != nil {
		return nil, err
	}

	return &person, nil
}

func (s *Service) List(ctx context.Context) ([]Person, error) {
	return s.repo.List(ctx)
}
