package team

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, input CreateTeamInput) (*Team, error) {
	players := input.Players
	if players == nil {
		players = []Player{}
	}
	for i := range players {
		if players[i].ID.IsZero() {
			players[i].ID = primitive.NewObjectID()
		}
	}

	created := Team{
		Name:    input.Name,
		Mascot:  input.Mascot,
		Players: players,
	}

	if err := s.repo.Create(ctx, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *Service) List(ctx context.Context) ([]Team, error) {
	return s.repo.List(ctx)
}

// AddPlayer appends a player to the team and returns the updated document.
func (s *Service) AddPlayer(ctx context.Context, teamID string, input AddPlayerInput) (*Team, error) {
	player := Player{
		ID:        primitive.NewObjectID(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Salary:    input.Salary,
	}

	return s.repo.AppendPlayer(ctx, teamID, &player)
}

func (s *Service) ListPlayers(ctx context.Context, teamID string) ([]Player, error) {
	found, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if found.Players == nil {
		return []Player{}, nil
	}
	return found.Players, nil
}

func (s *Service) Delete(ctx context.Context, teamID string) (*Team, error) {
	return s.repo.Delete(ctx, teamID)
}
