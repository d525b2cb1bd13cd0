package team

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeTeamRepo struct {
	teams map[string]*Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[string]*Team)}
}

func (r *fakeTeamRepo) Create(ctx context.Context, team *Team) error {
	team.ID = primitive.NewObjectID()
	r.teams[team.ID.Hex()] = team
	return nil
}

func (r *fakeTeamRepo) List(ctx context.Context) ([]Team, error) {
	result := make([]Team, 0, len(r.teams))
	for _, stored := range r.teams {
		result = append(result, *stored)
	}
	return result, nil
}

func (r *fakeTeamRepo) GetByID(ctx context.Context, teamID string) (*Team, error) {
	if _, err := primitive.ObjectIDFromHex(teamID); err != nil {
		return nil, ErrInvalidID
	}
	stored, ok := r.teams[teamID]
	if !ok {
		return nil, ErrTeamNotFound
	}
	return stored, nil
}

func (r *fakeTeamRepo) AppendPlayer(ctx context.Context, teamID string, player *Player) (*Team, error) {
	stored, err := r.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	stored.Players = append(stored.Players, *player)
	return stored, nil
}

func (r *fakeTeamRepo) Delete(ctx context.Context, teamID string) (*Team, error) {
	stored, err := r.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	delete(r.teams, teamID)
	return stored, nil
}

func TestCreateTeamEchoesFields(t *testing.T) {
	service := NewService(newFakeTeamRepo())

	created, err := service.Create(context.Background(), CreateTeamInput{
		Name:    "Hawks",
		Mascot:  "Hawk",
		Players: []Player{{FirstName: "A", LastName: "B", Salary: 50000}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Hawks" || created.Mascot != "Hawk" {
		t.Errorf("created = %+v, fields not echoed", created)
	}
	if len(created.Players) != 1 {
		t.Fatalf("len(players) = %d, want 1", len(created.Players))
	}
	if created.Players[0].ID.IsZero() {
		t.Error("embedded player has no id")
	}
}

func TestCreateTeamNilPlayers(t *testing.T) {
	service := NewService(newFakeTeamRepo())

	created, err := service.Create(context.Background(), CreateTeamInput{Name: "Hawks", Mascot: "Hawk"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Players == nil || len(created.Players) != 0 {
		t.Errorf("players = %v, want empty sequence", created.Players)
	}
}

func TestAddPlayerGrowsByOne(t *testing.T) {
	service := NewService(newFakeTeamRepo())

	created, err := service.Create(context.Background(), CreateTeamInput{Name: "Hawks", Mascot: "Hawk"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := service.AddPlayer(context.Background(), created.ID.Hex(), AddPlayerInput{
		FirstName: "A",
		LastName:  "B",
		Salary:    50000,
	})
	if err != nil {
		t.Fatalf("add player: %v", err)
	}
	if len(updated.Players) != 1 {
		t.Fatalf("len(players) = %d, want 1", len(updated.Players))
	}
	if updated.Players[0].Salary != 50000 {
		t.Errorf("salary = %v, want 50000", updated.Players[0].Salary)
	}

	players, err := service.ListPlayers(context.Background(), created.ID.Hex())
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("len(players) = %d, want 1", len(players))
	}
}

func TestAddPlayerUnknownTeam(t *testing.T) {
	service := NewService(newFakeTeamRepo())

	_, err := service.AddPlayer(context.Background(), primitive.NewObjectID().Hex(), AddPlayerInput{FirstName: "A"})
	if !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("err = %v, want ErrTeamNotFound", err)
	}
}

func TestAddPlayerInvalidID(t *testing.T) {
	service := NewService(newFakeTeamRepo())

	_, err := service.AddPlayer(context.Background(), "not-an-id", AddPlayerInput{FirstName: "A"})
	if !errors.Is(err, ErrInvalidID) {
		t.Fatalf("err = %v, want ErrInvalidID", err)
	}
}

func TestDeleteTeamRemovesFromList(t *testing.T) {
	service := NewService(newFakeTeamRepo())

	created, err := service.Create(context.Background(), CreateTeamInput{Name: "Hawks", Mascot: "Hawk"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := service.Delete(context.Background(), created.ID.Hex())
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != created.ID {
		t.Errorf("deleted id = %s, want %s", deleted.ID.Hex(), created.ID.Hex())
	}

	teams, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, item := range teams {
		if item.ID == created.ID {
			t.Error("deleted team still listed")
		}
	}
}
