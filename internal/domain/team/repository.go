package team

import "context"

type Repository interface {
	Create(ctx context.Context, team *Team) error
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (*Team, error)
	// AppendPlayer atomically appends one player and returns the updated
	// team document.
	AppendPlayer(ctx context.Context, teamID string, player *Player) (*Team, error)
	// Delete removes the team and returns the deleted document.
	Delete(ctx context.Context, teamID string) (*Team, error)
}
