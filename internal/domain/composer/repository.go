package composer

import "context"

type Repository interface {
	Create(ctx context.Context, composer *Composer) error
	List(ctx context.Context) ([]Composer, error)
	GetByID(ctx context.Context, composerID string) (*Composer, error)
}
