package person

import "context"

type Repository interface {
	Create(ctx context.Context, person *Person) error
	List(ctx context.Context) ([]Person, error)
}
