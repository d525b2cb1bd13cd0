package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByUserName(ctx context.Context, userName string) (*User, error)
}
