package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserNameTaken      = errors.New("username is already in use")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
