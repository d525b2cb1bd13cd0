package team

import "errors"

var (
	ErrTeamNotFound = errors.New("team not found")
	ErrInvalidID    = errors.New("invalid team id")
)
