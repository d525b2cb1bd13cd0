package composer

import "errors"

var (
	ErrComposerNotFound = errors.New("composer not found")
	ErrInvalidID        = errors.New("invalid composer id")
)
