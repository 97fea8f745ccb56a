package class

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	ErrImmutable  = errors.New("instance is sealed")
	ErrNoField    = errors.New("no such field")
)
