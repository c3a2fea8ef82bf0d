package domain

import "github.com/pkg/errors"

// ErrInvalidArgument is the class every validation failure wraps. Callers that
// do not care which rule was broken can match on it alone with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrInvalidName     = errors.Wrap(ErrInvalidArgument, "product name must not be empty")
	ErrInvalidPrice    = errors.Wrap(ErrInvalidArgument, "price must be greater than zero")
	ErrInvalidRating   = errors.Wrap(ErrInvalidArgument, "rating must not be negative")
	ErrInvalidUsername = errors.Wrap(ErrInvalidArgument, "username must contain only word characters")
	ErrNilProduct      = errors.Wrap(ErrInvalidArgument, "product must not be nil")
	ErrWeakPassword    = errors.Wrap(ErrInvalidArgument, "password must be at least 8 characters "+
		"with at least one letter and one digit")
)
