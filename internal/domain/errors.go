package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a continent or destination id does not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation marks invalid client input.
var ErrValidation = errors.New("validation failed")

// ErrConflict marks an insert the store refused. Callers see one generic
// response for every conflict; the wrapped cause is for logs only.
var ErrConflict = errors.New("conflict")

var (
	ErrEmailRequired     = fmt.Errorf("email is required: %w", ErrValidation)
	ErrAlreadySubscribed = fmt.Errorf("email already subscribed: %w", ErrConflict)
	ErrSubscribeFailed   = fmt.Errorf("subscriber insert rejected: %w", ErrConflict)
)
