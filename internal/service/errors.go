package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or missing input. Nothing is written.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks an update or lookup of an id that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrStore marks a storage failure. The transaction has been rolled back.
	ErrStore = errors.New("store error")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundError(entity string, id int64) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

func storeError(op string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", ErrStore, op, err)
}
