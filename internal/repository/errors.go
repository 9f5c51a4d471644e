package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a targeted row does not exist.
	ErrNotFound = errors.New("repository: record not found")

	// ErrMeetingNotFound matches ErrNotFound under errors.Is.
	ErrMeetingNotFound = fmt.Errorf("meeting: %w", ErrNotFound)
)
