package task

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName      = errors.New("task name cannot be empty")
	ErrEmptyID        = errors.New("task id cannot be empty")
	ErrMissingDueDate = errors.New("task due date is required")
	ErrDuplicateID    = errors.New("duplicate task id")
)

// ValidationError reports input that cannot form a valid task. Callers are
// expected to fix the input and retry.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
