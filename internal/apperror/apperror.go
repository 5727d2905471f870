// Package apperror carries the error taxonomy the API maps onto HTTP status
// codes: validation and state conflicts are 400, duplicates 409, unknown ids
// 404, everything else 500.
package apperror

import "fmt"

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError: the request is well-formed but the current state forbids it
// (locked count, second active count per location).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// DuplicateError: uniqueness violation (duplicate name). Mapped to 409.
type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string { return e.Message }

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func Duplicate(format string, args ...any) error {
	return &DuplicateError{Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}
