package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds. Controllers map them to HTTP status codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrIntegration  = errors.New("upstream service failed")

	// ErrNoResults means the user has no history yet. It is not a failure.
	ErrNoResults = errors.New("no results yet")
)

// Error is a domain error whose message is safe to show to clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// notFoundOr converts gorm's not-found into ErrNotFound and wraps anything else.
func notFoundOr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newError(ErrNotFound, "%s not found", what)
	}
	return fmt.Errorf("load %s: %w", what, err)
}
