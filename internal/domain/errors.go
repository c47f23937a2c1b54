package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	// ErrNotFound is returned both for missing rows and for rows the caller
	// may not access, so callers cannot probe which invitations exist.
	ErrNotFound      = errors.New("not found or forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")

	ErrInvalidStatus           = errors.New("invalid status value")
	ErrDelegationLimitExceeded = errors.New("delegation limit exceeded")
	ErrAlreadyDelegated        = errors.New("invitation already delegated")
	ErrSelfDelegation          = errors.New("self-delegation rejected")
	ErrMissingDelegateName     = errors.New("delegate display name is required")
	ErrDelegateAlreadyInvited  = errors.New("delegate already holds an active invitation for this agenda")

	// ErrInfrastructure marks store or registry unavailability. No partial
	// writes are committed when it is returned, so the call is safe to retry.
	ErrInfrastructure = errors.New("infrastructure unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// Infrastructure wraps err so that errors.Is(result, ErrInfrastructure) holds
// while the original cause stays reachable through errors.Is/As.
func Infrastructure(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrInfrastructure, err)
}
