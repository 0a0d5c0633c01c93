package xerrors

import (
	"errors"
	"fmt"
)

// Common reusable application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("conflict: resource already exists")
	ErrInvalidInput = errors.New("invalid input")
	ErrDomainRule   = errors.New("domain rule violation")
	ErrInternal     = errors.New("internal server error")
	ErrUnauthorized = errors.New("unauthorized access")
)

// NotFoundError carries the entity name and the lookup key so callers can
// report what was searched for.
type NotFoundError struct {
	Entity string
	Key    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %v not found", e.Entity, e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func NewNotFound(entity string, key any) error {
	return &NotFoundError{Entity: entity, Key: key}
}

// ConflictError reports a uniqueness violation on a named field.
type ConflictError struct {
	Entity string
	Field  string
	Value  any
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %v already exists", e.Entity, e.Field, e.Value)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

func NewConflict(entity, field string, value any) error {
	return &ConflictError{Entity: entity, Field: field, Value: value}
}

// ValidationError maps field names to one or more human-readable messages.
// All rule violations for a DTO are collected before it is returned.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
