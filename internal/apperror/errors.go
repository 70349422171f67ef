// Package apperror defines the error kinds shared by every resource module.
//
// Domain packages declare their own sentinel errors by wrapping ErrNotFound or
// ErrConflict, so handlers can match either the specific sentinel or the kind.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates that a write would violate a uniqueness constraint.
	ErrConflict = errors.New("conflict")
)

// Error is a domain error of a given kind, ErrNotFound or ErrConflict.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the kind to errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

// NotFound returns a domain error of kind ErrNotFound.
func NotFound(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// Conflict returns a domain error of kind ErrConflict.
func Conflict(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

// ValidationError reports a request field that is absent or has the wrong shape.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid value for field %q", e.Field)
	}
	return fmt.Sprintf("invalid value for field %q: %s", e.Field, e.Reason)
}

// MissingParameterError reports a required query parameter that was not supplied.
type MissingParameterError struct {
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s parameter is required", e.Param)
}

// InvalidParameterError reports a query parameter whose value cannot be used.
type InvalidParameterError struct {
	Param  string
	Value  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s parameter %q: %s", e.Param, e.Value, e.Reason)
}

// Validation returns a ValidationError for field.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// MissingParameter returns a MissingParameterError for param.
func MissingParameter(param string) error {
	return &MissingParameterError{Param: param}
}

// RequireParam returns a MissingParameterError when value is empty.
func RequireParam(param, value string) error {
	if value == "" {
		return MissingParameter(param)
	}
	return nil
}
