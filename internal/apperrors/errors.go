package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidTransition indicates an attempt to transition a transaction
// that is already in a terminal state.
var ErrInvalidTransition = errors.New("invalid state transition")

// ErrStoreUnavailable indicates the durable store could not be reached.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// AppError wraps an underlying error with a status code and message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewStoreUnavailableError creates an AppError that matches ErrStoreUnavailable.
// The underlying store error is folded into the message for logging; the
// caller owns any retry policy.
func NewStoreUnavailableError(message string, err error) *AppError {
	if err != nil {
		message = message + ": " + err.Error()
	}
	return &AppError{Code: 500, Message: message, Err: ErrStoreUnavailable}
}

// ValidationError carries itemized per-field validation messages.
// It matches ErrValidation via errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates an empty ValidationError ready to collect fields.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a validation failure for a field.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

// HasErrors reports whether any field failed validation.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
