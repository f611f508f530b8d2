package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by repositories and services.
var (
	ErrNotFound      = errors.New("not found")
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidID     = errors.New("invalid id")
)

var (
	ErrDuplicateSlug = errors.New("slug already in use")
	ErrBookingExists = errors.New("booking already exists for this email")
)

// ErrValidation matches any *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// FieldError is a single failed rule on a record field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aborts a save. Err, when set, is the underlying cause.
type ValidationError struct {
	Fields []FieldError
	Err    error
}

// NewValidationError returns a ValidationError for one field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	if len(msgs) == 0 {
		return ErrValidation.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func (e *ValidationError) Unwrap() error { return e.Err }
