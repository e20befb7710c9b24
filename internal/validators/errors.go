package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrInvalidData is matched (via errors.Is) by every *ValidationError.
	ErrInvalidData = errors.New("invalid data provided")

	// ErrUnsupportedType is returned when Validate receives a value it
	// does not know how to check.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// Field-level messages. The wording is part of the public API.
const (
	MsgRequired        = "This field is required."
	MsgBlank           = "This field may not be blank."
	MsgNull            = "This field may not be null."
	MsgNotAString      = "Not a valid string."
	MsgNotABoolean     = "Must be a valid boolean."
	MsgInvalidUsername = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	MsgUsernameTaken   = "A user with that username already exists."
)

// FieldErrors maps a field name to its validation messages.
type FieldErrors map[string][]string

// ValidationError describes every problem found in one input value.
type ValidationError struct {
	Fields FieldErrors
}

// NewValidationError returns an empty ValidationError ready for Add.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(FieldErrors)}
}

// Add records msg for field and returns e for chaining.
func (e *ValidationError) Add(field, msg string) *ValidationError {
	e.Fields[field] = append(e.Fields[field], msg)
	return e
}

// HasErrors reports whether any message was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns e if it holds messages and nil otherwise, so callers can
// `return verr.OrNil()` without a typed-nil error.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+strings.Join(e.Fields[name], " "))
	}

	return ErrInvalidData.Error() + " (" + strings.Join(parts, "; ") + ")"
}

// Is makes errors.Is(err, ErrInvalidData) true for any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidData
}
