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

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrMissingField indicates that a required field was absent or blank.
var ErrMissingField = errors.New("missing required field")

// ErrInvalidAmount indicates that an amount was not a positive finite number.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrPersistence indicates that the persistence adapter failed to read or write the snapshot.
var ErrPersistence = errors.New("persistence failure")

// ValidationError carries per-field messages. It unwraps to the most specific
// sentinel so callers can use errors.Is.
type ValidationError struct {
	Fields map[string]string
	kind   error
}

// NewValidationError builds a ValidationError classified under kind
// (ErrMissingField, ErrInvalidAmount or ErrValidation).
func NewValidationError(kind error, fields map[string]string) *ValidationError {
	if kind == nil {
		kind = ErrValidation
	}
	return &ValidationError{Fields: fields, kind: kind}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", e.kind.Error(), strings.Join(parts, "; "))
}

// Unwrap exposes both the specific kind and the generic ErrValidation.
func (e *ValidationError) Unwrap() []error {
	if e.kind == ErrValidation {
		return []error{ErrValidation}
	}
	return []error{e.kind, ErrValidation}
}

// AppError is an infrastructure error with an HTTP-ish status code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
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
