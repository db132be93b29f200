package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrCategoryNotFound indicates a category lookup matched no items.
	ErrCategoryNotFound = errors.New("no items found in category")

	// ErrInvalidItem indicates an item payload violates domain constraints.
	// Every *ValidationError unwraps to it.
	ErrInvalidItem = errors.New("invalid item")

	// ErrEmptyUpdate indicates an update payload supplied no fields.
	ErrEmptyUpdate = errors.New("no fields provided for update")

	// ErrStorage indicates a connectivity or constraint failure in the storage layer.
	ErrStorage = errors.New("storage unavailable")
)

// FieldViolation describes a single field that failed validation.
type FieldViolation struct {
	Field      string
	Constraint string // e.g. "required", "max=255", "gt=0"
	Value      any
	Message    string
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Violations []FieldViolation
}

// Error joins the violated fields into a single message.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidItem, strings.Join(parts, "; "))
}

// Unwrap lets errors.Is(err, ErrInvalidItem) match.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidItem
}

// Add appends a violation.
func (e *ValidationError) Add(field, constraint string, value any, message string) {
	e.Violations = append(e.Violations, FieldViolation{
		Field:      field,
		Constraint: constraint,
		Value:      value,
		Message:    message,
	})
}

// OrNil returns e when it holds violations and nil otherwise, so callers can
// write `return v.OrNil()` without returning a typed nil.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Violations) == 0 {
		return nil
	}
	return e
}
