package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest signals a request that fails field validation.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrMaterialNotFound signals a strict lookup miss in the material catalog.
	ErrMaterialNotFound = errors.New("material not found")
)

// FieldError wraps ErrInvalidRequest with the offending field name.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidRequest.Error(), e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidRequest }

// NewFieldError creates a validation error for a single field.
func NewFieldError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}
