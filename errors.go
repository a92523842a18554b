package mofassist

import "github.com/kailas-cloud/mofassist/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidRequest   = domain.ErrInvalidRequest
	ErrMaterialNotFound = domain.ErrMaterialNotFound
)
