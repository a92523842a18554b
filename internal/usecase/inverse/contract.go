package inverse

import (
	"context"

	"github.com/kailas-cloud/mofassist/internal/domain/material"
)

// Resolver resolves a material by display name, falling back to a default record.
type Resolver interface {
	ByName(ctx context.Context, name string) (material.Material, bool)
}
