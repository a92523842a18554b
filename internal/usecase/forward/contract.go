package forward

import (
	"context"

	"github.com/kailas-cloud/mofassist/internal/domain/material"
)

// Catalog finds materials for an application.
type Catalog interface {
	SearchByApplication(ctx context.Context, application string) []material.Material
}

// Predictor estimates properties and proposes synthesis routes and new materials.
type Predictor interface {
	PredictProps(m *material.Material) map[string]float64
	SuggestSynthesis(name string) map[string]any
	GenerateCandidate(ctx context.Context, application string) material.Material
}
