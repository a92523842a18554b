// Package prediction holds the placeholder property, synthesis and candidate
// generators. The constants here stand in for a real model.
package prediction

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/mofassist/internal/domain/advice"
	"github.com/kailas-cloud/mofassist/internal/domain/material"
	"github.com/kailas-cloud/mofassist/internal/logger"
)

// DefaultStability is used when a material has no computed stability index.
const DefaultStability = 0.80

// Generated candidate template.
const (
	GeneratedName        = "GenMOF-A"
	GeneratedTopology    = "ftw"
	GeneratedSurfaceArea = 1350
)

// IDSource returns the random suffix of a generated material ID.
type IDSource func() string

// Service implements property prediction, synthesis suggestion and candidate generation.
type Service struct {
	prefix string
	newID  IDSource
}

// New creates a prediction service. prefix is prepended to generated IDs.
func New(prefix string) *Service {
	return &Service{prefix: prefix, newID: RandomHexID}
}

// WithIDSource overrides the generated ID suffix source.
func (s *Service) WithIDSource(src IDSource) *Service {
	if src != nil {
		s.newID = src
	}
	return s
}

// RandomHexID returns 6 uppercase hex characters taken from a random UUID.
// Uniqueness is not guaranteed.
func RandomHexID() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:3]))
}

// PredictProps returns selectivity, uptake and stability for a material.
func (s *Service) PredictProps(m *material.Material) map[string]float64 {
	selectivity, uptake := 22.0, 2.6
	if m.NameContains("UiO") {
		selectivity, uptake = 28.4, 3.3
	}
	return map[string]float64{
		advice.PredSelectivity: selectivity,
		advice.PredUptake:      uptake,
		advice.PredStability:   m.PropOr(material.PropStability, DefaultStability),
	}
}

// SuggestSynthesis returns a synthesis recipe for a material name.
func (s *Service) SuggestSynthesis(name string) map[string]any {
	if strings.Contains(name, "UiO-66") {
		return map[string]any{
			"solvent":   "Water/EtOH",
			"temp_C":    120,
			"time_h":    12,
			"modulator": "Acetic",
		}
	}
	return map[string]any{
		"solvent": "MeOH",
		"temp_C":  100,
	}
}

// GenerateCandidate returns a synthetic material for an application.
// The application does not influence the result.
func (s *Service) GenerateCandidate(ctx context.Context, application string) material.Material {
	id := s.prefix + s.newID()
	logger.Component(ctx, "prediction").Debug("generated candidate",
		zap.String("material_id", id),
		zap.String("application", application),
	)
	return material.MustNew(id, GeneratedName, "", GeneratedTopology, map[string]float64{
		material.PropSurfaceArea: GeneratedSurfaceArea,
	})
}
