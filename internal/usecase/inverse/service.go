package inverse

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/mofassist/internal/domain/advice"
	"github.com/kailas-cloud/mofassist/internal/domain/material"
	"github.com/kailas-cloud/mofassist/internal/logger"
	"github.com/kailas-cloud/mofassist/internal/metrics"
)

// Fallbacks for properties missing from the resolved material.
const (
	DefaultSurfaceArea    = 1200
	DefaultOpenMetalSites = 0
)

// Request is an inverse search: material -> applications.
// CIFURL is accepted but not read.
type Request struct {
	Name   string
	CIFURL string
	Lang   string
}

// Service suggests applications for a material.
type Service struct {
	resolver Resolver
}

// New creates an inverse search service.
func New(resolver Resolver) *Service {
	return &Service{resolver: resolver}
}

// Inverse returns the VOC removal and H2 storage suggestions, populated from the
// resolved material. Unknown or empty names resolve to the default record.
func (s *Service) Inverse(ctx context.Context, req Request) []advice.AppSuggestion {
	m, matched := s.resolver.ByName(ctx, req.Name)

	result := "fallback"
	if matched {
		result = "matched"
	}
	metrics.InverseResolutionsTotal.WithLabelValues(result).Inc()
	logger.Component(ctx, "inverse").Debug("material resolved",
		zap.String("query", req.Name),
		zap.String("material_id", m.ID()),
		zap.Bool("matched", matched),
	)

	sa := m.PropOr(material.PropSurfaceArea, DefaultSurfaceArea)

	return []advice.AppSuggestion{
		advice.NewAppSuggestion(advice.AppVOCRemoval, 0.79, 0.18,
			map[string]float64{
				material.PropSurfaceArea:    sa,
				material.PropOpenMetalSites: m.PropOr(material.PropOpenMetalSites, DefaultOpenMetalSites),
			},
			map[string]any{"humidity_max_pct": 30},
		),
		advice.NewAppSuggestion(advice.AppH2Storage, 0.68, 0.22,
			map[string]float64{material.PropSurfaceArea: sa},
			map[string]any{"T_K": 77, "P_bar": 50},
		),
	}
}
