package forward

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/mofassist/internal/domain/advice"
	"github.com/kailas-cloud/mofassist/internal/logger"
	"github.com/kailas-cloud/mofassist/internal/metrics"
)

// Scoring constants for catalog-derived candidates.
const (
	ScoreUiO             = 0.8
	ScoreOther           = 0.7
	UncertaintyConfident = 0.15
	UncertaintyDefault   = 0.22

	confidentAbove = 0.75

	baselineRationale = "Baseline mock rationale."
	sourceInternal    = "internal:mock"
)

// Generated candidate constants.
const (
	GeneratedScore       = 0.78
	GeneratedUncertainty = 0.28
	GeneratedSelectivity = 31.1
	GeneratedUptake      = 3.0

	generatedRationale = "Generated candidate (mock)."
)

// Request is a forward search: application -> candidate materials.
type Request struct {
	Application string
	Constraints *advice.Constraints
	Lang        string
}

// Service ranks materials for an application.
type Service struct {
	catalog   Catalog
	predictor Predictor
}

// New creates a forward search service.
func New(catalog Catalog, predictor Predictor) *Service {
	return &Service{catalog: catalog, predictor: predictor}
}

// Forward builds candidates for every catalog match plus one generated material,
// then drops those below the request thresholds. Order is preserved.
func (s *Service) Forward(ctx context.Context, req Request) []advice.Candidate {
	mats := s.catalog.SearchByApplication(ctx, req.Application)

	cands := make([]advice.Candidate, 0, len(mats)+1)
	for i := range mats {
		m := &mats[i]
		score := ScoreOther
		if m.NameContains("UiO") {
			score = ScoreUiO
		}
		uncertainty := UncertaintyDefault
		if score > confidentAbove {
			uncertainty = UncertaintyConfident
		}
		cands = append(cands, advice.NewCandidate(
			m.ID(), m.Name(), score, uncertainty,
			s.predictor.PredictProps(m),
			s.predictor.SuggestSynthesis(m.Name()),
			baselineRationale, []string{sourceInternal},
		))
	}

	gen := s.predictor.GenerateCandidate(ctx, req.Application)
	cands = append(cands, advice.NewCandidate(
		gen.ID(), gen.Name(), GeneratedScore, GeneratedUncertainty,
		map[string]float64{
			advice.PredSelectivity: GeneratedSelectivity,
			advice.PredUptake:      GeneratedUptake,
		},
		s.predictor.SuggestSynthesis(gen.Name()),
		generatedRationale, []string{},
	))
	built := len(cands)

	cands = req.Constraints.Apply(cands)

	metrics.ForwardCandidates.WithLabelValues("built").Observe(float64(built))
	metrics.ForwardCandidates.WithLabelValues("returned").Observe(float64(len(cands)))
	logger.Component(ctx, "forward").Debug("forward search",
		zap.String("application", req.Application),
		zap.Int("built", built),
		zap.Int("returned", len(cands)),
	)

	return cands
}
