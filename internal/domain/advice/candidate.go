package advice

// Predicted property keys.
const (
	PredSelectivity = "selectivity"
	PredUptake      = "uptake_mmol_g"
	PredStability   = "stability_index"
)

// Candidate is a scored material suggestion for an application.
type Candidate struct {
	materialID  string
	name        string
	fitScore    float64
	uncertainty float64
	predicted   map[string]float64
	synthesis   map[string]any
	rationale   string
	sources     []string
}

// NewCandidate creates a Candidate. Nil maps and slices are normalized to empty ones.
func NewCandidate(
	materialID, name string, fitScore, uncertainty float64,
	predicted map[string]float64, synthesis map[string]any,
	rationale string, sources []string,
) Candidate {
	if predicted == nil {
		predicted = map[string]float64{}
	}
	if synthesis == nil {
		synthesis = map[string]any{}
	}
	if sources == nil {
		sources = []string{}
	}
	return Candidate{
		materialID: materialID, name: name,
		fitScore: fitScore, uncertainty: uncertainty,
		predicted: predicted, synthesis: synthesis,
		rationale: rationale, sources: sources,
	}
}

// MaterialID returns the material identifier.
func (c Candidate) MaterialID() string { return c.materialID }

// Name returns the material display name.
func (c Candidate) Name() string { return c.name }

// FitScore returns the 0-1 heuristic suitability.
func (c Candidate) FitScore() float64 { return c.fitScore }

// Uncertainty returns the 0-1 uncertainty of the fit score.
func (c Candidate) Uncertainty() float64 { return c.uncertainty }

// Predicted returns the predicted properties.
func (c Candidate) Predicted() map[string]float64 { return c.predicted }

// Synthesis returns the suggested synthesis recipe.
func (c Candidate) Synthesis() map[string]any { return c.synthesis }

// Rationale returns the human-readable rationale.
func (c Candidate) Rationale() string { return c.rationale }

// Sources returns the provenance tags.
func (c Candidate) Sources() []string { return c.sources }
