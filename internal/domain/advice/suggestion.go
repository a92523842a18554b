package advice

// Application labels produced by inverse search.
const (
	AppVOCRemoval = "VOC_removal"
	AppH2Storage  = "H2_storage"
)

// AppSuggestion is an application a material may fit.
type AppSuggestion struct {
	application string
	fitScore    float64
	uncertainty float64
	keyProps    map[string]float64
	tips        map[string]any
}

// NewAppSuggestion creates an AppSuggestion.
func NewAppSuggestion(
	application string, fitScore, uncertainty float64,
	keyProps map[string]float64, tips map[string]any,
) AppSuggestion {
	if keyProps == nil {
		keyProps = map[string]float64{}
	}
	if tips == nil {
		tips = map[string]any{}
	}
	return AppSuggestion{
		application: application, fitScore: fitScore, uncertainty: uncertainty,
		keyProps: keyProps, tips: tips,
	}
}

// Application returns the application label.
func (a AppSuggestion) Application() string { return a.application }

// FitScore returns the 0-1 heuristic suitability.
func (a AppSuggestion) FitScore() float64 { return a.fitScore }

// Uncertainty returns the 0-1 uncertainty.
func (a AppSuggestion) Uncertainty() float64 { return a.uncertainty }

// KeyProps returns the material properties backing the suggestion.
func (a AppSuggestion) KeyProps() map[string]float64 { return a.keyProps }

// OperatingTips returns suggested operating parameters.
func (a AppSuggestion) OperatingTips() map[string]any { return a.tips }
