package chi

// ErrorCode is a machine-readable error code returned to clients.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeNotFound         ErrorCode = "not_found"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// OperatingConditions is the optional service environment of a forward search.
type OperatingConditions struct {
	TK          *float64 `json:"T_K,omitempty"`
	PBar        *float64 `json:"P_bar,omitempty"`
	HumidityPct *float64 `json:"humidity_pct,omitempty"`
}

// Constraints are optional forward-search thresholds.
type Constraints struct {
	SelectivityMin      *float64             `json:"selectivity_min,omitempty"`
	UptakeMinMmolG      *float64             `json:"uptake_min_mmol_g,omitempty"`
	OperatingConditions *OperatingConditions `json:"operating_conditions,omitempty"`
}

// ForwardRequest is the body of POST /api/forward.
type ForwardRequest struct {
	Application *string      `json:"application"`
	Constraints *Constraints `json:"constraints,omitempty"`
	Lang        string       `json:"lang,omitempty"`
}

// Candidate is a forward-search result.
type Candidate struct {
	MaterialID         string             `json:"material_id"`
	Name               string             `json:"name"`
	FitScore           float64            `json:"fit_score"`
	Uncertainty        float64            `json:"uncertainty"`
	PredictedProps     map[string]float64 `json:"predicted_props"`
	SuggestedSynthesis map[string]any     `json:"suggested_synthesis"`
	Rationale          string             `json:"rationale"`
	Sources            []string           `json:"sources"`
}

// ForwardResponse is the body returned by POST /api/forward.
type ForwardResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// InverseMaterial identifies the material of an inverse search.
type InverseMaterial struct {
	Name   *string `json:"name,omitempty"`
	CIFURL *string `json:"cif_url,omitempty"`
}

// InverseRequest is the body of POST /api/inverse.
type InverseRequest struct {
	Material *InverseMaterial `json:"material"`
	Lang     string           `json:"lang,omitempty"`
}

// AppSuggestion is an inverse-search result.
type AppSuggestion struct {
	Application   string             `json:"application"`
	FitScore      float64            `json:"fit_score"`
	Uncertainty   float64            `json:"uncertainty"`
	KeyProps      map[string]float64 `json:"key_props"`
	OperatingTips map[string]any     `json:"operating_tips"`
}

// InverseResponse is the body returned by POST /api/inverse.
type InverseResponse struct {
	Applications []AppSuggestion `json:"applications"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message *string `json:"message"`
	Lang    string  `json:"lang,omitempty"`
}

// ChatResponse is the body returned by POST /api/chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// RootResponse is the service descriptor returned by GET /.
type RootResponse struct {
	OK        bool     `json:"ok"`
	Service   string   `json:"service"`
	Version   string   `json:"version,omitempty"`
	Endpoints []string `json:"endpoints"`
}

// HealthResponse is the body returned by GET /api/health.
type HealthResponse struct {
	OK     bool              `json:"ok"`
	Msg    string            `json:"msg"`
	Checks map[string]string `json:"checks,omitempty"`
}
