package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	gochi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/mofassist/internal/domain"
	"github.com/kailas-cloud/mofassist/internal/domain/advice"
	chatuc "github.com/kailas-cloud/mofassist/internal/usecase/chat"
	forwarduc "github.com/kailas-cloud/mofassist/internal/usecase/forward"
	healthuc "github.com/kailas-cloud/mofassist/internal/usecase/health"
	inverseuc "github.com/kailas-cloud/mofassist/internal/usecase/inverse"
	"github.com/kailas-cloud/mofassist/internal/version"
)

const (
	defaultLang = "en"

	// maxBodyBytes bounds request bodies; every valid request is tiny.
	maxBodyBytes = 64 << 10
)

// apiEndpoints is advertised by the root descriptor.
var apiEndpoints = []string{"/api/forward", "/api/inverse", "/api/chat"}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the MOF advisor HTTP API.
type Server struct {
	forward       *forwarduc.Service
	inverse       *inverseuc.Service
	chat          *chatuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	forward *forwarduc.Service,
	inverse *inverseuc.Service,
	chat *chatuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		forward: forward,
		inverse: inverse,
		chat:    chat,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		fieldErrorHandler,
		sentinelHandler(domain.ErrInvalidRequest, http.StatusUnprocessableEntity, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrMaterialNotFound, http.StatusNotFound, ErrorCodeNotFound),
	}
	return s
}

// NewRouter mounts the server routes on a chi router behind the given middlewares.
func NewRouter(s *Server, middlewares ...func(http.Handler) http.Handler) gochi.Router {
	r := gochi.NewRouter()
	r.Use(middlewares...)
	s.Register(r)
	return r
}

// Register mounts the API routes.
func (s *Server) Register(r gochi.Router) {
	r.Get("/", s.Root)
	r.Get("/metrics", s.Metrics)
	r.Route("/api", func(r gochi.Router) {
		r.Get("/health", s.HealthCheck)
		r.Post("/forward", s.Forward)
		r.Post("/inverse", s.Inverse)
		r.Post("/chat", s.Chat)
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorCodeNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorCodeBadRequest, "Method Not Allowed")
	})
}

// Root handles GET /.
func (s *Server) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{
		OK:        true,
		Service:   version.Service,
		Version:   version.Version,
		Endpoints: apiEndpoints,
	})
}

// Forward handles POST /api/forward.
func (s *Server) Forward(w http.ResponseWriter, r *http.Request) {
	var req ForwardRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Application == nil {
		s.handleDomainError(w, domain.NewFieldError("application", "is required"))
		return
	}

	cands := s.forward.Forward(r.Context(), forwarduc.Request{
		Application: *req.Application,
		Constraints: constraintsFromDTO(req.Constraints),
		Lang:        langOrDefault(req.Lang),
	})

	items := make([]Candidate, len(cands))
	for i := range cands {
		items[i] = candidateToDTO(&cands[i])
	}
	writeJSON(w, http.StatusOK, ForwardResponse{Candidates: items})
}

// Inverse handles POST /api/inverse.
func (s *Server) Inverse(w http.ResponseWriter, r *http.Request) {
	var req InverseRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Material == nil {
		s.handleDomainError(w, domain.NewFieldError("material", "is required"))
		return
	}

	apps := s.inverse.Inverse(r.Context(), inverseuc.Request{
		Name:   deref(req.Material.Name),
		CIFURL: deref(req.Material.CIFURL),
		Lang:   langOrDefault(req.Lang),
	})

	items := make([]AppSuggestion, len(apps))
	for i := range apps {
		items[i] = suggestionToDTO(&apps[i])
	}
	writeJSON(w, http.StatusOK, InverseResponse{Applications: items})
}

// Chat handles POST /api/chat.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Message == nil {
		s.handleDomainError(w, domain.NewFieldError("message", "is required"))
		return
	}

	reply := s.chat.Reply(r.Context(), *req.Message)
	writeJSON(w, http.StatusOK, ChatResponse{Reply: reply.Text})
}

// HealthCheck handles GET /api/health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	if report.OK() {
		writeJSON(w, http.StatusOK, HealthResponse{OK: true, Msg: "healthy"})
		return
	}

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
		OK:     false,
		Msg:    string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// decode reads exactly one JSON value into v. Syntax errors and trailing data
// are 400, type mismatches and empty bodies are validation failures.
// Returns false if a response was written.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(v)
	if err == nil {
		err = ensureEOF(dec)
		if err == nil {
			return true
		}
	}

	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		s.handleDomainError(w, domain.NewFieldError("body", "is required"))
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		s.handleDomainError(w, domain.NewFieldError(field, "must be of type "+typeErr.Type.String()))
	case errors.As(err, &maxErr):
		writeError(w, http.StatusRequestEntityTooLarge, ErrorCodeBadRequest,
			fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit))
	default:
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
	}
	return false
}

// ensureEOF fails if anything but whitespace follows the first JSON value.
func ensureEOF(dec *json.Decoder) error {
	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return fmt.Errorf("unexpected data after JSON body: %w", err)
	default:
		return errors.New("unexpected data after JSON body")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidRequest,
		domain.ErrMaterialNotFound,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// fieldErrorHandler reports which field failed validation.
func fieldErrorHandler(w http.ResponseWriter, err error, _ string) bool {
	var fe *domain.FieldError
	if !errors.As(err, &fe) {
		return false
	}
	writeError(w, http.StatusUnprocessableEntity, ErrorCodeValidationFailed, fe.Error())
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}

func langOrDefault(lang string) string {
	if lang == "" {
		return defaultLang
	}
	return lang
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func constraintsFromDTO(c *Constraints) *advice.Constraints {
	if c == nil {
		return nil
	}
	out := &advice.Constraints{
		SelectivityMin: c.SelectivityMin,
		UptakeMin:      c.UptakeMinMmolG,
	}
	if oc := c.OperatingConditions; oc != nil {
		out.Conditions = &advice.OperatingConditions{
			TemperatureK: oc.TK,
			PressureBar:  oc.PBar,
			HumidityPct:  oc.HumidityPct,
		}
	}
	return out
}

func candidateToDTO(c *advice.Candidate) Candidate {
	return Candidate{
		MaterialID:         c.MaterialID(),
		Name:               c.Name(),
		FitScore:           c.FitScore(),
		Uncertainty:        c.Uncertainty(),
		PredictedProps:     c.Predicted(),
		SuggestedSynthesis: c.Synthesis(),
		Rationale:          c.Rationale(),
		Sources:            c.Sources(),
	}
}

func suggestionToDTO(a *advice.AppSuggestion) AppSuggestion {
	return AppSuggestion{
		Application:   a.Application(),
		FitScore:      a.FitScore(),
		Uncertainty:   a.Uncertainty(),
		KeyProps:      a.KeyProps(),
		OperatingTips: a.OperatingTips(),
	}
}
