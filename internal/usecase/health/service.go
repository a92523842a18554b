package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Unhealthy indicates the service cannot answer requests.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// OK reports whether the service is healthy.
func (r Report) OK() bool { return r.Status == Healthy }

// Service coordinates health checks.
type Service struct {
	catalog CatalogPinger
}

// New creates a Service.
func New(catalog CatalogPinger) *Service {
	return &Service{catalog: catalog}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.catalog == nil {
		checks["catalog"] = CheckError
	} else if err := s.catalog.Ping(ctx); err != nil {
		checks["catalog"] = CheckError
	} else {
		checks["catalog"] = CheckOK
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Unhealthy
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
