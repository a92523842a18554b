package mofassist

import (
	"context"

	healthuc "github.com/kailas-cloud/mofassist/internal/usecase/health"
)

// HealthStatus represents the aggregated advisor health.
type HealthStatus struct {
	Status string            // "ok" or "error"
	Checks map[string]string // component -> "ok"/"error"
}

// OK reports whether every check passed.
func (h HealthStatus) OK() bool { return h.Status == string(healthuc.Healthy) }

// Health checks the health of all advisor components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}

// healthUseCase is the internal interface for health checks.
type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}
