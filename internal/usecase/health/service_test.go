package health

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/mofassist/internal/repository/catalog"
)

// --- Mocks ---

type mockCatalogPinger struct {
	err error
}

func (m *mockCatalogPinger) Ping(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_Healthy(t *testing.T) {
	svc := New(&mockCatalogPinger{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if !r.OK() {
		t.Error("expected OK() to be true")
	}
	if r.Checks["catalog"] != CheckOK {
		t.Errorf("expected catalog %q, got %q", CheckOK, r.Checks["catalog"])
	}
}

func TestCheck_CatalogError(t *testing.T) {
	svc := New(&mockCatalogPinger{err: errors.New("catalog is empty")})
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
	if r.Checks["catalog"] != CheckError {
		t.Errorf("expected catalog %q, got %q", CheckError, r.Checks["catalog"])
	}
}

func TestCheck_NilCatalog(t *testing.T) {
	r := New(nil).Check(context.Background())

	if r.OK() {
		t.Error("expected unhealthy report without a catalog")
	}
}

func TestCheck_DefaultCatalog(t *testing.T) {
	r := New(catalog.Default()).Check(context.Background())

	if !r.OK() {
		t.Errorf("expected default catalog to be healthy, got %+v", r)
	}
}
