package prediction

import (
	"context"
	"regexp"
	"testing"

	"github.com/kailas-cloud/mofassist/internal/domain/advice"
	"github.com/kailas-cloud/mofassist/internal/domain/material"
)

var generatedIDPattern = regexp.MustCompile(`^GEN_[0-9A-F]{6}$`)

func TestPredictProps_UiO(t *testing.T) {
	m := material.MustNew("MOF_00123", "UiO-66-NH2", "Zr", "fcu",
		map[string]float64{material.PropStability: 0.92})

	got := New("GEN_").PredictProps(&m)

	if got[advice.PredSelectivity] != 28.4 {
		t.Errorf("selectivity = %v, want 28.4", got[advice.PredSelectivity])
	}
	if got[advice.PredUptake] != 3.3 {
		t.Errorf("uptake = %v, want 3.3", got[advice.PredUptake])
	}
	if got[advice.PredStability] != 0.92 {
		t.Errorf("stability = %v, want 0.92", got[advice.PredStability])
	}
}

func TestPredictProps_OtherWithDefaultStability(t *testing.T) {
	m := material.MustNew("HKUST_1", "HKUST-1", "Cu", "tbo", nil)

	got := New("GEN_").PredictProps(&m)

	if got[advice.PredSelectivity] != 22.0 {
		t.Errorf("selectivity = %v, want 22.0", got[advice.PredSelectivity])
	}
	if got[advice.PredUptake] != 2.6 {
		t.Errorf("uptake = %v, want 2.6", got[advice.PredUptake])
	}
	if got[advice.PredStability] != DefaultStability {
		t.Errorf("stability = %v, want %v", got[advice.PredStability], DefaultStability)
	}
	if len(got) != 3 {
		t.Errorf("expected exactly 3 keys, got %v", got)
	}
}

func TestSuggestSynthesis(t *testing.T) {
	svc := New("GEN_")

	uio := svc.SuggestSynthesis("UiO-66-NH2")
	if uio["solvent"] != "Water/EtOH" || uio["temp_C"] != 120 || uio["time_h"] != 12 || uio["modulator"] != "Acetic" {
		t.Errorf("UiO-66 recipe = %v", uio)
	}

	other := svc.SuggestSynthesis("HKUST-1")
	if other["solvent"] != "MeOH" || other["temp_C"] != 100 {
		t.Errorf("default recipe = %v", other)
	}
	if len(other) != 2 {
		t.Errorf("default recipe must have 2 keys, got %v", other)
	}

	// "UiO" alone is not enough for the UiO-66 recipe.
	if got := svc.SuggestSynthesis("UiO-67"); got["solvent"] != "MeOH" {
		t.Errorf("UiO-67 recipe = %v", got)
	}
}

func TestGenerateCandidate_IDPattern(t *testing.T) {
	svc := New("GEN_")
	ctx := context.Background()

	for i := 0; i < 200; i++ {
		m := svc.GenerateCandidate(ctx, "CO2_capture")
		if !generatedIDPattern.MatchString(m.ID()) {
			t.Fatalf("generated ID %q does not match %s", m.ID(), generatedIDPattern)
		}
	}
}

func TestGenerateCandidate_Template(t *testing.T) {
	svc := New("GEN_").WithIDSource(func() string { return "ABC123" })

	m := svc.GenerateCandidate(context.Background(), "")

	if m.ID() != "GEN_ABC123" {
		t.Errorf("ID = %q", m.ID())
	}
	if m.Name() != GeneratedName {
		t.Errorf("Name = %q", m.Name())
	}
	if m.Topology() != GeneratedTopology {
		t.Errorf("Topology = %q", m.Topology())
	}
	if v, _ := m.Prop(material.PropSurfaceArea); v != GeneratedSurfaceArea {
		t.Errorf("sa_m2g = %v", v)
	}
}

func TestWithIDSource_NilKeepsDefault(t *testing.T) {
	svc := New("GEN_").WithIDSource(nil)
	m := svc.GenerateCandidate(context.Background(), "x")
	if !generatedIDPattern.MatchString(m.ID()) {
		t.Errorf("generated ID %q does not match", m.ID())
	}
}
