package advice

import "testing"

func ptr(v float64) *float64 { return &v }

func cand(id string, selectivity, uptake float64) Candidate {
	return NewCandidate(id, id, 0.7, 0.22,
		map[string]float64{PredSelectivity: selectivity, PredUptake: uptake}, nil, "", nil)
}

func ids(cs []Candidate) []string {
	out := make([]string, len(cs))
	for i := range cs {
		out[i] = cs[i].MaterialID()
	}
	return out
}

func TestNewCandidate_NormalizesNil(t *testing.T) {
	c := NewCandidate("X", "X", 0.5, 0.1, nil, nil, "", nil)
	if c.Predicted() == nil || c.Synthesis() == nil || c.Sources() == nil {
		t.Error("nil maps/slices must be normalized to empty values")
	}
}

func TestConstraints_NilAndZero(t *testing.T) {
	cs := []Candidate{cand("a", 1, 1), cand("b", 2, 2)}

	var nilC *Constraints
	if got := nilC.Apply(cs); len(got) != 2 {
		t.Errorf("nil constraints filtered: %v", ids(got))
	}

	zero := &Constraints{Conditions: &OperatingConditions{TemperatureK: ptr(298)}}
	if !zero.IsZero() {
		t.Error("operating conditions alone must not count as a filter")
	}
	if got := zero.Apply(cs); len(got) != 2 {
		t.Errorf("zero constraints filtered: %v", ids(got))
	}
}

func TestConstraints_Selectivity(t *testing.T) {
	cs := []Candidate{cand("uio", 28.4, 3.3), cand("hkust", 22.0, 2.6), cand("gen", 31.1, 3.0)}

	got := (&Constraints{SelectivityMin: ptr(30)}).Apply(cs)
	if len(got) != 1 || got[0].MaterialID() != "gen" {
		t.Errorf("got %v, want [gen]", ids(got))
	}
}

func TestConstraints_ThresholdInclusive(t *testing.T) {
	cs := []Candidate{cand("uio", 28.4, 3.3)}

	got := (&Constraints{SelectivityMin: ptr(28.4), UptakeMin: ptr(3.3)}).Apply(cs)
	if len(got) != 1 {
		t.Errorf("threshold equal to value must pass, got %v", ids(got))
	}
}

func TestConstraints_Uptake_PreservesOrder(t *testing.T) {
	cs := []Candidate{cand("uio", 28.4, 3.3), cand("hkust", 22.0, 2.6), cand("gen", 31.1, 3.0)}

	got := (&Constraints{UptakeMin: ptr(2.9)}).Apply(cs)
	want := []string{"uio", "gen"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}
	for i := range want {
		if got[i].MaterialID() != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i].MaterialID(), want[i])
		}
	}
}

func TestConstraints_MissingPropertyCountsAsZero(t *testing.T) {
	bare := NewCandidate("bare", "bare", 0.5, 0.5, nil, nil, "", nil)

	if (&Constraints{SelectivityMin: ptr(0)}).Admits(&bare) != true {
		t.Error("0 >= 0 must pass")
	}
	if (&Constraints{UptakeMin: ptr(0.1)}).Admits(&bare) {
		t.Error("missing uptake must be treated as 0")
	}
}

func TestNewAppSuggestion(t *testing.T) {
	s := NewAppSuggestion(AppH2Storage, 0.68, 0.22,
		map[string]float64{"sa_m2g": 1200}, map[string]any{"T_K": 77})

	if s.Application() != AppH2Storage {
		t.Errorf("Application() = %q", s.Application())
	}
	if s.FitScore() != 0.68 || s.Uncertainty() != 0.22 {
		t.Errorf("scores = %v/%v", s.FitScore(), s.Uncertainty())
	}
	if s.KeyProps()["sa_m2g"] != 1200 {
		t.Errorf("KeyProps() = %v", s.KeyProps())
	}
	if s.OperatingTips()["T_K"] != 77 {
		t.Errorf("OperatingTips() = %v", s.OperatingTips())
	}
}

func TestAccessors_OnReturnedValue(t *testing.T) {
	cands := map[string]Candidate{
		"x": NewCandidate("X", "Mat-X", 0.7, 0.22, nil, nil, "r", []string{"internal:mock"}),
	}
	if cands["x"].MaterialID() != "X" || cands["x"].Sources()[0] != "internal:mock" {
		t.Errorf("candidate from map value = %s/%v", cands["x"].MaterialID(), cands["x"].Sources())
	}

	app := func() AppSuggestion {
		return NewAppSuggestion(AppH2Storage, 0.68, 0.22, nil, map[string]any{"T_K": 77})
	}
	if app().Application() != AppH2Storage || app().OperatingTips()["T_K"] != 77 {
		t.Errorf("suggestion from call result = %s/%v", app().Application(), app().OperatingTips())
	}
}
