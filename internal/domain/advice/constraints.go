package advice

// OperatingConditions describes the intended service environment. All fields are optional.
type OperatingConditions struct {
	TemperatureK *float64
	PressureBar  *float64
	HumidityPct  *float64
}

// Constraints are post-hoc candidate filters. A nil threshold disables that filter.
type Constraints struct {
	SelectivityMin *float64
	UptakeMin      *float64
	Conditions     *OperatingConditions
}

// IsZero reports whether no filter is set.
func (c *Constraints) IsZero() bool {
	return c == nil || (c.SelectivityMin == nil && c.UptakeMin == nil)
}

// Admits reports whether a candidate passes every set threshold.
// A predicted property missing from the candidate counts as 0.
func (c *Constraints) Admits(cand *Candidate) bool {
	if c == nil {
		return true
	}
	if c.SelectivityMin != nil && cand.predicted[PredSelectivity] < *c.SelectivityMin {
		return false
	}
	if c.UptakeMin != nil && cand.predicted[PredUptake] < *c.UptakeMin {
		return false
	}
	return true
}

// Apply returns the candidates that pass, preserving order.
func (c *Constraints) Apply(cands []Candidate) []Candidate {
	if c.IsZero() {
		return cands
	}
	out := make([]Candidate, 0, len(cands))
	for i := range cands {
		if c.Admits(&cands[i]) {
			out = append(out, cands[i])
		}
	}
	return out
}
