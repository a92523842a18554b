package mofassist

import (
	"github.com/kailas-cloud/mofassist/internal/domain/advice"
	"github.com/kailas-cloud/mofassist/internal/domain/material"
)

// Material is a catalog record.
type Material struct {
	ID        string
	Name      string
	MetalNode string
	Topology  string
	Props     map[string]float64
}

// OperatingConditions describe the service environment of a forward search.
type OperatingConditions struct {
	TemperatureK *float64
	PressureBar  *float64
	HumidityPct  *float64
}

// Constraints are optional forward-search thresholds. Nil fields are ignored.
type Constraints struct {
	SelectivityMin *float64
	UptakeMin      *float64
	Conditions     *OperatingConditions
}

// Candidate is a ranked forward-search result.
type Candidate struct {
	MaterialID  string
	Name        string
	FitScore    float64
	Uncertainty float64
	Predicted   map[string]float64
	Synthesis   map[string]any
	Rationale   string
	Sources     []string
}

// AppSuggestion is an inverse-search result.
type AppSuggestion struct {
	Application   string
	FitScore      float64
	Uncertainty   float64
	KeyProps      map[string]float64
	OperatingTips map[string]any
}

// Float returns a pointer to v, for building Constraints inline.
func Float(v float64) *float64 { return &v }

func materialFromDomain(m *material.Material) Material {
	return Material{
		ID:        m.ID(),
		Name:      m.Name(),
		MetalNode: m.MetalNode(),
		Topology:  m.Topology(),
		Props:     m.Props(),
	}
}

func constraintsToDomain(c *Constraints) *advice.Constraints {
	if c == nil {
		return nil
	}
	out := &advice.Constraints{
		SelectivityMin: c.SelectivityMin,
		UptakeMin:      c.UptakeMin,
	}
	if oc := c.Conditions; oc != nil {
		out.Conditions = &advice.OperatingConditions{
			TemperatureK: oc.TemperatureK,
			PressureBar:  oc.PressureBar,
			HumidityPct:  oc.HumidityPct,
		}
	}
	return out
}

func candidateFromDomain(c *advice.Candidate) Candidate {
	return Candidate{
		MaterialID:  c.MaterialID(),
		Name:        c.Name(),
		FitScore:    c.FitScore(),
		Uncertainty: c.Uncertainty(),
		Predicted:   c.Predicted(),
		Synthesis:   c.Synthesis(),
		Rationale:   c.Rationale(),
		Sources:     c.Sources(),
	}
}

func suggestionFromDomain(a *advice.AppSuggestion) AppSuggestion {
	return AppSuggestion{
		Application:   a.Application(),
		FitScore:      a.FitScore(),
		Uncertainty:   a.Uncertainty(),
		KeyProps:      a.KeyProps(),
		OperatingTips: a.OperatingTips(),
	}
}
