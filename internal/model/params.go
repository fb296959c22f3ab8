package model

import (
	"fmt"
)

// DecayParams defines the first-order decay parameters of one waste stream.
// Units:
// - K: methane generation rate constant, 1/year
// - L0: potential methane generation capacity, m³/Mg
type DecayParams struct {
	K  float64
	L0 float64
}

// Validate enforces the hard parameter domains. Values beyond the practical
// upper bounds (k > 1.0 1/year, L0 > 500 m³/Mg) are rejected outright: in
// these units they indicate a unit mix-up rather than an unusual site.
func (p DecayParams) Validate() error {
	if p.K <= 0 {
		return fmt.Errorf("k must be positive, got %g", p.K)
	}
	if p.K > 1.0 {
		return fmt.Errorf("k unusually high (>1.0), got %g: check units (1/year)", p.K)
	}
	if p.L0 <= 0 {
		return fmt.Errorf("L0 must be positive, got %g", p.L0)
	}
	if p.L0 > 500 {
		return fmt.Errorf("L0 unusually high (>500), got %g: check units (m³/Mg)", p.L0)
	}
	return nil
}

// Composition describes the makeup of the generated landfill gas.
//
// MethaneContent is the methane volume fraction of total gas, in (0,1).
// NMOCConcentration is an optional non-methane-organic-compound
// concentration in ppm as hexane; nil (or zero) means not configured, and
// NMOC output is omitted from results.
type Composition struct {
	MethaneContent    float64
	NMOCConcentration *float64
}

// Validate enforces the hard methane-content domain and returns advisory
// warnings for values outside the typical 0.4-0.6 range.
func (c Composition) Validate() (warnings []string, err error) {
	if c.MethaneContent <= 0 || c.MethaneContent >= 1 {
		return nil, fmt.Errorf("methane content must be between 0 and 1, got %g", c.MethaneContent)
	}
	if c.MethaneContent < 0.4 || c.MethaneContent > 0.6 {
		warnings = append(warnings, fmt.Sprintf("methane content %g outside typical range (0.4-0.6)", c.MethaneContent))
	}
	if c.NMOCConcentration != nil && *c.NMOCConcentration < 0 {
		return nil, fmt.Errorf("NMOC concentration must be >= 0, got %g", *c.NMOCConcentration)
	}
	return warnings, nil
}

// HasNMOC reports whether an NMOC concentration is configured. A configured
// zero behaves as unconfigured, matching the reference model.
func (c Composition) HasNMOC() bool {
	return c.NMOCConcentration != nil && *c.NMOCConcentration != 0
}

// NMOCPtr is a convenience for building a Composition literal with a
// configured NMOC concentration.
func NMOCPtr(ppm float64) *float64 { return &ppm }
