// Package decay implements the EPA LandGEM first-order decay equation and
// its supporting aggregations. Everything here is a pure function over
// caller-supplied data.
package decay

import (
	"math"

	"landgem/internal/model"
)

// sliceCount splits each cohort's acceptance year into sub-annual deposits.
// Ten slices of 0.1 year reproduce the published model's reference outputs;
// the count is part of the model definition, not a tuning knob.
const sliceCount = 10

// GenerationRate computes the annual methane generation (m³/year) for one
// calculation year from a waste-acceptance history:
//
//	Q = Σ_cohorts Σ_{j=0.0,0.1,...,0.9} (k·L0·M/10)·exp(-k·t)
//
// where t = calcYear - acceptanceYear + (1 - j) is the age of slice j at
// the calculation year. Cohorts accepted after calcYear contribute nothing.
// An empty history yields 0. Cohorts far in the past underflow toward zero;
// that is fine, the sum stays well defined.
func GenerationRate(history model.WasteHistory, calcYear int, p model.DecayParams) float64 {
	total := 0.0
	for i, year := range history.Years {
		if year > calcYear {
			// Future waste.
			continue
		}
		amount := history.Amounts[i]
		base := p.K * p.L0 * amount / sliceCount
		for s := 0; s < sliceCount; s++ {
			j := float64(s) / sliceCount
			age := float64(calcYear-year) + (1 - j)
			total += base * math.Exp(-p.K*age)
		}
	}
	return total
}

// WasteInPlace sums the mass of all cohorts accepted up to and including
// calcYear, scaled by (1 - decayFraction). decayFraction is deliberately
// not range-checked: an out-of-range input produces an out-of-range result,
// which is the caller's responsibility.
func WasteInPlace(history model.WasteHistory, calcYear int, decayFraction float64) float64 {
	total := 0.0
	for i, year := range history.Years {
		if year <= calcYear {
			total += history.Amounts[i]
		}
	}
	return total * (1 - decayFraction)
}

// KFromHalfLife converts a methane-generation half-life (years) to the
// first-order rate constant k (1/year).
func KFromHalfLife(halfLifeYears float64) float64 {
	return math.Ln2 / halfLifeYears
}

// HalfLifeFromK converts a rate constant k (1/year) to the corresponding
// half-life (years).
func HalfLifeFromK(k float64) float64 {
	return math.Ln2 / k
}
