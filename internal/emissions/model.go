// Package emissions wraps the decay engine with the unit model that makes
// results physically meaningful: methane/CO2 split, collection efficiency,
// and NMOC mass rates. It provides a single-stream model and a multi-stream
// composition of them.
package emissions

import (
	"fmt"

	"landgem/internal/decay"
	"landgem/internal/model"
)

// NMOC unit constants. The concentration is measured in ppm as hexane, so
// it is mass-corrected by the hexane/methane molecular-weight ratio before
// combining with the volumetric gas rate; 3.6e9 folds the remaining ppm and
// volume-to-mass conversions into one factor, yielding Mg/year.
const (
	hexaneMW   = 86.18
	methaneMW  = 16.04
	nmocFactor = 3.6e9
)

// Model estimates landfill gas emissions for one waste stream. It owns its
// parameters and is stateless with respect to waste data; histories are
// supplied per call.
type Model struct {
	Params      model.DecayParams
	Composition model.Composition

	// Warnings holds advisory notes collected at construction (atypical
	// methane content and the like). They never affect computation.
	Warnings []string
}

// New validates the parameters and constructs a single-stream model.
// Construction fails on any hard-domain violation; soft-range findings are
// retained on the model as warnings.
func New(params model.DecayParams, comp model.Composition) (*Model, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	warnings, err := comp.Validate()
	if err != nil {
		return nil, err
	}
	return &Model{
		Params:      params,
		Composition: comp,
		Warnings:    warnings,
	}, nil
}

// Calculate computes the emissions for a single calculation year.
// collectionEfficiency is the captured fraction of generated gas, in [0,1].
// NMOC is included only when requested and a concentration is configured;
// otherwise the field is absent from the result.
func (m *Model) Calculate(history model.WasteHistory, calcYear int, collectionEfficiency float64, includeNMOC bool) (model.EmissionsResult, error) {
	if err := history.CheckShape(); err != nil {
		return model.EmissionsResult{}, err
	}
	if collectionEfficiency < 0 || collectionEfficiency > 1 {
		return model.EmissionsResult{}, fmt.Errorf("collection efficiency must be between 0 and 1, got %g", collectionEfficiency)
	}

	ch4 := decay.GenerationRate(history, calcYear, m.Params)
	totalGas := ch4 / m.Composition.MethaneContent
	co2 := totalGas * (1 - m.Composition.MethaneContent)

	res := model.EmissionsResult{
		CH4:          ch4,
		TotalGas:     totalGas,
		CO2:          co2,
		CH4Collected: ch4 * collectionEfficiency,
		GasCollected: totalGas * collectionEfficiency,
	}

	if includeNMOC && m.Composition.HasNMOC() {
		nmoc := (*m.Composition.NMOCConcentration * (hexaneMW / methaneMW) * totalGas) / nmocFactor
		res.NMOC = &nmoc
	}

	return res, nil
}

// WasteInPlace reports the waste mass present at calcYear, optionally
// discounted by a decayed fraction. See decay.WasteInPlace for the
// permissive decayFraction semantics.
func (m *Model) WasteInPlace(history model.WasteHistory, calcYear int, decayFraction float64) float64 {
	return decay.WasteInPlace(history, calcYear, decayFraction)
}
