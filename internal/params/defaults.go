// Package params holds the EPA default parameter bundles for the LandGEM
// model: CAA (Clean Air Act) sets used for regulatory compliance, and
// Inventory sets representing average conditions for emission inventories.
// Pure static data; the core model has no dependency on which bundle is
// chosen.
package params

import (
	"fmt"
	"sort"

	"landgem/internal/model"
)

// Preset bundles the model parameters of one EPA default set.
// NMOCConcentration is ppm as hexane.
type Preset struct {
	Name              string
	Description       string
	K                 float64
	L0                float64
	MethaneContent    float64
	NMOCConcentration float64
}

// Decay returns the preset's decay parameters.
func (p Preset) Decay() model.DecayParams {
	return model.DecayParams{K: p.K, L0: p.L0}
}

// Composition returns the preset's gas composition.
func (p Preset) Composition() model.Composition {
	return model.Composition{
		MethaneContent:    p.MethaneContent,
		NMOCConcentration: model.NMOCPtr(p.NMOCConcentration),
	}
}

var presets = map[string]Preset{
	"caa_conventional": {
		Name:              "caa_conventional",
		Description:       "CAA defaults for conventional landfills",
		K:                 0.05,
		L0:                170,
		MethaneContent:    0.50,
		NMOCConcentration: 4000,
	},
	"caa_arid": {
		Name:              "caa_arid",
		Description:       "CAA defaults for arid landfills (<25 inches precipitation)",
		K:                 0.02,
		L0:                170,
		MethaneContent:    0.50,
		NMOCConcentration: 4000,
	},
	"caa_wet": {
		Name:              "caa_wet",
		Description:       "CAA defaults for wet/bioreactor landfills",
		K:                 0.7,
		L0:                170,
		MethaneContent:    0.50,
		NMOCConcentration: 4000,
	},
	"inventory_conventional": {
		Name:              "inventory_conventional",
		Description:       "Inventory defaults for conventional landfills",
		K:                 0.04,
		L0:                100,
		MethaneContent:    0.50,
		NMOCConcentration: 600,
	},
	"inventory_conventional_codisposal": {
		Name:              "inventory_conventional_codisposal",
		Description:       "Inventory defaults for conventional landfills with co-disposal",
		K:                 0.04,
		L0:                100,
		MethaneContent:    0.50,
		NMOCConcentration: 2400,
	},
	"inventory_arid": {
		Name:              "inventory_arid",
		Description:       "Inventory defaults for arid landfills",
		K:                 0.02,
		L0:                100,
		MethaneContent:    0.50,
		NMOCConcentration: 600,
	},
	"inventory_arid_codisposal": {
		Name:              "inventory_arid_codisposal",
		Description:       "Inventory defaults for arid landfills with co-disposal",
		K:                 0.02,
		L0:                100,
		MethaneContent:    0.50,
		NMOCConcentration: 2400,
	},
	"inventory_wet": {
		Name:              "inventory_wet",
		Description:       "Inventory defaults for wet landfills",
		K:                 0.7,
		L0:                96,
		MethaneContent:    0.50,
		NMOCConcentration: 600,
	},
	"inventory_wet_codisposal": {
		Name:              "inventory_wet_codisposal",
		Description:       "Inventory defaults for wet landfills with co-disposal",
		K:                 0.7,
		L0:                96,
		MethaneContent:    0.50,
		NMOCConcentration: 2400,
	},
}

// Lookup returns the preset registered under name.
func Lookup(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("parameter preset %q not found", name)
	}
	return p, nil
}

// Names lists the available preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every preset, ordered by name.
func All() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, name := range Names() {
		out = append(out, presets[name])
	}
	return out
}
