package config

import (
	"errors"
	"fmt"
	"os"

	"landgem/internal/emissions"
	"landgem/internal/model"
	"landgem/internal/params"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk scenario shape (YAML). A scenario names an EPA
// parameter preset and/or explicit parameter overrides, the waste-data
// source, the projection window, and output options. If both a preset and
// explicit parameters are provided, the explicit values win.
type Config struct {
	Preset     string         `yaml:"preset"`
	Parameters map[string]any `yaml:"parameters"`

	Waste      WasteConfig      `yaml:"waste"`
	Projection ProjectionConfig `yaml:"projection"`

	CollectionEfficiency float64 `yaml:"collection_efficiency"`
	IncludeNMOC          bool    `yaml:"include_nmoc"`

	// Streams enables multi-stream mode: each stream has its own L0 and
	// the CSV column carrying its accepted mass.
	Streams []StreamConfig `yaml:"streams"`
}

// WasteConfig locates the waste-acceptance CSV.
type WasteConfig struct {
	File         string `yaml:"file"`
	YearColumn   string `yaml:"year_column"`
	AmountColumn string `yaml:"amount_column"`
}

// ProjectionConfig selects calculation years: either an explicit list or an
// inclusive start/end range. An explicit list wins over the range.
type ProjectionConfig struct {
	StartYear int   `yaml:"start_year"`
	EndYear   int   `yaml:"end_year"`
	Years     []int `yaml:"years"`
}

// StreamConfig defines one waste stream for multi-stream runs.
type StreamConfig struct {
	Name   string  `yaml:"name"`
	L0     float64 `yaml:"l0"`
	Column string  `yaml:"column"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the scenario by resolving its model parameters and
// constructing the core model, so a bad scenario fails at load time rather
// than mid-run.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	decayParams, comp, err := c.ModelParams()
	if err != nil {
		return err
	}
	if len(c.Streams) > 0 {
		ms := emissions.NewMultiStream(decayParams.K, comp)
		for _, s := range c.Streams {
			if s.Name == "" {
				return errors.New("stream name is required")
			}
			if err := ms.AddStream(s.Name, s.L0); err != nil {
				return fmt.Errorf("scenario invalid: %w", err)
			}
		}
	} else if _, err := emissions.New(decayParams, comp); err != nil {
		return fmt.Errorf("scenario invalid: %w", err)
	}
	if c.CollectionEfficiency < 0 || c.CollectionEfficiency > 1 {
		return fmt.Errorf("collection_efficiency must be between 0 and 1, got %g", c.CollectionEfficiency)
	}
	if len(c.Projection.Years) == 0 && c.Projection.EndYear < c.Projection.StartYear {
		return fmt.Errorf("projection end_year %d before start_year %d", c.Projection.EndYear, c.Projection.StartYear)
	}
	return nil
}

// ModelParams resolves the preset (if named) and overlays any explicit
// parameter overrides from the `parameters` map.
func (c *Config) ModelParams() (model.DecayParams, model.Composition, error) {
	decayParams := model.DecayParams{}
	comp := model.Composition{MethaneContent: 0.50}

	if c.Preset != "" {
		p, err := params.Lookup(c.Preset)
		if err != nil {
			return model.DecayParams{}, model.Composition{}, err
		}
		decayParams = p.Decay()
		comp = p.Composition()
	}

	for key, v := range c.Parameters {
		switch key {
		case "k":
			decayParams.K = cast.ToFloat64(v)
		case "l0":
			decayParams.L0 = cast.ToFloat64(v)
		case "methane_content":
			comp.MethaneContent = cast.ToFloat64(v)
		case "nmoc_ppm":
			comp.NMOCConcentration = model.NMOCPtr(cast.ToFloat64(v))
		default:
			return model.DecayParams{}, model.Composition{}, fmt.Errorf("unknown parameter %q", key)
		}
	}

	return decayParams, comp, nil
}

// ProjectionYears expands the projection setting into the calculation-year
// list, in configured order.
func (c *Config) ProjectionYears() []int {
	if len(c.Projection.Years) > 0 {
		return c.Projection.Years
	}
	years := make([]int, 0, c.Projection.EndYear-c.Projection.StartYear+1)
	for y := c.Projection.StartYear; y <= c.Projection.EndYear; y++ {
		years = append(years, y)
	}
	return years
}

// StreamColumns maps stream names to their CSV columns for multi-stream
// waste import.
func (c *Config) StreamColumns() map[string]string {
	out := make(map[string]string, len(c.Streams))
	for _, s := range c.Streams {
		out[s.Name] = s.Column
	}
	return out
}
