package model

import (
	"errors"
	"fmt"
)

// WasteHistory is a landfill waste-acceptance record: parallel slices of
// acceptance years and masses accepted in each year.
// Units:
// - Years: calendar years (integers)
// - Amounts: Mg (metric tons) accepted in that year
//
// The history is owned by the caller and never mutated by calculations.
type WasteHistory struct {
	Years   []int
	Amounts []float64
}

// Len returns the number of cohorts in the history.
func (h WasteHistory) Len() int { return len(h.Years) }

// CheckShape verifies the parallel slices have equal length. This is the
// only structural check the calculation path performs; full validation of
// imported data lives in Validate.
func (h WasteHistory) CheckShape() error {
	if len(h.Years) != len(h.Amounts) {
		return fmt.Errorf("waste years and amounts must have same length: %d != %d", len(h.Years), len(h.Amounts))
	}
	return nil
}

// Validate applies the full invariants expected of imported waste data:
// non-empty, equal-length slices, non-negative amounts, years in ascending
// order. Duplicate years are tolerated; they are reported as advisory
// warnings, not errors.
func (h WasteHistory) Validate() (warnings []string, err error) {
	if len(h.Years) == 0 {
		return nil, errors.New("waste history is empty")
	}
	if err := h.CheckShape(); err != nil {
		return nil, err
	}
	for i, amt := range h.Amounts {
		if amt < 0 {
			return nil, fmt.Errorf("waste amount for year %d is negative: %g", h.Years[i], amt)
		}
	}
	for i := 1; i < len(h.Years); i++ {
		if h.Years[i] < h.Years[i-1] {
			return nil, fmt.Errorf("waste years must be in ascending order: %d after %d", h.Years[i], h.Years[i-1])
		}
		if h.Years[i] == h.Years[i-1] {
			warnings = append(warnings, fmt.Sprintf("duplicate year %d in waste history", h.Years[i]))
		}
	}
	return warnings, nil
}
