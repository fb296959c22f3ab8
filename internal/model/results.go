package model

import "fmt"

// EmissionsResult captures the gas-generation rates for one calculation
// year. Volumetric rates are m³/year; NMOC is a mass rate in Mg/year.
// NMOC is nil when not requested or not configured — absent, not zero.
type EmissionsResult struct {
	CH4          float64
	TotalGas     float64
	CO2          float64
	CH4Collected float64
	GasCollected float64
	NMOC         *float64
}

// SeriesRow is one row of a single-stream emissions time series: the
// per-year result plus running cumulative totals in supplied-year order.
type SeriesRow struct {
	Year int
	EmissionsResult
	CumulativeCH4 float64
	CumulativeGas float64
}

// EmissionsSeries is the primary artifact of a projection run.
type EmissionsSeries struct {
	Rows []SeriesRow

	// CollectionEfficiency and IncludeNMOC record the settings the series
	// was computed with; the CSV exporter uses them to decide which
	// columns to emit.
	CollectionEfficiency float64
	IncludeNMOC          bool
}

// RowForYear returns the series row for a calculation year. Years may
// legitimately appear in any order; the lookup scans in row order and
// fails when the year is absent.
func (s *EmissionsSeries) RowForYear(year int) (SeriesRow, error) {
	for _, row := range s.Rows {
		if row.Year == year {
			return row, nil
		}
	}
	return SeriesRow{}, fmt.Errorf("year %d not found in series", year)
}

// MultiStreamResult is a combined result over several waste streams plus
// the per-stream breakdown keyed by stream name.
type MultiStreamResult struct {
	Combined EmissionsResult
	Streams  map[string]EmissionsResult
}

// MultiSeriesRow is one row of a multi-stream time series: combined totals,
// per-stream methane rates, and the running cumulative combined methane.
type MultiSeriesRow struct {
	Year          int
	TotalCH4      float64
	TotalGas      float64
	TotalCO2      float64
	StreamCH4     map[string]float64
	CumulativeCH4 float64
}

// MultiSeries holds a multi-stream projection. StreamNames lists the
// streams present in every row, in the deterministic (sorted) column order
// used for export.
type MultiSeries struct {
	Rows        []MultiSeriesRow
	StreamNames []string
}
