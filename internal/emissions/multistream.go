package emissions

import (
	"fmt"
	"sort"

	"landgem/internal/model"
)

// MultiStream models several waste categories sharing one decay-rate
// constant and gas composition, each with its own generation capacity.
// Streams are registered by name; the registry is append-only and not
// internally synchronized — do not add streams concurrently with
// calculations on the same instance.
type MultiStream struct {
	K           float64
	Composition model.Composition

	streams map[string]*Model
}

// NewMultiStream constructs an empty multi-stream model. The shared k and
// composition are validated lazily per stream (AddStream constructs a full
// single-stream model), matching the reference behavior.
func NewMultiStream(k float64, comp model.Composition) *MultiStream {
	return &MultiStream{
		K:           k,
		Composition: comp,
		streams:     map[string]*Model{},
	}
}

// AddStream registers a waste stream with its own L0 under the shared k and
// composition. Re-adding an existing name overwrites the prior definition.
func (ms *MultiStream) AddStream(name string, l0 float64) error {
	m, err := New(model.DecayParams{K: ms.K, L0: l0}, ms.Composition)
	if err != nil {
		return fmt.Errorf("stream %q: %w", name, err)
	}
	ms.streams[name] = m
	return nil
}

// StreamNames returns the registered stream names in sorted order.
func (ms *MultiStream) StreamNames() []string {
	names := make([]string, 0, len(ms.streams))
	for name := range ms.streams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Calculate computes combined and per-stream emissions for one calculation
// year. Every supplied history must name a registered stream; streams
// registered but not supplied simply contribute nothing. Combined fields
// are straight sums across streams; combined NMOC sums per-stream NMOC,
// with streams lacking it contributing zero.
func (ms *MultiStream) Calculate(histories map[string]model.WasteHistory, calcYear int, collectionEfficiency float64, includeNMOC bool) (model.MultiStreamResult, error) {
	out := model.MultiStreamResult{
		Streams: make(map[string]model.EmissionsResult, len(histories)),
	}

	// Iterate in sorted name order; summation order does not change the
	// totals' meaning but keeps runs bit-identical.
	names := make([]string, 0, len(histories))
	for name := range histories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		m, ok := ms.streams[name]
		if !ok {
			return model.MultiStreamResult{}, fmt.Errorf("stream %q not defined", name)
		}
		res, err := m.Calculate(histories[name], calcYear, collectionEfficiency, includeNMOC)
		if err != nil {
			return model.MultiStreamResult{}, fmt.Errorf("stream %q: %w", name, err)
		}
		out.Streams[name] = res

		out.Combined.CH4 += res.CH4
		out.Combined.TotalGas += res.TotalGas
		out.Combined.CO2 += res.CO2
		out.Combined.CH4Collected += res.CH4Collected
		out.Combined.GasCollected += res.GasCollected
	}

	if includeNMOC && ms.Composition.HasNMOC() {
		nmoc := 0.0
		for _, res := range out.Streams {
			if res.NMOC != nil {
				nmoc += *res.NMOC
			}
		}
		out.Combined.NMOC = &nmoc
	}

	return out, nil
}

// TimeSeries computes a multi-stream projection: one row per supplied year
// with combined totals, a methane column per stream, and a running
// cumulative combined-methane column in supplied-year order.
func (ms *MultiStream) TimeSeries(histories map[string]model.WasteHistory, projectionYears []int, collectionEfficiency float64) (*model.MultiSeries, error) {
	streamNames := make([]string, 0, len(histories))
	for name := range histories {
		streamNames = append(streamNames, name)
	}
	sort.Strings(streamNames)

	series := &model.MultiSeries{
		Rows:        make([]model.MultiSeriesRow, 0, len(projectionYears)),
		StreamNames: streamNames,
	}

	cumCH4 := 0.0
	for _, year := range projectionYears {
		res, err := ms.Calculate(histories, year, collectionEfficiency, false)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", year, err)
		}
		cumCH4 += res.Combined.CH4

		row := model.MultiSeriesRow{
			Year:          year,
			TotalCH4:      res.Combined.CH4,
			TotalGas:      res.Combined.TotalGas,
			TotalCO2:      res.Combined.CO2,
			StreamCH4:     make(map[string]float64, len(res.Streams)),
			CumulativeCH4: cumCH4,
		}
		for name, sr := range res.Streams {
			row.StreamCH4[name] = sr.CH4
		}
		series.Rows = append(series.Rows, row)
	}

	return series, nil
}
