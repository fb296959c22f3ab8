package emissions

import (
	"fmt"

	"landgem/internal/model"
)

// TimeSeries computes emissions for each projection year in the supplied
// order. The cumulative methane and total-gas columns are prefix sums in
// that same order — callers projecting out-of-chronological-order years get
// cumulative totals in their order, by design of the reference model.
func (m *Model) TimeSeries(history model.WasteHistory, projectionYears []int, collectionEfficiency float64, includeNMOC bool) (*model.EmissionsSeries, error) {
	series := &model.EmissionsSeries{
		Rows:                 make([]model.SeriesRow, 0, len(projectionYears)),
		CollectionEfficiency: collectionEfficiency,
		IncludeNMOC:          includeNMOC && m.Composition.HasNMOC(),
	}

	cumCH4 := 0.0
	cumGas := 0.0
	for _, year := range projectionYears {
		res, err := m.Calculate(history, year, collectionEfficiency, includeNMOC)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", year, err)
		}
		cumCH4 += res.CH4
		cumGas += res.TotalGas

		series.Rows = append(series.Rows, model.SeriesRow{
			Year:            year,
			EmissionsResult: res,
			CumulativeCH4:   cumCH4,
			CumulativeGas:   cumGas,
		})
	}

	return series, nil
}
