package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"landgem/internal/decay"
	"landgem/internal/emissions"
	"landgem/internal/model"
	"landgem/internal/params"
)

// Demo:
// - Build a model from the EPA CAA conventional defaults
// - Calculate one year, then a projection series with cumulative totals
// - Compose two waste streams and project them together
func main() {
	outCSV := flag.String("out", "", "Optional path to write the series CSV (e.g. results/emissions.csv)")
	flag.Parse()

	preset, err := params.Lookup("caa_conventional")
	if err != nil {
		panic(err)
	}

	m, err := emissions.New(preset.Decay(), preset.Composition())
	if err != nil {
		panic(err)
	}

	hist := model.WasteHistory{
		Years:   []int{2020, 2021, 2022, 2023, 2024},
		Amounts: []float64{5000, 5200, 5500, 5800, 6000},
	}

	res, err := m.Calculate(hist, 2030, 0.75, true)
	if err != nil {
		panic(err)
	}
	fmt.Printf("2030: CH4=%.0f m3/yr  LFG=%.0f m3/yr  CO2=%.0f m3/yr\n", res.CH4, res.TotalGas, res.CO2)
	if res.NMOC != nil {
		fmt.Printf("2030: NMOC=%.3f Mg/yr\n", *res.NMOC)
	}

	fmt.Printf("Waste in place 2030: %.0f Mg\n", decay.WasteInPlace(hist, 2030, 0))
	fmt.Printf("Half-life at k=%.2f: %.1f years\n", preset.K, decay.HalfLifeFromK(preset.K))

	years := make([]int, 0, 21)
	for y := 2025; y <= 2045; y++ {
		years = append(years, y)
	}
	series, err := m.TimeSeries(hist, years, 0.75, true)
	if err != nil {
		panic(err)
	}
	fmt.Printf("\n%-6s %-14s %-14s %-16s\n", "year", "ch4 m3/yr", "lfg m3/yr", "cum ch4 m3")
	for _, row := range series.Rows {
		fmt.Printf("%-6d %-14.0f %-14.0f %-16.0f\n", row.Year, row.CH4, row.TotalGas, row.CumulativeCH4)
	}

	// Multi-stream: municipal waste plus an organics stream with a higher
	// generation capacity, sharing k and composition.
	ms := emissions.NewMultiStream(preset.K, preset.Composition())
	if err := ms.AddStream("msw", 170); err != nil {
		panic(err)
	}
	if err := ms.AddStream("organic", 200); err != nil {
		panic(err)
	}

	combined, err := ms.Calculate(map[string]model.WasteHistory{
		"msw":     hist,
		"organic": {Years: []int{2020, 2021}, Amounts: []float64{1000, 1100}},
	}, 2030, 0, false)
	if err != nil {
		panic(err)
	}
	fmt.Printf("\nMulti-stream 2030: combined CH4=%.0f m3/yr\n", combined.Combined.CH4)
	for name, sr := range combined.Streams {
		fmt.Printf("  %-8s CH4=%.0f m3/yr\n", name, sr.CH4)
	}

	if *outCSV != "" {
		if err := os.MkdirAll(filepath.Dir(*outCSV), 0o755); err != nil {
			panic(err)
		}
		if err := emissions.WriteSeriesCSV(*outCSV, series, true); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(series.Rows), *outCSV)
	}
}
