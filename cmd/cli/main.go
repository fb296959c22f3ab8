package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"landgem/internal/config"
	"landgem/internal/data"
	"landgem/internal/decay"
	"landgem/internal/emissions"
	"landgem/internal/params"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "series":
		cmdSeries(os.Args[2:])
	case "multistream":
		cmdMultiStream(os.Args[2:])
	case "wip":
		cmdWasteInPlace(os.Args[2:])
	case "presets":
		cmdPresets(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli series --config examples/scenario.yaml --out results/emissions.csv")
	fmt.Println("  cli multistream --config examples/multistream.yaml --out results/emissions.csv")
	fmt.Println("  cli wip --config examples/scenario.yaml --year 2030 [--decayed 0.2]")
	fmt.Println("  cli presets")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - series outputs a per-year emissions CSV with cumulative totals")
	fmt.Println("  - presets lists the EPA default parameter sets (k, L0, composition)")
}

func cmdSeries(args []string) {
	fs := flag.NewFlagSet("series", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario")
	outPath := fs.String("out", "results/emissions.csv", "Output CSV path")
	metadata := fs.Bool("metadata", true, "Include metadata header in CSV")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	hist, err := data.LoadWasteCSV(cfg.Waste.File, cfg.Waste.YearColumn, cfg.Waste.AmountColumn)
	if err != nil {
		panic(err)
	}
	warnings, err := hist.Validate()
	if err != nil {
		panic(err)
	}
	for _, w := range warnings {
		log.Printf("warning: %s", w)
	}

	decayParams, comp, err := cfg.ModelParams()
	if err != nil {
		panic(err)
	}
	m, err := emissions.New(decayParams, comp)
	if err != nil {
		panic(err)
	}
	for _, w := range m.Warnings {
		log.Printf("warning: %s", w)
	}

	series, err := m.TimeSeries(hist, cfg.ProjectionYears(), cfg.CollectionEfficiency, cfg.IncludeNMOC)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := emissions.WriteSeriesCSV(*outPath, series, *metadata); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(series.Rows), *outPath)
	if n := len(series.Rows); n > 0 {
		last := series.Rows[n-1]
		fmt.Printf("Cumulative CH4=%.0f m3  Cumulative LFG=%.0f m3\n", last.CumulativeCH4, last.CumulativeGas)
	}
}

func cmdMultiStream(args []string) {
	fs := flag.NewFlagSet("multistream", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario with streams")
	outPath := fs.String("out", "results/emissions.csv", "Output CSV path")
	metadata := fs.Bool("metadata", true, "Include metadata header in CSV")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	if len(cfg.Streams) == 0 {
		fmt.Println("scenario has no streams; use the series command instead")
		os.Exit(2)
	}

	histories, err := data.LoadMultiStreamCSV(cfg.Waste.File, cfg.StreamColumns())
	if err != nil {
		panic(err)
	}
	for name, hist := range histories {
		warnings, err := hist.Validate()
		if err != nil {
			panic(fmt.Errorf("stream %q: %w", name, err))
		}
		for _, w := range warnings {
			log.Printf("warning: stream %q: %s", name, w)
		}
	}

	decayParams, comp, err := cfg.ModelParams()
	if err != nil {
		panic(err)
	}
	ms := emissions.NewMultiStream(decayParams.K, comp)
	for _, s := range cfg.Streams {
		if err := ms.AddStream(s.Name, s.L0); err != nil {
			panic(err)
		}
	}

	series, err := ms.TimeSeries(histories, cfg.ProjectionYears(), cfg.CollectionEfficiency)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := emissions.WriteMultiSeriesCSV(*outPath, series, *metadata); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d rows (%d streams) to %s\n", len(series.Rows), len(series.StreamNames), *outPath)
}

func cmdWasteInPlace(args []string) {
	fs := flag.NewFlagSet("wip", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario")
	year := fs.Int("year", 0, "Calculation year")
	decayed := fs.Float64("decayed", 0.0, "Decayed mass fraction to discount")
	_ = fs.Parse(args)

	if *cfgPath == "" || *year == 0 {
		fmt.Println("--config and --year are required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	hist, err := data.LoadWasteCSV(cfg.Waste.File, cfg.Waste.YearColumn, cfg.Waste.AmountColumn)
	if err != nil {
		panic(err)
	}

	wip := decay.WasteInPlace(hist, *year, *decayed)
	fmt.Printf("Waste in place in %d: %.1f Mg (decayed fraction %.2f)\n", *year, wip, *decayed)
}

func cmdPresets(args []string) {
	fs := flag.NewFlagSet("presets", flag.ExitOnError)
	_ = fs.Parse(args)

	fmt.Printf("%-36s %-6s %-6s %-8s %-10s\n", "name", "k", "L0", "CH4frac", "NMOC ppm")
	for _, p := range params.All() {
		fmt.Printf("%-36s %-6.2f %-6.0f %-8.2f %-10.0f\n", p.Name, p.K, p.L0, p.MethaneContent, p.NMOCConcentration)
	}
}
