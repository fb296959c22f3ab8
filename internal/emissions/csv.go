package emissions

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"landgem/internal/model"
)

// WriteSeriesCSV writes a single-stream emissions series to path. Column
// enablement follows the series settings: collection columns only when the
// series was run with a positive collection efficiency, the NMOC column
// only when NMOC was requested and configured. When withMetadata is set a
// short comment header is prepended.
func WriteSeriesCSV(path string, series *model.EmissionsSeries, withMetadata bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if withMetadata {
		fmt.Fprintf(f, "# LandGEM emissions data\n")
		fmt.Fprintf(f, "# Generated: %s\n", time.Now().Format(time.RFC3339))
		fmt.Fprintf(f, "#\n")
	}

	w := csv.NewWriter(f)
	defer w.Flush()

	withCollection := series.CollectionEfficiency > 0

	header := []string{"year", "ch4_m3_year", "total_lfg_m3_year", "co2_m3_year"}
	if withCollection {
		header = append(header, "ch4_collected_m3_year", "lfg_collected_m3_year")
	}
	if series.IncludeNMOC {
		header = append(header, "nmoc_mg_year")
	}
	header = append(header, "cumulative_ch4_m3", "cumulative_lfg_m3")
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range series.Rows {
		row := []string{
			strconv.Itoa(r.Year),
			fmtFloat(r.CH4),
			fmtFloat(r.TotalGas),
			fmtFloat(r.CO2),
		}
		if withCollection {
			row = append(row, fmtFloat(r.CH4Collected), fmtFloat(r.GasCollected))
		}
		if series.IncludeNMOC {
			nmoc := 0.0
			if r.NMOC != nil {
				nmoc = *r.NMOC
			}
			row = append(row, fmtFloat(nmoc))
		}
		row = append(row, fmtFloat(r.CumulativeCH4), fmtFloat(r.CumulativeGas))
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// WriteMultiSeriesCSV writes a multi-stream series to path, one methane
// column per stream in the series' sorted stream-name order.
func WriteMultiSeriesCSV(path string, series *model.MultiSeries, withMetadata bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if withMetadata {
		fmt.Fprintf(f, "# LandGEM multi-stream emissions data\n")
		fmt.Fprintf(f, "# Generated: %s\n", time.Now().Format(time.RFC3339))
		fmt.Fprintf(f, "#\n")
	}

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"year", "total_ch4_m3_year", "total_lfg_m3_year", "total_co2_m3_year"}
	for _, name := range series.StreamNames {
		header = append(header, name+"_ch4_m3_year")
	}
	header = append(header, "cumulative_ch4_m3")
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range series.Rows {
		row := []string{
			strconv.Itoa(r.Year),
			fmtFloat(r.TotalCH4),
			fmtFloat(r.TotalGas),
			fmtFloat(r.TotalCO2),
		}
		for _, name := range series.StreamNames {
			row = append(row, fmtFloat(r.StreamCH4[name]))
		}
		row = append(row, fmtFloat(r.CumulativeCH4))
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
