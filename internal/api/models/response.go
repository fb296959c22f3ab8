package models

import "landgem/internal/model"

// EmissionsResponse is the JSON shape of one EmissionsResult.
// Volumetric rates are m³/year, NMOC is Mg/year. NMOC is omitted when not
// requested or not configured.
type EmissionsResponse struct {
	CH4          float64  `json:"ch4_m3_year"`
	TotalGas     float64  `json:"total_lfg_m3_year"`
	CO2          float64  `json:"co2_m3_year"`
	CH4Collected float64  `json:"ch4_collected_m3_year"`
	GasCollected float64  `json:"lfg_collected_m3_year"`
	NMOC         *float64 `json:"nmoc_mg_year,omitempty"`
}

// SeriesRowResponse is one row of a time-series response.
type SeriesRowResponse struct {
	Year int `json:"year"`
	EmissionsResponse
	CumulativeCH4 float64 `json:"cumulative_ch4_m3"`
	CumulativeGas float64 `json:"cumulative_lfg_m3"`
}

// SeriesResponse wraps a single-stream time series.
type SeriesResponse struct {
	Rows     []SeriesRowResponse `json:"rows"`
	Warnings []string            `json:"warnings,omitempty"`
}

// MultiStreamResponse wraps a combined single-year multi-stream result.
type MultiStreamResponse struct {
	Combined EmissionsResponse            `json:"combined"`
	Streams  map[string]EmissionsResponse `json:"streams"`
	Warnings []string                     `json:"warnings,omitempty"`
}

// MultiSeriesRowResponse is one row of a multi-stream series.
type MultiSeriesRowResponse struct {
	Year          int                `json:"year"`
	TotalCH4      float64            `json:"total_ch4_m3_year"`
	TotalGas      float64            `json:"total_lfg_m3_year"`
	TotalCO2      float64            `json:"total_co2_m3_year"`
	StreamCH4     map[string]float64 `json:"stream_ch4_m3_year"`
	CumulativeCH4 float64            `json:"cumulative_ch4_m3"`
}

// MultiSeriesResponse wraps a multi-stream time series.
type MultiSeriesResponse struct {
	Rows     []MultiSeriesRowResponse `json:"rows"`
	Streams  []string                 `json:"streams"`
	Warnings []string                 `json:"warnings,omitempty"`
}

// PresetResponse describes one EPA default parameter bundle.
type PresetResponse struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	K              float64 `json:"k"`
	L0             float64 `json:"l0"`
	MethaneContent float64 `json:"methane_content"`
	NMOCPPM        float64 `json:"nmoc_ppm"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// FromResult converts a core result to its response shape.
func FromResult(r model.EmissionsResult) EmissionsResponse {
	return EmissionsResponse{
		CH4:          r.CH4,
		TotalGas:     r.TotalGas,
		CO2:          r.CO2,
		CH4Collected: r.CH4Collected,
		GasCollected: r.GasCollected,
		NMOC:         r.NMOC,
	}
}

// FromSeries converts a core series to its response shape.
func FromSeries(s *model.EmissionsSeries, warnings []string) SeriesResponse {
	out := SeriesResponse{
		Rows:     make([]SeriesRowResponse, 0, len(s.Rows)),
		Warnings: warnings,
	}
	for _, row := range s.Rows {
		out.Rows = append(out.Rows, SeriesRowResponse{
			Year:              row.Year,
			EmissionsResponse: FromResult(row.EmissionsResult),
			CumulativeCH4:     row.CumulativeCH4,
			CumulativeGas:     row.CumulativeGas,
		})
	}
	return out
}

// FromMultiSeries converts a core multi-stream series to its response shape.
func FromMultiSeries(s *model.MultiSeries, warnings []string) MultiSeriesResponse {
	out := MultiSeriesResponse{
		Rows:     make([]MultiSeriesRowResponse, 0, len(s.Rows)),
		Streams:  s.StreamNames,
		Warnings: warnings,
	}
	for _, row := range s.Rows {
		out.Rows = append(out.Rows, MultiSeriesRowResponse{
			Year:          row.Year,
			TotalCH4:      row.TotalCH4,
			TotalGas:      row.TotalGas,
			TotalCO2:      row.TotalCO2,
			StreamCH4:     row.StreamCH4,
			CumulativeCH4: row.CumulativeCH4,
		})
	}
	return out
}
