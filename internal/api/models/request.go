package models

// ParameterSpec selects the model parameters for a request: an EPA preset
// name, explicit values, or a preset with explicit overrides (explicit
// values win).
type ParameterSpec struct {
	Preset         string   `json:"preset,omitempty"`
	K              *float64 `json:"k,omitempty"`
	L0             *float64 `json:"l0,omitempty"`
	MethaneContent *float64 `json:"methane_content,omitempty"`
	NMOCPPM        *float64 `json:"nmoc_ppm,omitempty"`
}

// WasteData carries a waste-acceptance history as parallel arrays.
type WasteData struct {
	Years   []int     `json:"years" binding:"required"`
	Amounts []float64 `json:"amounts" binding:"required"`
}

// EmissionsRequest asks for a single-year emissions calculation.
type EmissionsRequest struct {
	Parameters           ParameterSpec `json:"parameters" binding:"required"`
	Waste                WasteData     `json:"waste" binding:"required"`
	CalculationYear      int           `json:"calculation_year" binding:"required"`
	CollectionEfficiency float64       `json:"collection_efficiency,omitempty"`
	IncludeNMOC          bool          `json:"include_nmoc,omitempty"`
}

// SeriesRequest asks for an emissions time series over projection years, in
// the supplied order.
type SeriesRequest struct {
	Parameters           ParameterSpec `json:"parameters" binding:"required"`
	Waste                WasteData     `json:"waste" binding:"required"`
	ProjectionYears      []int         `json:"projection_years" binding:"required"`
	CollectionEfficiency float64       `json:"collection_efficiency,omitempty"`
	IncludeNMOC          bool          `json:"include_nmoc,omitempty"`
}

// StreamSpec declares one waste stream for a multi-stream request.
type StreamSpec struct {
	Name string  `json:"name" binding:"required"`
	L0   float64 `json:"l0" binding:"required"`
}

// MultiStreamRequest asks for a combined multi-stream calculation. The
// decay-rate constant and composition are shared; each stream carries its
// own generation capacity and history.
type MultiStreamRequest struct {
	Parameters           ParameterSpec        `json:"parameters" binding:"required"`
	Streams              []StreamSpec         `json:"streams" binding:"required"`
	Waste                map[string]WasteData `json:"waste" binding:"required"`
	CalculationYear      *int                 `json:"calculation_year,omitempty"`
	ProjectionYears      []int                `json:"projection_years,omitempty"`
	CollectionEfficiency float64              `json:"collection_efficiency,omitempty"`
	IncludeNMOC          bool                 `json:"include_nmoc,omitempty"`
}
