package handlers

import (
	"errors"
	"log"
	"net/http"

	"landgem/internal/api/models"
	"landgem/internal/emissions"
	"landgem/internal/model"
	"landgem/internal/params"

	"github.com/gin-gonic/gin"
)

var errMissingYear = errors.New("calculation_year or projection_years is required")

// EmissionsHandler handles emissions calculation requests
type EmissionsHandler struct{}

// NewEmissionsHandler creates a new emissions handler
func NewEmissionsHandler() *EmissionsHandler {
	return &EmissionsHandler{}
}

// Calculate handles POST /api/v1/emissions
func (h *EmissionsHandler) Calculate(c *gin.Context) {
	var req models.EmissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	m, err := buildModel(req.Parameters)
	if err != nil {
		badRequest(c, "INVALID_PARAMETERS", err)
		return
	}
	logWarnings(m.Warnings)

	res, err := m.Calculate(toHistory(req.Waste), req.CalculationYear, req.CollectionEfficiency, req.IncludeNMOC)
	if err != nil {
		badRequest(c, "INVALID_INPUT", err)
		return
	}

	c.JSON(http.StatusOK, models.FromResult(res))
}

// Series handles POST /api/v1/series
func (h *EmissionsHandler) Series(c *gin.Context) {
	var req models.SeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	m, err := buildModel(req.Parameters)
	if err != nil {
		badRequest(c, "INVALID_PARAMETERS", err)
		return
	}

	series, err := m.TimeSeries(toHistory(req.Waste), req.ProjectionYears, req.CollectionEfficiency, req.IncludeNMOC)
	if err != nil {
		badRequest(c, "INVALID_INPUT", err)
		return
	}

	c.JSON(http.StatusOK, models.FromSeries(series, m.Warnings))
}

// MultiStream handles POST /api/v1/multistream. With projection_years it
// returns a series; with calculation_year it returns a single combined
// result with per-stream breakdown.
func (h *EmissionsHandler) MultiStream(c *gin.Context) {
	var req models.MultiStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	decayParams, comp, err := resolveParameters(req.Parameters)
	if err != nil {
		badRequest(c, "INVALID_PARAMETERS", err)
		return
	}

	ms := emissions.NewMultiStream(decayParams.K, comp)
	for _, s := range req.Streams {
		if err := ms.AddStream(s.Name, s.L0); err != nil {
			badRequest(c, "INVALID_PARAMETERS", err)
			return
		}
	}

	histories := make(map[string]model.WasteHistory, len(req.Waste))
	for name, w := range req.Waste {
		histories[name] = toHistory(w)
	}

	if len(req.ProjectionYears) > 0 {
		series, err := ms.TimeSeries(histories, req.ProjectionYears, req.CollectionEfficiency)
		if err != nil {
			badRequest(c, "INVALID_INPUT", err)
			return
		}
		c.JSON(http.StatusOK, models.FromMultiSeries(series, nil))
		return
	}

	if req.CalculationYear == nil {
		badRequest(c, "INVALID_REQUEST", errMissingYear)
		return
	}
	res, err := ms.Calculate(histories, *req.CalculationYear, req.CollectionEfficiency, req.IncludeNMOC)
	if err != nil {
		badRequest(c, "INVALID_INPUT", err)
		return
	}

	out := models.MultiStreamResponse{
		Combined: models.FromResult(res.Combined),
		Streams:  make(map[string]models.EmissionsResponse, len(res.Streams)),
	}
	for name, sr := range res.Streams {
		out.Streams[name] = models.FromResult(sr)
	}
	c.JSON(http.StatusOK, out)
}

func buildModel(spec models.ParameterSpec) (*emissions.Model, error) {
	decayParams, comp, err := resolveParameters(spec)
	if err != nil {
		return nil, err
	}
	return emissions.New(decayParams, comp)
}

func resolveParameters(spec models.ParameterSpec) (model.DecayParams, model.Composition, error) {
	decayParams := model.DecayParams{}
	comp := model.Composition{MethaneContent: 0.50}

	if spec.Preset != "" {
		p, err := params.Lookup(spec.Preset)
		if err != nil {
			return model.DecayParams{}, model.Composition{}, err
		}
		decayParams = p.Decay()
		comp = p.Composition()
	}
	if spec.K != nil {
		decayParams.K = *spec.K
	}
	if spec.L0 != nil {
		decayParams.L0 = *spec.L0
	}
	if spec.MethaneContent != nil {
		comp.MethaneContent = *spec.MethaneContent
	}
	if spec.NMOCPPM != nil {
		comp.NMOCConcentration = spec.NMOCPPM
	}

	return decayParams, comp, nil
}

func toHistory(w models.WasteData) model.WasteHistory {
	return model.WasteHistory{Years: w.Years, Amounts: w.Amounts}
}

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

func logWarnings(warnings []string) {
	for _, w := range warnings {
		log.Printf("EmissionsHandler: warning: %s", w)
	}
}
