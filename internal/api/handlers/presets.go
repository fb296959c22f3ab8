package handlers

import (
	"log"
	"net/http"

	"landgem/internal/api/models"
	"landgem/internal/params"

	"github.com/gin-gonic/gin"
)

// PresetHandler handles EPA default-parameter requests
type PresetHandler struct{}

// NewPresetHandler creates a new preset handler
func NewPresetHandler() *PresetHandler {
	return &PresetHandler{}
}

// ListPresets handles GET /api/v1/presets
func (h *PresetHandler) ListPresets(c *gin.Context) {
	all := params.All()
	out := make([]models.PresetResponse, 0, len(all))
	for _, p := range all {
		out = append(out, models.PresetResponse{
			Name:           p.Name,
			Description:    p.Description,
			K:              p.K,
			L0:             p.L0,
			MethaneContent: p.MethaneContent,
			NMOCPPM:        p.NMOCConcentration,
		})
	}

	log.Printf("PresetHandler: returning %d presets", len(out))
	c.JSON(http.StatusOK, gin.H{"presets": out})
}

// GetPreset handles GET /api/v1/presets/:name
func (h *PresetHandler) GetPreset(c *gin.Context) {
	p, err := params.Lookup(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "PRESET_NOT_FOUND",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.PresetResponse{
		Name:           p.Name,
		Description:    p.Description,
		K:              p.K,
		L0:             p.L0,
		MethaneContent: p.MethaneContent,
		NMOCPPM:        p.NMOCConcentration,
	})
}
