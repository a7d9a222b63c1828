package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aid-appraisal/internal/api/models"
	"aid-appraisal/internal/config"
)

// PresetHandler handles parameter-preset requests
type PresetHandler struct {
	paramsDir string
	logger    *zap.Logger
}

// NewPresetHandler creates a new preset handler
func NewPresetHandler(logger *zap.Logger) *PresetHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	dir := ParamsDir()
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	logger.Info("using params directory", zap.String("dir", dir))
	return &PresetHandler{paramsDir: dir, logger: logger}
}

// ListPresets handles GET /api/v1/presets
func (h *PresetHandler) ListPresets(c *gin.Context) {
	presets := []models.PresetInfo{}

	entries, err := os.ReadDir(h.paramsDir)
	if err != nil {
		h.logger.Warn("failed to read params directory",
			zap.String("dir", h.paramsDir), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"presets": presets})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.paramsDir, entry.Name())
		params, err := config.LoadParamsFile(path)
		if err != nil {
			h.logger.Warn("skipping invalid preset file",
				zap.String("path", path), zap.Error(err))
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".yaml")
		name := params.Name
		if name == "" {
			name = id
		}
		presets = append(presets, models.PresetInfo{
			ID:   id,
			Name: name,
			File: entry.Name(),
			Params: models.ParamsPayload{
				StandardConversionFactor: params.StandardConversionFactor,
				ShadowWageRate:           params.ShadowWageRate,
				ShadowExchangeRate:       params.ShadowExchangeRate,
				SocialDiscountRate:       params.SocialDiscountRate,
				ProjectLifeYears:         params.ProjectLifeYears,
				ConstructionYears:        params.ConstructionYears,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{"presets": presets})
}
