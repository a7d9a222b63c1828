package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aid-appraisal/internal/api/models"
	"aid-appraisal/internal/model"
)

// SchemeHandler handles pricing-scheme metadata requests
type SchemeHandler struct{}

// NewSchemeHandler creates a new scheme handler
func NewSchemeHandler() *SchemeHandler {
	return &SchemeHandler{}
}

// ListSchemes handles GET /api/v1/schemes
func (h *SchemeHandler) ListSchemes(c *gin.Context) {
	schemes := []models.SchemeInfo{
		{
			Name:        "uniform_scf",
			Description: "Applies the standard conversion factor to every cost row. Used when cost lines are untagged.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "standard_conversion_factor",
					Type:        "float",
					Description: "Economy-wide market-to-shadow price factor for non-traded inputs (typically 0.7-1.0)",
					Default:     1.0,
				},
			},
		},
		{
			Name:        "category",
			Description: "Picks the factor by cost category: SCF for non-traded rows, shadow wage rate for labor rows, shadow exchange rate for traded rows.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "standard_conversion_factor",
					Type:        "float",
					Description: "Factor for non-traded (and untagged) cost rows",
					Default:     1.0,
				},
				{
					Name:        "shadow_wage_rate",
					Type:        "float",
					Description: "Factor for labor cost rows",
					Default:     1.0,
				},
				{
					Name:        "shadow_exchange_rate",
					Type:        "float",
					Description: "Factor for traded / foreign-currency cost rows",
					Default:     1.0,
				},
			},
		},
	}

	c.JSON(http.StatusOK, gin.H{"schemes": schemes})
}

// ListCategories handles GET /api/v1/categories
func (h *SchemeHandler) ListCategories(c *gin.Context) {
	categories := []models.CategoryInfo{
		{
			ID:          string(model.CategoryNonTraded),
			Description: "Non-traded inputs priced on the domestic market (default for untagged rows)",
			Factor:      "standard_conversion_factor",
		},
		{
			ID:          string(model.CategoryLabor),
			Description: "Labor cost lines",
			Factor:      "shadow_wage_rate",
		},
		{
			ID:          string(model.CategoryTraded),
			Description: "Traded / import-heavy cost lines",
			Factor:      "shadow_exchange_rate",
		},
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
