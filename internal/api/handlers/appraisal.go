package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"aid-appraisal/internal/analysis"
	"aid-appraisal/internal/api/models"
	"aid-appraisal/internal/appraisal"
	"aid-appraisal/internal/config"
	"aid-appraisal/internal/model"
	"aid-appraisal/internal/store"
)

// AppraisalHandler handles appraisal-related requests
type AppraisalHandler struct {
	engine *appraisal.Engine
	store  store.Store
	logger *zap.Logger
}

// NewAppraisalHandler creates a new appraisal handler
func NewAppraisalHandler(engine *appraisal.Engine, st store.Store, logger *zap.Logger) *AppraisalHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AppraisalHandler{engine: engine, store: st, logger: logger}
}

// RunAppraisal handles POST /api/v1/appraisals
func (h *AppraisalHandler) RunAppraisal(c *gin.Context) {
	var req models.AppraisalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	inputs, err := h.buildInputs(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PARAMS",
				Message: err.Error(),
			},
		})
		return
	}

	result, err := h.engine.Appraise(inputs)
	if err != nil {
		// The engine only fails on validation; nothing partially computed
		// reaches the store.
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUTS",
				Message: err.Error(),
			},
		})
		return
	}

	response := buildResponse(inputs, result, req.Options.IncludeLedger)

	if !req.Options.Preview {
		rec := store.NewRecord(req.ProjectName, inputs, result)
		if err := h.store.Save(c.Request.Context(), rec); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "PERSIST_ERROR",
					Message: err.Error(),
				},
			})
			return
		}
		response.ID = rec.ID.String()
		response.CreatedAt = &rec.CreatedAt
	}

	c.JSON(http.StatusOK, response)
}

// GetAppraisal handles GET /api/v1/appraisals/:id
func (h *AppraisalHandler) GetAppraisal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_ID",
				Message: "appraisal id must be a UUID",
			},
		})
		return
	}

	rec, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		code := "STORE_ERROR"
		if err == store.ErrNotFound {
			status = http.StatusNotFound
			code = "NOT_FOUND"
		}
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// ListAppraisals handles GET /api/v1/appraisals
func (h *AppraisalHandler) ListAppraisals(c *gin.Context) {
	limit := 50
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}

	recs, err := h.store.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STORE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	if recs == nil {
		recs = []*store.Record{}
	}

	c.JSON(http.StatusOK, gin.H{"appraisals": recs})
}

// RunSensitivity handles POST /api/v1/appraisals/sensitivity
func (h *AppraisalHandler) RunSensitivity(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	inputs, err := h.buildInputs(req.Base)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PARAMS",
				Message: err.Error(),
			},
		})
		return
	}

	report, err := analysis.Sensitivity(h.engine, inputs, req.Spread)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUTS",
				Message: err.Error(),
			},
		})
		return
	}

	response := models.SensitivityResponse{
		BaseNPV:        report.BaseNPV,
		SwitchingValue: report.SwitchingValue,
	}
	for _, d := range report.Drivers {
		response.Drivers = append(response.Drivers, models.SensitivityDriver{
			Name:     d.Name,
			NPVLow:   d.NPVLow,
			NPVHigh:  d.NPVHigh,
			DeltaNPV: d.DeltaNPV,
		})
	}

	// Run each named variation against the base series.
	for _, variation := range req.Variations {
		varInputs := inputs
		varInputs.Params = mergeParams(inputs.Params, variation.Params)
		result, err := h.engine.Appraise(varInputs)
		if err != nil {
			continue // Skip invalid variations
		}
		response.Comparison = append(response.Comparison, models.VariationResult{
			Name:    variation.Name,
			Summary: buildSummary(varInputs, result),
		})
	}

	c.JSON(http.StatusOK, response)
}

// Helper methods

// buildInputs resolves the preset (if any), overlays request overrides and
// produces validated engine inputs.
func (h *AppraisalHandler) buildInputs(req models.AppraisalRequest) (model.AppraisalInputs, error) {
	params := config.ParamsConfig{
		StandardConversionFactor: req.Params.StandardConversionFactor,
		ShadowWageRate:           req.Params.ShadowWageRate,
		ShadowExchangeRate:       req.Params.ShadowExchangeRate,
		SocialDiscountRate:       req.Params.SocialDiscountRate,
		ProjectLifeYears:         req.Params.ProjectLifeYears,
		ConstructionYears:        req.Params.ConstructionYears,
	}

	// If a preset is named, load it and merge request overrides onto it.
	// Preset files are looked up in the params directory.
	if req.Preset != "" {
		presetPath := filepath.Join(ParamsDir(), req.Preset+".yaml")
		loaded, err := config.LoadParamsFile(presetPath)
		if err != nil {
			h.logger.Warn("failed to load params preset",
				zap.String("path", presetPath), zap.Error(err))
			return model.AppraisalInputs{}, err
		}
		params = config.MergeParams(loaded, params)
	}

	if params.ShadowWageRate == 0 {
		params.ShadowWageRate = params.StandardConversionFactor
	}
	if params.ShadowExchangeRate == 0 {
		params.ShadowExchangeRate = params.StandardConversionFactor
	}

	return model.AppraisalInputs{
		Costs:    req.CostData,
		Benefits: req.BenefitData,
		Params:   params.ToModelParams(),
	}, nil
}

func mergeParams(base model.Parameters, override models.ParamsPayload) model.Parameters {
	out := base
	if override.StandardConversionFactor != 0 {
		out.StandardConversionFactor = override.StandardConversionFactor
	}
	if override.ShadowWageRate != 0 {
		out.ShadowWageRate = override.ShadowWageRate
	}
	if override.ShadowExchangeRate != 0 {
		out.ShadowExchangeRate = override.ShadowExchangeRate
	}
	if override.SocialDiscountRate != 0 {
		out.SocialDiscountRate = override.SocialDiscountRate
	}
	if override.ProjectLifeYears != 0 {
		out.ProjectLifeYears = override.ProjectLifeYears
	}
	if override.ConstructionYears != 0 {
		out.ConstructionYears = override.ConstructionYears
	}
	return out
}

func buildResponse(inputs model.AppraisalInputs, result *appraisal.Result, includeLedger bool) models.AppraisalResponse {
	response := models.AppraisalResponse{
		Status:  "completed",
		Summary: buildSummary(inputs, result),
	}
	if includeLedger {
		response.Ledger = convertLedger(result.Ledger)
	}
	return response
}

func buildSummary(inputs model.AppraisalInputs, result *appraisal.Result) models.AppraisalSummary {
	summary := models.AppraisalSummary{
		EIRR:      result.EIRR,
		NPV:       result.NPV,
		BCR:       result.BCR,
		Verdict:   string(result.Verdict),
		IRRStatus: string(result.IRRStatus),
		Periods:   len(result.Ledger),
	}
	if len(result.Ledger) > 0 {
		summary.FirstYear = result.Ledger[0].Year
		summary.LastYear = result.Ledger[len(result.Ledger)-1].Year
	}
	return summary
}

func convertLedger(ledger []appraisal.LedgerRow) []models.LedgerRow {
	result := make([]models.LedgerRow, len(ledger))
	for i, row := range ledger {
		result[i] = models.LedgerRow{
			Period:           row.Period,
			Year:             row.Year,
			Cost:             row.Cost,
			AdjustedCost:     row.AdjustedCost,
			Benefit:          row.Benefit,
			Net:              row.Net,
			DiscountFactor:   row.DiscountFactor,
			DiscountedNet:    row.DiscountedNet,
			CumDiscountedNet: row.CumDiscountedNet,
		}
	}
	return result
}

// ParamsDir resolves the parameter preset directory.
func ParamsDir() string {
	if dir := os.Getenv("PARAMS_DIR"); dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "./examples/params"
	}
	return filepath.Join(wd, "examples", "params")
}
