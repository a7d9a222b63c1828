package models

import "aid-appraisal/internal/model"

// AppraisalRequest represents the request body for running an appraisal.
type AppraisalRequest struct {
	ProjectName string        `json:"project_name,omitempty"`
	CostData    []model.Entry `json:"cost_data" binding:"required"`
	BenefitData []model.Entry `json:"benefit_data" binding:"required"`

	// Preset names a parameter file under the params directory
	// (e.g. "default_national"); Params overrides individual fields.
	Preset string        `json:"preset,omitempty"`
	Params ParamsPayload `json:"params"`

	Options AppraisalOptions `json:"options,omitempty"`
}

// ParamsPayload defines the shadow-price parameters on the wire.
type ParamsPayload struct {
	StandardConversionFactor float64 `json:"standard_conversion_factor"`
	ShadowWageRate           float64 `json:"shadow_wage_rate,omitempty"`
	ShadowExchangeRate       float64 `json:"shadow_exchange_rate,omitempty"`
	SocialDiscountRate       float64 `json:"social_discount_rate"`
	ProjectLifeYears         int     `json:"project_life_years,omitempty"`
	ConstructionYears        int     `json:"construction_years,omitempty"`
}

// AppraisalOptions contains optional appraisal parameters.
type AppraisalOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
	Preview       bool `json:"preview,omitempty"`        // skip persistence
}

// SensitivityRequest asks for a sensitivity report and optional parameter
// variations over one base request.
type SensitivityRequest struct {
	Base       AppraisalRequest `json:"base" binding:"required"`
	Spread     float64          `json:"spread,omitempty"` // relative, default 0.20
	Variations []Variation      `json:"variations,omitempty"`
}

// Variation defines one named parameter override to compare.
type Variation struct {
	Name   string        `json:"name" binding:"required"`
	Params ParamsPayload `json:"params"`
}
