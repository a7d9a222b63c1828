package models

import "time"

// AppraisalResponse represents the response from an appraisal run.
type AppraisalResponse struct {
	ID        string           `json:"id,omitempty"`
	Status    string           `json:"status"`
	Summary   AppraisalSummary `json:"summary"`
	Ledger    []LedgerRow      `json:"ledger,omitempty"`
	CreatedAt *time.Time       `json:"created_at,omitempty"`
}

// AppraisalSummary contains the three appraisal metrics plus the verdict.
// EIRR and BCR are null when undefined for the cash flow ("N/A" upstream).
type AppraisalSummary struct {
	EIRR      *float64 `json:"eirr"` // percent
	NPV       float64  `json:"npv"`
	BCR       *float64 `json:"bcr"`
	Verdict   string   `json:"verdict"`
	IRRStatus string   `json:"irr_status"`
	Periods   int      `json:"periods"`
	FirstYear int      `json:"first_year,omitempty"`
	LastYear  int      `json:"last_year,omitempty"`
}

// LedgerRow represents one discounting period in the appraisal ledger.
type LedgerRow struct {
	Period           int     `json:"period"`
	Year             int     `json:"year"`
	Cost             float64 `json:"cost"`
	AdjustedCost     float64 `json:"adjusted_cost"`
	Benefit          float64 `json:"benefit"`
	Net              float64 `json:"net"`
	DiscountFactor   float64 `json:"discount_factor"`
	DiscountedNet    float64 `json:"discounted_net"`
	CumDiscountedNet float64 `json:"cum_discounted_net"`
}

// SensitivityResponse represents the response from a sensitivity run.
type SensitivityResponse struct {
	BaseNPV        float64             `json:"base_npv"`
	SwitchingValue *float64            `json:"switching_value"` // percent
	Drivers        []SensitivityDriver `json:"drivers"`
	Comparison     []VariationResult   `json:"comparison,omitempty"`
}

// SensitivityDriver is one ranked assumption with its NPV impact.
type SensitivityDriver struct {
	Name     string  `json:"name"`
	NPVLow   float64 `json:"npv_low"`
	NPVHigh  float64 `json:"npv_high"`
	DeltaNPV float64 `json:"delta_npv"`
}

// VariationResult contains results for one parameter variation.
type VariationResult struct {
	Name    string           `json:"name"`
	Summary AppraisalSummary `json:"summary"`
}

// PresetInfo represents information about a parameter preset.
type PresetInfo struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	File   string        `json:"file"`
	Params ParamsPayload `json:"params"`
}

// SchemeInfo represents information about a pricing scheme.
type SchemeInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a scheme parameter.
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "string"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// CategoryInfo describes one cost category and the factor applied to it.
type CategoryInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Factor      string `json:"factor"`
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
