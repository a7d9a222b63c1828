package appraisal

import (
	"fmt"

	"go.uber.org/zap"

	"aid-appraisal/internal/model"
	"aid-appraisal/internal/pricing"
)

// Result is the outcome of one appraisal.
//
// EIRR and BCR are percent/ratio pointers: nil means "undefined for this cash
// flow" (no sign change, no bracketed root, bisection did not converge, or
// zero discounted cost), which is a valid result, not a failure. NPV is
// always computable at the social discount rate.
type Result struct {
	EIRR *float64 `json:"eirr"` // percent, e.g. 14.7
	NPV  float64  `json:"npv"`
	BCR  *float64 `json:"bcr"`

	Verdict   model.Verdict `json:"verdict"`
	IRRStatus IRRStatus     `json:"irr_status"`

	Ledger []LedgerRow `json:"ledger,omitempty"`
}

type Engine struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Appraise validates the inputs, builds the shadow-priced net series and
// computes NPV at the social discount rate, the EIRR and the BCR.
//
// Validation failures abort the whole appraisal; nothing partially computed
// should be persisted. Definitional nulls (no real IRR, zero discounted cost)
// leave the remaining metrics intact.
func (e *Engine) Appraise(in model.AppraisalInputs) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate inputs: %w", err)
	}

	scheme := pricing.FromParams(in.Params, pricing.Tagged(in.Costs))
	rows, err := buildRows(in.Costs, in.Benefits, scheme)
	if err != nil {
		return nil, fmt.Errorf("build cash flows: %w", err)
	}

	flows := make([]model.NetCashFlow, len(rows))
	adjCosts := make([]float64, len(rows))
	benefits := make([]float64, len(rows))
	for t, r := range rows {
		flows[t] = model.NetCashFlow{Period: t, Value: r.Net}
		adjCosts[t] = r.AdjustedCost
		benefits[t] = r.Benefit
	}

	sdr := in.Params.SocialDiscountFraction()
	npv, err := NPV(flows, sdr)
	if err != nil {
		return nil, fmt.Errorf("npv at social discount rate: %w", err)
	}

	res := &Result{
		NPV:       npv,
		Ledger:    buildLedger(rows, sdr),
		IRRStatus: IRRNoSignChange,
	}

	if len(flows) > 0 {
		outcome := SolveIRR(flows)
		res.IRRStatus = outcome.Status
		if outcome.Status == IRRConverged {
			pct := outcome.Rate * 100
			res.EIRR = &pct
		} else {
			e.logger.Warn("eirr undefined for cash flow",
				zap.String("status", string(outcome.Status)),
				zap.Int("iterations", outcome.Iterations),
				zap.Float64("residual", outcome.Residual),
				zap.Int("periods", len(flows)),
			)
		}
	}

	bcr, err := BCR(benefits, adjCosts, sdr)
	if err != nil {
		return nil, fmt.Errorf("bcr at social discount rate: %w", err)
	}
	if bcr == nil {
		e.logger.Debug("bcr undefined: discounted cost total is zero",
			zap.Int("periods", len(rows)))
	}
	res.BCR = bcr

	res.Verdict = model.VerdictFromEIRR(res.EIRR, model.DefaultViabilityThreshold)
	return res, nil
}
