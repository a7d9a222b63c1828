package pricing

import "aid-appraisal/internal/model"

// CategoryScheme picks the conversion factor by cost category:
// - non_traded (and untagged) rows get the SCF
// - labor rows get the shadow wage rate
// - traded rows get the shadow exchange rate
//
// This keeps the wage and exchange-rate parameters as working extension
// points instead of dead scalars, without changing the untagged base case.
type CategoryScheme struct {
	SCF          float64
	WageRate     float64
	ExchangeRate float64
}

func (s CategoryScheme) Name() string { return "category" }

func (s CategoryScheme) AdjustCost(e model.Entry) float64 {
	switch e.Category {
	case model.CategoryLabor:
		return e.Amount * s.WageRate
	case model.CategoryTraded:
		return e.Amount * s.ExchangeRate
	default:
		return e.Amount * s.SCF
	}
}
