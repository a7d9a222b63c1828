package pricing

import "aid-appraisal/internal/model"

// Scheme converts a market-price cost row to its shadow (economic) price.
// Benefits are never adjusted; only cost rows pass through a scheme.
type Scheme interface {
	Name() string
	AdjustCost(e model.Entry) float64
}

// UniformSCF applies the standard conversion factor to every cost row,
// regardless of category. This matches the base appraisal form, where cost
// lines are untagged.
type UniformSCF struct {
	SCF float64
}

func (s UniformSCF) Name() string { return "uniform_scf" }

func (s UniformSCF) AdjustCost(e model.Entry) float64 {
	return e.Amount * s.SCF
}

// FromParams builds the scheme implied by a parameter set. When any cost row
// is tagged, the category scheme is required; callers with untagged rows can
// use either (the category scheme treats untagged rows as non-traded).
func FromParams(p model.Parameters, tagged bool) Scheme {
	if tagged {
		return CategoryScheme{
			SCF:          p.StandardConversionFactor,
			WageRate:     p.ShadowWageRate,
			ExchangeRate: p.ShadowExchangeRate,
		}
	}
	return UniformSCF{SCF: p.StandardConversionFactor}
}

// Tagged reports whether any cost row carries an explicit category.
func Tagged(costs []model.Entry) bool {
	for _, e := range costs {
		if e.Category != "" && e.Category != model.CategoryNonTraded {
			return true
		}
	}
	return false
}
