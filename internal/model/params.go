package model

import (
	"errors"
	"math"
)

// Parameters bundles the shadow-pricing scalars for one appraisal.
// Units:
// - StandardConversionFactor: dimensionless, typically 0.7..1.0
// - ShadowWageRate / ShadowExchangeRate: dimensionless multipliers
// - SocialDiscountRate: percent (e.g. 12 means 12%)
// - ProjectLifeYears / ConstructionYears: contextual metadata, persisted for
//   audit but not used in the arithmetic
type Parameters struct {
	StandardConversionFactor float64
	ShadowWageRate           float64
	ShadowExchangeRate       float64
	SocialDiscountRate       float64
	ProjectLifeYears         int
	ConstructionYears        int
}

func (p Parameters) Validate() error {
	if !isFinite(p.StandardConversionFactor) || p.StandardConversionFactor <= 0 {
		return errors.New("StandardConversionFactor must be a finite value > 0")
	}
	if !isFinite(p.ShadowWageRate) || p.ShadowWageRate < 0 {
		return errors.New("ShadowWageRate must be a finite value >= 0")
	}
	if !isFinite(p.ShadowExchangeRate) || p.ShadowExchangeRate < 0 {
		return errors.New("ShadowExchangeRate must be a finite value >= 0")
	}
	if !isFinite(p.SocialDiscountRate) {
		return errors.New("SocialDiscountRate must be finite")
	}
	// SDR is a percent; the discount factor base 1+r/100 must stay positive.
	if p.SocialDiscountRate <= -100 {
		return errors.New("SocialDiscountRate must be > -100")
	}
	if p.ProjectLifeYears < 0 {
		return errors.New("ProjectLifeYears must be >= 0")
	}
	if p.ConstructionYears < 0 {
		return errors.New("ConstructionYears must be >= 0")
	}
	return nil
}

// SocialDiscountFraction converts the percent SDR to the fractional rate used
// for discounting (12 -> 0.12).
func (p Parameters) SocialDiscountFraction() float64 {
	return p.SocialDiscountRate / 100.0
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
