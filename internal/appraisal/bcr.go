package appraisal

import (
	"fmt"
	"math"
)

// BCR discounts the benefit and cost sequences independently at the given
// fractional rate and returns their ratio. Both sequences use the same
// period-indexing convention as NPV and must be period-aligned; costs are
// expected to be shadow-priced already.
//
// Returns nil when the discounted cost total is zero: the ratio is undefined,
// which is a normal outcome rather than an error or infinity.
func BCR(benefits, costs []float64, rate float64) (*float64, error) {
	if math.IsNaN(rate) || rate <= -1 {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidRate, rate)
	}
	if len(benefits) != len(costs) {
		return nil, fmt.Errorf("benefit/cost sequences must be period-aligned: %d vs %d", len(benefits), len(costs))
	}

	var discBenefits, discCosts float64
	for t := range benefits {
		factor := math.Pow(1+rate, float64(t))
		discBenefits += benefits[t] / factor
		discCosts += costs[t] / factor
	}
	if discCosts == 0 {
		return nil, nil
	}
	ratio := discBenefits / discCosts
	return &ratio, nil
}
