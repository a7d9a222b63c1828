package appraisal

import (
	"errors"
	"fmt"
	"math"

	"aid-appraisal/internal/model"
)

// ErrInvalidRate is returned when a discount rate would make the factor base
// 1+r non-positive. Discounting at such a rate has no real-valued meaning.
var ErrInvalidRate = errors.New("discount rate must be > -1")

// NPV discounts the net series at the given fractional rate:
//
//	NPV(r) = sum over t of value_t / (1+r)^t
//
// The exponent is the sequence index, not the calendar year. Pure and
// stateless; the IRR solver calls it many times.
func NPV(flows []model.NetCashFlow, rate float64) (float64, error) {
	if math.IsNaN(rate) || rate <= -1 {
		return 0, fmt.Errorf("%w, got %v", ErrInvalidRate, rate)
	}
	sum := 0.0
	for t, f := range flows {
		sum += f.Value / math.Pow(1+rate, float64(t))
	}
	return sum, nil
}
