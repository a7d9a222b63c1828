package analysis

import (
	"fmt"
	"math"
	"sort"

	"aid-appraisal/internal/appraisal"
	"aid-appraisal/internal/model"
)

// DefaultSpread is the relative perturbation applied to each driver when the
// caller does not supply one (20% either way).
const DefaultSpread = 0.20

// Driver is the NPV impact of perturbing one assumption across its range.
type Driver struct {
	Name     string  `json:"name"`
	NPVLow   float64 `json:"npv_low"`
	NPVHigh  float64 `json:"npv_high"`
	DeltaNPV float64 `json:"delta_npv"` // |NPVHigh - NPVLow|
}

// Report is a project-level sensitivity summary. SwitchingValue is the
// discount rate (percent) at which the NPV changes sign, i.e. the EIRR; nil
// when the cash flow admits none.
type Report struct {
	BaseNPV        float64  `json:"base_npv"`
	SwitchingValue *float64 `json:"switching_value"`
	Drivers        []Driver `json:"drivers"`
}

// Sensitivity perturbs each major assumption by the given relative spread,
// recomputes the appraisal, and ranks drivers descending by NPV impact.
func Sensitivity(eng *appraisal.Engine, in model.AppraisalInputs, spread float64) (*Report, error) {
	if spread <= 0 {
		spread = DefaultSpread
	}

	base, err := eng.Appraise(in)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		name string
		low  func(model.AppraisalInputs) model.AppraisalInputs
		high func(model.AppraisalInputs) model.AppraisalInputs
	}

	cands := []candidate{
		{
			name: "social_discount_rate",
			low:  func(v model.AppraisalInputs) model.AppraisalInputs { v.Params.SocialDiscountRate *= 1 - spread; return v },
			high: func(v model.AppraisalInputs) model.AppraisalInputs { v.Params.SocialDiscountRate *= 1 + spread; return v },
		},
		{
			name: "standard_conversion_factor",
			low: func(v model.AppraisalInputs) model.AppraisalInputs {
				v.Params.StandardConversionFactor *= 1 - spread
				return v
			},
			high: func(v model.AppraisalInputs) model.AppraisalInputs {
				v.Params.StandardConversionFactor *= 1 + spread
				return v
			},
		},
		{
			name: "costs",
			low:  func(v model.AppraisalInputs) model.AppraisalInputs { v.Costs = scaleEntries(v.Costs, 1-spread); return v },
			high: func(v model.AppraisalInputs) model.AppraisalInputs { v.Costs = scaleEntries(v.Costs, 1+spread); return v },
		},
		{
			name: "benefits",
			low:  func(v model.AppraisalInputs) model.AppraisalInputs { v.Benefits = scaleEntries(v.Benefits, 1-spread); return v },
			high: func(v model.AppraisalInputs) model.AppraisalInputs { v.Benefits = scaleEntries(v.Benefits, 1+spread); return v },
		},
	}

	drivers := make([]Driver, 0, len(cands))
	for _, c := range cands {
		npvLow, err := npvOf(eng, c.low(in))
		if err != nil {
			return nil, fmt.Errorf("driver %s low: %w", c.name, err)
		}
		npvHigh, err := npvOf(eng, c.high(in))
		if err != nil {
			return nil, fmt.Errorf("driver %s high: %w", c.name, err)
		}
		drivers = append(drivers, Driver{
			Name:     c.name,
			NPVLow:   npvLow,
			NPVHigh:  npvHigh,
			DeltaNPV: math.Abs(npvHigh - npvLow),
		})
	}
	sort.Slice(drivers, func(i, j int) bool { return drivers[i].DeltaNPV > drivers[j].DeltaNPV })

	return &Report{
		BaseNPV:        base.NPV,
		SwitchingValue: base.EIRR,
		Drivers:        drivers,
	}, nil
}

func npvOf(eng *appraisal.Engine, in model.AppraisalInputs) (float64, error) {
	res, err := eng.Appraise(in)
	if err != nil {
		return 0, err
	}
	return res.NPV, nil
}

func scaleEntries(entries []model.Entry, k float64) []model.Entry {
	out := make([]model.Entry, len(entries))
	for i, e := range entries {
		e.Amount *= k
		out[i] = e
	}
	return out
}
