package model

// NetCashFlow is one discounting period of the shadow-priced net series.
// Period is the zero-based sequence index, not the calendar year: successive
// distinct sorted years become successive periods, so the sequence index
// drives the discount exponent.
type NetCashFlow struct {
	Period int     `json:"period"`
	Value  float64 `json:"value"`
}

// HasSignChange reports whether the period values change sign at least once.
// A series that is uniformly non-negative or non-positive admits no real IRR.
func HasSignChange(flows []NetCashFlow) bool {
	sign := 0
	for _, f := range flows {
		s := 0
		if f.Value > 0 {
			s = 1
		} else if f.Value < 0 {
			s = -1
		}
		if s == 0 {
			continue
		}
		if sign != 0 && s != sign {
			return true
		}
		sign = s
	}
	return false
}
