package appraisal

import "math"

// LedgerRow is one discounting period of the appraisal output.
// This is the primary artifact for "where the numbers came from": it shows
// the shadow-price adjustment and the discounting of every period, and the
// cumulative column converges on the NPV.
type LedgerRow struct {
	Period int `json:"period"`
	Year   int `json:"year"`

	Cost         float64 `json:"cost"`
	AdjustedCost float64 `json:"adjusted_cost"`
	Benefit      float64 `json:"benefit"`
	Net          float64 `json:"net"`

	DiscountFactor   float64 `json:"discount_factor"`
	DiscountedNet    float64 `json:"discounted_net"`
	CumDiscountedNet float64 `json:"cum_discounted_net"`
}

// buildLedger discounts each period row at the given fractional rate.
func buildLedger(rows []periodRow, rate float64) []LedgerRow {
	ledger := make([]LedgerRow, 0, len(rows))
	cum := 0.0
	for t, r := range rows {
		factor := 1 / math.Pow(1+rate, float64(t))
		disc := r.Net * factor
		cum += disc
		ledger = append(ledger, LedgerRow{
			Period:           t,
			Year:             r.Year,
			Cost:             r.Cost,
			AdjustedCost:     r.AdjustedCost,
			Benefit:          r.Benefit,
			Net:              r.Net,
			DiscountFactor:   factor,
			DiscountedNet:    disc,
			CumDiscountedNet: cum,
		})
	}
	return ledger
}
