package model

import (
	"fmt"
	"math"
)

// CostCategory tags a cost row with the shadow-pricing treatment it should
// receive. Untagged rows default to non-traded (SCF only).
type CostCategory string

const (
	CategoryNonTraded CostCategory = "non_traded"
	CategoryLabor     CostCategory = "labor"
	CategoryTraded    CostCategory = "traded"
)

func (c CostCategory) Valid() bool {
	switch c {
	case "", CategoryNonTraded, CategoryLabor, CategoryTraded:
		return true
	}
	return false
}

// Entry is one year/amount row of a cost or benefit series.
//
// Years need not be contiguous; insertion order carries no meaning. The
// engine always re-sorts by year and maps distinct sorted years to
// contiguous discounting periods t = 0..n-1.
type Entry struct {
	Year     int          `json:"year"`
	Amount   float64      `json:"amount"`
	Category CostCategory `json:"category,omitempty"` // costs only; ignored on benefits
}

// Validate rejects non-finite amounts and unknown categories. Amounts are
// rejected, not silently zeroed.
func (e Entry) Validate() error {
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return fmt.Errorf("entry year %d: amount must be finite, got %v", e.Year, e.Amount)
	}
	if !e.Category.Valid() {
		return fmt.Errorf("entry year %d: unknown cost category %q", e.Year, e.Category)
	}
	return nil
}

// ValidateEntries validates every row of a series.
func ValidateEntries(entries []Entry) error {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}
