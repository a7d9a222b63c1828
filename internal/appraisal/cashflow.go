package appraisal

import (
	"fmt"
	"sort"

	"aid-appraisal/internal/model"
	"aid-appraisal/internal/pricing"
)

// periodRow is one distinct year of the merged series, before discounting.
type periodRow struct {
	Year         int
	Cost         float64 // market-price cost for the year
	AdjustedCost float64 // shadow-priced cost
	Benefit      float64
	Net          float64 // Benefit - AdjustedCost
}

// buildRows unions the distinct years of both series, sorts ascending and
// applies the pricing scheme to each cost row. A year missing from one series
// contributes 0 to that term only; it still occupies a period because it is
// present in the other series. Years absent from both series get no period.
func buildRows(costs, benefits []model.Entry, scheme pricing.Scheme) ([]periodRow, error) {
	if err := model.ValidateEntries(costs); err != nil {
		return nil, fmt.Errorf("cost series: %w", err)
	}
	if err := model.ValidateEntries(benefits); err != nil {
		return nil, fmt.Errorf("benefit series: %w", err)
	}

	type yearAgg struct {
		cost     float64
		adjusted float64
		benefit  float64
	}
	byYear := map[int]*yearAgg{}
	get := func(y int) *yearAgg {
		a, ok := byYear[y]
		if !ok {
			a = &yearAgg{}
			byYear[y] = a
		}
		return a
	}

	for _, e := range costs {
		a := get(e.Year)
		a.cost += e.Amount
		a.adjusted += scheme.AdjustCost(e)
	}
	for _, e := range benefits {
		get(e.Year).benefit += e.Amount
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	rows := make([]periodRow, 0, len(years))
	for _, y := range years {
		a := byYear[y]
		rows = append(rows, periodRow{
			Year:         y,
			Cost:         a.cost,
			AdjustedCost: a.adjusted,
			Benefit:      a.benefit,
			Net:          a.benefit - a.adjusted,
		})
	}
	return rows, nil
}

// BuildCashFlows merges the cost and benefit series by year, shadow-prices
// the costs and returns the net series mapped to contiguous zero-based
// periods. Deterministic and side-effect-free; empty inputs yield an empty
// sequence, not an error.
func BuildCashFlows(costs, benefits []model.Entry, scheme pricing.Scheme) ([]model.NetCashFlow, error) {
	rows, err := buildRows(costs, benefits, scheme)
	if err != nil {
		return nil, err
	}
	flows := make([]model.NetCashFlow, len(rows))
	for t, r := range rows {
		flows[t] = model.NetCashFlow{Period: t, Value: r.Net}
	}
	return flows, nil
}
