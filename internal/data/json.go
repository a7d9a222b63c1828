package data

import (
	"encoding/json"
	"fmt"
	"os"

	"aid-appraisal/internal/model"
)

// ProjectSeries matches the JSON shape exported by the activity form:
//
//	{
//	  "project_name": "...",
//	  "cost_data": [{"year": 1, "amount": 100}, ...],
//	  "benefit_data": [{"year": 2, "amount": 110}, ...]
//	}
type ProjectSeries struct {
	ProjectName string        `json:"project_name,omitempty"`
	CostData    []model.Entry `json:"cost_data"`
	BenefitData []model.Entry `json:"benefit_data"`
}

func LoadProjectJSON(path string) (*ProjectSeries, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ps ProjectSeries
	if err := json.Unmarshal(raw, &ps); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := model.ValidateEntries(ps.CostData); err != nil {
		return nil, fmt.Errorf("%s cost_data: %w", path, err)
	}
	if err := model.ValidateEntries(ps.BenefitData); err != nil {
		return nil, fmt.Errorf("%s benefit_data: %w", path, err)
	}
	return &ps, nil
}

// GroupByYear splits a series into year-keyed totals. Handy for quick
// inspection tooling; the engine does its own merge.
func GroupByYear(entries []model.Entry) map[int]float64 {
	out := map[int]float64{}
	for _, e := range entries {
		out[e.Year] += e.Amount
	}
	return out
}
