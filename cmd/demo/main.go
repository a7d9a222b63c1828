package main

import (
	"flag"
	"fmt"

	"aid-appraisal/internal/appraisal"
	"aid-appraisal/internal/data"
	"aid-appraisal/internal/model"
)

// Demo:
// - Load a project's cost/benefit series from JSON (or use a built-in one)
// - Apply a typical shadow-price parameter set
// - Print the full discount ledger and the three metrics
func main() {
	dataPath := flag.String("data", "", "Path to project series JSON (optional)")
	flag.Parse()

	costs := []model.Entry{
		{Year: 1, Amount: 1000},
		{Year: 2, Amount: 600},
		{Year: 3, Amount: 50},
		{Year: 4, Amount: 50},
		{Year: 5, Amount: 50},
	}
	benefits := []model.Entry{
		{Year: 3, Amount: 400},
		{Year: 4, Amount: 600},
		{Year: 5, Amount: 900},
	}

	if *dataPath != "" {
		series, err := data.LoadProjectJSON(*dataPath)
		if err != nil {
			panic(err)
		}
		costs = series.CostData
		benefits = series.BenefitData
	}

	// Typical national parameters (can be replaced via a preset file).
	params := model.Parameters{
		StandardConversionFactor: 0.9,
		ShadowWageRate:           0.8,
		ShadowExchangeRate:       1.05,
		SocialDiscountRate:       12,
		ProjectLifeYears:         5,
		ConstructionYears:        2,
	}

	eng := appraisal.New(nil)
	result, err := eng.Appraise(model.AppraisalInputs{
		Costs:    costs,
		Benefits: benefits,
		Params:   params,
	})
	if err != nil {
		panic(err)
	}

	fmt.Println("period  year      cost  adj.cost   benefit       net    factor  disc.net   cum.net")
	for _, r := range result.Ledger {
		fmt.Printf("%6d %5d %9.2f %9.2f %9.2f %9.2f %9.4f %9.2f %9.2f\n",
			r.Period, r.Year, r.Cost, r.AdjustedCost, r.Benefit, r.Net,
			r.DiscountFactor, r.DiscountedNet, r.CumDiscountedNet)
	}
	fmt.Println()
	fmt.Printf("npv at %.1f%%: %.2f\n", params.SocialDiscountRate, result.NPV)
	if result.EIRR != nil {
		fmt.Printf("eirr: %.2f%%\n", *result.EIRR)
	} else {
		fmt.Printf("eirr: N/A (%s)\n", result.IRRStatus)
	}
	if result.BCR != nil {
		fmt.Printf("bcr: %.3f\n", *result.BCR)
	} else {
		fmt.Println("bcr: N/A")
	}
	fmt.Printf("verdict: %s\n", result.Verdict)
}
