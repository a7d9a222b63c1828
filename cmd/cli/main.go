package main

import (
	"flag"
	"fmt"
	"os"

	"aid-appraisal/internal/analysis"
	"aid-appraisal/internal/appraisal"
	"aid-appraisal/internal/config"
	"aid-appraisal/internal/data"
	"aid-appraisal/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "appraise":
		cmdAppraise(os.Args[2:])
	case "sensitivity":
		cmdSensitivity(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli appraise --data sample_project.json --config examples/config.yaml --out results/ledger.csv")
	fmt.Println("  cli sensitivity --data sample_project.json --config examples/config.yaml --spread 0.2")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - appraise prints EIRR/NPV/BCR and writes the per-period discount ledger as CSV")
	fmt.Println("  - sensitivity ranks assumptions by their NPV impact")
}

func cmdAppraise(args []string) {
	fs := flag.NewFlagSet("appraise", flag.ExitOnError)
	dataPath := fs.String("data", "sample_project.json", "Path to project series JSON")
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Optional output CSV path for the discount ledger")
	_ = fs.Parse(args)

	inputs := loadInputs(*dataPath, *cfgPath)

	eng := appraisal.New(nil)
	result, err := eng.Appraise(inputs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "appraise: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("periods: %d\n", len(result.Ledger))
	fmt.Printf("npv at %.2f%%: %.4f\n", inputs.Params.SocialDiscountRate, result.NPV)
	fmt.Printf("eirr: %s\n", fmtNullable(result.EIRR, "%"))
	fmt.Printf("bcr: %s\n", fmtNullable(result.BCR, ""))
	fmt.Printf("verdict: %s\n", result.Verdict)

	if *outPath != "" {
		if err := appraisal.WriteLedgerCSV(*outPath, result.Ledger); err != nil {
			fmt.Fprintf(os.Stderr, "write ledger csv: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote ledger: %s\n", *outPath)
	}
}

func cmdSensitivity(args []string) {
	fs := flag.NewFlagSet("sensitivity", flag.ExitOnError)
	dataPath := fs.String("data", "sample_project.json", "Path to project series JSON")
	cfgPath := fs.String("config", "", "Path to YAML config")
	spread := fs.Float64("spread", analysis.DefaultSpread, "Relative perturbation per driver")
	_ = fs.Parse(args)

	inputs := loadInputs(*dataPath, *cfgPath)

	report, err := analysis.Sensitivity(appraisal.New(nil), inputs, *spread)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sensitivity: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("base npv: %.4f\n", report.BaseNPV)
	fmt.Printf("switching value: %s\n", fmtNullable(report.SwitchingValue, "%"))
	fmt.Println("drivers (by NPV impact):")
	for i, d := range report.Drivers {
		fmt.Printf("  %d. %-28s delta=%.4f  [%.4f .. %.4f]\n", i+1, d.Name, d.DeltaNPV, d.NPVLow, d.NPVHigh)
	}
}

func loadInputs(dataPath, cfgPath string) model.AppraisalInputs {
	if cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	series, err := data.LoadProjectJSON(dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load series: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	return model.AppraisalInputs{
		Costs:    series.CostData,
		Benefits: series.BenefitData,
		Params:   cfg.Params.ToModelParams(),
	}
}

func fmtNullable(v *float64, suffix string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.4f%s", *v, suffix)
}
