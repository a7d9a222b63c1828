package appraisal

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"period",
		"year",
		"cost",
		"adjusted_cost",
		"benefit",
		"net",
		"discount_factor",
		"discounted_net",
		"cum_discounted_net",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Period),
			strconv.Itoa(r.Year),
			fmtFloat(r.Cost),
			fmtFloat(r.AdjustedCost),
			fmtFloat(r.Benefit),
			fmtFloat(r.Net),
			fmtFloat(r.DiscountFactor),
			fmtFloat(r.DiscountedNet),
			fmtFloat(r.CumDiscountedNet),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
