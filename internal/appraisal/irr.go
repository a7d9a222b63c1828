package appraisal

import (
	"math"

	"aid-appraisal/internal/model"
)

// Search domain and convergence thresholds for the bisection. The domain
// [-99%, 1000%] bounds the search without excluding economically meaningful
// rates.
const (
	irrRateLow  = -0.99
	irrRateHigh = 10.0

	irrMaxIterations    = 100
	irrValueTolerance   = 1e-6
	irrBracketTolerance = 1e-7
	irrRelaxedTolerance = 1e-3
)

// IRRStatus classifies the outcome of an IRR search. Everything other than
// IRRConverged means "no rate" and maps to a null EIRR, not an error: a cash
// flow with no real root is a valid business outcome.
type IRRStatus string

const (
	IRRConverged     IRRStatus = "converged"
	IRRNoSignChange  IRRStatus = "no_sign_change"
	IRRNoBracket     IRRStatus = "no_bracket"
	IRRNoConvergence IRRStatus = "no_convergence"
)

// IRROutcome reports the solved rate (fractional, valid only when Status is
// IRRConverged) plus diagnostics for logging.
type IRROutcome struct {
	Rate       float64
	Status     IRRStatus
	Iterations int
	Residual   float64 // |NPV| at the returned rate, when converged
}

// SolveIRR finds the rate that zeroes the NPV of the net series, by bisection
// over a single bracket spanning the full search domain.
//
// Bisection (rather than Newton-Raphson) guarantees convergence given a valid
// sign bracket and needs no derivative, at the cost of more iterations; each
// evaluation is O(n) over a few dozen periods at most, so the fixed iteration
// cap bounds worst-case latency.
//
// Known limitation: for non-conventional series with more than one sign
// change, bisecting the full bracket converges to one root and silently
// ignores the others.
func SolveIRR(flows []model.NetCashFlow) IRROutcome {
	if len(flows) < 2 || !model.HasSignChange(flows) {
		// Uniformly non-negative or non-positive values: no real rate can
		// zero the NPV over the searched domain.
		return IRROutcome{Status: IRRNoSignChange}
	}

	lo, hi := irrRateLow, irrRateHigh
	fLo := npvAt(flows, lo)
	fHi := npvAt(flows, hi)

	if fLo == 0 {
		return IRROutcome{Rate: lo, Status: IRRConverged}
	}
	if fHi == 0 {
		return IRROutcome{Rate: hi, Status: IRRConverged}
	}
	if sameSign(fLo, fHi) {
		// No bracketed root inside the domain; do not extrapolate.
		return IRROutcome{Status: IRRNoBracket}
	}

	var mid, fMid float64
	for i := 1; i <= irrMaxIterations; i++ {
		mid = (lo + hi) / 2
		fMid = npvAt(flows, mid)

		if math.Abs(fMid) < irrValueTolerance || hi-lo < irrBracketTolerance {
			return IRROutcome{Rate: mid, Status: IRRConverged, Iterations: i, Residual: math.Abs(fMid)}
		}

		if sameSign(fMid, fLo) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}

	// Cap exhausted. Accept the last midpoint under a relaxed tolerance;
	// otherwise report non-convergence as a defined outcome.
	if math.Abs(fMid) < irrRelaxedTolerance {
		return IRROutcome{Rate: mid, Status: IRRConverged, Iterations: irrMaxIterations, Residual: math.Abs(fMid)}
	}
	return IRROutcome{Status: IRRNoConvergence, Iterations: irrMaxIterations, Residual: math.Abs(fMid)}
}

// npvAt evaluates NPV at a rate known to lie inside the search domain.
func npvAt(flows []model.NetCashFlow, rate float64) float64 {
	v, err := NPV(flows, rate)
	if err != nil {
		// Unreachable: the domain keeps 1+rate strictly positive.
		panic(err)
	}
	return v
}

func sameSign(a, b float64) bool {
	return (a > 0) == (b > 0)
}
