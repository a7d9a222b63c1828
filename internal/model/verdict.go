package model

// Verdict is a human-friendly viability call for a completed appraisal.
// Keep these values stable; they are intended for CSV output and the API.
type Verdict string

const (
	VerdictViable       Verdict = "VIABLE"
	VerdictNotViable    Verdict = "NOT_VIABLE"
	VerdictUndetermined Verdict = "UNDETERMINED"
)

// DefaultViabilityThreshold is the EIRR hurdle (percent) used when the caller
// does not supply one.
const DefaultViabilityThreshold = 15.0

// VerdictFromEIRR classifies a project by its EIRR (percent) against a hurdle
// rate. A nil EIRR (no real root) is UNDETERMINED, distinct from a low or
// negative rate which is a legitimate NOT_VIABLE outcome.
func VerdictFromEIRR(eirr *float64, thresholdPct float64) Verdict {
	if eirr == nil {
		return VerdictUndetermined
	}
	if *eirr >= thresholdPct {
		return VerdictViable
	}
	return VerdictNotViable
}
