package model

// AppraisalInputs represents a canonical "inputs to the engine" object:
// the two year/amount series plus the shadow-pricing parameters. Handlers,
// the CLI and tests all build one of these before calling the engine.
type AppraisalInputs struct {
	Costs    []Entry
	Benefits []Entry
	Params   Parameters
}

// Validate runs the row-level and parameter-level checks the engine requires
// before any arithmetic. A failure here aborts the whole appraisal.
func (in AppraisalInputs) Validate() error {
	if err := ValidateEntries(in.Costs); err != nil {
		return err
	}
	if err := ValidateEntries(in.Benefits); err != nil {
		return err
	}
	return in.Params.Validate()
}
