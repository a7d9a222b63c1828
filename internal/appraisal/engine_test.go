package appraisal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aid-appraisal/internal/model"
)

func paramsWith(scf, sdr float64) model.Parameters {
	return model.Parameters{
		StandardConversionFactor: scf,
		ShadowWageRate:           scf,
		ShadowExchangeRate:       scf,
		SocialDiscountRate:       sdr,
		ProjectLifeYears:         20,
		ConstructionYears:        2,
	}
}

func TestAppraise_SimpleTwoPeriodProject(t *testing.T) {
	res, err := New(nil).Appraise(model.AppraisalInputs{
		Costs:    []model.Entry{{Year: 1, Amount: 100}},
		Benefits: []model.Entry{{Year: 2, Amount: 110}},
		Params:   paramsWith(1.0, 5),
	})
	require.NoError(t, err)

	require.NotNil(t, res.EIRR)
	assert.InDelta(t, 10.0, *res.EIRR, 0.01) // percent
	assert.InDelta(t, 4.7619, res.NPV, 1e-3)
	require.NotNil(t, res.BCR)
	assert.InDelta(t, 1.0476, *res.BCR, 1e-3)
	assert.Equal(t, model.VerdictNotViable, res.Verdict) // 10% < 15% hurdle
}

func TestAppraise_NonViableProjectHasNegativeEIRR(t *testing.T) {
	res, err := New(nil).Appraise(model.AppraisalInputs{
		Costs: []model.Entry{
			{Year: 1, Amount: 10}, {Year: 2, Amount: 10}, {Year: 3, Amount: 10},
			{Year: 4, Amount: 2}, {Year: 5, Amount: 2},
		},
		Benefits: []model.Entry{
			{Year: 4, Amount: 8}, {Year: 5, Amount: 8},
		},
		Params: paramsWith(0.9, 10),
	})
	require.NoError(t, err)

	// Net flow [-9,-9,-9,6.2,6.2]: a sign change exists at negative rates,
	// so this is a defined (deeply negative) EIRR, not a nil.
	require.NotNil(t, res.EIRR)
	assert.Less(t, *res.EIRR, 0.0)
	assert.InDelta(t, -27.0, *res.EIRR, 2.0)
	assert.Equal(t, model.VerdictNotViable, res.Verdict)
	assert.Negative(t, res.NPV)
}

func TestAppraise_UndefinedEIRRStillComputesNPV(t *testing.T) {
	res, err := New(nil).Appraise(model.AppraisalInputs{
		Costs:    []model.Entry{{Year: 1, Amount: 10}, {Year: 2, Amount: 10}},
		Benefits: nil,
		Params:   paramsWith(1.0, 10),
	})
	require.NoError(t, err)

	assert.Nil(t, res.EIRR)
	assert.Equal(t, IRRNoSignChange, res.IRRStatus)
	assert.Equal(t, model.VerdictUndetermined, res.Verdict)
	// NPV stays fully defined and negative.
	assert.Negative(t, res.NPV)
	// Benefits are all zero, so BCR is 0/costs = 0, still defined.
	require.NotNil(t, res.BCR)
	assert.Zero(t, *res.BCR)
}

func TestAppraise_ValidationFailureAborts(t *testing.T) {
	cases := []model.AppraisalInputs{
		{
			Costs:  []model.Entry{{Year: 1, Amount: math.NaN()}},
			Params: paramsWith(1.0, 10),
		},
		{
			Costs:  []model.Entry{{Year: 1, Amount: 10}},
			Params: paramsWith(0, 10), // non-positive SCF
		},
		{
			Costs:  []model.Entry{{Year: 1, Amount: 10}},
			Params: paramsWith(1.0, -100), // discount base would be <= 0
		},
	}
	for i, in := range cases {
		_, err := New(nil).Appraise(in)
		assert.Error(t, err, "case %d", i)
	}
}

func TestAppraise_EmptyInputs(t *testing.T) {
	res, err := New(nil).Appraise(model.AppraisalInputs{Params: paramsWith(1.0, 10)})
	require.NoError(t, err)
	assert.Empty(t, res.Ledger)
	assert.Zero(t, res.NPV)
	assert.Nil(t, res.EIRR)
	assert.Nil(t, res.BCR)
}

func TestAppraise_LedgerReconcilesWithNPV(t *testing.T) {
	res, err := New(nil).Appraise(model.AppraisalInputs{
		Costs: []model.Entry{
			{Year: 1, Amount: 500}, {Year: 2, Amount: 300},
		},
		Benefits: []model.Entry{
			{Year: 3, Amount: 250}, {Year: 4, Amount: 400}, {Year: 5, Amount: 450},
		},
		Params: paramsWith(0.9, 12),
	})
	require.NoError(t, err)

	require.Len(t, res.Ledger, 5)
	last := res.Ledger[len(res.Ledger)-1]
	assert.InDelta(t, res.NPV, last.CumDiscountedNet, 1e-9,
		"cumulative discounted net must converge on the NPV")
	for t2, row := range res.Ledger {
		assert.Equal(t, t2, row.Period)
	}
}
