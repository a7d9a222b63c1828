package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aid-appraisal/internal/appraisal"
	"aid-appraisal/internal/model"
)

func testInputs() model.AppraisalInputs {
	return model.AppraisalInputs{
		Costs: []model.Entry{
			{Year: 1, Amount: 1000},
			{Year: 2, Amount: 400},
		},
		Benefits: []model.Entry{
			{Year: 3, Amount: 500},
			{Year: 4, Amount: 600},
			{Year: 5, Amount: 700},
		},
		Params: model.Parameters{
			StandardConversionFactor: 0.9,
			ShadowWageRate:           0.9,
			ShadowExchangeRate:       0.9,
			SocialDiscountRate:       10,
			ProjectLifeYears:         5,
			ConstructionYears:        2,
		},
	}
}

func TestSensitivity_RanksDriversByNPVImpact(t *testing.T) {
	report, err := Sensitivity(appraisal.New(nil), testInputs(), 0.2)
	require.NoError(t, err)
	require.Len(t, report.Drivers, 4)

	for i := 1; i < len(report.Drivers); i++ {
		assert.GreaterOrEqual(t, report.Drivers[i-1].DeltaNPV, report.Drivers[i].DeltaNPV,
			"drivers must be sorted descending by NPV impact")
	}
	for _, d := range report.Drivers {
		assert.InDelta(t, d.DeltaNPV, absDiff(d.NPVHigh, d.NPVLow), 1e-9)
	}
}

func TestSensitivity_SwitchingValueIsTheEIRR(t *testing.T) {
	in := testInputs()
	eng := appraisal.New(nil)

	report, err := Sensitivity(eng, in, 0.2)
	require.NoError(t, err)

	base, err := eng.Appraise(in)
	require.NoError(t, err)
	require.NotNil(t, base.EIRR)
	require.NotNil(t, report.SwitchingValue)
	assert.InDelta(t, *base.EIRR, *report.SwitchingValue, 1e-9)
}

func TestSensitivity_DefaultSpread(t *testing.T) {
	report, err := Sensitivity(appraisal.New(nil), testInputs(), 0)
	require.NoError(t, err)
	assert.NotEmpty(t, report.Drivers)
}

func TestSensitivity_CostAndBenefitDriversMoveNPVOppositeWays(t *testing.T) {
	report, err := Sensitivity(appraisal.New(nil), testInputs(), 0.2)
	require.NoError(t, err)

	byName := map[string]Driver{}
	for _, d := range report.Drivers {
		byName[d.Name] = d
	}

	costs := byName["costs"]
	assert.Greater(t, costs.NPVLow, costs.NPVHigh, "cheaper costs must raise NPV")
	benefits := byName["benefits"]
	assert.Less(t, benefits.NPVLow, benefits.NPVHigh, "larger benefits must raise NPV")
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
