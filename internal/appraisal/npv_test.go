package appraisal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aid-appraisal/internal/model"
)

func flowsOf(values ...float64) []model.NetCashFlow {
	out := make([]model.NetCashFlow, len(values))
	for i, v := range values {
		out[i] = model.NetCashFlow{Period: i, Value: v}
	}
	return out
}

func TestNPV_TwoPeriodProject(t *testing.T) {
	// -100 + 110/1.05
	npv, err := NPV(flowsOf(-100, 110), 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 4.7619, npv, 1e-3)
}

func TestNPV_ZeroRateIsPlainSum(t *testing.T) {
	npv, err := NPV(flowsOf(-10, 4, 4, 4), 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, npv, 1e-9)
}

func TestNPV_EmptySeries(t *testing.T) {
	npv, err := NPV(nil, 0.1)
	require.NoError(t, err)
	assert.Zero(t, npv)
}

func TestNPV_RejectsRateAtOrBelowMinusOne(t *testing.T) {
	for _, rate := range []float64{-1, -1.5} {
		_, err := NPV(flowsOf(-100, 110), rate)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRate)
	}
}

func TestNPV_StrictlyDecreasingForConventionalProject(t *testing.T) {
	// Negative flows followed by positive ones: NPV(r) is strictly
	// decreasing in r over (-1, inf).
	flows := flowsOf(-100, -50, 60, 70, 80)
	rates := []float64{-0.5, -0.2, 0, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}
	prev, err := NPV(flows, rates[0])
	require.NoError(t, err)
	for _, r := range rates[1:] {
		cur, err := NPV(flows, r)
		require.NoError(t, err)
		assert.Less(t, cur, prev, "NPV must decrease between rate %v and the previous rate", r)
		prev = cur
	}
}
