package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aid-appraisal/internal/model"
)

func TestLoadProjectJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.json")
	content := `{
		"project_name": "irrigation scheme",
		"cost_data": [{"year": 1, "amount": 100}, {"year": 2, "amount": 50, "category": "labor"}],
		"benefit_data": [{"year": 3, "amount": 200}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ps, err := LoadProjectJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "irrigation scheme", ps.ProjectName)
	require.Len(t, ps.CostData, 2)
	assert.Equal(t, model.CategoryLabor, ps.CostData[1].Category)
	require.Len(t, ps.BenefitData, 1)
}

func TestLoadProjectJSON_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadProjectJSON(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadProjectJSON(bad)
	assert.Error(t, err)

	badCategory := filepath.Join(dir, "cat.json")
	require.NoError(t, os.WriteFile(badCategory,
		[]byte(`{"cost_data": [{"year": 1, "amount": 10, "category": "imported"}], "benefit_data": []}`), 0o644))
	_, err = LoadProjectJSON(badCategory)
	assert.Error(t, err)
}

func TestGroupByYear(t *testing.T) {
	totals := GroupByYear([]model.Entry{
		{Year: 1, Amount: 10},
		{Year: 1, Amount: 5},
		{Year: 3, Amount: 2},
	})
	assert.InDelta(t, 15.0, totals[1], 1e-9)
	assert.InDelta(t, 2.0, totals[3], 1e-9)
	assert.Len(t, totals, 2)
}
