package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aid-appraisal/internal/api/models"
	"aid-appraisal/internal/appraisal"
	"aid-appraisal/internal/model"
	"aid-appraisal/internal/store"
)

func newTestRouter(st store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAppraisalHandler(appraisal.New(nil), st, nil)

	api := router.Group("/api/v1")
	api.POST("/appraisals", h.RunAppraisal)
	api.GET("/appraisals", h.ListAppraisals)
	api.GET("/appraisals/:id", h.GetAppraisal)
	api.POST("/appraisals/sensitivity", h.RunSensitivity)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func simpleRequest() models.AppraisalRequest {
	return models.AppraisalRequest{
		ProjectName: "two-period project",
		CostData:    []model.Entry{{Year: 1, Amount: 100}},
		BenefitData: []model.Entry{{Year: 2, Amount: 110}},
		Params: models.ParamsPayload{
			StandardConversionFactor: 1.0,
			SocialDiscountRate:       5,
			ProjectLifeYears:         2,
		},
	}
}

func TestRunAppraisal_PersistsAndReturnsMetrics(t *testing.T) {
	st := store.NewMemory()
	router := newTestRouter(st)

	w := doJSON(t, router, http.MethodPost, "/api/v1/appraisals", simpleRequest())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.AppraisalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	assert.NotEmpty(t, resp.ID)
	require.NotNil(t, resp.Summary.EIRR)
	assert.InDelta(t, 10.0, *resp.Summary.EIRR, 0.01)
	assert.InDelta(t, 4.7619, resp.Summary.NPV, 1e-3)
	require.NotNil(t, resp.Summary.BCR)
	assert.InDelta(t, 1.0476, *resp.Summary.BCR, 1e-3)
	assert.Empty(t, resp.Ledger, "ledger is opt-in")

	// The persisted record is retrievable.
	got := doJSON(t, router, http.MethodGet, "/api/v1/appraisals/"+resp.ID, nil)
	require.Equal(t, http.StatusOK, got.Code)
	var rec store.Record
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &rec))
	assert.Equal(t, "eirr", rec.AppraisalType)
	assert.Equal(t, "two-period project", rec.ProjectName)
	require.NotNil(t, rec.EIRRResult)
	assert.InDelta(t, 10.0, *rec.EIRRResult, 0.01)
}

func TestRunAppraisal_PreviewSkipsPersistence(t *testing.T) {
	st := store.NewMemory()
	router := newTestRouter(st)

	req := simpleRequest()
	req.Options.Preview = true
	req.Options.IncludeLedger = true

	w := doJSON(t, router, http.MethodPost, "/api/v1/appraisals", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.AppraisalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.ID)
	assert.Len(t, resp.Ledger, 2)

	list := doJSON(t, router, http.MethodGet, "/api/v1/appraisals", nil)
	require.Equal(t, http.StatusOK, list.Code)
	var listResp struct {
		Appraisals []store.Record `json:"appraisals"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Appraisals)
}

func TestRunAppraisal_UndefinedMetricsAreNull(t *testing.T) {
	router := newTestRouter(store.NewMemory())

	req := models.AppraisalRequest{
		CostData:    []model.Entry{{Year: 1, Amount: 10}, {Year: 2, Amount: 10}},
		BenefitData: []model.Entry{},
		Params: models.ParamsPayload{
			StandardConversionFactor: 1.0,
			SocialDiscountRate:       10,
		},
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/appraisals", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	summary := raw["summary"].(map[string]any)
	assert.Nil(t, summary["eirr"], "undefined EIRR serializes as null")
}

func TestRunAppraisal_InvalidInputs(t *testing.T) {
	router := newTestRouter(store.NewMemory())

	req := simpleRequest()
	req.Params.StandardConversionFactor = -1

	w := doJSON(t, router, http.MethodPost, "/api/v1/appraisals", req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_INPUTS", resp.Error.Code)
}

func TestRunAppraisal_WithPreset(t *testing.T) {
	dir := t.TempDir()
	preset := `
params:
  name: Test preset
  standard_conversion_factor: 0.9
  social_discount_rate: 10
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "national.yaml"), []byte(preset), 0o644))
	t.Setenv("PARAMS_DIR", dir)

	router := newTestRouter(store.NewMemory())
	req := simpleRequest()
	req.Preset = "national"
	req.Params = models.ParamsPayload{SocialDiscountRate: 5} // override SDR only

	w := doJSON(t, router, http.MethodPost, "/api/v1/appraisals", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.AppraisalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// SCF 0.9 from the preset: flow [-90, 110], NPV@5% = -90 + 110/1.05.
	assert.InDelta(t, 14.7619, resp.Summary.NPV, 1e-3)
}

func TestGetAppraisal_Errors(t *testing.T) {
	router := newTestRouter(store.NewMemory())

	w := doJSON(t, router, http.MethodGet, "/api/v1/appraisals/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/appraisals/00000000-0000-0000-0000-000000000001", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRunSensitivity(t *testing.T) {
	router := newTestRouter(store.NewMemory())

	req := models.SensitivityRequest{
		Base:   simpleRequest(),
		Spread: 0.2,
		Variations: []models.Variation{
			{Name: "high sdr", Params: models.ParamsPayload{SocialDiscountRate: 15}},
		},
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/appraisals/sensitivity", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SensitivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Drivers)
	require.NotNil(t, resp.SwitchingValue)
	assert.InDelta(t, 10.0, *resp.SwitchingValue, 0.01)
	require.Len(t, resp.Comparison, 1)
	assert.Equal(t, "high sdr", resp.Comparison[0].Name)
	// NPV at 15% is below NPV at 5%.
	assert.Less(t, resp.Comparison[0].Summary.NPV, resp.BaseNPV)
}
