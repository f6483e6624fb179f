package governance_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wm-genai-governance/internal/api/v1/governance"
	"wm-genai-governance/internal/database"
	"wm-genai-governance/internal/fixtures"
	"wm-genai-governance/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	set, err := fixtures.Load()
	require.NoError(t, err)
	require.NoError(t, fixtures.Seed(db, set))
	database.DB = db
	database.RedisClient = nil
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	router := gin.New()
	governance.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	router.ServeHTTP(w, req)
	return w
}

type envelope[T any] struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var resp envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetModels(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedTotal  int
	}{
		{"All models", "", http.StatusOK, 5},
		{"By risk tier", "?risk_tier=medium", http.StatusOK, 2},
		{"By status", "?status=monitoring", http.StatusOK, 1},
		{"By category", "?category=extraction", http.StatusOK, 1},
		{"By name", "?name=narrator", http.StatusOK, 1},
		{"Unknown risk tier", "?risk_tier=extreme", http.StatusBadRequest, 0},
		{"Unknown status", "?status=retired", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(router, "/api/v1/governance/models"+tt.query)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				resp := decode[governance.ModelListResponse](t, w)
				assert.Equal(t, tt.expectedTotal, resp.Data.Total)
				assert.Len(t, resp.Data.Models, tt.expectedTotal)
			}
		})
	}
}

func TestGetModelsJSONShape(t *testing.T) {
	router := setupRouter(t)

	w := get(router, "/api/v1/governance/models?risk_tier=medium&status=testing")
	require.Equal(t, http.StatusOK, w.Code)

	var raw struct {
		Data struct {
			Models []map[string]interface{} `json:"models"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Len(t, raw.Data.Models, 1)

	m := raw.Data.Models[0]
	assert.Equal(t, "WM-REG-DET-001", m["id"])
	assert.Equal(t, "testing", m["status"])
	assert.Nil(t, m["certification_date"])
	assert.Nil(t, m["next_recertification"])
	assert.NotContains(t, m, "Position")
}

func TestGetModel(t *testing.T) {
	router := setupRouter(t)

	w := get(router, "/api/v1/governance/models/WM-CMP-CHK-001")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[services.ModelDetail](t, w)
	assert.Equal(t, "Client Communication Compliance Checker", resp.Data.Model.Name)
	assert.Len(t, resp.Data.Evaluations, 3)
	assert.Len(t, resp.Data.Compliance["FINRA"], 3)

	w = get(router, "/api/v1/governance/models/WM-UNKNOWN")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, decode[interface{}](t, w).Status)
}

func TestGetSummary(t *testing.T) {
	router := setupRouter(t)

	w := get(router, "/api/v1/governance/summary")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[services.GovernanceSummary](t, w)
	assert.Equal(t, 5, resp.Data.TotalModels)
	assert.Equal(t, 4, resp.Data.CertifiedCount)
	assert.Equal(t, 12, resp.Data.TotalEvalRuns)
	assert.Equal(t, 5, resp.Data.TotalOpenFindings)
}

func TestGetComplianceMatrix(t *testing.T) {
	router := setupRouter(t)

	w := get(router, "/api/v1/governance/compliance")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[governance.ComplianceMatrixResponse](t, w)
	assert.Equal(t, []string{"SR 11-7", "NIST AI 600-1", "OWASP LLM Top 10", "FINRA"}, resp.Data.Frameworks)
	assert.Len(t, resp.Data.Models, 5)
}

func TestGetEvaluations(t *testing.T) {
	router := setupRouter(t)

	w := get(router, "/api/v1/governance/evaluations")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 12, decode[governance.EvaluationListResponse](t, w).Data.Total)

	w = get(router, "/api/v1/governance/evaluations?model=WM+Document+Intelligence")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[governance.EvaluationListResponse](t, w)
	assert.Equal(t, 3, resp.Data.Total)
	assert.Equal(t, 1, resp.Data.Evaluations[0].Failed)
}

func TestGetFindings(t *testing.T) {
	router := setupRouter(t)

	w := get(router, "/api/v1/governance/findings")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[governance.FindingsResponse](t, w)
	assert.Len(t, resp.Data.Findings, 5)
	assert.Equal(t, 5, resp.Data.TotalOpenFindings)
	assert.Equal(t, 14, resp.Data.TotalFindings)
}
