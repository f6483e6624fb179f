package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wm-genai-governance/internal/database"
	"wm-genai-governance/internal/fixtures"

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
	RegisterRoutes(router)
	return router
}

func TestPagesRender(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		path     string
		contains []string
	}{
		{"/", []string{"Governance Dashboard", "Governed models", "WM Document Intelligence", "badge-red", "bar-green"}},
		{"/models", []string{"Model Inventory", "<strong>ChromaDB</strong>", "not certified", "badge-purple", "badge-blue"}},
		{"/evaluations", []string{"Evaluation Results", "RAG Groundedness", "PII Redaction", "93.3%"}},
		{"/compliance", []string{"Compliance Matrix", "OWASP LLM Top 10", "FINRA 2210 (Communications)", "none"}},
		{"/demo", []string{"Live Model Demo", `value="compliance-chk"`, "/api/v1/demo/sessions"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", tt.path, nil)
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			body := w.Body.String()
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
		})
	}
}

func TestModelsPageFilter(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/models?risk_tier=critical", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No models match.")
}

func TestNavMarksActivePage(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/compliance", nil)
	router.ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), `<a href="/compliance" class="active">`)
}
