package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"wm-genai-governance/internal/models"
	"wm-genai-governance/internal/services"
	"wm-genai-governance/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = map[string]*template.Template{}

func init() {
	for _, name := range []string{"dashboard", "models", "evaluations", "compliance", "demo"} {
		pages[name] = template.Must(template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"))
	}
}

type pageData struct {
	Title string
	Nav   string
	Data  interface{}
}

// BackendURL is shown on the demo page; set from configuration.
var BackendURL = "http://localhost:8080"

func render(c *gin.Context, page, title string, data interface{}) {
	var buf bytes.Buffer
	if err := pages[page].ExecuteTemplate(&buf, "layout", pageData{Title: title, Nav: page, Data: data}); err != nil {
		fail(c, fmt.Errorf("render %s: %w", page, err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func fail(c *gin.Context, err error) {
	logger.Named("web").Error("page failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.String(http.StatusInternalServerError, "Internal server error")
}

func Dashboard(c *gin.Context) {
	summary, err := services.GetGovernanceSummary(time.Now())
	if err != nil {
		fail(c, err)
		return
	}
	list, err := services.ListModels(services.ModelFilter{})
	if err != nil {
		fail(c, err)
		return
	}
	render(c, "dashboard", "Governance Dashboard", struct {
		Summary *services.GovernanceSummary
		Models  []models.GovernedModel
	}{summary, list})
}

func Models(c *gin.Context) {
	list, err := services.ListModels(services.ModelFilter{
		RiskTier: c.Query("risk_tier"),
		Status:   c.Query("status"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	render(c, "models", "Model Inventory", struct {
		Models []models.GovernedModel
	}{list})
}

func Evaluations(c *gin.Context) {
	evals, err := services.ListEvaluations(c.Query("model"))
	if err != nil {
		fail(c, err)
		return
	}
	render(c, "evaluations", "Evaluation Results", struct {
		Evaluations []services.EvaluationView
	}{evals})
}

func Compliance(c *gin.Context) {
	rows, err := services.ComplianceMatrix()
	if err != nil {
		fail(c, err)
		return
	}
	render(c, "compliance", "Compliance Matrix", struct {
		Frameworks []string
		Rows       []services.ComplianceRow
	}{models.Frameworks, rows})
}

func Demo(c *gin.Context) {
	demos, err := services.ListDemoDefinitions()
	if err != nil {
		fail(c, err)
		return
	}
	render(c, "demo", "Live Model Demo", struct {
		Demos      []models.DemoDefinition
		BackendURL string
	}{demos, BackendURL})
}

func RegisterRoutes(router *gin.Engine) {
	router.GET("/", Dashboard)
	router.GET("/models", Models)
	router.GET("/evaluations", Evaluations)
	router.GET("/compliance", Compliance)
	router.GET("/demo", Demo)
}
