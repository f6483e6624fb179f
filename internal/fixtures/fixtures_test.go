package fixtures

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"wm-genai-governance/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestLoadEmbeddedFixtures(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	assert.Len(t, set.Models, 5)
	assert.Len(t, set.Compliance, 5)
	assert.Len(t, set.Evaluations, 12)
	assert.Len(t, set.Demos, 5)

	assert.Equal(t, "WM-DOC-INT-001", set.Models[0].Identifier)
	assert.Equal(t, 0, set.Models[0].Position)
	assert.Equal(t, 4, set.Models[4].Position)
	assert.Equal(t, "doc-intel", set.Demos[0].ID)
}

func TestModelRowInvariants(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, m := range set.Models {
		assert.False(t, seen[m.Identifier], "duplicate id %s", m.Identifier)
		seen[m.Identifier] = true

		assert.GreaterOrEqual(t, m.PassRate, 0.0, m.Identifier)
		assert.LessOrEqual(t, m.PassRate, 1.0, m.Identifier)
		assert.GreaterOrEqual(t, m.OpenFindings, 0, m.Identifier)

		if !m.NextRecertification.IsZero() {
			assert.True(t, m.NextRecertification.After(m.CertificationDate.Time),
				"%s: next recertification must follow certification", m.Identifier)
		}
	}
}

func TestEvaluationRowInvariants(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	for _, e := range set.Evaluations {
		assert.Greater(t, e.TestsRun, 0)
		assert.LessOrEqual(t, e.TestsPassed, e.TestsRun, "%s/%s", e.ModelName, e.Category)
		rate := float64(e.TestsPassed) / float64(e.TestsRun)
		assert.Less(t, math.Abs(e.PassRate-rate), 0.01, "%s/%s", e.ModelName, e.Category)
	}
}

func TestDemoDefinitionsMatchEndpoints(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	want := map[string][2]string{
		"doc-intel":      {"/api/models/document-intelligence/extract", "text"},
		"meeting-sum":    {"/api/models/meeting-summarizer/summarize", "transcript"},
		"risk-narrator":  {"/api/models/portfolio-risk-narrator/generate", "portfolio"},
		"reg-detector":   {"/api/models/regulatory-change-detector/analyze", "text"},
		"compliance-chk": {"/api/models/compliance-checker/check", "text"},
	}
	for _, d := range set.Demos {
		w, ok := want[d.ID]
		if assert.True(t, ok, "unexpected demo %s", d.ID) {
			assert.Equal(t, w[0], d.Endpoint)
			assert.Equal(t, w[1], d.InputKey)
			assert.NotEmpty(t, d.Placeholder)
		}
	}
}

const minimalRegistry = `
models:
  - id: M-1
    name: Model One
    version: 1.0.0
    vendor: Internal
    category: analysis
    risk_tier: low
    status: draft
    base_model: gpt-4o
    data_classification: internal
    owner: Team
    pass_rate: 0.9
evaluations:
  - {model: Model One, category: quality_correctness, tests_run: 10, tests_passed: 9, pass_rate: 0.9, run_date: 2026-01-01}
`

const duplicateModel = `  - id: M-1
    name: Model Two
    version: 1.0.0
    vendor: Internal
    category: analysis
    risk_tier: low
    status: draft
    base_model: gpt-4o
    data_classification: internal
    owner: Team
    pass_rate: 0.9
`

const minimalDemos = `
demos:
  - {id: d1, name: Demo, endpoint: /api/x, input_label: Text, input_key: text, placeholder: hi}
`

func TestParseRejectsBrokenFixtures(t *testing.T) {
	tests := []struct {
		name     string
		registry string
		demos    string
		errPart  string
	}{
		{
			name:     "Duplicate identifier",
			registry: strings.Replace(minimalRegistry, "evaluations:", duplicateModel+"evaluations:", 1),
			demos:    minimalDemos,
			errPart:  "duplicate identifier",
		},
		{
			name:     "Inconsistent evaluation rate",
			registry: strings.Replace(minimalRegistry, "pass_rate: 0.9, run_date", "pass_rate: 0.5, run_date", 1),
			demos:    minimalDemos,
			errPart:  "does not match",
		},
		{
			name:     "Evaluation for unknown model",
			registry: strings.Replace(minimalRegistry, "{model: Model One", "{model: Ghost", 1),
			demos:    minimalDemos,
			errPart:  "unknown model",
		},
		{
			name:     "Pass rate out of range",
			registry: strings.Replace(minimalRegistry, "pass_rate: 0.9\n", "pass_rate: 1.5\n", 1),
			demos:    minimalDemos,
			errPart:  "validation failed",
		},
		{
			name:     "No demos",
			registry: minimalRegistry,
			demos:    "demos: []\n",
			errPart:  "no demo definitions",
		},
		{
			name:     "Malformed YAML",
			registry: "models: [",
			demos:    minimalDemos,
			errPart:  "failed to parse registry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.registry), []byte(tt.demos))
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.errPart)
			}
		})
	}
}

func TestParseMinimal(t *testing.T) {
	set, err := Parse([]byte(minimalRegistry), []byte(minimalDemos))
	require.NoError(t, err)
	assert.Len(t, set.Models, 1)
	assert.Empty(t, set.Compliance)
	assert.Equal(t, "2026-01-01", set.Evaluations[0].RunDate.String())
}

func TestSeed(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:fixtures_seed?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.GovernedModel{}, &models.ComplianceMapping{}, &models.EvaluationRun{}, &models.DemoDefinition{}))

	set, err := Load()
	require.NoError(t, err)
	require.NoError(t, Seed(db, set))

	var count int64
	db.Model(&models.GovernedModel{}).Count(&count)
	assert.Equal(t, int64(5), count)
	db.Model(&models.EvaluationRun{}).Count(&count)
	assert.Equal(t, int64(12), count)

	var summarizer models.GovernedModel
	require.NoError(t, db.Where("identifier = ?", "WM-MTG-SUM-001").First(&summarizer).Error)
	assert.Equal(t, "2025-11-01", summarizer.CertificationDate.String())
	assert.Equal(t, "daily", summarizer.Monitoring.Cadence)
	assert.Equal(t, 0.85, summarizer.Monitoring.Thresholds["faithfulness_min"])

	var detector models.GovernedModel
	require.NoError(t, db.Where("identifier = ?", "WM-REG-DET-001").First(&detector).Error)
	assert.True(t, detector.CertificationDate.IsZero())

	var mapping models.ComplianceMapping
	require.NoError(t, db.Where("model_name = ?", "Regulatory Change Detector").First(&mapping).Error)
	assert.Empty(t, mapping.FINRA)
	assert.Len(t, mapping.OWASPLLM, 2)

	var narratorFacts models.EvaluationRun
	require.NoError(t, db.Where("category = ?", models.EvalFactVerification).First(&narratorFacts).Error)
	verified, ok := narratorFacts.Details["numbers_verified"].(json.Number)
	require.True(t, ok, "details numbers decode as json.Number")
	n, err := verified.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(48), n)
}
