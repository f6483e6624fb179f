package web

import (
	"strings"
	"testing"

	"wm-genai-governance/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRiskTierClass(t *testing.T) {
	tests := []struct {
		tier models.RiskTier
		want string
	}{
		{models.RiskTierLow, "badge-green"},
		{models.RiskTierMedium, "badge-yellow"},
		{models.RiskTierHigh, "badge-red"},
		{models.RiskTierCritical, "badge-critical"},
		{"unknown", "badge-gray"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskTierClass(tt.tier), string(tt.tier))
	}
}

func TestStatusClass(t *testing.T) {
	tests := []struct {
		status models.LifecycleStatus
		want   string
	}{
		{models.LifecycleStatusDraft, "badge-gray"},
		{models.LifecycleStatusTesting, "badge-purple"},
		{models.LifecycleStatusMonitoring, "badge-blue"},
		{models.LifecycleStatusCertified, "badge-green"},
		{"retired", "badge-gray"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusClass(tt.status), string(tt.status))
	}
}

func TestPassRateBarClass(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "bar-green"},
		{0.95, "bar-green"},
		{0.9499, "bar-yellow"},
		{0.90, "bar-yellow"},
		{0.8999, "bar-red"},
		{0, "bar-red"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PassRateBarClass(tt.rate), "rate %v", tt.rate)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "95.5%", Percent(0.955))
	assert.Equal(t, "100.0%", Percent(1))
	assert.Equal(t, "0.0%", Percent(0))
	assert.Equal(t, "100.0%", BarWidth(1.2))
	assert.Equal(t, "0.0%", BarWidth(-0.1))
}

func TestMarkdown(t *testing.T) {
	out := string(Markdown("RAG pipeline with **ChromaDB** vector store"))
	assert.Contains(t, out, "<strong>ChromaDB</strong>")
	assert.True(t, strings.HasPrefix(out, "<p>"))

	assert.Equal(t, "", string(Markdown("   ")))

	unsafe := string(Markdown("hello <script>alert(1)</script>"))
	assert.NotContains(t, unsafe, "<script>")
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Quality Correctness", Title("quality_correctness"))
	assert.Equal(t, "PII Redaction", Title("pii_redaction"))
	assert.Equal(t, "RAG Groundedness", Title("rag_groundedness"))
	assert.Equal(t, "", Title(""))
}
