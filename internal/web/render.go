// Package web renders the governance dashboard pages.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"wm-genai-governance/internal/models"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// Pass-rate thresholds for the evaluation bars.
const (
	PassRateGood = 0.95
	PassRateFair = 0.90
)

// RiskTierClass maps a risk tier to its badge colour.
func RiskTierClass(tier models.RiskTier) string {
	switch tier {
	case models.RiskTierLow:
		return "badge-green"
	case models.RiskTierMedium:
		return "badge-yellow"
	case models.RiskTierHigh:
		return "badge-red"
	case models.RiskTierCritical:
		return "badge-critical"
	default:
		return "badge-gray"
	}
}

// StatusClass maps a lifecycle status to its badge colour.
func StatusClass(status models.LifecycleStatus) string {
	switch status {
	case models.LifecycleStatusDraft:
		return "badge-gray"
	case models.LifecycleStatusTesting:
		return "badge-purple"
	case models.LifecycleStatusMonitoring:
		return "badge-blue"
	case models.LifecycleStatusCertified:
		return "badge-green"
	default:
		return "badge-gray"
	}
}

func PassRateBarClass(rate float64) string {
	switch {
	case rate >= PassRateGood:
		return "bar-green"
	case rate >= PassRateFair:
		return "bar-yellow"
	default:
		return "bar-red"
	}
}

// Percent formats a 0..1 ratio with one decimal, e.g. 0.955 -> "95.5%".
func Percent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}

// BarWidth is Percent clamped to 0..100 for use in a style attribute.
func BarWidth(rate float64) string {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	return Percent(rate)
}

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithXHTML(),
	),
)

// Markdown renders free text from the registry. Raw HTML in the source is not passed through.
func Markdown(text string) template.HTML {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	var out bytes.Buffer
	if err := markdownEngine.Convert([]byte(text), &out); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(out.String())
}

var acronyms = map[string]string{"pii": "PII", "rag": "RAG", "llm": "LLM"}

// Title turns a snake_case key into words: "rag_groundedness" -> "RAG Groundedness".
func Title(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		if a, ok := acronyms[w]; ok {
			words[i] = a
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

var funcs = template.FuncMap{
	"riskClass":   func(t models.RiskTier) string { return RiskTierClass(t) },
	"statusClass": func(s models.LifecycleStatus) string { return StatusClass(s) },
	"barClass":    PassRateBarClass,
	"percent":     Percent,
	"barWidth":    BarWidth,
	"markdown":    Markdown,
	"title":       Title,
	"join":        strings.Join,
}
