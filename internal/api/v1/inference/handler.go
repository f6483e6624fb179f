package inference

import (
	"net/http"
	"strings"

	"wm-genai-governance/internal/scoring"

	"github.com/gin-gonic/gin"
)

// Model labels as they appear in demo responses.
const (
	docIntelModel     = "WM Document Intelligence v1.0.0"
	summarizerModel   = "Client Meeting Summarizer v1.3.0"
	narratorModel     = "Portfolio Risk Narrator v1.0.0"
	regDetectorModel  = "Regulatory Change Detector v1.0.0"
	complianceChecker = "Compliance Checker v1.0.0"
)

// readField decodes {key: string} and reports whether a non-blank value was sent.
// Malformed bodies are treated like a missing field.
func readField(c *gin.Context, key string) (string, bool) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		return "", false
	}
	var text string
	switch v := body[key].(type) {
	case string:
		text = v
	case nil:
		return "", false
	default:
		// The narrator accepts structured portfolio JSON as well as a string.
		text = "provided"
	}
	return text, strings.TrimSpace(text) != ""
}

func missingField(c *gin.Context, key string) {
	c.JSON(http.StatusOK, InputError{Error: "Provide '" + key + "' field"})
}

func ExtractDocument(c *gin.Context) {
	if _, ok := readField(c, "text"); !ok {
		missingField(c, "text")
		return
	}
	c.JSON(http.StatusOK, DemoResult{
		Model:        docIntelModel,
		Status:       scoring.StatusDemoMode,
		Note:         scoring.LiveModeNote,
		SampleOutput: scoring.SampleFundExtraction(),
	})
}

func SummarizeMeeting(c *gin.Context) {
	transcript, ok := readField(c, "transcript")
	if !ok {
		missingField(c, "transcript")
		return
	}
	c.JSON(http.StatusOK, DemoResult{
		Model:        summarizerModel,
		Status:       scoring.StatusDemoMode,
		SampleOutput: scoring.SummarizeMeeting(transcript),
	})
}

func GenerateRiskNarrative(c *gin.Context) {
	if _, ok := readField(c, "portfolio"); !ok {
		missingField(c, "portfolio")
		return
	}
	c.JSON(http.StatusOK, DemoResult{
		Model:        narratorModel,
		Status:       scoring.StatusDemoMode,
		SampleOutput: scoring.SampleRiskNarrative(),
	})
}

func AnalyzeRegulation(c *gin.Context) {
	if _, ok := readField(c, "text"); !ok {
		missingField(c, "text")
		return
	}
	c.JSON(http.StatusOK, DemoResult{
		Model:        regDetectorModel,
		Status:       scoring.StatusDemoMode,
		SampleOutput: scoring.SampleRegulatoryImpact(),
	})
}

func CheckCompliance(c *gin.Context) {
	text, ok := readField(c, "text")
	if !ok {
		missingField(c, "text")
		return
	}
	c.JSON(http.StatusOK, ComplianceResult{
		Model:  complianceChecker,
		Status: scoring.StatusDemoMode,
		Report: scoring.CheckCompliance(text),
	})
}
