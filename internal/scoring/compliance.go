// Package scoring holds the deterministic checks behind the demo model endpoints.
package scoring

import (
	"regexp"
	"strings"
)

type Decision string

const (
	DecisionApproved        Decision = "approved"
	DecisionRequiresChanges Decision = "requires_changes"
	DecisionRejected        Decision = "rejected"
)

const (
	ViolationPromissoryLanguage = "promissory_language"
	ViolationPIIInExternal      = "pii_in_external_communication"

	SeverityHigh = "high"

	// evidenceContext is how many bytes around a match are quoted as evidence.
	evidenceContext = 20
)

type Violation struct {
	Type         string `json:"violation_type"`
	Severity     string `json:"severity"`
	Description  string `json:"description"`
	Evidence     string `json:"evidence"`
	Regulation   string `json:"regulation"`
	SuggestedFix string `json:"suggested_fix"`
}

type ComplianceReport struct {
	Decision            Decision    `json:"decision"`
	RiskScore           float64     `json:"overall_risk_score"`
	Violations          []Violation `json:"violations"`
	RequiredDisclosures []string    `json:"required_disclosures"`
}

var promissoryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bguarantee[ds]?\b`),
	regexp.MustCompile(`(?i)\brisk[\s-]?free\b`),
	regexp.MustCompile(`(?i)\bcan'?t lose\b`),
	regexp.MustCompile(`(?i)\bwill definitely\b`),
	regexp.MustCompile(`(?i)\bsure thing\b`),
	regexp.MustCompile(`(?i)\bno risk\b`),
	regexp.MustCompile(`(?i)\bcertain to\b`),
	regexp.MustCompile(`(?i)\bassured\b`),
}

var ssnPattern = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)

const ssnMask = "XXX-XX-XXXX"

var performancePattern = regexp.MustCompile(`(?i)\b(returned|return of|outperform\w*|ytd|annuali[sz]ed)\b|\d+(\.\d+)?%`)

var disclaimerPhrases = []string{"past performance", "no guarantee", "not indicative", "may lose value"}

const performanceDisclosure = "Past performance is not indicative of future results. Investments may lose value."

// CheckCompliance screens a client communication with the rule-based checks.
func CheckCompliance(text string) ComplianceReport {
	report := ComplianceReport{
		Violations:          []Violation{},
		RequiredDisclosures: []string{},
	}

	// Same length as the original so match offsets stay valid.
	masked := ssnPattern.ReplaceAllString(text, ssnMask)

	for _, p := range promissoryPatterns {
		loc := p.FindStringIndex(masked)
		if loc == nil {
			continue
		}
		phrase := strings.ToLower(masked[loc[0]:loc[1]])
		if promissoryAlreadyFlagged(report.Violations, phrase) {
			continue
		}
		report.Violations = append(report.Violations, Violation{
			Type:         ViolationPromissoryLanguage,
			Severity:     SeverityHigh,
			Description:  "Promissory language detected: '" + phrase + "'",
			Evidence:     evidence(masked, loc[0], loc[1]),
			Regulation:   "FINRA Rule 2210(d)(1)(B)",
			SuggestedFix: "Remove '" + phrase + "' and replace with balanced language acknowledging risks",
		})
	}

	if ssnPattern.MatchString(text) {
		report.Violations = append(report.Violations, Violation{
			Type:         ViolationPIIInExternal,
			Severity:     SeverityHigh,
			Description:  "Social Security Number detected in external communication",
			Evidence:     "[SSN REDACTED]",
			Regulation:   "Reg S-P (Privacy of Consumer Financial Information)",
			SuggestedFix: "Remove all SSN references from external communications",
		})
	}

	if performancePattern.MatchString(text) && !hasDisclaimer(text) {
		report.RequiredDisclosures = append(report.RequiredDisclosures, performanceDisclosure)
	}

	high := 0
	for _, v := range report.Violations {
		if v.Severity == SeverityHigh {
			high++
		}
	}
	report.Decision = decide(high, len(report.Violations))
	report.RiskScore = riskScore(high, len(report.Violations))
	return report
}

func decide(high, total int) Decision {
	switch {
	case high >= 2:
		return DecisionRejected
	case high == 1 || total >= 3:
		return DecisionRequiresChanges
	default:
		return DecisionApproved
	}
}

func riskScore(high, total int) float64 {
	score := float64(total)*0.2 + float64(high)*0.3
	if score > 1 {
		return 1
	}
	return score
}

func promissoryAlreadyFlagged(violations []Violation, phrase string) bool {
	for _, v := range violations {
		if v.Type == ViolationPromissoryLanguage && strings.Contains(strings.ToLower(v.Evidence), phrase) {
			return true
		}
	}
	return false
}

func hasDisclaimer(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range disclaimerPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func evidence(text string, start, end int) string {
	from := start - evidenceContext
	if from < 0 {
		from = 0
	}
	to := end + evidenceContext
	if to > len(text) {
		to = len(text)
	}
	return strings.ToValidUTF8(text[from:to], "")
}
