package scoring

import (
	"regexp"
	"strings"
)

// PII kinds in detection order.
const (
	PIISSN           = "ssn"
	PIIAccountNumber = "account_number"
	PIIPhone         = "phone"
	PIIEmail         = "email"
	PIIDollarAmount  = "dollar_amount"
)

var piiPatterns = []struct {
	kind    string
	pattern *regexp.Regexp
}{
	{PIISSN, regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)},
	{PIIAccountNumber, regexp.MustCompile(`\b\d{8,12}\b`)},
	{PIIPhone, regexp.MustCompile(`\b(?:\+1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)},
	{PIIEmail, regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)},
	{PIIDollarAmount, regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`)},
}

type ComplianceFlag struct {
	Flag        string `json:"flag"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Evidence    string `json:"evidence"`
}

// DetectPII lists the kinds of personal data that appear in text.
func DetectPII(text string) []string {
	found := []string{}
	for _, p := range piiPatterns {
		if p.pattern.MatchString(text) {
			found = append(found, p.kind)
		}
	}
	return found
}

// PIIFlags raises a high-severity flag when identifying numbers are present.
func PIIFlags(kinds []string) []ComplianceFlag {
	flags := []ComplianceFlag{}
	for _, k := range kinds {
		if k == PIISSN || k == PIIAccountNumber {
			flags = append(flags, ComplianceFlag{
				Flag:        "pii_exposed",
				Description: "Sensitive PII detected in transcript, ensure redaction before storage",
				Severity:    SeverityHigh,
				Evidence:    "PII types detected: " + strings.Join(kinds, ", "),
			})
			break
		}
	}
	return flags
}
