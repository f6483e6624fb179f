package scoring

// Canned outputs returned by the demo endpoints. No model is called.

const (
	StatusDemoMode = "demo_mode"
	LiveModeNote   = "Set OPENAI_API_KEY for live extraction"
)

type FundExtraction struct {
	FundName        string  `json:"fund_name"`
	Ticker          string  `json:"ticker"`
	AssetClass      string  `json:"asset_class"`
	ExpenseRatioPct float64 `json:"expense_ratio_pct"`
	RiskLevel       string  `json:"risk_level"`
	ConfidenceScore float64 `json:"confidence_score"`
}

type ActionItem struct {
	Description string `json:"description"`
	Owner       string `json:"owner"`
	Priority    string `json:"priority"`
}

type MeetingSummary struct {
	Summary         string           `json:"summary"`
	ActionItems     []ActionItem     `json:"action_items"`
	ComplianceFlags []ComplianceFlag `json:"compliance_flags"`
	PIIDetected     []string         `json:"pii_detected"`
	ConfidenceScore float64          `json:"confidence_score"`
}

type RiskNarrative struct {
	ExecutiveSummary string  `json:"executive_summary"`
	RiskAssessment   string  `json:"risk_assessment"`
	ConfidenceScore  float64 `json:"confidence_score"`
}

type RegulatoryImpact struct {
	RegulationTitle   string   `json:"regulation_title"`
	Regulator         string   `json:"regulator"`
	ImpactLevel       string   `json:"impact_level"`
	Summary           string   `json:"summary"`
	AffectedAreas     []string `json:"affected_areas"`
	GenAIImplications string   `json:"genai_implications"`
	ConfidenceScore   float64  `json:"confidence_score"`
}

func SampleFundExtraction() FundExtraction {
	return FundExtraction{
		FundName:        "Morgan Stanley Growth Fund",
		Ticker:          "MSGFX",
		AssetClass:      "equity",
		ExpenseRatioPct: 0.85,
		RiskLevel:       "high",
		ConfidenceScore: 0.92,
	}
}

// SummarizeMeeting pairs the sample summary with PII detection run on the real transcript.
func SummarizeMeeting(transcript string) MeetingSummary {
	pii := DetectPII(transcript)
	return MeetingSummary{
		Summary: "Advisor reviewed client's portfolio allocation (60/30/10) and discussed interest rate " +
			"risk concerns. Recommended reducing bond duration and increasing international equity " +
			"exposure by 5%. Also discussed opening a 529 plan for client's daughter.",
		ActionItems: []ActionItem{
			{Description: "Reduce bond duration from long-term to intermediate", Owner: "advisor", Priority: "high"},
			{Description: "Increase international equity allocation by 5%", Owner: "advisor", Priority: "normal"},
			{Description: "Open 529 education savings plan", Owner: "operations", Priority: "normal"},
		},
		ComplianceFlags: PIIFlags(pii),
		PIIDetected:     pii,
		ConfidenceScore: 0.95,
	}
}

func SampleRiskNarrative() RiskNarrative {
	return RiskNarrative{
		ExecutiveSummary: "The portfolio returned 8.2% YTD, outperforming the S&P 500 benchmark by 120bps. " +
			"Risk metrics remain within policy limits, though elevated concentration in Technology (32%) " +
			"warrants monitoring.",
		RiskAssessment: "Portfolio volatility of 14.2% is consistent with the moderate risk profile. " +
			"The Sharpe ratio of 1.15 indicates efficient risk-adjusted returns. VaR(95%) at 2.8% suggests " +
			"maximum daily loss of $280K on a $10M portfolio under normal conditions.",
		ConfidenceScore: 0.93,
	}
}

func SampleRegulatoryImpact() RegulatoryImpact {
	return RegulatoryImpact{
		RegulationTitle: "FINRA Regulatory Notice 26-03: GenAI Supervision Requirements",
		Regulator:       "FINRA",
		ImpactLevel:     "high",
		Summary: "FINRA requires firms to implement supervision procedures for GenAI-generated client " +
			"communications, including pre-use testing, ongoing monitoring, and record retention.",
		AffectedAreas: []string{"Advisory Communications", "Compliance", "Technology"},
		GenAIImplications: "All 5 GenAI models must be reviewed for compliance with new supervision " +
			"requirements. Meeting Summarizer and Compliance Checker are directly affected.",
		ConfidenceScore: 0.91,
	}
}
