package governance

import (
	"wm-genai-governance/internal/models"
	"wm-genai-governance/internal/services"
)

type ModelListQuery struct {
	RiskTier string `form:"risk_tier" binding:"omitempty,oneof=low medium high critical"`
	Status   string `form:"status" binding:"omitempty,oneof=draft testing monitoring certified"`
	Category string `form:"category" binding:"omitempty,oneof=extraction summarization generation analysis classification"`
	Name     string `form:"name" binding:"max=100"`
}

type ModelListResponse struct {
	Models []models.GovernedModel `json:"models"`
	Total  int                    `json:"total"`
}

type ComplianceMatrixResponse struct {
	Frameworks []string                 `json:"frameworks"`
	Models     []services.ComplianceRow `json:"models"`
}

type EvaluationListQuery struct {
	Model string `form:"model" binding:"max=200"`
}

type EvaluationListResponse struct {
	Evaluations []services.EvaluationView `json:"evaluations"`
	Total       int                       `json:"total"`
}

type FindingsResponse struct {
	Findings          []services.FindingsRow `json:"findings"`
	TotalOpenFindings int                    `json:"total_open_findings"`
	TotalFindings     int                    `json:"total_findings"`
}
