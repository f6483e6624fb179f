package demo

import "wm-genai-governance/internal/models"

type SelectDemoRequest struct {
	DemoID string `json:"demo_id" binding:"required"`
}

// SetInputRequest allows an empty string; only a missing field is rejected.
type SetInputRequest struct {
	Text *string `json:"text" binding:"required"`
}

type DemoListResponse struct {
	Demos []models.DemoDefinition `json:"demos"`
}
