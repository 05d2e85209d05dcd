package types

import "github.com/pageza/nutriplan/backend/internal/options"

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// PlanRequest is the body of POST /api/plan. The prompt is built server side.
type PlanRequest struct {
	Profile  UserProfile `json:"profile"`
	Language string      `json:"language"`
	Vibe     string      `json:"vibe"`
}

// ExportRequest is the body of POST /api/plan/export.
type ExportRequest struct {
	HTML string `json:"html" binding:"required"`
}

// OptionDefaults are the selections a fresh form starts with.
type OptionDefaults struct {
	Language string `json:"language"`
	Vibe     string `json:"vibe"`
}

// OptionsResponse is the body of GET /api/options.
type OptionsResponse struct {
	Languages []options.Choice `json:"languages"`
	Vibes     []options.Choice `json:"vibes"`
	Defaults  OptionDefaults   `json:"defaults"`
}
