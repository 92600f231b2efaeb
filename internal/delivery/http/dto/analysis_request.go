package dto

type TeamAnalysisRequest struct {
	Prompt    string `json:"prompt"`
	ProjectID string `json:"project_id"`
}
