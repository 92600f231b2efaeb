package dto

import (
	"talent-match/internal/domain/matching"
	"talent-match/internal/usecase"

	"github.com/google/uuid"
)

type MatchResponse struct {
	EmployeeID    uuid.UUID `json:"employee_id"`
	SkillFitScore float64   `json:"skill_fit_score"`
	MatchedSkills []string  `json:"matched_skills"`
	MissingSkills []string  `json:"missing_skills"`
}

type MatchListResponse struct {
	ProjectID    uuid.UUID       `json:"project_id"`
	TotalMatches int             `json:"total_matches"`
	Matches      []MatchResponse `json:"matches"`
}

type DetailedMatchResponse struct {
	MatchResponse
	EmployeeDetails EmployeeResponse `json:"employee_details"`
}

type DetailedMatchListResponse struct {
	ProjectID    uuid.UUID               `json:"project_id"`
	TotalMatches int                     `json:"total_matches"`
	Matches      []DetailedMatchResponse `json:"matches"`
}

func newMatchResponse(m matching.Match) MatchResponse {
	return MatchResponse{
		EmployeeID:    m.EmployeeID,
		SkillFitScore: m.Score,
		MatchedSkills: nonNil(m.MatchedSkills),
		MissingSkills: nonNil(m.MissingSkills),
	}
}

func NewMatchListResponse(projectID uuid.UUID, items []matching.Match) MatchListResponse {
	out := MatchListResponse{
		ProjectID:    projectID,
		TotalMatches: len(items),
		Matches:      make([]MatchResponse, 0, len(items)),
	}
	for _, m := range items {
		out.Matches = append(out.Matches, newMatchResponse(m))
	}
	return out
}

func NewDetailedMatchListResponse(projectID uuid.UUID, items []usecase.DetailedMatch) DetailedMatchListResponse {
	out := DetailedMatchListResponse{
		ProjectID:    projectID,
		TotalMatches: len(items),
		Matches:      make([]DetailedMatchResponse, 0, len(items)),
	}
	for _, m := range items {
		out.Matches = append(out.Matches, DetailedMatchResponse{
			MatchResponse:   newMatchResponse(m.Match),
			EmployeeDetails: NewEmployeeResponse(m.Employee),
		})
	}
	return out
}
