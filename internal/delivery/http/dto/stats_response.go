package dto

import "talent-match/internal/domain/matching"

type ScoreBucketResponse struct {
	Range string  `json:"range"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

type SkillDemandResponse struct {
	Skill     string `json:"skill"`
	Projects  int    `json:"projects"`
	Employees int    `json:"employees"`
}

type MatchStatsResponse struct {
	TotalProjects     int                   `json:"total_projects"`
	TotalEmployees    int                   `json:"total_employees"`
	DistinctSkills    int                   `json:"distinct_skills"`
	ScoredProjects    int                   `json:"scored_projects"`
	SkippedProjects   int                   `json:"skipped_projects"`
	ScoredPairs       int                   `json:"scored_pairs"`
	AverageScore      float64               `json:"average_score"`
	MaxScore          float64               `json:"max_score"`
	MinScore          float64               `json:"min_score"`
	FullMatches       int                   `json:"full_matches"`
	ZeroMatches       int                   `json:"zero_matches"`
	ScoreDistribution []ScoreBucketResponse `json:"score_distribution"`
	SkillDemand       []SkillDemandResponse `json:"skill_demand"`
}

func NewMatchStatsResponse(s matching.Stats) MatchStatsResponse {
	out := MatchStatsResponse{
		TotalProjects:     s.TotalProjects,
		TotalEmployees:    s.TotalEmployees,
		DistinctSkills:    s.DistinctSkills,
		ScoredProjects:    s.ScoredProjects,
		SkippedProjects:   s.SkippedProjects,
		ScoredPairs:       s.ScoredPairs,
		AverageScore:      s.AverageScore,
		MaxScore:          s.MaxScore,
		MinScore:          s.MinScore,
		FullMatches:       s.FullMatches,
		ZeroMatches:       s.ZeroMatches,
		ScoreDistribution: make([]ScoreBucketResponse, 0, len(s.Distribution)),
		SkillDemand:       make([]SkillDemandResponse, 0, len(s.SkillDemand)),
	}
	for _, b := range s.Distribution {
		out.ScoreDistribution = append(out.ScoreDistribution, ScoreBucketResponse{
			Range: b.Label, Min: b.Min, Max: b.Max, Count: b.Count,
		})
	}
	for _, d := range s.SkillDemand {
		out.SkillDemand = append(out.SkillDemand, SkillDemandResponse{
			Skill: d.Skill, Projects: d.Projects, Employees: d.Employees,
		})
	}
	return out
}
