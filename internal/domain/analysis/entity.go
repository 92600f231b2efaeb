package analysis

// Document is an uploaded file handed to the document analyzer.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

type DocumentAnalysis struct {
	ProjectName        string   `json:"projectName"`
	ProjectDescription string   `json:"projectDescription"`
	ProjectSkills      []string `json:"projectSkills"`
}

type TeamMatch struct {
	EmployeeID string  `json:"employeeId"`
	Name       string  `json:"name"`
	Reason     string  `json:"reason"`
	Score      float64 `json:"score"`
}

type TrainingRecommendation struct {
	EmployeeID     string `json:"employeeId"`
	Skill          string `json:"skill"`
	Recommendation string `json:"recommendation"`
}

type TeamAnalysis struct {
	BestMatches             []TeamMatch              `json:"bestMatches"`
	TrainingRecommendations []TrainingRecommendation `json:"trainingRecommendations"`
}
