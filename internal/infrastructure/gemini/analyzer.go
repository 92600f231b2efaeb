package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"talent-match/internal/domain/analysis"

	"google.golang.org/genai"
)

const documentInstruction = "Analyze the attached project document. Extract the project name, " +
	"a short project description, and the list of technical skills the project requires. " +
	"Use concise canonical skill names (for example \"React\", \"PostgreSQL\", \"Kubernetes\")."

type jsonGenerator interface {
	GenerateJSON(ctx context.Context, parts []*genai.Part, schema *genai.Schema) (string, error)
}

// Analyzer implements analysis.Analyzer on top of Gemini structured output.
type Analyzer struct {
	gen jsonGenerator
}

func NewAnalyzer(gen jsonGenerator) *Analyzer {
	return &Analyzer{gen: gen}
}

func (a *Analyzer) AnalyzeDocument(ctx context.Context, doc analysis.Document) (analysis.DocumentAnalysis, error) {
	if a == nil || a.gen == nil {
		return analysis.DocumentAnalysis{}, ErrNotInitialized
	}

	var filePart *genai.Part
	if analysis.IsBinaryMIME(doc.ContentType) {
		filePart = genai.NewPartFromBytes(doc.Data, mimeOnly(doc.ContentType))
	} else {
		filePart = genai.NewPartFromText(string(doc.Data))
	}

	parts := []*genai.Part{genai.NewPartFromText(documentInstruction)}
	if name := strings.TrimSpace(doc.Filename); name != "" {
		parts = append(parts, genai.NewPartFromText("File name: "+name))
	}
	parts = append(parts, filePart)

	raw, err := a.gen.GenerateJSON(ctx, parts, documentSchema())
	if err != nil {
		return analysis.DocumentAnalysis{}, err
	}

	var out analysis.DocumentAnalysis
	if err := json.Unmarshal([]byte(extractJSON(raw)), &out); err != nil {
		return analysis.DocumentAnalysis{}, fmt.Errorf("parse document analysis: %w", err)
	}
	out.ProjectName = strings.TrimSpace(out.ProjectName)
	out.ProjectDescription = strings.TrimSpace(out.ProjectDescription)
	out.ProjectSkills = cleanList(out.ProjectSkills)
	return out, nil
}

func (a *Analyzer) AnalyzeTeam(ctx context.Context, prompt string) (analysis.TeamAnalysis, error) {
	if a == nil || a.gen == nil {
		return analysis.TeamAnalysis{}, ErrNotInitialized
	}

	raw, err := a.gen.GenerateJSON(ctx, []*genai.Part{genai.NewPartFromText(prompt)}, teamSchema())
	if err != nil {
		return analysis.TeamAnalysis{}, err
	}

	var out analysis.TeamAnalysis
	if err := json.Unmarshal([]byte(extractJSON(raw)), &out); err != nil {
		return analysis.TeamAnalysis{}, fmt.Errorf("parse team analysis: %w", err)
	}
	if out.BestMatches == nil {
		out.BestMatches = []analysis.TeamMatch{}
	}
	if out.TrainingRecommendations == nil {
		out.TrainingRecommendations = []analysis.TrainingRecommendation{}
	}
	return out, nil
}

func documentSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"projectName":        {Type: genai.TypeString},
			"projectDescription": {Type: genai.TypeString},
			"projectSkills": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required:         []string{"projectName", "projectDescription", "projectSkills"},
		PropertyOrdering: []string{"projectName", "projectDescription", "projectSkills"},
	}
}

func teamSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"bestMatches": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"employeeId": {Type: genai.TypeString},
						"name":       {Type: genai.TypeString},
						"reason":     {Type: genai.TypeString},
						"score":      {Type: genai.TypeNumber},
					},
					Required: []string{"employeeId", "name", "reason"},
				},
			},
			"trainingRecommendations": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"employeeId":     {Type: genai.TypeString},
						"skill":          {Type: genai.TypeString},
						"recommendation": {Type: genai.TypeString},
					},
					Required: []string{"skill", "recommendation"},
				},
			},
		},
		Required: []string{"bestMatches", "trainingRecommendations"},
	}
}

// extractJSON strips a markdown code fence some model versions still wrap around
// structured output.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		key := strings.ToLower(it)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}

func mimeOnly(contentType string) string {
	ct := strings.TrimSpace(contentType)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}
