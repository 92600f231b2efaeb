package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"talent-match/internal/domain/analysis"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/project"
	"talent-match/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxTeamPromptRunes = 32000
	maxRankedInPrompt  = 20
)

type AnalysisUsecase interface {
	AnalyzeDocument(ctx context.Context, doc analysis.Document) (analysis.DocumentAnalysis, error)
	AnalyzeTeam(ctx context.Context, in TeamAnalysisInput) (analysis.TeamAnalysis, error)
}

type TeamAnalysisInput struct {
	Prompt string
	// ProjectID, when set, appends the project's requirements and the skill-coverage
	// ranking to the prompt.
	ProjectID *uuid.UUID
}

type AnalysisOptions struct {
	MaxUploadBytes int64
	CacheTTL       time.Duration
}

type Analysis struct {
	analyzer analysis.Analyzer
	cache    AnalysisCache
	projects project.Repository
	matching MatchingUsecase
	opts     AnalysisOptions
	logger   *zap.Logger
}

// NewAnalysisUsecase wires the analysis flow. analyzer and cache may be nil: without an
// analyzer every call fails with ErrAnalyzerUnavailable, without a cache nothing is cached.
func NewAnalysisUsecase(analyzer analysis.Analyzer, cache AnalysisCache, projects project.Repository, matching MatchingUsecase, opts AnalysisOptions, log *zap.Logger) *Analysis {
	return &Analysis{
		analyzer: analyzer,
		cache:    cache,
		projects: projects,
		matching: matching,
		opts:     opts,
		logger:   logger.OrNop(log).Named("analysis"),
	}
}

func (u *Analysis) AnalyzeDocument(ctx context.Context, doc analysis.Document) (analysis.DocumentAnalysis, error) {
	if len(doc.Data) == 0 {
		return analysis.DocumentAnalysis{}, fmt.Errorf("%w: empty document", ErrInvalidInput)
	}
	if u.opts.MaxUploadBytes > 0 && int64(len(doc.Data)) > u.opts.MaxUploadBytes {
		return analysis.DocumentAnalysis{}, ErrDocumentTooLarge
	}

	ct := strings.TrimSpace(doc.ContentType)
	if ct == "" || strings.EqualFold(ct, "application/octet-stream") {
		ct = http.DetectContentType(doc.Data)
	}
	doc.ContentType = ct
	if !analysis.IsBinaryMIME(ct) && !utf8.Valid(doc.Data) {
		return analysis.DocumentAnalysis{}, fmt.Errorf("%w: unsupported document type %q", ErrInvalidInput, ct)
	}

	if u.analyzer == nil {
		return analysis.DocumentAnalysis{}, ErrAnalyzerUnavailable
	}

	key := DocumentAnalysisCacheKey(ct, doc.Data)
	var cached analysis.DocumentAnalysis
	if u.lookup(ctx, key, &cached) {
		return cached, nil
	}

	start := time.Now()
	out, err := u.analyzer.AnalyzeDocument(ctx, doc)
	if err != nil {
		u.logger.Error("document analysis failed",
			zap.String("filename", doc.Filename),
			zap.String("content_type", ct),
			zap.Int("size", len(doc.Data)),
			zap.Error(err),
		)
		return analysis.DocumentAnalysis{}, fmt.Errorf("%w: %w", ErrExternalService, err)
	}
	u.logger.Info("document analyzed",
		zap.String("filename", doc.Filename),
		zap.String("content_type", ct),
		zap.Int("skills", len(out.ProjectSkills)),
		zap.Duration("latency", time.Since(start)),
	)

	u.store(ctx, key, out)
	return out, nil
}

func (u *Analysis) AnalyzeTeam(ctx context.Context, in TeamAnalysisInput) (analysis.TeamAnalysis, error) {
	prompt := strings.TrimSpace(in.Prompt)
	if prompt == "" {
		return analysis.TeamAnalysis{}, fmt.Errorf("%w: prompt is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(prompt) > maxTeamPromptRunes {
		return analysis.TeamAnalysis{}, fmt.Errorf("%w: prompt exceeds %d characters", ErrInvalidInput, maxTeamPromptRunes)
	}

	if in.ProjectID != nil {
		enriched, err := u.projectContext(ctx, *in.ProjectID)
		if err != nil {
			return analysis.TeamAnalysis{}, err
		}
		prompt += "\n\n" + enriched
	}

	if u.analyzer == nil {
		return analysis.TeamAnalysis{}, ErrAnalyzerUnavailable
	}

	key := TeamAnalysisCacheKey(prompt)
	var cached analysis.TeamAnalysis
	if u.lookup(ctx, key, &cached) {
		return cached, nil
	}

	start := time.Now()
	out, err := u.analyzer.AnalyzeTeam(ctx, prompt)
	if err != nil {
		u.logger.Error("team analysis failed",
			zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
			zap.String("prompt_preview", logger.TruncateForLog(prompt, 200)),
			zap.Error(err),
		)
		return analysis.TeamAnalysis{}, fmt.Errorf("%w: %w", ErrExternalService, err)
	}
	u.logger.Info("team analyzed",
		zap.Int("best_matches", len(out.BestMatches)),
		zap.Int("training_recommendations", len(out.TrainingRecommendations)),
		zap.Duration("latency", time.Since(start)),
	)

	u.store(ctx, key, out)
	return out, nil
}

func (u *Analysis) projectContext(ctx context.Context, projectID uuid.UUID) (string, error) {
	p, err := getProject(ctx, u.projects, projectID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Project context:\n")
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", p.Description)
	}
	req, err := matching.NewRequirement(p.Skills)
	if err != nil {
		return b.String(), nil
	}
	fmt.Fprintf(&b, "Required skills: %s\n", strings.Join(req.Names(), ", "))

	if u.matching == nil {
		return b.String(), nil
	}

	ranked, err := u.matching.MatchProjectDetailed(ctx, p.ID)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return b.String(), nil
		}
		return "", err
	}
	if len(ranked) == 0 {
		return b.String(), nil
	}

	b.WriteString("Candidates ranked by required-skill coverage (id | name | role | score | skills):\n")
	for i, m := range ranked {
		if i >= maxRankedInPrompt {
			break
		}
		fmt.Fprintf(&b, "- %s | %s | %s | %.2f | %s\n",
			m.EmployeeID, m.Employee.Name, m.Employee.Role, m.Score, strings.Join(m.Employee.Skills, ", "))
	}
	return b.String(), nil
}

func (u *Analysis) lookup(ctx context.Context, key string, out any) bool {
	if u.cache == nil {
		return false
	}
	found, err := u.cache.GetJSON(ctx, key, out)
	if err != nil {
		u.logger.Warn("analysis cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if found {
		u.logger.Debug("analysis cache hit", zap.String("key", key))
	}
	return found
}

func (u *Analysis) store(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, key, value, u.opts.CacheTTL); err != nil {
		u.logger.Warn("analysis cache write failed", zap.String("key", key), zap.Error(err))
	}
}
