package usecase

import (
	"context"
	"errors"
	"fmt"

	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/project"
	"talent-match/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type MatchingUsecase interface {
	MatchProject(ctx context.Context, projectID uuid.UUID) ([]matching.Match, error)
	MatchProjectDetailed(ctx context.Context, projectID uuid.UUID) ([]DetailedMatch, error)
	MatchStats(ctx context.Context) (matching.Stats, error)
}

type DetailedMatch struct {
	matching.Match
	Employee employee.Employee
}

type MatchingOptions struct {
	// MinScore drops matches scoring below it. Zero keeps every employee.
	MinScore          float64
	DetailConcurrency int
}

// Matching ranks the employee catalog against a project's required skills. It keeps
// no state between calls; every call works on the catalog rows read during that call.
type Matching struct {
	projects  project.Repository
	employees employee.Repository
	opts      MatchingOptions
	logger    *zap.Logger
}

func NewMatchingUsecase(projects project.Repository, employees employee.Repository, opts MatchingOptions, log *zap.Logger) *Matching {
	if opts.DetailConcurrency <= 0 {
		opts.DetailConcurrency = 1
	}
	return &Matching{
		projects:  projects,
		employees: employees,
		opts:      opts,
		logger:    logger.OrNop(log).Named("matching"),
	}
}

func (u *Matching) MatchProject(ctx context.Context, projectID uuid.UUID) ([]matching.Match, error) {
	matches, _, err := u.rankProject(ctx, projectID)
	return matches, err
}

func (u *Matching) MatchProjectDetailed(ctx context.Context, projectID uuid.UUID) ([]DetailedMatch, error) {
	matches, _, err := u.rankProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	details := make([]*employee.Employee, len(matches))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.opts.DetailConcurrency)
	for i, m := range matches {
		g.Go(func() error {
			e, err := u.employees.GetByID(gctx, m.EmployeeID)
			if err != nil {
				if errors.Is(err, employee.ErrNotFound) {
					u.logger.Warn("employee vanished during detailed match, skipping",
						zap.String("project_id", projectID.String()),
						zap.String("employee_id", m.EmployeeID.String()),
					)
					return nil
				}
				return err
			}
			details[i] = &e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, internalError(err)
	}

	out := make([]DetailedMatch, 0, len(matches))
	for i, m := range matches {
		if details[i] == nil {
			continue
		}
		out = append(out, DetailedMatch{Match: m, Employee: *details[i]})
	}
	return out, nil
}

func (u *Matching) MatchStats(ctx context.Context) (matching.Stats, error) {
	projects, err := u.projects.List(ctx)
	if err != nil {
		return matching.Stats{}, internalError(err)
	}
	employees, err := u.employees.List(ctx)
	if err != nil {
		return matching.Stats{}, internalError(err)
	}

	b := matching.NewStatsBuilder()
	for _, e := range employees {
		b.AddEmployee(e.Skills)
	}
	for _, p := range projects {
		req, err := matching.NewRequirement(p.Skills)
		if err != nil {
			b.AddProject(p.Skills, false)
			continue
		}
		b.AddProject(p.Skills, true)
		for _, e := range employees {
			if err := ctx.Err(); err != nil {
				return matching.Stats{}, err
			}
			b.AddScore(req.Evaluate(e.Skills).Score)
		}
	}
	return b.Build(), nil
}

func (u *Matching) rankProject(ctx context.Context, projectID uuid.UUID) ([]matching.Match, project.Project, error) {
	p, err := getProject(ctx, u.projects, projectID)
	if err != nil {
		return nil, project.Project{}, err
	}

	req, err := matching.NewRequirement(p.Skills)
	if err != nil {
		return nil, p, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	employees, err := u.employees.List(ctx)
	if err != nil {
		return nil, p, internalError(err)
	}

	matches := make([]matching.Match, 0, len(employees))
	for _, e := range employees {
		if err := ctx.Err(); err != nil {
			return nil, p, err
		}
		res := req.Evaluate(e.Skills)
		if res.Score < u.opts.MinScore {
			continue
		}
		matches = append(matches, matching.Match{
			EmployeeID:    e.ID,
			Score:         res.Score,
			MatchedSkills: res.MatchedSkills,
			MissingSkills: res.MissingSkills,
		})
	}
	matching.SortMatches(matches)

	u.logger.Debug("project ranked",
		zap.String("project_id", p.ID.String()),
		zap.Int("required_skills", req.Len()),
		zap.Int("employees", len(employees)),
		zap.Int("matches", len(matches)),
	)
	return matches, p, nil
}
