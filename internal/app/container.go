package app

import (
	"context"
	"errors"
	"fmt"

	"talent-match/internal/config"
	"talent-match/internal/database"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/database/seeder"
	"talent-match/internal/domain/analysis"
	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/project"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/infrastructure/gemini"
	"talent-match/internal/infrastructure/persistence/memory"
	"talent-match/internal/logger"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"

	"go.uber.org/zap"
)

// Container owns every long-lived collaborator. It is built once at startup and handed
// to the HTTP layer; nothing in the service reaches for package-level state.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	// DB is nil when Postgres is not configured and the demo catalog is served.
	DB       database.DB
	Cache    *cache.Redis
	Analyzer analysis.Analyzer

	Projects  project.Repository
	Employees employee.Repository

	Catalog  *usecase.Catalog
	Matching *usecase.Matching
	Analysis *usecase.Analysis
}

func NewContainer(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	log = logger.OrNop(log)
	c := &Container{Config: cfg, Logger: log}

	if cfg.Database.Enabled() {
		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		c.DB = db
		c.Projects = repository.NewPostgresProjectRepository(db)
		c.Employees = repository.NewPostgresEmployeeRepository(db)
		log.Info("catalog backed by postgres", zap.String("host", cfg.Database.DBHost), zap.String("db", cfg.Database.DBName))
	} else {
		catalog := memory.NewCatalog()
		for _, p := range seeder.DemoProjects() {
			catalog.PutProject(p)
		}
		for _, e := range seeder.DemoEmployees() {
			catalog.PutEmployee(e)
		}
		c.Projects = catalog.Projects()
		c.Employees = catalog.Employees()
		log.Warn("database not configured, serving in-memory demo catalog")
	}

	c.Cache = cache.NewRedis(ctx, cfg.Redis, log)

	if cfg.Gemini.Enabled() {
		gen, err := gemini.NewGenerator(ctx, gemini.Options{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			Timeout: cfg.Gemini.Timeout,
			Logger:  log,
		})
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("init gemini: %w", err)
		}
		c.Analyzer = gemini.NewAnalyzer(gen)
		log.Info("gemini analyzer enabled", zap.String("model", gen.Model()))
	} else {
		log.Warn("GEMINI_API_KEY not set, analysis endpoints will fail")
	}

	c.Catalog = usecase.NewCatalogUsecase(c.Projects, c.Employees)
	c.Matching = usecase.NewMatchingUsecase(c.Projects, c.Employees, usecase.MatchingOptions{
		MinScore:          cfg.Matching.MinScore,
		DetailConcurrency: cfg.Matching.DetailConcurrency,
	}, log)
	c.Analysis = usecase.NewAnalysisUsecase(c.Analyzer, c.Cache, c.Projects, c.Matching, usecase.AnalysisOptions{
		MaxUploadBytes: cfg.Analysis.MaxUploadBytes,
		CacheTTL:       cfg.Analysis.CacheTTL,
	}, log)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
