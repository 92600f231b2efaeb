package routes

import (
	"talent-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health   *handler.HealthHandler
	catalog  *handler.CatalogHandler
	matching *handler.MatchingHandler
	analysis *handler.AnalysisHandler
}

func NewRegistry(
	health *handler.HealthHandler,
	catalog *handler.CatalogHandler,
	matching *handler.MatchingHandler,
	analysis *handler.AnalysisHandler,
) *Registry {
	return &Registry{health: health, catalog: catalog, matching: matching, analysis: analysis}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.catalog.RegisterRoutes(app)
	r.matching.RegisterRoutes(app)
	r.analysis.RegisterRoutes(app)
}
