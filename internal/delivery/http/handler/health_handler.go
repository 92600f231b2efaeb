package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
)

const (
	checkUp       = "up"
	checkDown     = "down"
	checkDisabled = "disabled"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status string            `json:"status"`
	App    string            `json:"app"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler always answers 200 while the process serves requests; dependency state is
// reported in checks. Nil dependencies are reported as disabled.
type HealthHandler struct {
	appName     string
	db          Pinger
	cache       Pinger
	aiEnabled   bool
	pingTimeout time.Duration
}

func NewHealthHandler(appName string, db, cache Pinger, aiEnabled bool) *HealthHandler {
	return &HealthHandler{
		appName:     appName,
		db:          db,
		cache:       cache,
		aiEnabled:   aiEnabled,
		pingTimeout: 2 * time.Second,
	}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.pingTimeout)
	defer cancel()

	out := HealthResponse{
		Status: "ok",
		App:    h.appName,
		Checks: map[string]string{
			"database": checkDependency(ctx, h.db),
			"cache":    checkDependency(ctx, h.cache),
			"ai":       checkDisabled,
		},
	}
	if h.aiEnabled {
		out.Checks["ai"] = checkUp
	}
	for _, v := range out.Checks {
		if v == checkDown {
			out.Status = "degraded"
		}
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func checkDependency(ctx context.Context, p Pinger) string {
	if p == nil {
		return checkDisabled
	}
	if err := p.Ping(ctx); err != nil {
		return checkDown
	}
	return checkUp
}
