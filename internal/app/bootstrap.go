package app

import (
	"context"
	"fmt"
	"strings"

	"talent-match/internal/config"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"go.uber.org/zap"
)

const (
	// multipart framing on top of the largest accepted document
	bodyLimitSlack   = 1 << 20
	metricsNamespace = "talent_match"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	cfg := c.Config
	errMw := middleware.NewErrorMiddleware(c.Logger)

	f := fiber.New(fiber.Config{
		AppName:      cfg.App.AppName,
		BodyLimit:    int(cfg.Analysis.MaxUploadBytes) + bodyLimitSlack,
		ErrorHandler: errMw.Handle,
	})

	metrics := middleware.NewMetricsMiddleware(metricsNamespace)
	registerGlobalMiddleware(f, cfg, c.Logger, errMw, metrics)
	registerRoutes(f, c)
	f.Get("/metrics", metrics.Handler())

	return &App{Fiber: f, Container: c}
}

func Bootstrap(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, log *zap.Logger, errMw *middleware.ErrorMiddleware, metrics *middleware.MetricsMiddleware) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	app.Use(metrics.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete, fiber.MethodHead, fiber.MethodOptions},
		AllowCredentials: true,
		ExposeHeaders:    []string{middleware.HeaderRequestID, fiber.HeaderContentLength, fiber.HeaderContentType},
	}))
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	var db handler.Pinger
	if c.DB != nil {
		db = c.DB
	}
	var cachePinger handler.Pinger
	if c.Cache.Enabled() {
		cachePinger = c.Cache
	}

	routes.NewRegistry(
		handler.NewHealthHandler(c.Config.App.AppName, db, cachePinger, c.Analyzer != nil),
		handler.NewCatalogHandler(c.Catalog),
		handler.NewMatchingHandler(c.Matching),
		handler.NewAnalysisHandler(c.Analysis, c.Config.Analysis.MaxUploadBytes),
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
