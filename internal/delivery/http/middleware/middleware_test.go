package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"talent-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(h fiber.Handler) *fiber.App {
	errMw := NewErrorMiddleware(zap.NewNop())
	app := fiber.New(fiber.Config{ErrorHandler: errMw.Handle})
	app.Use(NewAccessLogMiddleware(zap.NewNop()).Middleware())
	app.Use(errMw.Middleware())
	app.Get("/t", h)
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) (int, response.ErrorDetail, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	var body response.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body.Error, resp.Header.Get(HeaderRequestID)
}

func TestErrorMiddleware_AppError(t *testing.T) {
	app := newTestApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusNotFound, "Project not found", errors.New("sql: no rows")).WithID("p-1")
	})

	status, body, rid := doGet(t, app, "/t")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Project not found", body.Message)
	assert.Equal(t, response.CodeNotFound, body.Code)
	assert.Equal(t, "p-1", body.ID)
	assert.NotEmpty(t, rid)
}

func TestErrorMiddleware_HidesInternalCause(t *testing.T) {
	app := newTestApp(func(c fiber.Ctx) error {
		return errors.New("dial tcp 10.0.0.1:5432: connection refused")
	})

	status, body, _ := doGet(t, app, "/t")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, response.MessageInternalServerError, body.Message)
	assert.Equal(t, response.CodeInternal, body.Code)
}

func TestErrorMiddleware_ExternalServiceKeepsGenericMessage(t *testing.T) {
	app := newTestApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "Team analysis failed", errors.New("quota exceeded")).
			WithCode(response.CodeExternalService).WithID("leak")
	})

	status, body, _ := doGet(t, app, "/t")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Team analysis failed", body.Message)
	assert.Equal(t, response.CodeExternalService, body.Code)
	assert.Empty(t, body.ID)
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	app := newTestApp(func(c fiber.Ctx) error {
		panic("boom")
	})

	status, body, _ := doGet(t, app, "/t")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, response.MessageInternalServerError, body.Message)
}

func TestErrorMiddleware_UnknownRoute(t *testing.T) {
	app := newTestApp(func(c fiber.Ctx) error { return nil })

	status, body, _ := doGet(t, app, "/nope")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, fiber.StatusNotFound, body.Status)
	assert.Equal(t, response.CodeNotFound, body.Code)
}

func TestAccessLog_KeepsIncomingRequestID(t *testing.T) {
	app := newTestApp(func(c fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest("GET", "/t", nil)
	req.Header.Set(HeaderRequestID, "rid-42")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "rid-42", resp.Header.Get(HeaderRequestID))
}

func TestMetricsMiddleware_CountsByRoutePattern(t *testing.T) {
	metrics := NewMetricsMiddleware("tm")
	app := fiber.New()
	app.Use(metrics.Middleware())
	app.Get("/projects/:id", func(c fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", metrics.Handler())

	for _, id := range []string{"a", "b"} {
		_, err := app.Test(httptest.NewRequest("GET", "/projects/"+id, nil))
		require.NoError(t, err)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `tm_http_requests_total{method="GET",route="/projects/:id",status_code="200"} 2`)
}

func TestMetricsMiddleware_KeepsRouteOnHandlerNotFound(t *testing.T) {
	metrics := NewMetricsMiddleware("tm")
	app := fiber.New()
	app.Use(metrics.Middleware())
	app.Get("/projects/:id", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString("missing")
	})
	app.Get("/metrics", metrics.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/projects/gone", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/nowhere", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `tm_http_requests_total{method="GET",route="/projects/:id",status_code="404"} 1`)
	assert.Contains(t, string(body), `tm_http_requests_total{method="GET",route="unmatched",status_code="404"} 1`)
}
