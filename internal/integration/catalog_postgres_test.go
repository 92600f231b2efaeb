package integration

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"talent-match/internal/app"
	"talent-match/internal/config"
	"talent-match/internal/database"
	"talent-match/internal/database/migration"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/database/seeder"
	"talent-match/internal/delivery/http/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIntegration_Postgres_SeedAndMatch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	dbcfg := testDBConfig(t)
	db := connectTestDB(t, ctx, dbcfg)
	defer func() { _ = db.Close() }()

	require.NoError(t, migration.Runner{Logger: zap.NewNop()}.Run(ctx, db.SQLDB()))
	require.NoError(t, seeder.Runner{Seeders: seeder.Defaults()}.Run(ctx, db))
	// Seeding twice must update in place.
	require.NoError(t, seeder.Runner{Seeders: seeder.Defaults()}.Run(ctx, db))

	cfg := config.Config{
		App:      config.AppConfig{AppName: "talent-match", Environment: "test", HTTPPort: "0"},
		Database: dbcfg,
		CORS:     config.CORSConfig{AllowOrigins: []string{"http://localhost:5173"}},
		Matching: config.MatchingConfig{DetailConcurrency: 4},
		Analysis: config.AnalysisConfig{MaxUploadBytes: 1 << 20},
	}
	a, cleanup, err := app.Bootstrap(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	projectID := seeder.DemoID("project", "Platform Observability")
	davidID := seeder.DemoID("employee", "David Kim")

	resp, err := a.Fiber.Test(httptest.NewRequest("GET", "/projects/"+projectID.String(), nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	var p dto.ProjectResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, []string{"Go", "Kubernetes", "Prometheus", "Grafana"}, p.Skills)

	resp, err = a.Fiber.Test(httptest.NewRequest("GET", "/matching/match/"+projectID.String()+"/detailed", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	var detailed dto.DetailedMatchListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&detailed))

	require.NotEmpty(t, detailed.Matches)
	found := false
	for i, m := range detailed.Matches {
		if i > 0 {
			assert.GreaterOrEqual(t, detailed.Matches[i-1].SkillFitScore, m.SkillFitScore)
		}
		assert.Equal(t, m.EmployeeID, m.EmployeeDetails.ID)
		if m.EmployeeID == davidID {
			found = true
			assert.Equal(t, 0.75, m.SkillFitScore)
			assert.Equal(t, "DevOps Engineer", m.EmployeeDetails.Role)
		}
	}
	assert.True(t, found, "seeded employee missing from ranking")
}

func testDBConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()

	host := stringsOrDefault(os.Getenv("TALENTMATCH_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("TALENTMATCH_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("TALENTMATCH_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("TALENTMATCH_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("TALENTMATCH_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("TALENTMATCH_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set TALENTMATCH_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}

	return config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	}
}

func connectTestDB(t *testing.T, ctx context.Context, cfg config.DatabaseConfig) database.DB {
	t.Helper()

	db, err := dbpostgres.Connect(ctx, cfg)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func stringsOrDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
