package main

import (
	"testing"

	"talent-match/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["seed"])

	for _, f := range []string{"config", "debug", "json"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(f), f)
	}
}

func TestLoad_FlagsOverrideConfig(t *testing.T) {
	t.Setenv("APP_NAME", "talent-match")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8000")

	opts := &rootOptions{debug: true, json: true}
	cfg, log, err := opts.load()
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.True(t, cfg.App.Debug)
	assert.True(t, cfg.App.LogJSON)
}

func TestConnectDB_RequiresDatabaseConfig(t *testing.T) {
	_, err := connectDB(t.Context(), config.Config{})
	assert.Error(t, err)
}
