package main

import (
	"context"
	"fmt"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/database"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "talent-match"

type rootOptions struct {
	configFile string
	debug      bool
	json       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Talent matching backend: catalog, skill matching and AI-assisted analysis",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "optional config file (yaml, json, toml or .env); environment variables win")
	root.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolVarP(&opts.json, "json", "j", false, "json format for logging")

	root.AddCommand(newServeCmd(opts), newMigrateCmd(opts), newSeedCmd(opts))
	return root
}

// load resolves configuration and builds the logger shared by every subcommand.
func (o *rootOptions) load() (config.Config, *zap.Logger, error) {
	cfg, err := config.LoadFile(o.configFile)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	if o.debug {
		cfg.App.Debug = true
	}
	if o.json {
		cfg.App.LogJSON = true
	}

	log, err := logger.New(cfg.App.AppName, cfg.App.LogJSON, cfg.App.Debug)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

func connectDB(ctx context.Context, cfg config.Config) (database.DB, error) {
	if !cfg.Database.Enabled() {
		return nil, fmt.Errorf("database is not configured: set DB_HOST, DB_NAME and DB_USER")
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return dbpostgres.Connect(ctx, cfg.Database)
}
