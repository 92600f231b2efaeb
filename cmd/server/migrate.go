package main

import (
	"talent-match/internal/database/migration"
	"talent-match/internal/database/seeder"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var statusOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			db, err := connectDB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			runner := migration.Runner{Logger: log}
			if statusOnly {
				statuses, err := runner.Status(cmd.Context(), db.SQLDB())
				if err != nil {
					return err
				}
				for _, s := range statuses {
					log.Info("migration",
						zap.Int64("version", s.Version),
						zap.String("file", s.Filename),
						zap.Bool("applied", s.Applied),
					)
				}
				return nil
			}

			if err := runner.Run(cmd.Context(), db.SQLDB()); err != nil {
				return err
			}
			log.Info("migrations applied")
			return nil
		},
	}
	cmd.Flags().BoolVar(&statusOnly, "status", false, "list migrations and whether they are applied, without applying")
	return cmd
}

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var withMigrate bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert or refresh the demo projects and employees",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			db, err := connectDB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if withMigrate {
				if err := (migration.Runner{Logger: log}).Run(cmd.Context(), db.SQLDB()); err != nil {
					return err
				}
			}

			runner := seeder.Runner{Seeders: seeder.Defaults(), Logger: log}
			if err := runner.Run(cmd.Context(), db); err != nil {
				return err
			}
			log.Info("seed complete", zap.Int("seeders", len(runner.Seeders)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&withMigrate, "migrate", false, "apply migrations before seeding")
	return cmd
}
