package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"talent-match/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			addr, err := app.ListenAddr(cfg.App.HTTPPort)
			if err != nil {
				return err
			}

			bootCtx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			bootstrap, cleanup, err := app.Bootstrap(bootCtx, cfg, log)
			cancel()
			if err != nil {
				return err
			}
			defer func() {
				if err := cleanup(); err != nil {
					log.Warn("cleanup error", zap.Error(err))
				}
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("http server listening", zap.String("addr", addr), zap.String("env", cfg.App.Environment))
				errCh <- bootstrap.Fiber.Listen(addr)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				log.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := bootstrap.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
					log.Warn("shutdown error", zap.Error(err))
				}
				return nil
			}
		},
	}
}
