package main

import (
	"context"
	"digitalmenu/internal/app"
	"digitalmenu/internal/app/deps"
	"digitalmenu/internal/app/services"
	dl "digitalmenu/internal/core/domain/logging"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

const SHUTDOWN_TIMEOUT = 20 * time.Second

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, shutdownDeps := deps.InitDeps()
			services := services.InitServices(deps)

			httpServer := app.InitHttpServer(deps, services)
			errCh := make(chan error, 1)
			go start(httpServer, deps, errCh)

			stopCh, closeCh := createChannel()
			defer closeCh()

			select {
			case <-stopCh:
			case err := <-errCh:
				shutdownDeps()
				return err
			}
			return shutdown(context.Background(), httpServer, deps, shutdownDeps)
		},
	}
	rootCmd.AddCommand(serveCmd)
}

func start(server *http.Server, deps *deps.Deps, errCh chan<- error) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("isTestMode", deps.Config.IsTestMode),
		dl.Entry("rateLimiter", deps.Config.RateLimiter),
		dl.Entry("emailEnabled", deps.Config.IsEmailEnabled()),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errCh <- err
	} else {
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func shutdown(ctx context.Context, server *http.Server, deps *deps.Deps, shutDownDeps func()) error {
	ctx, cancel := context.WithTimeout(ctx, SHUTDOWN_TIMEOUT)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}

	deps.Logger.Info(ctx, "HTTP server has shut down.")
	shutDownDeps()
	return nil
}
