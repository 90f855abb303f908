package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpadapter "retailops/internal/adapters/in/http"
	"retailops/internal/core/application/usecases/commands"
	"retailops/internal/metrics"

	"github.com/spf13/cobra"
)

var (
	// Serve command flags
	seedOnStart     bool
	serverPort      string
	gracefulTimeout time.Duration
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and background jobs",
	Long: `Starts the JSON API, the low stock scan and, with redis enabled, the stock
cache warmer. Shuts down gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&seedOnStart, "seed", false, "load demo data when no accounts exist")
	serveCmd.Flags().StringVar(&serverPort, "port", "", "HTTP port (overrides RETAILOPS_HTTP_PORT)")
	serveCmd.Flags().DurationVar(&gracefulTimeout, "graceful-timeout", 15*time.Second, "graceful shutdown timeout")
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if serverPort != "" {
		cfg.HTTPPort = serverPort
	}

	metrics.Register()

	uowFactory, closeStorage, err := openStorage(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStorage()

	cache, closeCache, err := openCache(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	app := NewCompositionRoot(cfg, uowFactory, cache, logger)

	if seedOnStart {
		if _, err = app.CreateSeedCommandHandler().Handle(ctx, commands.NewSeedCommand(false)); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := httpadapter.NewEcho(app.CreateServer(), logger)
	e.Logger.SetLevel(echoLevel(logger.GetLevel()))

	errCh := make(chan error, 1)
	go func() {
		addr := net.JoinHostPort("0.0.0.0", cfg.HTTPPort)
		logger.Info().Str("addr", addr).Str("storage", cfg.StorageDriver).Msg("http server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
