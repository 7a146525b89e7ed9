package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	adapthttp "github.com/jsamuelsen11/go-book-catalog/internal/adapters/http"
	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen11/go-book-catalog/internal/app/seed"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-book-catalog/internal/ports"
)

const (
	drainTimeout          = 15 * time.Second
	telemetryFlushTimeout = 5 * time.Second
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	var withSeed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			boot, err := loadBootstrap(flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				boot.cfg.Seed.Enabled = withSeed
			}
			return serve(cmd.Context(), boot)
		},
	}

	cmd.Flags().BoolVar(&withSeed, "seed", false, "load the sample catalog when the database is empty")
	return cmd
}

func serve(ctx context.Context, boot *bootstrap) error {
	cfg, logger := boot.cfg, boot.logger

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry, os.Stdout)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(otel, logger)

	injector := newInjector(ctx, cfg, logger, otel.Metrics)

	db, err := do.Invoke[*sqlstore.DB](injector)
	if err != nil {
		return err
	}
	defer closeDB(db, logger)

	// The server sits at the top of the graph, so resolving it builds the rest.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	if cfg.Seed.Enabled {
		if _, err := seed.Run(ctx, do.MustInvoke[ports.BookRepository](injector), logger); err != nil {
			return err
		}
	}

	return runServer(ctx, server, drainTimeout, logger)
}

// runServer serves until ctx ends or serving fails. On ctx end it gives
// in-flight requests up to drain to finish.
func runServer(ctx context.Context, server *adapthttp.Server, drain time.Duration, logger *slog.Logger) error {
	if err := server.Listen(); err != nil {
		return err
	}

	served := make(chan error, 1)
	go func() { served <- server.Start() }()

	select {
	case err := <-served:
		if err != nil {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown requested", slog.String("addr", server.Addr()))
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drain)
	defer cancel()

	shutdownErr := server.Shutdown(drainCtx)
	if err := <-served; err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
	}
	if shutdownErr != nil {
		return fmt.Errorf("draining http server: %w", shutdownErr)
	}

	logger.Info("server stopped")
	return nil
}

func closeDB(db *sqlstore.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("closing database", slog.Any("error", err))
	}
}

func flushTelemetry(otel *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
	defer cancel()

	if err := otel.Shutdown(ctx); err != nil {
		logger.Error("flushing telemetry", slog.Any("error", err))
	}
}
