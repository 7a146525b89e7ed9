// Package main is the entry point for the book catalog service. The serve
// command wires all dependencies using samber/do v2, starts the HTTP server,
// and handles graceful shutdown on SIGINT/SIGTERM. The seed command loads the
// sample catalog into an empty database and exits.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-book-catalog/internal/platform/config"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/logging"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	profile   string
	configDir string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "bookcatalog",
		Short:         "Book catalog REST service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.profile, "profile", os.Getenv("APP_PROFILE"),
		"configuration profile (local, dev, prod); defaults to $APP_PROFILE")
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "configs",
		"directory holding base.yaml and the profile files")

	root.AddCommand(newServeCmd(flags), newSeedCmd(flags))
	return root
}

// bootstrap is the configuration and logger every command starts from.
type bootstrap struct {
	cfg    *config.Config
	logger *slog.Logger
}

func loadBootstrap(flags *globalFlags) (*bootstrap, error) {
	if flags.profile == "" {
		return nil, errors.New("--profile or APP_PROFILE is required (e.g. local, dev, prod)")
	}

	cfg, err := config.Load(flags.profile, config.WithConfigDir(flags.configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &bootstrap{
		cfg:    cfg,
		logger: logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr),
	}, nil
}
