// Package main implements the entry point for the subway API server, which
// manages subway stations and lines over a JSON REST interface.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/nextstep/subway-api/internal/config"
	"github.com/nextstep/subway-api/internal/platform/logger"
	"github.com/nextstep/subway-api/internal/seed"
)

// options holds the command-line flags.
type options struct {
	configFile  string
	migrateOnly bool
	seedFile    string
}

// parseFlags parses command-line arguments into options.
func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configFile, "config", "", "Path to an optional config file (yaml, json or toml)")
	fs.BoolVar(&opts.migrateOnly, "migrate", false, "Apply database migrations and exit")
	fs.StringVar(&opts.seedFile, "seed", "", "Path to a YAML fixture of stations and lines to load at startup")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		slog.Error("server exited with error", "error", err)
		stop()
		os.Exit(1)
	}
}

// run loads configuration, builds the application and serves until ctx is
// canceled.
func run(ctx context.Context, opts options) error {
	// A missing .env file is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver,
		"metrics_enabled", cfg.Metrics.Enabled)

	if opts.migrateOnly {
		return migrateDatabase(ctx, cfg, log)
	}

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if opts.seedFile != "" {
		if err := app.seed(ctx, opts.seedFile); err != nil {
			app.cleanup()
			return err
		}
	}

	return app.Run(ctx)
}

// seed loads the fixture at path through the application's services.
func (app *application) seed(ctx context.Context, path string) error {
	fixture, err := seed.LoadFile(path)
	if err != nil {
		return err
	}
	if _, err := seed.Apply(ctx, fixture, app.stationService, app.lineService, app.logger); err != nil {
		return fmt.Errorf("failed to apply seed fixture: %w", err)
	}
	return nil
}
