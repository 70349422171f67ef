// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/config"
	"github.com/festy23/octofit_tracker/internal/database"
	dbConfig "github.com/festy23/octofit_tracker/internal/database/config"
	"github.com/festy23/octofit_tracker/internal/database/migrate"
	"github.com/festy23/octofit_tracker/internal/seed"
	"github.com/festy23/octofit_tracker/internal/server"
	"github.com/festy23/octofit_tracker/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, dbConfig.LoadConfigFromEnv(), dbConfig.LoadRetryPolicyFromEnv(), log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Up(db, cfg.MigrationsPath, log); err != nil {
		return err
	}

	if cfg.SeedOnStart {
		if err := seedOnStart(ctx, db, log); err != nil {
			return err
		}
	}

	return server.Run(ctx, cfg.Server, server.NewEngine(cfg, db, log), log)
}

func seedOnStart(ctx context.Context, db *gorm.DB, log *zap.SugaredLogger) error {
	result, err := seed.New(db, log).Run(ctx)
	if err != nil {
		return fmt.Errorf("seed on start failed: %w", err)
	}
	log.Infow("demo data loaded",
		"teams", result.Teams,
		"users", result.Users,
		"activities", result.Activities,
		"leaderboard", result.Leaderboard,
		"workouts", result.Workouts,
	)
	return nil
}
