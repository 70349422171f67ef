package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	appConfig "github.com/festy23/octofit_tracker/internal/config"
	"github.com/festy23/octofit_tracker/internal/database"
	dbConfig "github.com/festy23/octofit_tracker/internal/database/config"
	"github.com/festy23/octofit_tracker/internal/database/migrate"
	"github.com/festy23/octofit_tracker/internal/seed"
	"github.com/festy23/octofit_tracker/pkg/logger"
)

type options struct {
	migrate        bool
	migrationsPath string
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "octofit-seed",
		Short: "Populate the OctoFit store with demo data",
		Long: `Clears every collection and inserts the demo teams, heroes, a week of
activities per hero, the leaderboard and the workout suggestions.

The database is selected with the DB_* environment variables (DB_DRIVER=sqlite
and SQLITE_PATH for a local file).`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), out, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.migrate, "migrate", true, "apply migrations before seeding")
	cmd.Flags().StringVar(&opts.migrationsPath, "migrations-path",
		appConfig.GetEnv("MIGRATIONS_PATH", "migrations"), "directory holding the postgres migrations")

	return cmd
}

func run(ctx context.Context, out io.Writer, opts options) error {
	log, err := logger.New()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Open(ctx, dbConfig.LoadConfigFromEnv(), dbConfig.LoadRetryPolicyFromEnv(), log)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	if opts.migrate {
		if err := migrate.Up(db, opts.migrationsPath, log); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "Starting database population...")
	result, err := seed.New(db, log).Run(ctx)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	printSummary(out, result)
	return nil
}

func printSummary(out io.Writer, r *seed.Result) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "=== Database Population Complete ===")
	fmt.Fprintf(out, "Teams created: %d\n", r.Teams)
	fmt.Fprintf(out, "Users created: %d\n", r.Users)
	fmt.Fprintf(out, "Activities created: %d\n", r.Activities)
	fmt.Fprintf(out, "Leaderboard entries: %d\n", r.Leaderboard)
	fmt.Fprintf(out, "Workouts created: %d\n", r.Workouts)
}
