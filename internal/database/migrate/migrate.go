// Package migrate brings the database schema up to date.
package migrate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
	"gorm.io/gorm"

	activityModel "github.com/festy23/octofit_tracker/internal/activity/model"
	leaderboardModel "github.com/festy23/octofit_tracker/internal/leaderboard/model"
	teamModel "github.com/festy23/octofit_tracker/internal/team/model"
	userModel "github.com/festy23/octofit_tracker/internal/user/model"
	workoutModel "github.com/festy23/octofit_tracker/internal/workout/model"
)

// Models lists every persisted record type.
func Models() []any {
	return []any{
		&userModel.User{},
		&teamModel.Team{},
		&activityModel.Activity{},
		&leaderboardModel.Entry{},
		&workoutModel.Workout{},
	}
}

// Up applies pending migrations. Postgres runs the versioned SQL files in
// migrationsDir; sqlite has no versioned history and is auto-migrated from the models.
func Up(db *gorm.DB, migrationsDir string, logger *zap.SugaredLogger) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	switch name := db.Dialector.Name(); name {
	case "postgres":
		return upPostgres(db, migrationsDir, logger)
	case "sqlite":
		if err := db.AutoMigrate(Models()...); err != nil {
			return fmt.Errorf("failed to auto-migrate sqlite schema: %w", err)
		}
		logger.Infow("schema auto-migrated", "dialect", name, "tables", len(Models()))
		return nil
	default:
		return fmt.Errorf("migrations are not supported for dialect %q", name)
	}
}

func upPostgres(db *gorm.DB, migrationsDir string, logger *zap.SugaredLogger) error {
	sourceURL, err := SourceURL(migrationsDir)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	logger.Infow("migrations applied", "version", version, "dirty", dirty)
	return nil
}

// SourceURL turns a migrations directory into an absolute file:// source URL.
func SourceURL(migrationsDir string) (string, error) {
	abs, err := filepath.Abs(migrationsDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		return "", fmt.Errorf("migrations directory does not exist: %s", abs)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// Check reads every migration in migrationsDir and fails on a version that has
// no down migration. It returns the number of versions found.
func Check(migrationsDir string) (int, error) {
	sourceURL, err := SourceURL(migrationsDir)
	if err != nil {
		return 0, err
	}

	src, err := (&file.File{}).Open(sourceURL)
	if err != nil {
		return 0, fmt.Errorf("failed to open migrations source: %w", err)
	}
	defer func() { _ = src.Close() }()

	count := 0
	version, err := src.First()
	for err == nil {
		count++
		if err := readBoth(src, version); err != nil {
			return count, err
		}
		version, err = src.Next(version)
	}
	if !errors.Is(err, os.ErrNotExist) {
		return count, fmt.Errorf("failed to list migrations: %w", err)
	}
	return count, nil
}

func readBoth(src source.Driver, version uint) error {
	up, _, err := src.ReadUp(version)
	if err != nil {
		return fmt.Errorf("migration %d: missing up file: %w", version, err)
	}
	_ = up.Close()

	down, _, err := src.ReadDown(version)
	if err != nil {
		return fmt.Errorf("migration %d: missing down file: %w", version, err)
	}
	body, err := io.ReadAll(down)
	_ = down.Close()
	if err != nil {
		return fmt.Errorf("migration %d: %w", version, err)
	}
	if len(body) == 0 {
		return fmt.Errorf("migration %d: empty down file", version)
	}
	return nil
}
