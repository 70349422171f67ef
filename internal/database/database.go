// Package database opens the gorm connection backing every collection.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/database/config"
	"github.com/festy23/octofit_tracker/internal/database/pool"
	"github.com/festy23/octofit_tracker/pkg/logger"
	"github.com/festy23/octofit_tracker/pkg/retry"
)

// Dialector returns the gorm dialector for the configured driver.
func Dialector(cfg config.Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(config.BuildDSN(cfg)), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// GormConfig returns the gorm settings shared by every connection. Driver
// errors are translated so unique violations surface as gorm.ErrDuplicatedKey.
func GormConfig(cfg config.Config, log *zap.SugaredLogger) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.NewGormLogger(log, logger.ParseGormLevel(cfg.LogLevel)),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
}

// Open connects to the configured store, retrying transient failures per policy,
// and applies the connection pool settings.
func Open(ctx context.Context, cfg config.Config, policy retry.Policy, log *zap.SugaredLogger) (*gorm.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	policy.OnRetry = func(attempt int, delay time.Duration, err error) {
		log.Warnw("database not ready, retrying",
			"driver", cfg.Driver,
			"attempt", attempt,
			"delay", delay,
			"error", config.SanitizeError(err, cfg),
		)
	}

	db, err := retry.DoWithResult(ctx, policy, func(ctx context.Context) (*gorm.DB, error) {
		dialector, err := Dialector(cfg)
		if err != nil {
			return nil, err
		}
		db, err := gorm.Open(dialector, GormConfig(cfg, log))
		if err != nil {
			return nil, err
		}
		if err := HealthCheck(ctx, db); err != nil {
			_ = Close(db)
			return nil, err
		}
		return db, nil
	})
	if err != nil {
		return nil, config.SanitizeError(err, cfg)
	}

	poolCfg := cfg.Pool
	if cfg.InMemory() {
		poolCfg = pool.SingleConnection()
	}
	if err := pool.Apply(db, poolCfg); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("failed to setup connection pool: %w", err)
	}

	log.Infow("database connected", "driver", cfg.Driver, "max_open_conns", poolCfg.MaxOpenConns)
	return db, nil
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool; a nil db is a no-op.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// Stats returns connection pool statistics.
func Stats(db *gorm.DB) (sql.DBStats, error) {
	if db == nil {
		return sql.DBStats{}, fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return sql.DBStats{}, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Stats(), nil
}
