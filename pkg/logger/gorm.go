package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultSlowThreshold marks queries worth a warning.
const DefaultSlowThreshold = 200 * time.Millisecond

// GormLogger routes gorm's SQL logging into zap.
type GormLogger struct {
	logger        *zap.SugaredLogger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

var _ gormlogger.Interface = (*GormLogger)(nil)

// NewGormLogger returns a gorm logger writing to a "gorm" child of logger.
func NewGormLogger(logger *zap.SugaredLogger, level gormlogger.LogLevel) *GormLogger {
	return &GormLogger{
		logger:        logger.Named("gorm"),
		level:         level,
		slowThreshold: DefaultSlowThreshold,
	}
}

// LogMode implements gormlogger.Interface.
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

// Info implements gormlogger.Interface.
func (l *GormLogger) Info(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		l.logger.Infof(msg, data...)
	}
}

// Warn implements gormlogger.Interface.
func (l *GormLogger) Warn(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		l.logger.Warnf(msg, data...)
	}
}

// Error implements gormlogger.Interface.
func (l *GormLogger) Error(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		l.logger.Errorf(msg, data...)
	}
}

// Trace implements gormlogger.Interface. Record-not-found is expected on lookups
// and never logged as an error.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []any{"elapsed", elapsed, "rows", rows, "sql", sql}
	if id := RequestID(ctx); id != "" {
		fields = append(fields, "request_id", id)
	}

	switch {
	case err != nil && !errors.Is(err, gormlogger.ErrRecordNotFound) && l.level >= gormlogger.Error:
		l.logger.Errorw("sql error", append(fields, "error", err)...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		l.logger.Warnw("slow sql", append(fields, "threshold", l.slowThreshold)...)
	case l.level >= gormlogger.Info:
		l.logger.Debugw("sql", fields...)
	}
}

// ParseGormLevel maps DB_LOG_LEVEL values onto gorm log levels; unknown values mean warn.
func ParseGormLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
