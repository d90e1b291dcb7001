package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hivefund/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Queries slower than this are logged as warnings with their SQL text.
const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM's internal logging through the application's
// slog logger so query logs share the request ID and service attributes.
// Record-not-found errors are suppressed; they are expected control flow in
// the repositories.
type gormSlogLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger: baseLogger,
		level:  level,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < min {
		return
	}

	l.logger.LogAttrs(ctx, level, "Database log", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace classifies every executed statement into failed, slow or routine and
// logs it accordingly. Routine queries only appear at Info level.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case l.shouldLogError(err):
		sql, rows := sqlAndRowsFn()
		l.logger.LogAttrs(ctx, slog.LevelError, "Query failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		sql, rows := sqlAndRowsFn()
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Slow query",
			slog.Duration("elapsed", elapsed),
			slog.Duration("threshold", slowQueryThreshold),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	case l.level >= logger.Info:
		sql, rows := sqlAndRowsFn()
		l.logger.LogAttrs(ctx, slog.LevelInfo, "Query",
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	}
}

func (l *gormSlogLogger) shouldLogError(err error) bool {
	if err == nil || l.level < logger.Error {
		return false
	}

	return !errors.Is(err, gorm.ErrRecordNotFound)
}
