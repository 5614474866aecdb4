package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"campwatch/config"
	deliverycontext "campwatch/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes GORM output to slog. Queries run under a request context are
// logged with that request's logger, so they carry its request_id.
type gormLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormLogger{
		base:          base,
		level:         level,
		slowThreshold: slowQueryThreshold,
	}
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

// Trace logs failed queries at error, slow ones at warn and, in debug mode, everything else at info.
// A missing row is an expected outcome of the repositories' lookups and is not logged.
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	switch {
	case failed && l.level >= logger.Error:
		l.logQuery(ctx, slog.LevelError, "Query failed", sqlAndRows, elapsed, slog.String("error", err.Error()))
	case elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.logQuery(ctx, slog.LevelWarn, "Slow query", sqlAndRows, elapsed, slog.Duration("threshold", l.slowThreshold))
	case l.level >= logger.Info:
		l.logQuery(ctx, slog.LevelInfo, "Query", sqlAndRows, elapsed)
	}
}

func (l *gormLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.base == nil || l.level < threshold {
		return
	}

	l.forContext(ctx).LogAttrs(ctx, level, "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormLogger) logQuery(
	ctx context.Context,
	level slog.Level,
	msg string,
	sqlAndRows func() (string, int64),
	elapsed time.Duration,
	extra ...slog.Attr,
) {
	sql, rows := sqlAndRows()
	attrs := append([]slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}, extra...)

	l.forContext(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormLogger) forContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
