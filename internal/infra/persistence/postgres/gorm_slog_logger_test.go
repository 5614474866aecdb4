package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"campwatch/config"
	deliverycontext "campwatch/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), &buf
}

func sqlOf(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormLogger_Trace(t *testing.T) {
	t.Run("failed query is logged at error", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)

		l.Trace(t.Context(), time.Now(), sqlOf("INSERT INTO users"), errors.New("duplicate key"))

		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "duplicate key")
		assert.Contains(t, buf.String(), "INSERT INTO users")
	})

	t.Run("record not found is silent", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)

		l.Trace(t.Context(), time.Now(), sqlOf("SELECT * FROM users"), gorm.ErrRecordNotFound)

		assert.NotContains(t, buf.String(), "level=ERROR")
	})

	t.Run("slow query is logged at warn", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)

		l.Trace(t.Context(), time.Now().Add(-time.Second), sqlOf("SELECT 1"), nil)

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "Slow query")
	})

	t.Run("fast query only in debug mode", func(t *testing.T) {
		quiet, quietBuf := newBufferedGormLogger(false)
		quiet.Trace(t.Context(), time.Now(), sqlOf("SELECT 1"), nil)
		assert.Empty(t, quietBuf.String())

		verbose, verboseBuf := newBufferedGormLogger(true)
		verbose.Trace(t.Context(), time.Now(), sqlOf("SELECT 1"), nil)
		assert.Contains(t, verboseBuf.String(), "level=INFO")
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)

		l.LogMode(logger.Silent).Trace(t.Context(), time.Now(), sqlOf("SELECT 1"), errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestGormLogger_UsesRequestLogger(t *testing.T) {
	l, _ := newBufferedGormLogger(false)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-123"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlOf("UPDATE notification_preferences"), errors.New("deadlock"))

	assert.Contains(t, reqBuf.String(), "request_id=req-123")
	assert.Contains(t, reqBuf.String(), "deadlock")
}
