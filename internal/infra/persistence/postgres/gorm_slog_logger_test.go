package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"showmyshop/config"
	deliverycontext "showmyshop/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(raw) == 0 {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal(raw, &line))
		lines = append(lines, line)
	}

	return lines
}

func selectShop() (string, int64) {
	return `SELECT * FROM "shops" WHERE id = 'x'`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("failed query carries the request id", func(t *testing.T) {
		var base, scoped bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})
		ctx := deliverycontext.WithLogger(context.Background(),
			newBufferLogger(&scoped).With(slog.String("request_id", "req-42")))

		l.Trace(ctx, time.Now(), selectShop, errors.New("connection reset"))

		assert.Empty(t, base.String())
		lines := decodeLines(t, &scoped)
		require.Len(t, lines, 1)
		assert.Equal(t, "ERROR", lines[0]["level"])
		assert.Equal(t, "Postgres query failed", lines[0]["msg"])
		assert.Equal(t, "req-42", lines[0]["request_id"])
		assert.Equal(t, "connection reset", lines[0]["error"])
		assert.Contains(t, lines[0]["sql"], `FROM "shops"`)
	})

	t.Run("falls back to the base logger outside a request", func(t *testing.T) {
		var base bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})

		l.Trace(context.Background(), time.Now(), selectShop, errors.New("boom"))

		lines := decodeLines(t, &base)
		require.Len(t, lines, 1)
		assert.NotContains(t, lines[0], "request_id")
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		var base bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})

		l.Trace(context.Background(), time.Now(), selectShop, gorm.ErrRecordNotFound)

		assert.Empty(t, base.String())
	})

	t.Run("slow query is a warning", func(t *testing.T) {
		var base bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})

		l.Trace(context.Background(), time.Now().Add(-time.Second), selectShop, nil)

		lines := decodeLines(t, &base)
		require.Len(t, lines, 1)
		assert.Equal(t, "WARN", lines[0]["level"])
		assert.Equal(t, "Postgres slow query", lines[0]["msg"])
	})

	t.Run("plain queries only in debug", func(t *testing.T) {
		var quiet, verbose bytes.Buffer
		newGormSlogLogger(newBufferLogger(&quiet), &config.Config{}).
			Trace(context.Background(), time.Now(), selectShop, nil)

		debugCfg := &config.Config{}
		debugCfg.Env.Debug = true
		newGormSlogLogger(newBufferLogger(&verbose), debugCfg).
			Trace(context.Background(), time.Now(), selectShop, nil)

		assert.Empty(t, quiet.String())
		lines := decodeLines(t, &verbose)
		require.Len(t, lines, 1)
		assert.Equal(t, "Postgres query", lines[0]["msg"])
		assert.EqualValues(t, 1, lines[0]["rows"])
	})

	t.Run("silent mode drops everything", func(t *testing.T) {
		var base bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&base), &config.Config{}).LogMode(logger.Silent)

		l.Trace(context.Background(), time.Now(), selectShop, errors.New("boom"))
		l.Error(context.Background(), "failed %s", "again")

		assert.Empty(t, base.String())
	})
}

func TestGormSlogLogger_Printf(t *testing.T) {
	var scoped bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.DiscardHandler), &config.Config{})
	ctx := deliverycontext.WithLogger(context.Background(),
		newBufferLogger(&scoped).With(slog.String("request_id", "req-7")))

	l.Info(ctx, "skipped %d", 1)
	l.Warn(ctx, "replica %s lagging", "r1")

	lines := decodeLines(t, &scoped)
	require.Len(t, lines, 1)
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.Equal(t, "replica r1 lagging", lines[0]["message"])
	assert.Equal(t, "req-7", lines[0]["request_id"])
}
