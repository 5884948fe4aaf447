package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func requestIDFromContext(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return slog.String("request_id", v), true
	}
	return slog.Attr{}, false
}

func decodeLine(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(b), &out))
	return out
}

func TestLogHandlerDecorator(t *testing.T) {
	t.Parallel()

	t.Run("adds extracted attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), requestIDFromContext))

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "hello")

		rec := decodeLine(t, buf.Bytes())
		require.Equal(t, "req-1", rec["request_id"])
	})

	t.Run("skips missing values", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), requestIDFromContext))
		log.InfoContext(context.Background(), "hello")

		rec := decodeLine(t, buf.Bytes())
		require.NotContains(t, rec, "request_id")
	})

	t.Run("nil extractors are ignored", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), nil))
		require.NotPanics(t, func() { log.Info("hello") })
	})

	t.Run("keeps extractors across With", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), requestIDFromContext)).
			With("component", "contact")

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-2")
		log.InfoContext(ctx, "hello")

		rec := decodeLine(t, buf.Bytes())
		require.Equal(t, "contact", rec["component"])
		require.Equal(t, "req-2", rec["request_id"])
	})
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("sink down")
}

func TestFanoutHandler(t *testing.T) {
	t.Parallel()

	t.Run("writes to every handler", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		h := newFanoutHandler(slog.NewJSONHandler(&a, nil), slog.NewJSONHandler(&b, nil))
		slog.New(h).Info("hello")

		require.Contains(t, a.String(), "hello")
		require.Contains(t, b.String(), "hello")
	})

	t.Run("respects per handler level", func(t *testing.T) {
		t.Parallel()

		var info, errOnly bytes.Buffer
		h := newFanoutHandler(
			slog.NewJSONHandler(&info, nil),
			slog.NewJSONHandler(&errOnly, &slog.HandlerOptions{Level: slog.LevelError}),
		)
		slog.New(h).Info("hello")

		require.Contains(t, info.String(), "hello")
		require.Empty(t, errOnly.String())
	})

	t.Run("failing handler does not block others", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h := newFanoutHandler(failingHandler{}, slog.NewJSONHandler(&buf, nil))

		var rec slog.Record
		rec.Message = "hello"
		err := h.Handle(context.Background(), rec)

		require.Error(t, err)
		require.Contains(t, buf.String(), "hello")
	})
}

func TestNewWithConfig(t *testing.T) {
	t.Parallel()

	t.Run("honours level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, shutdown := newWithWriter(&buf, Config{Level: slog.LevelWarn})
		defer func() { require.NoError(t, shutdown(context.Background())) }()

		log.Info("quiet")
		log.Warn("loud")

		require.NotContains(t, buf.String(), "quiet")
		require.Contains(t, buf.String(), "loud")
	})

	t.Run("mirrors records to the log file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "folio.log")

		var buf bytes.Buffer
		log, shutdown := newWithWriter(&buf, Config{
			Level: slog.LevelInfo,
			File:  FileConfig{Path: path, MaxSizeMB: 1},
		})

		log.Info("to file")
		require.NoError(t, shutdown(context.Background()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), "to file")
		require.Contains(t, buf.String(), "to file")
	})
}
