package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrettyHandler_Handle(t *testing.T) {
	color.NoColor = true

	t.Run("should render level, message and attributes", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		log.With("user", "octocat").Info("tickets fetched", "count", 2)

		out := buf.String()
		assert.Contains(t, out, "[INFO]")
		assert.Contains(t, out, "tickets fetched")
		assert.Contains(t, out, "count=2")
		assert.Contains(t, out, "user=octocat")
	})

	t.Run("should drop records below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(NewPrettyHandler(&buf, nil))

		log.Info("hidden")
		log.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "[WARN]")
	})

	t.Run("should prefix grouped attributes", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		log.WithGroup("gist").Debug("listed", "page", 1)

		assert.Contains(t, buf.String(), "gist.page=1")
	})

	t.Run("should redact credentials", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		log.With("Token", "ghp_secret").Debug("client created", slog.Group("req", "authorization", "Bearer ghp_secret"))

		assert.NotContains(t, buf.String(), "ghp_secret")
		assert.Contains(t, buf.String(), "Token=[REDACTED]")
		assert.Contains(t, buf.String(), "req.authorization=[REDACTED]")
	})
}

func TestContextLogger(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	InitializeWithWriter(&buf, false, true)
	t.Cleanup(func() { InitializeWithWriter(&bytes.Buffer{}, false, false) })

	ctx := With(context.Background(), "gist_id", "g1")
	Info(ctx, "ticket deleted")
	Debug(ctx, "not at verbose level")
	Error(ctx, "delete failed", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "ticket deleted gist_id=g1")
	assert.NotContains(t, out, "not at verbose level")
	assert.Contains(t, out, "error=boom")
}
