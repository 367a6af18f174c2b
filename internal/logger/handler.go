package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/fatih/color"
)

const redacted = "[REDACTED]"

// sensitiveKeys are never written in clear, whatever the level.
var sensitiveKeys = map[string]bool{
	"token":         true,
	"authorization": true,
	"password":      true,
}

var keyColors = map[string]func(format string, a ...interface{}) string{
	"error":     color.RedString,
	"err":       color.RedString,
	"status":    color.YellowString,
	"duration":  color.MagentaString,
	"gist_id":   color.CyanString,
	"node_id":   color.CyanString,
	"ticket_id": color.CyanString,
	"user":      color.CyanString,
	"count":     color.GreenString,
	"kept":      color.GreenString,
	"dropped":   color.GreenString,
}

var levelBadges = map[slog.Level]func() string{
	slog.LevelDebug: func() string { return color.HiBlackString("[DEBUG]") },
	slog.LevelInfo:  func() string { return color.CyanString("[INFO] ") },
	slog.LevelWarn:  func() string { return color.YellowString("[WARN] ") },
	slog.LevelError: func() string { return color.RedString("[ERROR]") },
}

// PrettyHandler writes one colored line per record for a terminal reader.
// The browse UI logs from several goroutines, so writes are serialized.
type PrettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []string
	prefix string
}

func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	h := &PrettyHandler{w: w, mu: &sync.Mutex{}}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelWarn
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	parts := []string{badge(r.Level), r.Message}

	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, formatAttr(h.prefix, a)...)
		return true
	})
	parts = append(parts, h.attrs...)

	if h.opts.AddSource && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if frame.File != "" {
			parts = append(parts, color.HiBlackString("(%s:%d)", filepath.Base(frame.File), frame.Line))
		}
	}

	line := strings.Join(parts, " ") + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line)
	return err
}

// WithAttrs formats attrs once; they are appended to every later record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]string(nil), h.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, formatAttr(h.prefix, a)...)
	}
	return &clone
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func badge(level slog.Level) string {
	if render, ok := levelBadges[level]; ok {
		return render()
	}
	return fmt.Sprintf("[%s]", level.String())
}

func formatAttr(prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return nil
	}

	if a.Value.Kind() == slog.KindGroup {
		var out []string
		for _, child := range a.Value.Group() {
			out = append(out, formatAttr(prefix+a.Key+".", child)...)
		}
		return out
	}

	val := a.Value.String()
	if sensitiveKeys[strings.ToLower(a.Key)] {
		val = redacted
	}

	paint := color.HiBlackString
	if c, ok := keyColors[a.Key]; ok {
		paint = c
	}
	return []string{paint("%s=%s", prefix+a.Key, val)}
}
