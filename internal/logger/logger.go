// Package logger provides module-tagged slog loggers sharing one root handler.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	root     *handler
	levelVar = new(slog.LevelVar)
)

func init() {
	if debug, _ := strconv.ParseBool(os.Getenv("TATEKUMI_DEBUG")); debug {
		levelVar.Set(slog.LevelDebug)
	}
	root = &handler{out: &output{w: os.Stderr}}
}

// GetLogger returns a logger with the given module prefix for easier filtering
func GetLogger(module string) *slog.Logger {
	return slog.New(root).With("module", module)
}

// SetOutput redirects every logger, including ones created earlier.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	root.out.w = w
}

// SetLevel changes the minimum level of every logger.
func SetLevel(level slog.Level) {
	levelVar.Set(level)
}

type output struct {
	w io.Writer
}

type handler struct {
	out   *output
	attrs []slog.Attr
	group string
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= levelVar.Level()
}

func (h *handler) Handle(_ context.Context, record slog.Record) error {
	var levelStr string
	switch record.Level {
	case slog.LevelDebug:
		levelStr = "DEBUG"
	case slog.LevelInfo:
		levelStr = "INFO"
	case slog.LevelWarn:
		levelStr = "WARNING"
	case slog.LevelError:
		levelStr = "ERROR"
	default:
		levelStr = record.Level.String()
	}

	var module string
	var args []string
	collect := func(a slog.Attr) bool {
		if a.Key == "module" {
			module = a.Value.String()
			return true
		}
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		args = append(args, fmt.Sprintf("%s=%v", key, a.Value))
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	record.Attrs(collect)

	var b strings.Builder
	if module != "" {
		fmt.Fprintf(&b, "[%s] ", module)
	}
	fmt.Fprintf(&b, "%s: %s", levelStr, record.Message)
	if len(args) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(args, ", "))
	}
	fmt.Fprintf(&b, " [%s]\n", record.Time.Format("15:04:05"))

	mu.RLock()
	defer mu.RUnlock()
	_, err := io.WriteString(h.out.w, b.String())
	return err
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)
	return &handler{out: h.out, attrs: newAttrs, group: h.group}
}

func (h *handler) WithGroup(name string) slog.Handler {
	return &handler{out: h.out, attrs: h.attrs, group: name}
}
