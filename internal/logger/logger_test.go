package logger

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(slog.LevelInfo)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(slog.LevelInfo)
	})

	log := GetLogger("layout")
	log.Info("page skipped", "page", 3)
	log.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "[layout] INFO: page skipped (page=3)")
	assert.NotContains(t, out, "hidden")
}

func TestSetLevelAppliesToExistingLoggers(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	log := GetLogger("ndlocr")
	SetLevel(slog.LevelDebug)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(slog.LevelInfo)
	})

	log.Debug("parsed", "pages", 2)
	assert.Contains(t, buf.String(), "[ndlocr] DEBUG: parsed (pages=2)")
}
