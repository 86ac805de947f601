package otbnlog

import (
	"log/slog"
	"strings"
	"testing"
)

func TestHandlerWritesToSink(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(New(&buf, slog.LevelInfo))
	logger.Info("breakpoint hit", "addr", 42)

	out := buf.String()
	if !strings.Contains(out, "breakpoint hit") {
		t.Errorf("sink missing message: %q", out)
	}
	if !strings.Contains(out, "42") {
		t.Errorf("sink missing attr: %q", out)
	}
}

func TestHandlerRespectsLevel(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(New(&buf, slog.LevelWarn))
	logger.Info("should be filtered")
	if strings.Contains(buf.String(), "should be filtered") {
		t.Errorf("info record should be below the configured warn level")
	}
}
