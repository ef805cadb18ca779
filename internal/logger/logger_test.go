package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"debug level", "debug", "text"},
		{"info level", "info", "text"},
		{"warn level", "warn", "json"},
		{"error level", "error", "json"},
		{"invalid level", "invalid", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level, tt.format)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		emit        func(Logger)
		wantOutput  bool
	}{
		{"debug logs at debug level", "debug", func(l Logger) { l.Debug(context.Background(), "x") }, true},
		{"info logs at debug level", "debug", func(l Logger) { l.Info(context.Background(), "x") }, true},
		{"debug doesn't log at info level", "info", func(l Logger) { l.Debug(context.Background(), "x") }, false},
		{"info logs at info level", "info", func(l Logger) { l.Info(context.Background(), "x") }, true},
		{"warn doesn't log at error level", "error", func(l Logger) { l.Warn(context.Background(), "x") }, false},
		{"error always logs", "debug", func(l Logger) { l.Error(context.Background(), "x") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newWithWriter(&buf, tt.configLevel, "text"))
			if got := buf.Len() > 0; got != tt.wantOutput {
				t.Errorf("wrote output = %v, want %v (%q)", got, tt.wantOutput, buf.String())
			}
		})
	}
}

func TestFormatting(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&buf, "info", "text")

	log.Info(context.Background(), "parsed %d segments from %s", 12, "talk.srt")
	if !strings.Contains(buf.String(), "parsed 12 segments from talk.srt") {
		t.Errorf("output = %q, want formatted message", buf.String())
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&buf, "info", "json").With("run_id", "abc")

	log.Info(context.Background(), "hello")
	out := buf.String()
	if !strings.Contains(out, `"run_id":"abc"`) || !strings.Contains(out, `"msg":"hello"`) {
		t.Errorf("output = %q, want run_id attribute and message", out)
	}
}
