package logging

import (
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf strings.Builder
	l := New(Config{Level: LevelWarn, Output: &buf})

	l.Debug("debug msg")
	l.Info("info msg")
	l.Warn("warn msg")
	l.Error("error msg")

	out := buf.String()
	if strings.Contains(out, "debug msg") || strings.Contains(out, "info msg") {
		t.Errorf("expected low levels filtered, got %q", out)
	}
	if !strings.Contains(out, "warn msg") || !strings.Contains(out, "error msg") {
		t.Errorf("expected warn and error lines, got %q", out)
	}
}

func TestLogger_FieldsAndPrefix(t *testing.T) {
	var buf strings.Builder
	l := New(Config{Level: LevelDebug, Output: &buf, Prefix: "test"})

	l.WithComponent("watcher").WithField("path", "/tmp/x").Info("reloaded")

	out := buf.String()
	if !strings.Contains(out, "test: reloaded") {
		t.Errorf("expected prefix in line, got %q", out)
	}
	if !strings.Contains(out, "component=watcher") || !strings.Contains(out, "path=/tmp/x") {
		t.Errorf("expected fields in line, got %q", out)
	}
}

func TestLogger_Formatting(t *testing.T) {
	var buf strings.Builder
	l := New(Config{Level: LevelDebug, Output: &buf})

	l.Info("loaded %d behaviors", 3)

	if !strings.Contains(buf.String(), "loaded 3 behaviors") {
		t.Errorf("expected formatted message, got %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	// Must not panic and must stay silent.
	Null.Info("dropped")
	Null.WithField("k", "v").Error("dropped")
}
