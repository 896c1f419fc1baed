package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogPath(t *testing.T) {
	t.Run("custom log dir", func(t *testing.T) {
		tmpDir := t.TempDir()
		got := LogPath(Options{LogDir: tmpDir})
		want := filepath.Join(tmpDir, "faker.log")
		if got != want {
			t.Errorf("LogPath = %q, want %q", got, want)
		}
	})

	t.Run("default dir ends with faker/logs/faker.log", func(t *testing.T) {
		got := LogPath(Options{})
		want := filepath.Join("faker", "logs", "faker.log")
		if !strings.HasSuffix(got, want) {
			t.Errorf("LogPath = %q, want suffix %q", got, want)
		}
	})
}

func TestSetupCreatesLogDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	logDir := filepath.Join(tmpDir, "nested", "logs")

	closeFn, err := Setup(Options{LogDir: logDir})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer closeFn()

	if _, err := os.Stat(logDir); err != nil {
		t.Fatalf("expected log directory to exist: %v", err)
	}

	slog.Info("hello", "key", "value")

	data, err := os.ReadFile(filepath.Join(logDir, "faker.log"))
	if err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing message: %s", data)
	}
}

func TestConsoleHandlerVerboseGating(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		level   slog.Level
		want    bool
	}{
		{name: "debug hidden by default", verbose: false, level: slog.LevelDebug, want: false},
		{name: "debug shown when verbose", verbose: true, level: slog.LevelDebug, want: true},
		{name: "info always shown", verbose: false, level: slog.LevelInfo, want: true},
		{name: "warn always shown", verbose: false, level: slog.LevelWarn, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &consoleHandler{writer: &bytes.Buffer{}, verbose: tt.verbose}
			if got := h.Enabled(context.Background(), tt.level); got != tt.want {
				t.Errorf("Enabled(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	h := &consoleHandler{writer: &buf, verbose: true}

	r := slog.NewRecord(time.Now(), slog.LevelWarn, "action failed", 0)
	r.AddAttrs(slog.String("method", "keyboard"))

	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "WARNING: action failed") {
		t.Errorf("missing warning prefix: %q", out)
	}
	if !strings.Contains(out, "method=keyboard") {
		t.Errorf("missing attribute: %q", out)
	}
}
