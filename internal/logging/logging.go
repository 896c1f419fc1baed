// Package logging configures structured logging with file rotation and
// colored console output.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// DefaultMaxSize is the maximum log size in megabytes before rotation
	DefaultMaxSize = 2

	// DefaultMaxBackups is the number of rotated log files to retain
	DefaultMaxBackups = 3

	// DefaultMaxAge is the maximum number of days to retain rotated logs
	DefaultMaxAge = 28
)

// Options configures logging
type Options struct {
	Verbose bool   // Also print debug messages to the console
	LogDir  string // If empty, uses the user config dir
}

// LogPath returns the path the log file will be written to
func LogPath(opts Options) string {
	logDir := opts.LogDir
	if logDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			configDir = "."
		}
		logDir = filepath.Join(configDir, "faker", "logs")
	}

	return filepath.Join(logDir, "faker.log")
}

// Setup installs the process-wide slog default: a rotating file handler
// plus a colored console handler. The returned function flushes and closes
// the log file.
func Setup(opts Options) (func(), error) {
	logPath := LogPath(opts)

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	rotating := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    DefaultMaxSize,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAge,
		Compress:   true,
	}

	fileHandler := slog.NewTextHandler(rotating, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	console := &consoleHandler{
		writer:  os.Stderr,
		verbose: opts.Verbose,
	}

	slog.SetDefault(slog.New(&teeHandler{handlers: []slog.Handler{fileHandler, console}}))

	closeFn := func() {
		if err := rotating.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: failed to close log file: %v\n", err)
		}
	}

	return closeFn, nil
}

// teeHandler fans records out to every wrapped handler.
type teeHandler struct {
	handlers []slog.Handler
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range t.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &teeHandler{handlers: handlers}
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &teeHandler{handlers: handlers}
}

// consoleHandler prints clean, colored messages without timestamps.
type consoleHandler struct {
	writer  io.Writer
	verbose bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if !h.verbose && level < slog.LevelInfo {
		return false
	}
	return true
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var prefix string
	var colorFunc *color.Color

	switch r.Level {
	case slog.LevelError:
		prefix = "ERROR: "
		colorFunc = color.New(color.FgRed)
	case slog.LevelWarn:
		prefix = "WARNING: "
		colorFunc = color.New(color.FgYellow)
	case slog.LevelDebug:
		prefix = "VERBOSE: "
		colorFunc = color.New(color.FgCyan)
	}

	msg := r.Message

	if r.NumAttrs() > 0 {
		r.Attrs(func(a slog.Attr) bool {
			msg += fmt.Sprintf(" %s=%v", a.Key, a.Value)
			return true
		})
	}

	if colorFunc != nil {
		_, err := colorFunc.Fprintf(h.writer, "%s%s\n", prefix, msg)
		return err
	}

	_, err := fmt.Fprintf(h.writer, "%s%s\n", prefix, msg)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *consoleHandler) WithGroup(_ string) slog.Handler {
	return h
}
