// Package settings persists the user configuration as JSON under the
// per-user config directory.
package settings

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Method identifies an activity simulation method.
type Method string

const (
	MethodKeyboard   Method = "keyboard"
	MethodMouse      Method = "mouse"
	MethodScrollLock Method = "scroll_lock"
	MethodIdleReset  Method = "idle_reset"
)

// MouseMode selects how the mouse jiggle moves the pointer.
type MouseMode string

const (
	MouseModeFixed  MouseMode = "fixed"
	MouseModeRandom MouseMode = "random"
)

// Interval bounds in seconds.
const (
	MinIntervalSeconds = 1
	MaxIntervalSeconds = 3600

	MinMousePixels = 1
	MaxMousePixels = 100
)

// Label returns a human readable name for the method.
func (m Method) Label() string {
	switch m {
	case MethodKeyboard:
		return "Keyboard Key Press"
	case MethodMouse:
		return "Mouse Jiggle"
	case MethodScrollLock:
		return "Scroll Lock Toggle"
	case MethodIdleReset:
		return "Idle Timer Reset"
	default:
		return string(m)
	}
}

// Methods lists all simulation methods in menu order.
func Methods() []Method {
	return []Method{MethodKeyboard, MethodMouse, MethodScrollLock, MethodIdleReset}
}

// Keyboard holds the keyboard method sub-configuration.
type Keyboard struct {
	Key string `json:"key"`
}

// Mouse holds the mouse method sub-configuration.
type Mouse struct {
	Mode   MouseMode `json:"mode"`
	Pixels int       `json:"pixels"`
}

// UI holds presentation preferences.
type UI struct {
	DarkMode bool `json:"dark_mode"`
}

// Settings is the whole persisted configuration object.
type Settings struct {
	Method          Method   `json:"method"`
	IntervalSeconds int      `json:"interval_seconds"`
	Enabled         bool     `json:"enabled"`
	Keyboard        Keyboard `json:"keyboard"`
	Mouse           Mouse    `json:"mouse"`
	UI              UI       `json:"ui"`
}

// Default returns the documented default settings.
func Default() Settings {
	return Settings{
		Method:          MethodKeyboard,
		IntervalSeconds: 60,
		Enabled:         false,
		Keyboard:        Keyboard{Key: "F15"},
		Mouse:           Mouse{Mode: MouseModeFixed, Pixels: 1},
		UI:              UI{DarkMode: false},
	}
}

// DefaultPath returns the fixed per-user settings file path.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, "faker", "settings.json"), nil
}

// Load reads settings from path. A missing file is created with defaults,
// a corrupt file falls back to all defaults; Load never fails the
// application, it only logs what happened.
func Load(path string) Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			defaults := Default()
			if saveErr := Save(path, defaults); saveErr != nil {
				slog.Warn("settings: could not write initial file", "path", path, "error", saveErr)
			}
			return defaults
		}
		slog.Warn("settings: read failed, using defaults", "path", path, "error", err)
		return Default()
	}

	// Unmarshal over the defaults so absent fields keep their default
	// values while present fields override them.
	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		slog.Warn("settings: corrupt file, using defaults", "path", path, "error", err)
		return Default()
	}

	s.Normalize()
	return s
}

// Save writes the whole settings object to path, creating the parent
// directory if needed. Writes are not atomic; losing the file just
// reverts to defaults on the next load.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// Normalize clamps numeric fields into their documented ranges and
// coerces unknown enum values back to defaults.
func (s *Settings) Normalize() {
	s.IntervalSeconds = clamp(s.IntervalSeconds, MinIntervalSeconds, MaxIntervalSeconds)
	s.Mouse.Pixels = clamp(s.Mouse.Pixels, MinMousePixels, MaxMousePixels)

	switch s.Method {
	case MethodKeyboard, MethodMouse, MethodScrollLock, MethodIdleReset:
	default:
		s.Method = MethodKeyboard
	}

	switch s.Mouse.Mode {
	case MouseModeFixed, MouseModeRandom:
	default:
		s.Mouse.Mode = MouseModeFixed
	}

	if strings.TrimSpace(s.Keyboard.Key) == "" {
		s.Keyboard.Key = "F15"
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
