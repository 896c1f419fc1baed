package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizeClampsInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval int
		expected int
	}{
		{name: "below minimum", interval: 0, expected: 1},
		{name: "negative", interval: -30, expected: 1},
		{name: "at minimum", interval: 1, expected: 1},
		{name: "typical value", interval: 60, expected: 60},
		{name: "at maximum", interval: 3600, expected: 3600},
		{name: "above maximum", interval: 86400, expected: 3600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			s.IntervalSeconds = tt.interval
			s.Normalize()
			if s.IntervalSeconds != tt.expected {
				t.Errorf("Normalize() interval = %d, want %d", s.IntervalSeconds, tt.expected)
			}
		})
	}
}

func TestNormalizeCoercesEnums(t *testing.T) {
	tests := []struct {
		name       string
		method     Method
		mouseMode  MouseMode
		key        string
		wantMethod Method
		wantMode   MouseMode
		wantKey    string
	}{
		{
			name:       "valid values preserved",
			method:     MethodMouse,
			mouseMode:  MouseModeRandom,
			key:        "F13",
			wantMethod: MethodMouse,
			wantMode:   MouseModeRandom,
			wantKey:    "F13",
		},
		{
			name:       "unknown method falls back to keyboard",
			method:     Method("teleport"),
			mouseMode:  MouseModeFixed,
			key:        "F15",
			wantMethod: MethodKeyboard,
			wantMode:   MouseModeFixed,
			wantKey:    "F15",
		},
		{
			name:       "unknown mouse mode falls back to fixed",
			method:     MethodMouse,
			mouseMode:  MouseMode("spiral"),
			key:        "F15",
			wantMethod: MethodMouse,
			wantMode:   MouseModeFixed,
			wantKey:    "F15",
		},
		{
			name:       "blank key falls back to F15",
			method:     MethodKeyboard,
			mouseMode:  MouseModeFixed,
			key:        "   ",
			wantMethod: MethodKeyboard,
			wantMode:   MouseModeFixed,
			wantKey:    "F15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			s.Method = tt.method
			s.Mouse.Mode = tt.mouseMode
			s.Keyboard.Key = tt.key
			s.Normalize()

			if s.Method != tt.wantMethod {
				t.Errorf("method = %q, want %q", s.Method, tt.wantMethod)
			}
			if s.Mouse.Mode != tt.wantMode {
				t.Errorf("mouse mode = %q, want %q", s.Mouse.Mode, tt.wantMode)
			}
			if s.Keyboard.Key != tt.wantKey {
				t.Errorf("key = %q, want %q", s.Keyboard.Key, tt.wantKey)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faker", "settings.json")

	s := Load(path)
	if s != Default() {
		t.Errorf("Load() on missing file = %+v, want defaults", s)
	}

	// First load writes the defaults file.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected settings file to be created: %v", err)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := Load(path)
	if s != Default() {
		t.Errorf("Load() on corrupt file = %+v, want defaults", s)
	}
}

func TestLoadPartialFile(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		check func(t *testing.T, s Settings)
	}{
		{
			name: "missing fields use defaults",
			json: `{"method": "mouse"}`,
			check: func(t *testing.T, s Settings) {
				if s.Method != MethodMouse {
					t.Errorf("method = %q, want mouse", s.Method)
				}
				if s.IntervalSeconds != 60 {
					t.Errorf("interval = %d, want default 60", s.IntervalSeconds)
				}
				if s.Keyboard.Key != "F15" {
					t.Errorf("key = %q, want default F15", s.Keyboard.Key)
				}
			},
		},
		{
			name: "present fields preserved",
			json: `{"interval_seconds": 120, "enabled": true, "keyboard": {"key": "F14"}}`,
			check: func(t *testing.T, s Settings) {
				if s.IntervalSeconds != 120 {
					t.Errorf("interval = %d, want 120", s.IntervalSeconds)
				}
				if !s.Enabled {
					t.Error("enabled = false, want true")
				}
				if s.Keyboard.Key != "F14" {
					t.Errorf("key = %q, want F14", s.Keyboard.Key)
				}
			},
		},
		{
			name: "out of range values clamped on load",
			json: `{"interval_seconds": 999999, "mouse": {"mode": "random", "pixels": 5000}}`,
			check: func(t *testing.T, s Settings) {
				if s.IntervalSeconds != 3600 {
					t.Errorf("interval = %d, want 3600", s.IntervalSeconds)
				}
				if s.Mouse.Pixels != 100 {
					t.Errorf("pixels = %d, want 100", s.Mouse.Pixels)
				}
				if s.Mouse.Mode != MouseModeRandom {
					t.Errorf("mode = %q, want random", s.Mouse.Mode)
				}
			},
		},
		{
			name: "unknown top level keys ignored",
			json: `{"method": "scroll_lock", "future_option": {"a": 1}}`,
			check: func(t *testing.T, s Settings) {
				if s.Method != MethodScrollLock {
					t.Errorf("method = %q, want scroll_lock", s.Method)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.json")
			if err := os.WriteFile(path, []byte(tt.json), 0o644); err != nil {
				t.Fatal(err)
			}
			tt.check(t, Load(path))
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.json")

	want := Settings{
		Method:          MethodMouse,
		IntervalSeconds: 300,
		Enabled:         true,
		Keyboard:        Keyboard{Key: "F13"},
		Mouse:           Mouse{Mode: MouseModeRandom, Pixels: 7},
		UI:              UI{DarkMode: true},
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got := Load(path)
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	if err != nil {
		t.Skipf("no user config dir in this environment: %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join("faker", "settings.json")) {
		t.Errorf("DefaultPath() = %q, want .../faker/settings.json", path)
	}
}

func TestMethodLabel(t *testing.T) {
	for _, m := range Methods() {
		if m.Label() == string(m) {
			t.Errorf("method %q has no label", m)
		}
	}
}
