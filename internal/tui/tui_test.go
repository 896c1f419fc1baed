package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/faker-app/faker/internal/settings"
	"github.com/faker-app/faker/internal/simulate"
)

func testModel() Model {
	m := InitialModel(simulate.New(nil), settings.Default(), "")
	m.CheckRequirements = func(settings.Method) error { return nil }
	return m
}

func TestInitialModel(t *testing.T) {
	m := testModel()
	if m.State != stateMenu {
		t.Error("expected initial state to be stateMenu")
	}
	if m.Selected != 0 {
		t.Error("expected initial selected to be 0")
	}
	if m.Input != "" {
		t.Error("expected initial input to be empty")
	}
	if m.ErrorMessage != "" {
		t.Error("expected initial error message to be empty")
	}
}

func TestMenuView(t *testing.T) {
	m := testModel()
	view := View(m)

	expected := []string{
		"Start simulation",
		"Method: Keyboard Key Press",
		"Interval: 60 seconds",
		"Keyboard key: F15",
		"Mouse mode: fixed",
		"Quit",
	}

	for _, want := range expected {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}

	// Cursor starts on the first entry.
	lines := strings.Split(view, "\n")
	foundCursor := false
	for _, line := range lines {
		if strings.Contains(line, ">") && strings.Contains(line, "Start simulation") {
			foundCursor = true
			break
		}
	}
	if !foundCursor {
		t.Error("expected cursor to be at first option")
	}
}

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		name         string
		msg          tea.Msg
		selected     int
		wantSelected int
		wantState    state
	}{
		{
			name:         "up key at top stays at top",
			msg:          tea.KeyMsg{Type: tea.KeyUp},
			selected:     0,
			wantSelected: 0,
			wantState:    stateMenu,
		},
		{
			name:         "down key moves selection",
			msg:          tea.KeyMsg{Type: tea.KeyDown},
			selected:     0,
			wantSelected: 1,
			wantState:    stateMenu,
		},
		{
			name:         "down key at bottom stays at bottom",
			msg:          tea.KeyMsg{Type: tea.KeyDown},
			selected:     menuEntries - 1,
			wantSelected: menuEntries - 1,
			wantState:    stateMenu,
		},
		{
			name:         "enter on method opens method picker",
			msg:          tea.KeyMsg{Type: tea.KeyEnter},
			selected:     menuMethod,
			wantSelected: menuMethod,
			wantState:    stateMethodSelect,
		},
		{
			name:         "enter on interval opens interval input",
			msg:          tea.KeyMsg{Type: tea.KeyEnter},
			selected:     menuInterval,
			wantSelected: menuInterval,
			wantState:    stateIntervalInput,
		},
		{
			name:         "enter on key opens key input",
			msg:          tea.KeyMsg{Type: tea.KeyEnter},
			selected:     menuKey,
			wantSelected: menuKey,
			wantState:    stateKeyInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel()
			m.Selected = tt.selected

			got, _ := Update(tt.msg, m)
			if got.State != tt.wantState {
				t.Errorf("state = %v, want %v", got.State, tt.wantState)
			}
			if got.Selected != tt.wantSelected {
				t.Errorf("selected = %d, want %d", got.Selected, tt.wantSelected)
			}
		})
	}
}

func TestMouseModeToggle(t *testing.T) {
	m := testModel()
	m.Selected = menuMouseMode

	got, _ := Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	if got.Settings.Mouse.Mode != settings.MouseModeRandom {
		t.Errorf("mouse mode = %v, want random", got.Settings.Mouse.Mode)
	}

	got, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, got)
	if got.Settings.Mouse.Mode != settings.MouseModeFixed {
		t.Errorf("mouse mode = %v, want fixed", got.Settings.Mouse.Mode)
	}
}

func TestMethodSelect(t *testing.T) {
	m := testModel()
	m.State = stateMethodSelect
	m.MethodSelected = 0

	// Move down to the second method and confirm.
	m, _ = Update(tea.KeyMsg{Type: tea.KeyDown}, m)
	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)

	if m.State != stateMenu {
		t.Errorf("state = %v, want stateMenu", m.State)
	}
	if m.Settings.Method != settings.MethodMouse {
		t.Errorf("method = %v, want mouse", m.Settings.Method)
	}
}

func TestIntervalInput(t *testing.T) {
	t.Run("digits accumulate and apply", func(t *testing.T) {
		m := testModel()
		m.State = stateIntervalInput

		for _, r := range "300" {
			m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, m)
		}
		m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)

		if m.State != stateMenu {
			t.Errorf("state = %v, want stateMenu", m.State)
		}
		if m.Settings.IntervalSeconds != 300 {
			t.Errorf("interval = %d, want 300", m.Settings.IntervalSeconds)
		}
	})

	t.Run("empty input rejected", func(t *testing.T) {
		m := testModel()
		m.State = stateIntervalInput

		m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
		if m.ErrorMessage == "" {
			t.Error("expected error for empty input")
		}
		if m.State != stateIntervalInput {
			t.Errorf("state = %v, want stateIntervalInput", m.State)
		}
	})

	t.Run("oversized value clamped", func(t *testing.T) {
		m := testModel()
		m.State = stateIntervalInput

		for _, r := range "9999" {
			m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, m)
		}
		m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)

		if m.Settings.IntervalSeconds != settings.MaxIntervalSeconds {
			t.Errorf("interval = %d, want %d", m.Settings.IntervalSeconds, settings.MaxIntervalSeconds)
		}
	})

	t.Run("esc cancels", func(t *testing.T) {
		m := testModel()
		m.State = stateIntervalInput
		m.Input = "42"

		m, _ = Update(tea.KeyMsg{Type: tea.KeyEsc}, m)
		if m.State != stateMenu {
			t.Errorf("state = %v, want stateMenu", m.State)
		}
		if m.Settings.IntervalSeconds != 60 {
			t.Errorf("interval = %d, want unchanged 60", m.Settings.IntervalSeconds)
		}
	})
}

func TestKeyInput(t *testing.T) {
	m := testModel()
	m.State = stateKeyInput

	for _, r := range "F14" {
		m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, m)
	}
	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)

	if m.Settings.Keyboard.Key != "F14" {
		t.Errorf("key = %q, want F14", m.Settings.Keyboard.Key)
	}
}

func TestToggleBlockedWhenToolsMissing(t *testing.T) {
	m := testModel()
	m.CheckRequirements = func(settings.Method) error {
		return errors.New("xdotool is required but not installed")
	}
	m.Selected = menuToggle

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)

	if m.Keeper.IsRunning() {
		t.Error("expected keeper to stay stopped when tools are missing")
	}
	if !strings.Contains(m.ErrorMessage, "xdotool") {
		t.Errorf("error message = %q, want install hint", m.ErrorMessage)
	}
}

func TestMethodChangeBlockedWhenToolsMissing(t *testing.T) {
	m := testModel()
	m.CheckRequirements = func(method settings.Method) error {
		if method == settings.MethodMouse {
			return errors.New("ydotool is required but not installed")
		}
		return nil
	}
	m.State = stateMethodSelect
	m.MethodSelected = 0

	m, _ = Update(tea.KeyMsg{Type: tea.KeyDown}, m)
	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)

	if m.State != stateMethodSelect {
		t.Errorf("state = %v, want stateMethodSelect", m.State)
	}
	if m.Settings.Method == settings.MethodMouse {
		t.Error("expected method to stay unchanged when tools are missing")
	}
	if !strings.Contains(m.ErrorMessage, "ydotool") {
		t.Errorf("error message = %q, want install hint", m.ErrorMessage)
	}
	if !strings.Contains(View(m), "ydotool") {
		t.Error("expected method picker to show the install hint")
	}
}

func TestFootersUseKeyBindings(t *testing.T) {
	m := testModel()

	view := View(m)
	for _, want := range []string{"↑/k", "↓/j", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected menu footer to contain %q", want)
		}
	}

	m.State = stateIntervalInput
	view = View(m)
	for _, want := range []string{"enter", "apply", "esc", "back"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected input footer to contain %q", want)
		}
	}
}

func TestErrorDisplay(t *testing.T) {
	m := testModel()
	m.ErrorMessage = "test error"

	if !strings.Contains(View(m), "test error") {
		t.Error("expected view to show error message")
	}
}

func TestHelpView(t *testing.T) {
	m := testModel()
	m.ShowHelp = true

	view := View(m)
	if !strings.Contains(view, "Faker Help") {
		t.Error("expected help view title")
	}
	if !strings.Contains(view, "-tui") {
		t.Error("expected help view to list flags")
	}
}
