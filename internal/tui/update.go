package tui

import (
	"strconv"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faker-app/faker/internal/settings"
)

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.ShowHelp {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if key.Matches(keyMsg, m.Keys.ToggleHelp) || key.Matches(keyMsg, m.Keys.Quit) {
			m.ShowHelp = false
		}
		return m, nil
	}

	switch m.State {
	case stateMenu:
		return updateMenu(keyMsg, m)
	case stateMethodSelect:
		return updateMethodSelect(keyMsg, m)
	case stateIntervalInput:
		return updateNumberInput(keyMsg, m, func(m Model, n int) Model {
			m.Settings.IntervalSeconds = n
			return m
		})
	case statePixelsInput:
		return updateNumberInput(keyMsg, m, func(m Model, n int) Model {
			m.Settings.Mouse.Pixels = n
			return m
		})
	case stateKeyInput:
		return updateKeyInput(keyMsg, m)
	}

	return m, nil
}

func updateMenu(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Selected < menuEntries-1 {
			m.Selected++
		}
	case key.Matches(msg, m.Keys.ToggleHelp):
		m.ShowHelp = true
	case key.Matches(msg, m.Keys.Select):
		return selectMenuEntry(m)
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func selectMenuEntry(m Model) (Model, tea.Cmd) {
	switch m.Selected {
	case menuToggle:
		if m.Keeper.IsRunning() {
			if err := m.Keeper.Stop(); err != nil {
				m.ErrorMessage = err.Error()
				return m, nil
			}
			m.Settings.Enabled = false
		} else {
			if err := m.checkRequirements(m.Settings.Method); err != nil {
				m.ErrorMessage = err.Error()
				return m, nil
			}
			if err := m.Keeper.Start(m.Settings); err != nil {
				m.ErrorMessage = err.Error()
				return m, nil
			}
			m.Settings.Enabled = true
		}
		m.ErrorMessage = ""
		m.apply()
	case menuMethod:
		m.State = stateMethodSelect
		m.MethodSelected = methodIndex(m.Settings.Method)
		m.ErrorMessage = ""
	case menuInterval:
		m.State = stateIntervalInput
		m.Input = ""
		m.ErrorMessage = ""
	case menuKey:
		m.State = stateKeyInput
		m.Input = ""
		m.ErrorMessage = ""
	case menuMouseMode:
		if m.Settings.Mouse.Mode == settings.MouseModeFixed {
			m.Settings.Mouse.Mode = settings.MouseModeRandom
		} else {
			m.Settings.Mouse.Mode = settings.MouseModeFixed
		}
		m.ErrorMessage = ""
		m.apply()
	case menuPixels:
		m.State = statePixelsInput
		m.Input = ""
		m.ErrorMessage = ""
	case menuQuit:
		if m.Keeper.IsRunning() {
			if err := m.Keeper.Stop(); err != nil {
				m.ErrorMessage = err.Error()
				return m, nil
			}
		}
		return m, tea.Quit
	}
	return m, nil
}

func updateMethodSelect(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	methods := settings.Methods()

	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.MethodSelected > 0 {
			m.MethodSelected--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.MethodSelected < len(methods)-1 {
			m.MethodSelected++
		}
	case key.Matches(msg, m.Keys.Select):
		method := methods[m.MethodSelected]
		if err := m.checkRequirements(method); err != nil {
			m.ErrorMessage = err.Error()
			return m, nil
		}
		m.Settings.Method = method
		m.State = stateMenu
		m.ErrorMessage = ""
		m.apply()
	case key.Matches(msg, m.Keys.Back):
		m.State = stateMenu
		m.ErrorMessage = ""
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func updateNumberInput(msg tea.KeyMsg, m Model, set func(Model, int) Model) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Submit):
		if m.Input == "" {
			m.ErrorMessage = "Please enter a value"
			return m, nil
		}
		n, err := strconv.Atoi(m.Input)
		if err != nil || n <= 0 {
			m.ErrorMessage = "Invalid value"
			return m, nil
		}
		m = set(m, n)
		m.State = stateMenu
		m.Input = ""
		m.ErrorMessage = ""
		m.apply()
		return m, nil
	case key.Matches(msg, m.Keys.Back):
		m.State = stateMenu
		m.Input = ""
		m.ErrorMessage = ""
		return m, nil
	case key.Matches(msg, m.Keys.Backspace):
		if len(m.Input) > 0 {
			m.Input = m.Input[:len(m.Input)-1]
			m.ErrorMessage = ""
		}
		return m, nil
	default:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if len(msg.String()) == 1 && unicode.IsDigit(rune(msg.String()[0])) {
			if len(m.Input) < 4 {
				m.Input += msg.String()
				m.ErrorMessage = ""
			}
		}
		return m, nil
	}
}

func updateKeyInput(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Submit):
		if m.Input == "" {
			m.ErrorMessage = "Please enter a key name"
			return m, nil
		}
		m.Settings.Keyboard.Key = m.Input
		m.State = stateMenu
		m.Input = ""
		m.ErrorMessage = ""
		m.apply()
		return m, nil
	case key.Matches(msg, m.Keys.Back):
		m.State = stateMenu
		m.Input = ""
		m.ErrorMessage = ""
		return m, nil
	case key.Matches(msg, m.Keys.Backspace):
		if len(m.Input) > 0 {
			m.Input = m.Input[:len(m.Input)-1]
			m.ErrorMessage = ""
		}
		return m, nil
	default:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		s := msg.String()
		if len(s) == 1 && (unicode.IsLetter(rune(s[0])) || unicode.IsDigit(rune(s[0])) || s[0] == '_') {
			if len(m.Input) < 16 {
				m.Input += s
				m.ErrorMessage = ""
			}
		}
		return m, nil
	}
}

func methodIndex(method settings.Method) int {
	for i, m := range settings.Methods() {
		if m == method {
			return i
		}
	}
	return 0
}
