package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faker-app/faker/internal/platform"
	"github.com/faker-app/faker/internal/settings"
	"github.com/faker-app/faker/internal/simulate"
)

// state represents the different states of the interface.
type state int

const (
	stateMenu state = iota
	stateMethodSelect
	stateIntervalInput
	stateKeyInput
	statePixelsInput
)

// Menu entry indices.
const (
	menuToggle = iota
	menuMethod
	menuInterval
	menuKey
	menuMouseMode
	menuPixels
	menuQuit
	menuEntries
)

// Model holds the current state of the interface, the active settings and
// the simulation keeper.
type Model struct {
	State          state
	Selected       int
	MethodSelected int
	Input          string
	Keeper         *simulate.Keeper
	Settings       settings.Settings
	SettingsPath   string
	ErrorMessage   string
	ShowHelp       bool
	Keys           KeyMap
	Help           help.Model

	// CheckRequirements verifies a method's external tools before the
	// keeper is started or the method switched. Swappable for tests.
	CheckRequirements func(settings.Method) error
}

// InitialModel returns the initial model with the given settings.
func InitialModel(keeper *simulate.Keeper, cfg settings.Settings, settingsPath string) Model {
	return Model{
		State:             stateMenu,
		Keeper:            keeper,
		Settings:          cfg,
		SettingsPath:      settingsPath,
		Keys:              DefaultKeys(),
		Help:              NewHelpModel(),
		CheckRequirements: platform.CheckRequirements,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return Update(msg, m)
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}

// apply persists the current settings and pushes them to the running
// keeper.
func (m *Model) apply() {
	m.Settings.Normalize()
	m.Keeper.Reconfigure(m.Settings)

	if m.SettingsPath == "" {
		return
	}
	if err := settings.Save(m.SettingsPath, m.Settings); err != nil {
		m.ErrorMessage = err.Error()
	}
}

// checkRequirements runs the configured requirements check, treating a
// missing check as passing.
func (m Model) checkRequirements(method settings.Method) error {
	if m.CheckRequirements == nil {
		return nil
	}
	return m.CheckRequirements(method)
}
