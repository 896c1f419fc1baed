package tui

import (
	"fmt"
	"strings"

	"github.com/faker-app/faker/internal/settings"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	if m.ShowHelp {
		return helpView()
	}

	switch m.State {
	case stateMenu:
		return menuView(m)
	case stateMethodSelect:
		return methodSelectView(m)
	case stateIntervalInput:
		return inputView(m, "Interval", fmt.Sprintf(
			"Enter seconds between actions (%d-%d):",
			settings.MinIntervalSeconds, settings.MaxIntervalSeconds))
	case statePixelsInput:
		return inputView(m, "Jiggle Distance", fmt.Sprintf(
			"Enter pixels to move (%d-%d):",
			settings.MinMousePixels, settings.MaxMousePixels))
	case stateKeyInput:
		return inputView(m, "Keyboard Key", "Enter key name (e.g., F15):")
	}

	return ""
}

func menuView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Faker Options"))
	b.WriteString("\n\n")

	if m.Keeper.IsRunning() {
		b.WriteString(Current.ActiveStatus.Render("● Simulating activity"))
	} else {
		b.WriteString(Current.InactiveStatus.Render("○ Paused"))
	}
	b.WriteString("\n\n")

	toggle := "Start simulation"
	if m.Keeper.IsRunning() {
		toggle = "Pause simulation"
	}

	menuItems := []string{
		toggle,
		fmt.Sprintf("Method: %s", m.Settings.Method.Label()),
		fmt.Sprintf("Interval: %d seconds", m.Settings.IntervalSeconds),
		fmt.Sprintf("Keyboard key: %s", m.Settings.Keyboard.Key),
		fmt.Sprintf("Mouse mode: %s", m.Settings.Mouse.Mode),
		fmt.Sprintf("Mouse pixels: %d", m.Settings.Mouse.Pixels),
		"Quit",
	}

	for i, opt := range menuItems {
		if i == m.Selected {
			b.WriteString(Current.SelectedItem.Render("> " + opt))
		} else {
			b.WriteString(Current.UnselectedItem.Render("  " + opt))
		}
		b.WriteString("\n")
	}

	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}

	b.WriteString("\n\n" + Current.Help.Render(m.Help.View(m.Keys.ForState(stateMenu))))
	return b.String()
}

func methodSelectView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Simulation Method"))
	b.WriteString("\n\n")

	for i, method := range settings.Methods() {
		marker := "  "
		if method == m.Settings.Method {
			marker = "• "
		}
		line := marker + method.Label()
		if i == m.MethodSelected {
			b.WriteString(Current.SelectedItem.Render("> " + line))
		} else {
			b.WriteString(Current.UnselectedItem.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}

	b.WriteString("\n" + Current.Help.Render(m.Help.View(m.Keys.ForState(stateMethodSelect))))
	return b.String()
}

func inputView(m Model, title, prompt string) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(Current.UnselectedItem.Render(prompt))
	b.WriteString("\n")

	input := m.Input
	if input == "" {
		input = " "
	}
	b.WriteString(Current.InputBox.Render(input))
	b.WriteString("\n\n")

	b.WriteString(Current.Help.Render(m.Help.View(m.Keys.ForState(m.State))))

	if m.ErrorMessage != "" {
		b.WriteString("\n\n" + Current.Error.Render(m.ErrorMessage))
	}

	return b.String()
}

func helpView() string {
	help := `Faker Help

Usage:
  faker [flags]

Flags:
  -f, -for string     Simulate activity for a duration (e.g., "2h30m" or minutes)
  -u, -until string   Simulate activity until a clock time (e.g., "17:30")
  -tui                Run this terminal interface instead of the system tray
  -verbose            Print debug output to the console
  -v, -version        Show version information

Examples:
  faker                  # Run in the system tray
  faker -tui             # Run with this terminal interface
  faker -for 2h30m       # Simulate activity for 2.5 hours, then exit
  faker -until 17:30     # Simulate activity until 5:30 PM, then exit

Navigation:
  ↑/k, ↓/j  : Navigate menu
  Enter      : Select option
  h          : Show this help
  q/Esc      : Quit/Back

Press 'q' or 'Esc' to close help`

	return Current.Help.Render(help)
}
