//go:build linux

package platform

import (
	"fmt"
	"log/slog"

	"github.com/faker-app/faker/internal/platform/linux"
	"github.com/faker-app/faker/internal/settings"
)

// linuxSimulator implements the Simulator interface using the external
// input tools available in the session (xdotool on X11, ydotool/wtype on
// Wayland, xdg-screensaver for idle resets).
type linuxSimulator struct {
	caps linux.Capabilities
}

// NewSimulator creates the Linux simulator, probing the session once.
func NewSimulator() (Simulator, error) {
	caps := linux.DetectCapabilities()
	slog.Debug("linux: detected session",
		"display_server", caps.DisplayServer,
		"desktop", caps.DesktopEnvironment,
		"xdotool", caps.XdotoolAvailable,
		"ydotool", caps.YdotoolAvailable,
		"wtype", caps.WtypeAvailable)
	return &linuxSimulator{caps: caps}, nil
}

func (s *linuxSimulator) PressKey(key string) error {
	return linux.PressKey(s.caps, key)
}

func (s *linuxSimulator) MoveMouse(dx, dy int) error {
	return linux.MoveMouse(s.caps, dx, dy)
}

func (s *linuxSimulator) ToggleScrollLock() error {
	// Two presses so the LED state ends up unchanged.
	if err := linux.PressKey(s.caps, "Scroll_Lock"); err != nil {
		return err
	}
	return linux.PressKey(s.caps, "Scroll_Lock")
}

func (s *linuxSimulator) ResetIdleTimer() error {
	return linux.ResetIdleTimer(s.caps)
}

// CheckRequirements verifies the external tools the method needs are
// installed, returning a human-readable install hint if not.
func CheckRequirements(method settings.Method) error {
	caps := linux.DetectCapabilities()

	switch method {
	case settings.MethodKeyboard, settings.MethodMouse, settings.MethodScrollLock:
		if caps.XdotoolAvailable || caps.YdotoolAvailable || caps.WtypeAvailable {
			return nil
		}
		if caps.DisplayServer == linux.DisplayServerWayland {
			return fmt.Errorf("input simulation needs ydotool or wtype on Wayland.\n" +
				"Install one with: sudo apt install ydotool")
		}
		return fmt.Errorf("xdotool is required but not installed.\n" +
			"Install it with: sudo apt install xdotool")
	case settings.MethodIdleReset:
		if !caps.XdgScreensaverAvailable {
			return fmt.Errorf("xdg-screensaver is required but not found.\n" +
				"Install it with: sudo apt install xdg-utils")
		}
	}
	return nil
}
