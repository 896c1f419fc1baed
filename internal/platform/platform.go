// Package platform provides the OS-specific input simulation backends.
package platform

// Simulator defines the interface for platform-specific activity simulation.
// Every call performs one fire-and-forget action: a failure is returned to
// the caller, which logs it and treats the tick as a no-op.
type Simulator interface {
	// PressKey simulates a press and release of the named key
	// (X11 key names, e.g. "F15" or "Scroll_Lock").
	PressKey(key string) error

	// MoveMouse moves the pointer by a relative offset in pixels.
	MoveMouse(dx, dy int) error

	// ToggleScrollLock toggles Scroll Lock on then off, leaving the
	// state unchanged.
	ToggleScrollLock() error

	// ResetIdleTimer resets the OS idle/sleep countdown without
	// injecting any input event.
	ResetIdleTimer() error
}

// NewSimulator and CheckRequirements are implemented once per platform
// (linux, windows, darwin) in the build-tagged files of this package.
