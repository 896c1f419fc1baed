//go:build !darwin && !windows && !linux

package platform

import (
	"errors"

	"github.com/faker-app/faker/internal/settings"
)

var errUnsupported = errors.New("unsupported platform")

// unsupportedSimulator implements the Simulator interface for platforms
// without an input simulation backend.
type unsupportedSimulator struct{}

func (unsupportedSimulator) PressKey(string) error    { return errUnsupported }
func (unsupportedSimulator) MoveMouse(int, int) error { return errUnsupported }
func (unsupportedSimulator) ToggleScrollLock() error  { return errUnsupported }
func (unsupportedSimulator) ResetIdleTimer() error    { return errUnsupported }

// NewSimulator creates a simulator that fails every action.
func NewSimulator() (Simulator, error) {
	return unsupportedSimulator{}, nil
}

// CheckRequirements reports that nothing can work here.
func CheckRequirements(settings.Method) error {
	return errUnsupported
}
