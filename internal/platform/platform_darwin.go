//go:build darwin

package platform

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/faker-app/faker/internal/settings"
	"github.com/faker-app/faker/internal/util"
)

// scriptExecutionTimeout limits how long we wait for osascript to complete.
// This protects against hangs if Accessibility is misconfigured or the
// scripting environment is not responding.
const scriptExecutionTimeout = 3 * time.Second

// macKeyCodes maps the configurable key names to macOS virtual keycodes
// (the Carbon kVK_* values).
var macKeyCodes = map[string]int{
	"F1": 122, "F2": 120, "F3": 99, "F4": 118,
	"F5": 96, "F6": 97, "F7": 98, "F8": 100,
	"F9": 101, "F10": 109, "F11": 103, "F12": 111,
	"F13": 105, "F14": 107, "F15": 113, "F16": 106,
	"F17": 64, "F18": 79, "F19": 80, "F20": 90,
}

// darwinSimulator implements the Simulator interface via osascript JXA
// (CGEventPost) for input events and caffeinate/pmset for idle resets.
type darwinSimulator struct{}

// NewSimulator creates the macOS simulator.
func NewSimulator() (Simulator, error) {
	if !util.HasCommand("osascript") {
		return nil, fmt.Errorf("osascript not found; input simulation is unavailable")
	}
	return &darwinSimulator{}, nil
}

func runJXAScript(script string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), scriptExecutionTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "osascript", "-l", "JavaScript", "-e", script)
	out, err := cmd.CombinedOutput()

	if ctx.Err() == context.DeadlineExceeded {
		return out, fmt.Errorf("osascript timed out after %s", scriptExecutionTimeout)
	}

	return out, err
}

func (s *darwinSimulator) PressKey(key string) error {
	code, ok := macKeyCodes[key]
	if !ok {
		return fmt.Errorf("no macOS keycode known for key %q", key)
	}

	script := fmt.Sprintf(`
ObjC.import('CoreGraphics');

var keyDown = $.CGEventCreateKeyboardEvent(null, %d, true);
var keyUp = $.CGEventCreateKeyboardEvent(null, %d, false);

$.CGEventPost($.kCGHIDEventTap, keyDown);
delay(0.01);
$.CGEventPost($.kCGHIDEventTap, keyUp);
`, code, code)

	if out, err := runJXAScript(script); err != nil {
		return fmt.Errorf("key press failed: %v (output: %q). On macOS you must grant "+
			"Accessibility to the process in System Settings, Privacy and Security", err, string(out))
	}
	return nil
}

func (s *darwinSimulator) MoveMouse(dx, dy int) error {
	script := fmt.Sprintf(`
ObjC.import('CoreGraphics');

var ev = $.CGEventCreate(null);
var p = $.CGEventGetLocation(ev);

var moveEvent = $.CGEventCreateMouseEvent(null, $.kCGEventMouseMoved, {x: p.x + %d, y: p.y + %d}, $.kCGMouseButtonLeft);
$.CGEventPost($.kCGHIDEventTap, moveEvent);
`, dx, dy)

	if out, err := runJXAScript(script); err != nil {
		return fmt.Errorf("mouse move failed: %v (output: %q). On macOS you must grant "+
			"Accessibility to the process in System Settings, Privacy and Security", err, string(out))
	}
	return nil
}

func (s *darwinSimulator) ToggleScrollLock() error {
	return fmt.Errorf("scroll lock is not available on macOS keyboards; pick another method")
}

func (s *darwinSimulator) ResetIdleTimer() error {
	// caffeinate -u asserts user activity for one second; pmset touch is
	// a best-effort extra that wakes the power management idle timers.
	if util.HasCommand("pmset") {
		_ = exec.Command("pmset", "touch").Run()
	}

	out, err := exec.Command("caffeinate", "-u", "-t", "1").CombinedOutput()
	if err != nil {
		return fmt.Errorf("caffeinate failed: %v (output: %q)", err, string(out))
	}
	return nil
}

// CheckRequirements verifies the session tools a method depends on.
func CheckRequirements(method settings.Method) error {
	switch method {
	case settings.MethodKeyboard, settings.MethodMouse:
		if !util.HasCommand("osascript") {
			return fmt.Errorf("osascript is required for input simulation but was not found")
		}
	case settings.MethodScrollLock:
		return fmt.Errorf("scroll lock is not available on macOS keyboards; pick another method")
	case settings.MethodIdleReset:
		if !util.HasCommand("caffeinate") {
			return fmt.Errorf("caffeinate is required for idle resets but was not found")
		}
	}
	return nil
}
