//go:build linux

package linux

import (
	"fmt"
	"strconv"
)

// Linux input event keycodes for the key names the keyboard method
// accepts, used when injecting through ydotool (which takes raw
// keycodes instead of X11 keysym names).
var eventKeycodes = map[string]int{
	"F1": 59, "F2": 60, "F3": 61, "F4": 62,
	"F5": 63, "F6": 64, "F7": 65, "F8": 66,
	"F9": 67, "F10": 68, "F11": 87, "F12": 88,
	"F13": 183, "F14": 184, "F15": 185, "F16": 186,
	"F17": 187, "F18": 188, "F19": 189, "F20": 190,
	"F21": 191, "F22": 192, "F23": 193, "F24": 194,
	"Scroll_Lock": 70,
	"Num_Lock":    69,
}

// PressKey simulates a press and release of the named key using the best
// available tool for the session type.
func PressKey(caps Capabilities, key string) error {
	if caps.DisplayServer == DisplayServerWayland {
		if caps.YdotoolAvailable {
			code, ok := eventKeycodes[key]
			if !ok {
				return fmt.Errorf("no input keycode known for key %q", key)
			}
			out, err := runVerbose("ydotool", "key",
				strconv.Itoa(code)+":1", strconv.Itoa(code)+":0")
			if err != nil {
				return fmt.Errorf("ydotool key failed: %v (output: %q)", err, out)
			}
			return nil
		}
		if caps.WtypeAvailable {
			out, err := runVerbose("wtype", "-k", key)
			if err != nil {
				return fmt.Errorf("wtype failed: %v (output: %q)", err, out)
			}
			return nil
		}
		// Fall through to xdotool, which works on Wayland under XWayland.
	}

	if !caps.XdotoolAvailable {
		return fmt.Errorf("no key injection tool available (install xdotool, or ydotool/wtype on Wayland)")
	}

	out, err := runVerbose("xdotool", "key", key)
	if err != nil {
		return fmt.Errorf("xdotool key failed: %v (output: %q)", err, out)
	}
	return nil
}

// MoveMouse moves the pointer by a relative offset.
func MoveMouse(caps Capabilities, dx, dy int) error {
	if caps.DisplayServer == DisplayServerWayland && caps.YdotoolAvailable {
		out, err := runVerbose("ydotool", "mousemove",
			"-x", strconv.Itoa(dx), "-y", strconv.Itoa(dy))
		if err != nil {
			return fmt.Errorf("ydotool mousemove failed: %v (output: %q)", err, out)
		}
		return nil
	}

	if !caps.XdotoolAvailable {
		return fmt.Errorf("no mouse injection tool available (install xdotool, or ydotool on Wayland)")
	}

	out, err := runVerbose("xdotool", "mousemove_relative", "--",
		strconv.Itoa(dx), strconv.Itoa(dy))
	if err != nil {
		return fmt.Errorf("xdotool mousemove_relative failed: %v (output: %q)", err, out)
	}
	return nil
}

// ResetIdleTimer resets the desktop idle countdown without injecting input.
// xdg-screensaver covers most desktop environments; the dbus pokes are a
// best-effort extra for GNOME and freedesktop screensaver implementations.
func ResetIdleTimer(caps Capabilities) error {
	if caps.DbusSendAvailable {
		runBestEffort("dbus-send", "--type=method_call",
			"--dest=org.freedesktop.ScreenSaver", "/org/freedesktop/ScreenSaver",
			"org.freedesktop.ScreenSaver.SimulateUserActivity")
		runBestEffort("dbus-send", "--type=method_call",
			"--dest=org.gnome.ScreenSaver", "/org/gnome/ScreenSaver",
			"org.gnome.ScreenSaver.SimulateUserActivity")
	}

	if !caps.XdgScreensaverAvailable {
		return fmt.Errorf("xdg-screensaver not found (install xdg-utils)")
	}

	out, err := runVerbose("xdg-screensaver", "reset")
	if err != nil {
		return fmt.Errorf("xdg-screensaver reset failed: %v (output: %q)", err, out)
	}
	return nil
}
