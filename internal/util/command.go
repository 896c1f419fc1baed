package util

import "os/exec"

// HasCommand reports whether an external tool (xdotool, dbus-send,
// caffeinate, ...) can be found on the PATH.
func HasCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
