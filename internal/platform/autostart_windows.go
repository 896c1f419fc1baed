//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

const runKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

// EnableAutostart registers the executable in the current user's Run key.
func EnableAutostart(appName, execPath string) error {
	if appName == "" {
		return fmt.Errorf("enable autostart: app name is empty")
	}
	if execPath == "" {
		return fmt.Errorf("enable autostart: exec path is empty")
	}

	value := execPath
	if strings.Contains(value, " ") && !strings.HasPrefix(value, `"`) {
		value = `"` + value + `"`
	}

	cmd := exec.Command("reg", "add", runKey, "/v", appName, "/t", "REG_SZ", "/d", value, "/f")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("enable autostart: reg add: %w: %s", err, strings.TrimSpace(string(out)))
	}

	return nil
}

// DisableAutostart removes the Run key value if present.
func DisableAutostart(appName string) error {
	if appName == "" {
		return fmt.Errorf("disable autostart: app name is empty")
	}

	cmd := exec.Command("reg", "delete", runKey, "/v", appName, "/f")
	if out, err := cmd.CombinedOutput(); err != nil {
		// reg delete fails when the value does not exist; treat that as done.
		if strings.Contains(strings.ToLower(string(out)), "unable to find") {
			return nil
		}
		return fmt.Errorf("disable autostart: reg delete: %w: %s", err, strings.TrimSpace(string(out)))
	}

	return nil
}

// AutostartEnabled reports whether the Run key value exists.
func AutostartEnabled(appName string) bool {
	cmd := exec.Command("reg", "query", runKey, "/v", appName)
	return cmd.Run() == nil
}
