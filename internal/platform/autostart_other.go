//go:build !linux && !windows && !darwin

package platform

// EnableAutostart is not available on this platform.
func EnableAutostart(appName, execPath string) error {
	return errUnsupported
}

// DisableAutostart is not available on this platform.
func DisableAutostart(appName string) error {
	return errUnsupported
}

// AutostartEnabled always reports false on unsupported platforms.
func AutostartEnabled(appName string) bool {
	return false
}
