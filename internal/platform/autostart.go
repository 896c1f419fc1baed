package platform

// Autostart support registers the running executable to launch at login,
// using the native mechanism of each OS: an XDG autostart desktop entry on
// Linux, the HKCU Run registry key on Windows, and a LaunchAgent plist on
// macOS.
//
// Each platform implements:
//
//	EnableAutostart(appName, execPath string) error
//	DisableAutostart(appName string) error
//	AutostartEnabled(appName string) bool
