//go:build linux

package platform

import (
	"strings"
	"testing"
)

func TestDesktopFileName(t *testing.T) {
	tests := []struct {
		name    string
		appName string
		want    string
	}{
		{name: "simple", appName: "Faker", want: "faker.desktop"},
		{name: "spaces", appName: "My App", want: "my-app.desktop"},
		{name: "empty falls back", appName: "", want: "faker.desktop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := desktopFileName(tt.appName); got != tt.want {
				t.Errorf("desktopFileName(%q) = %q, want %q", tt.appName, got, tt.want)
			}
		})
	}
}

func TestBuildDesktopEntry(t *testing.T) {
	entry := buildDesktopEntry("Faker", "/usr/local/bin/faker")

	for _, want := range []string{
		"[Desktop Entry]",
		"Type=Application",
		"Name=Faker",
		"Exec=/usr/local/bin/faker",
	} {
		if !strings.Contains(entry, want) {
			t.Errorf("desktop entry missing %q:\n%s", want, entry)
		}
	}
}

func TestBuildDesktopEntryQuotesSpaces(t *testing.T) {
	entry := buildDesktopEntry("Faker", "/opt/my tools/faker")
	if !strings.Contains(entry, `Exec="/opt/my tools/faker"`) {
		t.Errorf("exec path with spaces not quoted:\n%s", entry)
	}
}
