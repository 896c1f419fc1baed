package util

import (
	"fmt"
	"strconv"
	"time"
)

// ParseDuration parses a run duration. A bare integer is taken as minutes,
// anything else must be a Go duration string like "2h30m".
func ParseDuration(input string) (time.Duration, error) {
	if minutes, err := strconv.Atoi(input); err == nil {
		return time.Duration(minutes) * time.Minute, nil
	}

	duration, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("Invalid duration format: %s\n\nValid formats:\n"+
			"• minutes as a plain number (e.g., '90')\n"+
			"• duration string (e.g., '2h30m', '45m', '1h30m45s')", input)
	}
	return duration, nil
}
