package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/faker-app/faker/internal/util"
)

// Config holds the parsed command line options
type Config struct {
	Duration    time.Duration // How long to simulate before stopping; 0 means indefinite
	Clock       time.Time     // Absolute stop time when -until was given
	TUI         bool          // Run the terminal options UI instead of the tray
	Verbose     bool          // Print debug output to the console
	ShowVersion bool
}

func ParseFlags(version string) (*Config, error) {
	return ParseFlagsWithNow(version, time.Now())
}

// ParseFlagsWithNow parses the command line with an injectable clock so the
// -until calculation can be tested against a fixed time.
func ParseFlagsWithNow(version string, now time.Time) (*Config, error) {
	flags := flag.NewFlagSet("faker", flag.ExitOnError)

	forFlag := flags.String("for", "", "Simulate activity for a duration, then exit (e.g., \"2h30m\" or minutes)")
	flags.StringVar(forFlag, "f", "", "Simulate activity for a duration, then exit (e.g., \"2h30m\" or minutes)")
	untilFlag := flags.String("until", "", "Simulate activity until a clock time, then exit (e.g., \"17:30\" or \"5:30PM\")")
	flags.StringVar(untilFlag, "u", "", "Simulate activity until a clock time, then exit (e.g., \"17:30\" or \"5:30PM\")")
	tui := flags.Bool("tui", false, "Run the terminal options UI instead of the system tray")
	verbose := flags.Bool("verbose", false, "Print debug output to the console")
	showVersion := flags.Bool("version", false, "Show version information")
	flags.BoolVar(showVersion, "v", false, "Show version information")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	if *showVersion {
		fmt.Printf("Faker Version: %s\n", version)
		os.Exit(0)
	}

	if *forFlag != "" && *untilFlag != "" {
		return nil, errors.New("cannot use both -for and -until")
	}

	cfg := &Config{
		TUI:         *tui,
		Verbose:     *verbose,
		ShowVersion: *showVersion,
	}

	if *forFlag != "" {
		d, err := util.ParseDuration(*forFlag)
		if err != nil {
			return nil, err
		}
		cfg.Duration = d
	}

	if *untilFlag != "" {
		target, err := util.ParseTimeStringWithNow(*untilFlag, now)
		if err != nil {
			return nil, err
		}
		// A clock time that already passed today means tomorrow.
		if !target.After(now) {
			target = target.AddDate(0, 0, 1)
		}
		cfg.Clock = target
		cfg.Duration = target.Sub(now)
	}

	return cfg, nil
}
