package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/faker-app/faker/internal/config"
	"github.com/faker-app/faker/internal/logging"
	"github.com/faker-app/faker/internal/platform"
	"github.com/faker-app/faker/internal/settings"
	"github.com/faker-app/faker/internal/simulate"
	"github.com/faker-app/faker/internal/tui"
	"github.com/faker-app/faker/internal/ui"
)

const appVersion = "1.0.0"

func main() {
	cfg, err := config.ParseFlags(appVersion)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	closeLog, err := logging.Setup(logging.Options{Verbose: cfg.Verbose})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer closeLog()

	settingsPath, err := settings.DefaultPath()
	if err != nil {
		slog.Warn("could not resolve settings path, changes will not persist", "error", err)
		settingsPath = ""
	}
	stg := settings.Load(settingsPath)

	keeper := simulate.New(nil)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)

	switch {
	case cfg.Duration > 0:
		runTimed(keeper, stg, cfg, sigChan)
	case cfg.TUI:
		runTUI(keeper, stg, settingsPath, sigChan)
	default:
		runTray(keeper, stg, settingsPath, sigChan)
	}
}

// runTimed simulates activity for a fixed duration without any interface,
// then exits.
func runTimed(keeper *simulate.Keeper, stg settings.Settings, cfg *config.Config, sigChan chan os.Signal) {
	d := cfg.Duration
	if err := platform.CheckRequirements(stg.Method); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if err := keeper.StartFor(stg, d); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if cfg.Clock.IsZero() {
		slog.Info("simulating activity", "method", stg.Method, "duration", d)
	} else {
		slog.Info("simulating activity", "method", stg.Method, "until", cfg.Clock.Format("15:04"))
	}

	select {
	case sig := <-sigChan:
		slog.Debug("received signal", "signal", sig)
	case <-time.After(d):
	}

	if err := keeper.Stop(); err != nil {
		slog.Warn("failed to stop simulation", "error", err)
	}
}

// runTUI drives the terminal options interface.
func runTUI(keeper *simulate.Keeper, stg settings.Settings, settingsPath string, sigChan chan os.Signal) {
	if stg.Enabled {
		startFromSettings(keeper, stg)
	}

	model := tui.InitialModel(keeper, stg, settingsPath)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	go func() {
		sig := <-sigChan
		slog.Debug("received signal", "signal", sig)
		if err := keeper.Stop(); err != nil {
			slog.Warn("failed to stop simulation", "error", err)
		}
		p.Kill()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := keeper.Stop(); err != nil {
		slog.Warn("failed to stop simulation", "error", err)
	}
}

// runTray drives the system tray interface. This blocks until the user
// quits from the menu or a signal arrives.
func runTray(keeper *simulate.Keeper, stg settings.Settings, settingsPath string, sigChan chan os.Signal) {
	if stg.Enabled {
		startFromSettings(keeper, stg)
	}

	go func() {
		sig := <-sigChan
		slog.Debug("received signal", "signal", sig)
		ui.Quit()
	}()

	ui.Run(keeper, stg, settingsPath)
}

// startFromSettings resumes simulation for a saved enabled state. A
// failure downgrades to paused instead of aborting startup.
func startFromSettings(keeper *simulate.Keeper, stg settings.Settings) {
	if err := platform.CheckRequirements(stg.Method); err != nil {
		slog.Warn("cannot resume simulation", "method", stg.Method, "error", err)
		return
	}
	if err := keeper.Start(stg); err != nil {
		slog.Warn("cannot resume simulation", "error", err)
	}
}
