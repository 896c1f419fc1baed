// Package ui provides the system tray interface for the activity
// simulator.
package ui

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/getlantern/systray"

	"github.com/faker-app/faker/internal/platform"
	"github.com/faker-app/faker/internal/settings"
	"github.com/faker-app/faker/internal/simulate"
)

const appName = "Faker"

// intervalPresets are the choices offered in the interval submenu, in
// seconds.
var intervalPresets = []int{30, 60, 120, 300, 600}

// TrayApp manages the system tray interface.
type TrayApp struct {
	keeper       *simulate.Keeper
	cfg          settings.Settings
	settingsPath string

	statusItem *systray.MenuItem
	toggleItem *systray.MenuItem

	methodItems   []*systray.MenuItem
	intervalItems []*systray.MenuItem
	mouseFixed    *systray.MenuItem
	mouseRandom   *systray.MenuItem
	darkMode      *systray.MenuItem
	startAtLogin  *systray.MenuItem
	quitItem      *systray.MenuItem
}

// Run starts the system tray application. It blocks until the user quits.
func Run(keeper *simulate.Keeper, cfg settings.Settings, settingsPath string) {
	app := &TrayApp{
		keeper:       keeper,
		cfg:          cfg,
		settingsPath: settingsPath,
	}

	systray.Run(app.onReady, app.onExit)
}

// Quit asks the running tray application to exit.
func Quit() {
	systray.Quit()
}

func (app *TrayApp) onReady() {
	systray.SetTitle(appName)
	systray.SetTooltip("Faker - Simulating user activity")
	app.refreshIcon()

	app.statusItem = systray.AddMenuItem(app.statusText(), "Simulation status")
	app.statusItem.Disable()
	systray.AddSeparator()

	app.toggleItem = systray.AddMenuItem(app.toggleText(), "Start or pause the activity simulation")
	systray.AddSeparator()

	methodMenu := systray.AddMenuItem("Method", "Change the simulation method")
	for _, method := range settings.Methods() {
		item := methodMenu.AddSubMenuItemCheckbox(method.Label(), "", method == app.cfg.Method)
		app.methodItems = append(app.methodItems, item)
	}

	intervalMenu := systray.AddMenuItem("Interval", "Change how often activity is simulated")
	for _, seconds := range intervalPresets {
		item := intervalMenu.AddSubMenuItemCheckbox(
			intervalLabel(seconds), "", seconds == app.cfg.IntervalSeconds)
		app.intervalItems = append(app.intervalItems, item)
	}

	mouseMenu := systray.AddMenuItem("Mouse Jiggle", "Change the mouse jiggle style")
	app.mouseFixed = mouseMenu.AddSubMenuItemCheckbox(
		"Fixed", "Move a fixed distance and back", app.cfg.Mouse.Mode == settings.MouseModeFixed)
	app.mouseRandom = mouseMenu.AddSubMenuItemCheckbox(
		"Random", "Trace a small random shape", app.cfg.Mouse.Mode == settings.MouseModeRandom)

	systray.AddSeparator()
	app.darkMode = systray.AddMenuItemCheckbox("Dark Mode", "Use the dark icon palette", app.cfg.UI.DarkMode)
	app.startAtLogin = systray.AddMenuItemCheckbox(
		"Start at Login", "Run automatically when you log in", platform.AutostartEnabled(appName))
	systray.AddSeparator()
	options := systray.AddMenuItem("More options: faker -tui", "Key name and jiggle distance are set in the terminal interface")
	options.Disable()
	app.quitItem = systray.AddMenuItem("Quit", "Stop simulating and exit")

	go app.handleClicks()
}

func (app *TrayApp) handleClicks() {
	methodCh := make(chan int)
	for i, item := range app.methodItems {
		go forwardClicks(item, i, methodCh)
	}

	intervalCh := make(chan int)
	for i, item := range app.intervalItems {
		go forwardClicks(item, i, intervalCh)
	}

	for {
		select {
		case <-app.toggleItem.ClickedCh:
			app.toggleRunning()

		case i := <-methodCh:
			app.setMethod(settings.Methods()[i])

		case i := <-intervalCh:
			app.setInterval(intervalPresets[i])

		case <-app.mouseFixed.ClickedCh:
			app.setMouseMode(settings.MouseModeFixed)

		case <-app.mouseRandom.ClickedCh:
			app.setMouseMode(settings.MouseModeRandom)

		case <-app.darkMode.ClickedCh:
			app.toggleDarkMode()

		case <-app.startAtLogin.ClickedCh:
			app.toggleStartAtLogin()

		case <-app.quitItem.ClickedCh:
			systray.Quit()
			return
		}
	}
}

// forwardClicks turns a menu item's click channel into indexed events so a
// single select can serve a whole submenu.
func forwardClicks(item *systray.MenuItem, index int, ch chan<- int) {
	for range item.ClickedCh {
		ch <- index
	}
}

func (app *TrayApp) toggleRunning() {
	if app.keeper.IsRunning() {
		if err := app.keeper.Stop(); err != nil {
			app.showError(err)
			return
		}
		app.cfg.Enabled = false
	} else {
		if err := platform.CheckRequirements(app.cfg.Method); err != nil {
			app.showError(err)
			return
		}
		if err := app.keeper.Start(app.cfg); err != nil {
			app.showError(err)
			return
		}
		app.cfg.Enabled = true
	}

	app.persist()
	app.refresh()
}

func (app *TrayApp) setMethod(method settings.Method) {
	if err := platform.CheckRequirements(method); err != nil {
		app.showError(err)
		return
	}

	app.cfg.Method = method
	for i, m := range settings.Methods() {
		if m == method {
			app.methodItems[i].Check()
		} else {
			app.methodItems[i].Uncheck()
		}
	}

	app.keeper.Reconfigure(app.cfg)
	app.persist()
	app.refresh()
}

func (app *TrayApp) setInterval(seconds int) {
	app.cfg.IntervalSeconds = seconds
	for i, preset := range intervalPresets {
		if preset == seconds {
			app.intervalItems[i].Check()
		} else {
			app.intervalItems[i].Uncheck()
		}
	}

	app.keeper.Reconfigure(app.cfg)
	app.persist()
	app.refresh()
}

func (app *TrayApp) setMouseMode(mode settings.MouseMode) {
	app.cfg.Mouse.Mode = mode
	if mode == settings.MouseModeFixed {
		app.mouseFixed.Check()
		app.mouseRandom.Uncheck()
	} else {
		app.mouseFixed.Uncheck()
		app.mouseRandom.Check()
	}

	app.keeper.Reconfigure(app.cfg)
	app.persist()
	app.refresh()
}

func (app *TrayApp) toggleDarkMode() {
	app.cfg.UI.DarkMode = !app.cfg.UI.DarkMode
	if app.cfg.UI.DarkMode {
		app.darkMode.Check()
	} else {
		app.darkMode.Uncheck()
	}

	app.persist()
	app.refreshIcon()
}

func (app *TrayApp) toggleStartAtLogin() {
	if platform.AutostartEnabled(appName) {
		if err := platform.DisableAutostart(appName); err != nil {
			app.showError(err)
			return
		}
		app.startAtLogin.Uncheck()
		return
	}

	execPath, err := os.Executable()
	if err != nil {
		app.showError(err)
		return
	}
	if err := platform.EnableAutostart(appName, execPath); err != nil {
		app.showError(err)
		return
	}
	app.startAtLogin.Check()
}

func (app *TrayApp) persist() {
	if app.settingsPath == "" {
		return
	}
	if err := settings.Save(app.settingsPath, app.cfg); err != nil {
		slog.Warn("failed to save settings", "error", err)
	}
}

func (app *TrayApp) refresh() {
	app.statusItem.SetTitle(app.statusText())
	app.toggleItem.SetTitle(app.toggleText())
	systray.SetTooltip(fmt.Sprintf("%s - %s", appName, app.statusText()))
	app.refreshIcon()
}

func (app *TrayApp) refreshIcon() {
	systray.SetIcon(Icon(app.keeper.IsRunning(), app.cfg.UI.DarkMode))
}

func (app *TrayApp) showError(err error) {
	slog.Warn("tray action failed", "error", err)
	app.statusItem.SetTitle(fmt.Sprintf("Error: %v", err))
}

func (app *TrayApp) statusText() string {
	if app.keeper.IsRunning() {
		return fmt.Sprintf("Active: %s every %s",
			app.cfg.Method.Label(), intervalLabel(app.cfg.IntervalSeconds))
	}
	return "Paused"
}

func (app *TrayApp) toggleText() string {
	if app.keeper.IsRunning() {
		return "Pause"
	}
	return "Start"
}

func intervalLabel(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%d seconds", seconds)
	}
	if seconds%60 == 0 {
		minutes := seconds / 60
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}
	return fmt.Sprintf("%d seconds", seconds)
}

func (app *TrayApp) onExit() {
	if err := app.keeper.Stop(); err != nil {
		slog.Warn("failed to stop simulation on exit", "error", err)
	}
}
