package tray

import (
	"fmt"

	"brewtimer/internal/core/countdown"
	"brewtimer/internal/ui/screen"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnStart       func()
	OnTogglePause func()
	OnClear       func()
	OnPreferences func()
	OnQuit        func()
}

// Icons are swapped with the countdown state.
type Icons struct {
	Active fyne.Resource
	Paused fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	icons      Icons
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	clearItem  *fyne.MenuItem
	lastBrew   *fyne.MenuItem
	state      countdown.State
	shown      menuState
	menuSet    bool
	menuSets   int // pushes to the system tray
}

// menuState is what the tray menu displays. The menu is pushed to the
// system tray only when it changes.
type menuState struct {
	status        string
	startDisabled bool
	pauseLabel    string
	pauseDisabled bool
	clearDisabled bool
	lastBrew      string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		icons:     icons,
		callbacks: callbacks,
		state:     countdown.StateUninitialized,
	}

	manager.statusItem = fyne.NewMenuItem("Ready", nil)
	manager.statusItem.Disabled = true
	manager.lastBrew = fyne.NewMenuItem("No brews yet", nil)
	manager.lastBrew.Disabled = true
	manager.startItem = fyne.NewMenuItem("Start", invoke(&manager.callbacks.OnStart))
	manager.pauseItem = fyne.NewMenuItem("Pause", invoke(&manager.callbacks.OnTogglePause))
	manager.clearItem = fyne.NewMenuItem("Clear", invoke(&manager.callbacks.OnClear))

	manager.refreshIcon()
	manager.Update(countdown.Snapshot{State: countdown.StateUninitialized})
	return manager
}

// Update reflects a countdown snapshot in the menu and icon.
func (manager *Manager) Update(snapshot countdown.Snapshot) {
	manager.statusItem.Label = StatusLabel(snapshot)
	manager.startItem.Disabled = snapshot.State != countdown.StateUninitialized || snapshot.Total <= 0
	manager.pauseItem.Disabled = snapshot.State == countdown.StateUninitialized
	manager.clearItem.Disabled = snapshot.State == countdown.StateUninitialized && snapshot.Total == 0
	if snapshot.State == countdown.StatePaused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}

	if snapshot.State != manager.state {
		manager.state = snapshot.State
		manager.refreshIcon()
	}
	manager.refreshMenuIfChanged()
}

// SetLastBrew updates the history line.
func (manager *Manager) SetLastBrew(label string) {
	manager.lastBrew.Label = label
	manager.refreshMenuIfChanged()
}

// StatusLabel is the tray's first line for snapshot.
func StatusLabel(snapshot countdown.Snapshot) string {
	switch snapshot.State {
	case countdown.StateInProgress:
		return fmt.Sprintf("Brewing: %s left", screen.DisplayText(snapshot))
	case countdown.StatePaused:
		return fmt.Sprintf("Paused: %s left", screen.DisplayText(snapshot))
	default:
		return fmt.Sprintf("Ready: %s", screen.DisplayText(snapshot))
	}
}

func (manager *Manager) refreshIcon() {
	if manager.app == nil {
		return
	}
	icon := manager.icons.Active
	if manager.state == countdown.StatePaused {
		icon = manager.icons.Paused
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) currentMenu() menuState {
	return menuState{
		status:        manager.statusItem.Label,
		startDisabled: manager.startItem.Disabled,
		pauseLabel:    manager.pauseItem.Label,
		pauseDisabled: manager.pauseItem.Disabled,
		clearDisabled: manager.clearItem.Disabled,
		lastBrew:      manager.lastBrew.Label,
	}
}

func (manager *Manager) refreshMenuIfChanged() {
	current := manager.currentMenu()
	if manager.menuSet && current == manager.shown {
		return
	}
	manager.shown = current
	manager.menuSet = true
	manager.menuSets++
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	quit := fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit))
	quit.IsQuit = true
	manager.app.SetSystemTrayMenu(fyne.NewMenu("BrewTimer",
		manager.statusItem,
		fyne.NewMenuItem("Show", invoke(&manager.callbacks.OnShow)),
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.pauseItem,
		manager.clearItem,
		fyne.NewMenuItemSeparator(),
		manager.lastBrew,
		fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences)),
		quit,
	))
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
