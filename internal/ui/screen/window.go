package screen

import (
	"image/color"
	"strconv"
	"strings"
	"time"

	"brewtimer/internal/core/countdown"
	"brewtimer/internal/core/timefmt"
	"brewtimer/internal/ui/brew"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Controller receives user actions from the screen.
type Controller interface {
	SetTotal(total time.Duration)
	AddStep()
	SubtractStep()
	Start()
	Toggle()
	Clear()
}

var (
	backgroundColor = color.NRGBA{R: 46, G: 36, B: 30, A: 255}
	readoutColor    = color.NRGBA{R: 245, G: 240, B: 230, A: 255}
)

// Window is the countdown screen.
type Window struct {
	window       fyne.Window
	controller   Controller
	jug          *brew.Jug
	timeLabel    *canvas.Text
	hours        *widget.Entry
	minutes      *widget.Entry
	seconds      *widget.Entry
	addButton    *widget.Button
	subButton    *widget.Button
	startButton  *widget.Button
	toggleButton *widget.Button
	clearButton  *widget.Button
	syncing      bool
}

// New creates the countdown window. ease is the jug fill animation length.
func New(app fyne.App, controller Controller, ease time.Duration) *Window {
	window := app.NewWindow("BrewTimer")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	screen := &Window{
		window:     window,
		controller: controller,
		jug:        brew.New(ease),
	}

	screen.timeLabel = canvas.NewText("00:00", readoutColor)
	screen.timeLabel.Alignment = fyne.TextAlignCenter
	screen.timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	screen.timeLabel.TextSize = 40

	screen.hours = screen.newUnitEntry("hh")
	screen.minutes = screen.newUnitEntry("mm")
	screen.seconds = screen.newUnitEntry("ss")

	screen.addButton = widget.NewButtonWithIcon("", theme.ContentAddIcon(), controller.AddStep)
	screen.subButton = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), controller.SubtractStep)
	screen.startButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), controller.Start)
	screen.startButton.Importance = widget.HighImportance
	screen.toggleButton = widget.NewButtonWithIcon("Pause", theme.MediaPauseIcon(), controller.Toggle)
	screen.clearButton = widget.NewButtonWithIcon("Clear", theme.ViewRefreshIcon(), controller.Clear)

	inputs := container.NewHBox(
		layout.NewSpacer(),
		screen.hours, widget.NewLabel(":"),
		screen.minutes, widget.NewLabel(":"),
		screen.seconds,
		layout.NewSpacer(),
	)
	readout := container.NewHBox(layout.NewSpacer(), screen.subButton, screen.timeLabel, screen.addButton, layout.NewSpacer())
	buttons := container.NewHBox(layout.NewSpacer(), screen.startButton, screen.toggleButton, screen.clearButton, layout.NewSpacer())

	panel := container.NewVBox(readout, inputs, buttons)
	content := container.NewBorder(nil, container.NewPadded(panel), nil, nil, container.NewPadded(screen.jug.Object()))
	window.SetContent(container.NewStack(canvas.NewRectangle(backgroundColor), content))
	window.Resize(fyne.NewSize(380, 620))

	screen.Render(countdown.Snapshot{State: countdown.StateUninitialized})
	return screen
}

// Window returns the underlying fyne window.
func (screen *Window) Window() fyne.Window {
	return screen.window
}

// Show displays the countdown window.
func (screen *Window) Show() {
	screen.window.Show()
	screen.window.RequestFocus()
}

// Apply renders an engine event from any goroutine.
func (screen *Window) Apply(event countdown.Event) {
	fyne.Do(func() {
		screen.Render(event.Snapshot)
	})
}

// Render updates every widget from snapshot. Must run on the fyne thread.
func (screen *Window) Render(snapshot countdown.Snapshot) {
	screen.timeLabel.Text = DisplayText(snapshot)
	screen.timeLabel.Refresh()
	screen.jug.SetProgress(snapshot.Progress)

	controls := ControlsFor(snapshot.State)
	setVisible(screen.startButton, controls.StartVisible)
	setVisible(screen.toggleButton, controls.ToggleVisible)
	setVisible(screen.clearButton, controls.ClearVisible)

	screen.toggleButton.SetText(controls.ToggleLabel)
	if snapshot.State == countdown.StatePaused {
		screen.toggleButton.SetIcon(theme.MediaPlayIcon())
	} else {
		screen.toggleButton.SetIcon(theme.MediaPauseIcon())
	}

	for _, input := range []fyne.Disableable{screen.hours, screen.minutes, screen.seconds, screen.addButton, screen.subButton} {
		if controls.InputsEnabled {
			input.Enable()
		} else {
			input.Disable()
		}
	}

	if snapshot.State == countdown.StateUninitialized {
		screen.syncEntries(snapshot.Total)
	}
}

func (screen *Window) newUnitEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	entry.OnChanged = func(string) {
		if screen.syncing {
			return
		}
		screen.controller.SetTotal(screen.enteredTotal())
	}
	return entry
}

func (screen *Window) enteredTotal() time.Duration {
	return timefmt.ToDuration(
		timefmt.ParseUnit(screen.hours.Text, 23),
		timefmt.ParseUnit(screen.minutes.Text, 59),
		timefmt.ParseUnit(screen.seconds.Text, 59),
	)
}

// syncEntries shows total in the h/m/s fields without echoing the change back
// to the controller. A field is rewritten only when its text does not read as
// the value it should hold, so the cursor stays put while typing and clamped
// input such as 99 minutes is replaced by 59.
func (screen *Window) syncEntries(total time.Duration) {
	screen.syncing = true
	defer func() {
		screen.syncing = false
	}()

	hours, minutes, seconds := timefmt.DecomposeDuration(total)
	syncUnit(screen.hours, hours)
	syncUnit(screen.minutes, minutes)
	syncUnit(screen.seconds, seconds)
}

func syncUnit(entry *widget.Entry, value int) {
	text := strings.TrimSpace(entry.Text)
	if text == "" && value == 0 {
		return
	}
	if typed, err := strconv.Atoi(text); err == nil && typed == value {
		return
	}
	entry.SetText(timefmt.FormatUnit(value))
}

func setVisible(object fyne.CanvasObject, visible bool) {
	if visible {
		object.Show()
		return
	}
	object.Hide()
}
