package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)
	tick     *widget.Entry
	step     *widget.Entry
	chime    *widget.Check
	volume   *widget.Slider
	remember *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("BrewTimer Settings")

	tick := widget.NewEntry()
	step := widget.NewEntry()
	chime := widget.NewCheck("Play chime when the brew is done", nil)
	volume := widget.NewSlider(-4, 0)
	volume.Step = 0.5
	remember := widget.NewCheck("Remember last brew time", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Update every"), tick, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("+/- step"), step, widget.NewLabel("sec")),
		remember,
		widget.NewLabelWithStyle("Sound", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		chime,
		widget.NewLabel("Chime volume"),
		volume,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 320))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:   window,
		onSave:   onSave,
		tick:     tick,
		step:     step,
		chime:    chime,
		volume:   volume,
		remember: remember,
	}
	prefs.UpdateSettings(settings)
	saveButton.OnTapped = prefs.handleSave

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.tick.SetText(fmt.Sprintf("%d", settings.TickInterval.Milliseconds()))
	prefs.step.SetText(fmt.Sprintf("%d", int(settings.AdjustStep.Seconds())))
	prefs.chime.SetChecked(settings.ChimeEnabled)
	prefs.volume.Value = settings.ChimeVolume
	prefs.volume.Refresh()
	prefs.remember.SetChecked(settings.RememberLast)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if millis, ok := parsePositiveInt(prefs.tick.Text); ok {
		settings.TickInterval = ClampTickInterval(time.Duration(millis) * time.Millisecond)
	}
	if seconds, ok := parsePositiveInt(prefs.step.Text); ok {
		settings.AdjustStep = time.Duration(seconds) * time.Second
	}
	settings.ChimeEnabled = prefs.chime.Checked
	settings.ChimeVolume = prefs.volume.Value
	settings.RememberLast = prefs.remember.Checked

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
