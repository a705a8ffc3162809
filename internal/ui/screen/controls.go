package screen

import (
	"brewtimer/internal/core/countdown"
	"brewtimer/internal/core/timefmt"
)

// Controls describes which inputs the screen offers in a given state.
type Controls struct {
	StartVisible  bool
	ToggleVisible bool
	ClearVisible  bool
	InputsEnabled bool
	ToggleLabel   string
}

// ControlsFor returns the control layout for state.
func ControlsFor(state countdown.State) Controls {
	switch state {
	case countdown.StateInProgress:
		return Controls{ToggleVisible: true, ClearVisible: true, ToggleLabel: "Pause"}
	case countdown.StatePaused:
		return Controls{ToggleVisible: true, ClearVisible: true, ToggleLabel: "Resume"}
	default:
		return Controls{StartVisible: true, InputsEnabled: true, ToggleLabel: "Pause"}
	}
}

// DisplayText is the numeric readout: the configured total while idle, the
// remaining time otherwise.
func DisplayText(snapshot countdown.Snapshot) string {
	if snapshot.State == countdown.StateUninitialized {
		return timefmt.FormatDuration(snapshot.Total)
	}
	return timefmt.FormatDuration(snapshot.Remaining)
}
