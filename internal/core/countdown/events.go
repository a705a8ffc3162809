package countdown

import "time"

// State represents the current countdown mode.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateInProgress    State = "in_progress"
	StatePaused        State = "paused"
)

// EventType defines the type of countdown event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTotalChange EventType = "total_change"
	EventProgress    EventType = "progress"
	EventFinished    EventType = "finished"
	EventCleared     EventType = "cleared"
)

// Snapshot is a consistent view of the observable countdown values.
type Snapshot struct {
	State     State
	Total     time.Duration
	Remaining time.Duration
	Progress  float64
}

// Event represents a countdown update for observers.
type Event struct {
	Type EventType
	Snapshot
	// Elapsed is set on finished and cleared events.
	Elapsed time.Duration
	At      time.Time
}
