package countdown

import (
	"sync"
	"time"

	"brewtimer/internal/core/model"
)

// Options contains runtime dependencies for Engine.
type Options struct {
	Clock Clock
}

// Engine is a state machine that counts a configured duration down to zero.
type Engine struct {
	mu         sync.Mutex
	config     model.CountdownConfig
	clock      Clock
	state      State
	total      time.Duration
	remaining  time.Duration
	progress   float64
	generation uint64
	interval   time.Duration
	ticker     Ticker
	stopCh     chan struct{}
	events     []chan Event
	closed     bool
}

// New creates an Engine with the provided configuration.
func New(config model.CountdownConfig, options Options) *Engine {
	if options.Clock == nil {
		options.Clock = RealClock()
	}
	return &Engine{
		config: config.Normalized(),
		clock:  options.Clock,
		state:  StateUninitialized,
	}
}

// Subscribe registers a new observer channel.
// A full channel has its oldest event dropped so the newest one always fits.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	return ch
}

// Snapshot returns the current observable values.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked()
}

// Config returns the active configuration.
func (engine *Engine) Config() model.CountdownConfig {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.config
}

// UpdateConfig replaces the configuration. A running countdown keeps its
// current tick interval until it is paused or restarted.
func (engine *Engine) UpdateConfig(config model.CountdownConfig) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.config = config.Normalized()
	if engine.total > engine.config.MaxTotal && engine.state == StateUninitialized {
		engine.setTotalLocked(engine.config.MaxTotal)
	}
}

// SetTotal sets the countdown length. Ignored unless the timer is idle.
func (engine *Engine) SetTotal(total time.Duration) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.state != StateUninitialized {
		return
	}
	engine.setTotalLocked(total)
}

// Adjust adds delta to the countdown length, clamping at zero.
func (engine *Engine) Adjust(delta time.Duration) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.state != StateUninitialized {
		return
	}
	engine.setTotalLocked(engine.total + delta)
}

// AddStep increases the countdown length by the configured step.
func (engine *Engine) AddStep() {
	engine.Adjust(engine.Config().AdjustStep)
}

// SubtractStep decreases the countdown length by the configured step.
func (engine *Engine) SubtractStep() {
	engine.Adjust(-engine.Config().AdjustStep)
}

// Start begins a fresh countdown from the configured total.
func (engine *Engine) Start() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed || engine.state != StateUninitialized || engine.total <= 0 {
		return
	}
	engine.remaining = engine.total
	engine.progress = 0
	engine.state = StateInProgress
	engine.startRunLocked()
	engine.emitLocked(EventStateChange, 0)
}

// Pause freezes the countdown.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.state != StateInProgress {
		return
	}
	engine.stopRunLocked()
	engine.state = StatePaused
	engine.emitLocked(EventStateChange, 0)
}

// Resume continues a paused countdown from where it stopped.
func (engine *Engine) Resume() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed || engine.state != StatePaused {
		return
	}
	engine.state = StateInProgress
	engine.startRunLocked()
	engine.emitLocked(EventStateChange, 0)
}

// Toggle pauses a running countdown or resumes a paused one.
func (engine *Engine) Toggle() {
	switch engine.Snapshot().State {
	case StateInProgress:
		engine.Pause()
	case StatePaused:
		engine.Resume()
	}
}

// Clear stops the countdown and resets every value to zero.
func (engine *Engine) Clear() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.clearLocked(EventCleared)
}

// Close stops ticking and closes observers.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.stopRunLocked()
	engine.closed = true
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) startRunLocked() {
	engine.stopRunLocked()
	engine.generation++
	engine.interval = engine.config.TickInterval
	engine.ticker = engine.clock.NewTicker(engine.interval)
	engine.stopCh = make(chan struct{})
	go engine.run(engine.generation, engine.ticker, engine.stopCh)
}

func (engine *Engine) stopRunLocked() {
	if engine.ticker != nil {
		engine.ticker.Stop()
		engine.ticker = nil
	}
	if engine.stopCh != nil {
		close(engine.stopCh)
		engine.stopCh = nil
	}
}

func (engine *Engine) run(generation uint64, ticker Ticker, stopCh <-chan struct{}) {
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C():
			engine.tick(generation)
		}
	}
}

func (engine *Engine) tick(generation uint64) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if generation != engine.generation || engine.state != StateInProgress {
		return
	}

	engine.remaining -= engine.interval
	if engine.remaining < 0 {
		engine.remaining = 0
	}
	engine.progress = progressOf(engine.total, engine.remaining)

	if engine.remaining > 0 {
		engine.emitLocked(EventProgress, 0)
		return
	}
	engine.clearLocked(EventFinished)
}

// clearLocked resets to Uninitialized. The reason event carries the values
// as they were before the reset.
func (engine *Engine) clearLocked(reason EventType) {
	engine.stopRunLocked()
	previous := engine.state
	if previous == StateUninitialized && engine.total == 0 && engine.remaining == 0 {
		return
	}

	var elapsed time.Duration
	if previous != StateUninitialized {
		elapsed = engine.total - engine.remaining
	}
	engine.emitLocked(reason, elapsed)

	engine.state = StateUninitialized
	engine.total = 0
	engine.remaining = 0
	engine.progress = 0
	if previous != StateUninitialized {
		engine.emitLocked(EventStateChange, 0)
	} else {
		engine.emitLocked(EventTotalChange, 0)
	}
}

func (engine *Engine) setTotalLocked(total time.Duration) {
	if total < 0 {
		total = 0
	}
	if total > engine.config.MaxTotal {
		total = engine.config.MaxTotal
	}
	if total == engine.total {
		return
	}
	engine.total = total
	if engine.remaining > total {
		engine.remaining = total
	}
	engine.emitLocked(EventTotalChange, 0)
}

func (engine *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		State:     engine.state,
		Total:     engine.total,
		Remaining: engine.remaining,
		Progress:  engine.progress,
	}
}

func (engine *Engine) emitLocked(eventType EventType, elapsed time.Duration) {
	event := Event{
		Type:     eventType,
		Snapshot: engine.snapshotLocked(),
		Elapsed:  elapsed,
		At:       engine.clock.Now(),
	}
	for _, ch := range engine.events {
		select {
		case ch <- event:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- event:
		default:
		}
	}
}

func progressOf(total, remaining time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	progress := float64(total-remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
