package preferences

import (
	"time"

	"brewtimer/internal/core/model"
)

const (
	MinTickInterval = 100 * time.Millisecond
	MaxTickInterval = time.Second
)

// Settings defines editable user preferences.
type Settings struct {
	TickInterval time.Duration
	AdjustStep   time.Duration
	ChimeEnabled bool
	ChimeVolume  float64

	RememberLast bool
	LastTotal    time.Duration
}

// DefaultSettings returns default settings for BrewTimer.
func DefaultSettings() Settings {
	return Settings{
		TickInterval: time.Second,
		AdjustStep:   time.Second,
		ChimeEnabled: true,
		ChimeVolume:  0,
		RememberLast: true,
		LastTotal:    4 * time.Minute,
	}
}

// ClampTickInterval keeps the interval inside the supported range.
func ClampTickInterval(interval time.Duration) time.Duration {
	if interval < MinTickInterval {
		return MinTickInterval
	}
	if interval > MaxTickInterval {
		return MaxTickInterval
	}
	return interval
}

// CountdownConfig converts settings to CountdownConfig.
func (settings Settings) CountdownConfig() model.CountdownConfig {
	return model.CountdownConfig{
		TickInterval: ClampTickInterval(settings.TickInterval),
		AdjustStep:   settings.AdjustStep,
		MaxTotal:     model.DefaultMaxTotal,
	}
}

// InitialTotal is the countdown length to preload at startup.
func (settings Settings) InitialTotal() time.Duration {
	if !settings.RememberLast || settings.LastTotal <= 0 {
		return 0
	}
	if settings.LastTotal > model.DefaultMaxTotal {
		return model.DefaultMaxTotal
	}
	return settings.LastTotal
}
