package model

import "time"

// DefaultMaxTotal is the longest countdown the display can represent.
const DefaultMaxTotal = 23*time.Hour + 59*time.Minute + 59*time.Second

// CountdownConfig contains runtime settings for the countdown state machine.
type CountdownConfig struct {
	TickInterval time.Duration
	AdjustStep   time.Duration
	MaxTotal     time.Duration
}

// Normalized fills zero or out-of-range values with defaults.
func (config CountdownConfig) Normalized() CountdownConfig {
	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}
	if config.AdjustStep <= 0 {
		config.AdjustStep = time.Second
	}
	if config.MaxTotal <= 0 || config.MaxTotal > DefaultMaxTotal {
		config.MaxTotal = DefaultMaxTotal
	}
	return config
}
