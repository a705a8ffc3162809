package countdown

import "time"

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers and reports the current time.
type Clock interface {
	Now() time.Time
	NewTicker(interval time.Duration) Ticker
}

type realClock struct{}

type realTicker struct {
	ticker *time.Ticker
}

// RealClock returns a Clock backed by the time package.
func RealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) NewTicker(interval time.Duration) Ticker {
	return &realTicker{ticker: time.NewTicker(interval)}
}

func (ticker *realTicker) C() <-chan time.Time {
	return ticker.ticker.C
}

func (ticker *realTicker) Stop() {
	ticker.ticker.Stop()
}
