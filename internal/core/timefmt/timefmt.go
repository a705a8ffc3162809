// Package timefmt converts countdown durations to display components and back.
package timefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	msPerSecond = int64(time.Second / time.Millisecond)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// Decompose splits milliseconds into hours (mod 24), minutes and seconds.
func Decompose(ms int64) (hours, minutes, seconds int) {
	if ms < 0 {
		ms = 0
	}
	hours = int(ms/msPerHour) % 24
	minutes = int(ms/msPerMinute) % 60
	seconds = int(ms/msPerSecond) % 60
	return hours, minutes, seconds
}

// DisplayString renders the most significant non-zero unit and below.
func DisplayString(ms int64) string {
	hours, minutes, seconds := Decompose(ms)
	switch {
	case hours > 0:
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%02d:%02d", minutes, seconds)
	case seconds > 0:
		return fmt.Sprintf("00:%02d", seconds)
	default:
		return "00:00"
	}
}

// ToMilliseconds composes hours, minutes and seconds without validation.
func ToMilliseconds(hours, minutes, seconds int) int64 {
	return int64(hours)*msPerHour + int64(minutes)*msPerMinute + int64(seconds)*msPerSecond
}

// DecomposeDuration is Decompose for time.Duration values.
func DecomposeDuration(value time.Duration) (hours, minutes, seconds int) {
	return Decompose(value.Milliseconds())
}

// FormatDuration is DisplayString for time.Duration values.
func FormatDuration(value time.Duration) string {
	return DisplayString(value.Milliseconds())
}

// ToDuration composes hours, minutes and seconds into a time.Duration.
func ToDuration(hours, minutes, seconds int) time.Duration {
	return time.Duration(ToMilliseconds(hours, minutes, seconds)) * time.Millisecond
}

// ParseUnit reads a numeric input field. Malformed or negative text yields 0
// and values above max yield max.
func ParseUnit(text string, max int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || parsed < 0 {
		return 0
	}
	if parsed > max {
		return max
	}
	return parsed
}

// FormatUnit pads a unit to two digits.
func FormatUnit(value int) string {
	return fmt.Sprintf("%02d", value)
}
