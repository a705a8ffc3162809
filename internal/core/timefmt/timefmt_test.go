package timefmt

import (
	"testing"
	"time"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		ms                      int64
		hours, minutes, seconds int
	}{
		{ms: 0},
		{ms: 999},
		{ms: 1000, seconds: 1},
		{ms: 61_000, minutes: 1, seconds: 1},
		{ms: 3_723_000, hours: 1, minutes: 2, seconds: 3},
		{ms: 25 * 3_600_000, hours: 1},
		{ms: -5000},
	}

	for _, tt := range tests {
		hours, minutes, seconds := Decompose(tt.ms)
		if hours != tt.hours || minutes != tt.minutes || seconds != tt.seconds {
			t.Fatalf("Decompose(%d)=(%d,%d,%d), want (%d,%d,%d)", tt.ms, hours, minutes, seconds, tt.hours, tt.minutes, tt.seconds)
		}
	}
}

func TestDisplayString(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{ms: 0, want: "00:00"},
		{ms: 500, want: "00:00"},
		{ms: 7_000, want: "00:07"},
		{ms: 65_000, want: "01:05"},
		{ms: 600_000, want: "10:00"},
		{ms: 3_600_000, want: "1:00:00"},
		{ms: 45_296_000, want: "12:34:56"},
	}

	for _, tt := range tests {
		if got := DisplayString(tt.ms); got != tt.want {
			t.Fatalf("DisplayString(%d)=%q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestRoundTripWithinDay(t *testing.T) {
	for ms := int64(0); ms < 24*3_600_000; ms += 7_919_000 {
		hours, minutes, seconds := Decompose(ms)
		if got := ToMilliseconds(hours, minutes, seconds); got != ms {
			t.Fatalf("ToMilliseconds(Decompose(%d))=%d", ms, got)
		}
	}
}

func TestDurationAdapters(t *testing.T) {
	value := ToDuration(0, 4, 30)
	if value != 4*time.Minute+30*time.Second {
		t.Fatalf("ToDuration=%v, want 4m30s", value)
	}
	if got := FormatDuration(value); got != "04:30" {
		t.Fatalf("FormatDuration=%q, want 04:30", got)
	}
	if _, minutes, seconds := DecomposeDuration(value); minutes != 4 || seconds != 30 {
		t.Fatalf("DecomposeDuration=(%d,%d), want (4,30)", minutes, seconds)
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		text string
		max  int
		want int
	}{
		{text: "", max: 59, want: 0},
		{text: "abc", max: 59, want: 0},
		{text: "-3", max: 59, want: 0},
		{text: " 42 ", max: 59, want: 42},
		{text: "07", max: 59, want: 7},
		{text: "99", max: 59, want: 59},
		{text: "30", max: 23, want: 23},
	}

	for _, tt := range tests {
		if got := ParseUnit(tt.text, tt.max); got != tt.want {
			t.Fatalf("ParseUnit(%q, %d)=%d, want %d", tt.text, tt.max, got, tt.want)
		}
	}
}

func TestFormatUnit(t *testing.T) {
	if got := FormatUnit(5); got != "05" {
		t.Fatalf("FormatUnit(5)=%q, want 05", got)
	}
	if got := FormatUnit(12); got != "12" {
		t.Fatalf("FormatUnit(12)=%q, want 12", got)
	}
}
