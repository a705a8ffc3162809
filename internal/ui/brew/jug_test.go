package brew

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestFillLevel(t *testing.T) {
	tests := []struct {
		progress float64
		want     float32
	}{
		{progress: -1, want: 0},
		{progress: 0, want: 0},
		{progress: 0.5, want: 0.5},
		{progress: 1, want: MaxFill},
	}

	for _, tt := range tests {
		if got := FillLevel(tt.progress); got != tt.want {
			t.Fatalf("FillLevel(%v)=%v, want %v", tt.progress, got, tt.want)
		}
	}
}

func TestCoffeeBounds(t *testing.T) {
	size := fyne.NewSize(200, 400)

	pos, empty := CoffeeBounds(size, 0)
	if empty.Height != 0 || pos.Y != size.Height {
		t.Fatalf("empty jug coffee at %v size %v, want zero height at bottom", pos, empty)
	}

	_, half := CoffeeBounds(size, 0.5)
	_, full := CoffeeBounds(size, 1)
	if !(half.Height < full.Height) {
		t.Fatalf("half height=%v not below full height=%v", half.Height, full.Height)
	}
	if !(full.Width < half.Width) {
		t.Fatalf("full width=%v not narrower than half width=%v", full.Width, half.Width)
	}
	if want := size.Height * (1 - waistY); full.Height != want {
		t.Fatalf("full height=%v, want chamber height %v", full.Height, want)
	}
}

func TestJug_SetProgressWithoutEase(t *testing.T) {
	test.NewTempApp(t)

	jug := New(0)
	jug.Object().Resize(fyne.NewSize(160, 240))

	jug.SetProgress(0.25)
	if got := jug.Level(); got != 0.25 {
		t.Fatalf("Level()=%v, want 0.25", got)
	}
	jug.SetProgress(1)
	if got := jug.Level(); got != MaxFill {
		t.Fatalf("Level()=%v, want %v", got, MaxFill)
	}
	jug.SetProgress(0)
	if got := jug.Level(); got != 0 {
		t.Fatalf("Level()=%v after reset, want 0", got)
	}
}
