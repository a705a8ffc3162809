package tray

import (
	"testing"
	"time"

	"brewtimer/internal/core/countdown"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		snapshot countdown.Snapshot
		want     string
	}{
		{snapshot: countdown.Snapshot{State: countdown.StateUninitialized, Total: 4 * time.Minute}, want: "Ready: 04:00"},
		{snapshot: countdown.Snapshot{State: countdown.StateInProgress, Total: 4 * time.Minute, Remaining: 75 * time.Second}, want: "Brewing: 01:15 left"},
		{snapshot: countdown.Snapshot{State: countdown.StatePaused, Total: 4 * time.Minute, Remaining: 5 * time.Second}, want: "Paused: 00:05 left"},
	}

	for _, tt := range tests {
		if got := StatusLabel(tt.snapshot); got != tt.want {
			t.Fatalf("StatusLabel(%+v)=%q, want %q", tt.snapshot, got, tt.want)
		}
	}
}

func TestManager_UpdateMenuItems(t *testing.T) {
	manager := New(nil, Icons{}, Callbacks{})

	if !manager.startItem.Disabled || !manager.clearItem.Disabled {
		t.Fatalf("start/clear enabled with nothing configured")
	}

	manager.Update(countdown.Snapshot{State: countdown.StateUninitialized, Total: time.Minute})
	if manager.startItem.Disabled || manager.clearItem.Disabled || !manager.pauseItem.Disabled {
		t.Fatalf("idle with total: start=%v clear=%v pause=%v", !manager.startItem.Disabled, !manager.clearItem.Disabled, !manager.pauseItem.Disabled)
	}

	manager.Update(countdown.Snapshot{State: countdown.StatePaused, Total: time.Minute, Remaining: 30 * time.Second})
	if manager.pauseItem.Label != "Resume" || manager.pauseItem.Disabled {
		t.Fatalf("pause item=%q disabled=%v, want enabled Resume", manager.pauseItem.Label, manager.pauseItem.Disabled)
	}
	if !manager.startItem.Disabled {
		t.Fatalf("start enabled while paused")
	}
}

func TestManager_CallbacksInvoked(t *testing.T) {
	started := 0
	manager := New(nil, Icons{}, Callbacks{OnStart: func() { started++ }})

	manager.startItem.Action()
	if started != 1 {
		t.Fatalf("OnStart calls=%d, want 1", started)
	}

	manager.clearItem.Action()
}

func TestManager_MenuRebuiltOnlyOnChange(t *testing.T) {
	manager := New(nil, Icons{}, Callbacks{})
	base := manager.menuSets

	running := countdown.Snapshot{State: countdown.StateInProgress, Total: time.Minute, Remaining: 29*time.Second + 900*time.Millisecond}
	manager.Update(running)
	if manager.menuSets != base+1 {
		t.Fatalf("menu sets=%d, want %d after state change", manager.menuSets, base+1)
	}

	// Sub-second ticks render the same label.
	running.Remaining = 29*time.Second + 800*time.Millisecond
	manager.Update(running)
	running.Remaining = 29 * time.Second
	manager.Update(running)
	if manager.menuSets != base+1 {
		t.Fatalf("menu sets=%d, want %d for unchanged labels", manager.menuSets, base+1)
	}

	running.Remaining = 28*time.Second + 900*time.Millisecond
	manager.Update(running)
	if manager.menuSets != base+2 {
		t.Fatalf("menu sets=%d, want %d after label change", manager.menuSets, base+2)
	}

	manager.SetLastBrew("Last brew: 04:00")
	manager.SetLastBrew("Last brew: 04:00")
	if manager.menuSets != base+3 {
		t.Fatalf("menu sets=%d, want %d after one history change", manager.menuSets, base+3)
	}
}
