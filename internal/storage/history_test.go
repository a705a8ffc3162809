package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	history, err := OpenHistoryFile(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("OpenHistoryFile() err=%v, want nil", err)
	}
	t.Cleanup(func() {
		_ = history.Close()
	})
	return history
}

func TestHistory_RecordAssignsID(t *testing.T) {
	history := openTestHistory(t)

	brew, err := history.Record(context.Background(), Brew{
		Total:   4 * time.Minute,
		Elapsed: 4 * time.Minute,
		Outcome: OutcomeFinished,
	})
	if err != nil {
		t.Fatalf("Record() err=%v, want nil", err)
	}
	if brew.ID == "" {
		t.Fatalf("Record() ID empty, want generated id")
	}
	if brew.EndedAt.IsZero() {
		t.Fatalf("Record() EndedAt zero, want now")
	}
}

func TestHistory_RecentNewestFirst(t *testing.T) {
	history := openTestHistory(t)
	ctx := context.Background()
	base := time.UnixMilli(1_700_000_000_000)

	for i, outcome := range []Outcome{OutcomeFinished, OutcomeCleared, OutcomeFinished} {
		_, err := history.Record(ctx, Brew{
			Total:   time.Duration(i+1) * time.Minute,
			Elapsed: time.Duration(i+1) * 30 * time.Second,
			Outcome: outcome,
			EndedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("Record(%d) err=%v, want nil", i, err)
		}
	}

	brews, err := history.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent() err=%v, want nil", err)
	}
	if len(brews) != 2 {
		t.Fatalf("len(Recent())=%d, want 2", len(brews))
	}
	if brews[0].Total != 3*time.Minute || brews[1].Total != 2*time.Minute {
		t.Fatalf("totals=(%v,%v), want (3m,2m)", brews[0].Total, brews[1].Total)
	}
	if brews[1].Outcome != OutcomeCleared || brews[1].Elapsed != time.Minute {
		t.Fatalf("second brew=%+v, want cleared after 1m", brews[1])
	}
	if !brews[0].EndedAt.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("EndedAt=%v, want %v", brews[0].EndedAt, base.Add(2*time.Hour))
	}
}

func TestHistory_PersistsToFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), historyFileName)

	history, err := OpenHistoryFile(ctx, path)
	if err != nil {
		t.Fatalf("OpenHistoryFile() err=%v, want nil", err)
	}
	recorded, err := history.Record(ctx, Brew{Total: time.Minute, Elapsed: time.Minute, Outcome: OutcomeFinished})
	if err != nil {
		t.Fatalf("Record() err=%v, want nil", err)
	}
	if err := history.Close(); err != nil {
		t.Fatalf("Close() err=%v, want nil", err)
	}

	reopened, err := OpenHistoryFile(ctx, path)
	if err != nil {
		t.Fatalf("reopen err=%v, want nil", err)
	}
	t.Cleanup(func() {
		_ = reopened.Close()
	})

	brews, err := reopened.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent() err=%v, want nil", err)
	}
	if len(brews) != 1 || brews[0].ID != recorded.ID {
		t.Fatalf("brews=%+v, want the recorded brew %s", brews, recorded.ID)
	}
}
