package platform

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestAppConfigDir_EndsWithAppName(t *testing.T) {
	dir, err := AppConfigDir("BrewTimer")
	if err != nil {
		t.Skipf("no config or home dir: %v", err)
	}
	if filepath.Base(dir) != "BrewTimer" {
		t.Fatalf("AppConfigDir=%q, want BrewTimer leaf", dir)
	}
}

func TestFallbackConfigDir_UnderHome(t *testing.T) {
	got := fallbackConfigDir("/home/brewer")
	if rel, err := filepath.Rel("/home/brewer", got); err != nil || strings.HasPrefix(rel, "..") {
		t.Fatalf("fallbackConfigDir=%q outside home", got)
	}
}
