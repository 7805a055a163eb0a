package ui

import (
	"testing"

	"github.com/five82/daywall/internal/anchor"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Nightfox", "Kanagawa", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
}

func TestNextTheme(t *testing.T) {
	tests := map[string]string{
		"Nightfox": "Kanagawa",
		"Kanagawa": "Slate",
		"Slate":    "Nightfox",
		"Unknown":  "Nightfox",
	}
	for in, want := range tests {
		if got := NextTheme(in); got != want {
			t.Errorf("NextTheme(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetTheme_FallsBackToNightfox(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q", got)
	}
	if got := GetTheme("Dracula").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Dracula).Name = %q, want Nightfox", got)
	}
}

func TestThemesColorEverySegmentAndPhase(t *testing.T) {
	phases := []string{"initializing", "running", "recomputing", "terminating"}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, seg := range anchor.Segments() {
			if th.SegmentColors[seg.Key()] == "" {
				t.Errorf("%s: no color for segment %s", name, seg.Key())
			}
		}
		for _, p := range phases {
			if th.PhaseColors[p] == "" {
				t.Errorf("%s: no color for phase %s", name, p)
			}
		}
	}
}
