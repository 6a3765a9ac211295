package ui

import (
	"slices"
	"testing"

	"dungeon/internal/core"
	"dungeon/internal/grid"
)

func TestStatsOf(t *testing.T) {
	g := grid.New()
	g.SetPoint(core.Pt(200, 0), core.Wall)
	s := StatsOf("room", 7, g)

	want := []string{
		"seed    7",
		"chunks  2",
		"bounds  (0, 0)..(1, 0)",
		"center  (200.0, 100.0)",
	}
	if got := s.Lines(); !slices.Equal(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if s.Generator != "room" {
		t.Fatalf("unexpected generator %q", s.Generator)
	}
}
