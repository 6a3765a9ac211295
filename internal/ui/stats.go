package ui

import (
	"fmt"

	"dungeon/internal/core"
	"dungeon/internal/grid"
)

// Stats summarizes the grid for the HUD.
type Stats struct {
	Generator string
	Seed      int64
	Chunks    int
	Lower     core.Point
	Upper     core.Point
	Center    core.Vec
}

// StatsOf collects Stats from g.
func StatsOf(gen string, seed int64, g *grid.Grid) Stats {
	lower, upper := g.Bounds()
	return Stats{
		Generator: gen,
		Seed:      seed,
		Chunks:    g.Len(),
		Lower:     lower,
		Upper:     upper,
		Center:    g.FindCenter(),
	}
}

// Lines formats the stats one entry per line.
func (s Stats) Lines() []string {
	return []string{
		fmt.Sprintf("seed    %d", s.Seed),
		fmt.Sprintf("chunks  %d", s.Chunks),
		fmt.Sprintf("bounds  %v..%v", s.Lower, s.Upper),
		fmt.Sprintf("center  (%.1f, %.1f)", s.Center.X, s.Center.Y),
	}
}
