package dungeon

import (
	"dungeon/internal/core"
	"dungeon/internal/grid"
)

// Dungeon stores the floor and wall layout of one generated level.
type Dungeon struct {
	grid *grid.Grid
}

// New returns an empty dungeon.
func New() *Dungeon {
	return &Dungeon{grid: grid.New()}
}

// Grid exposes the backing sparse grid.
func (d *Dungeon) Grid() *grid.Grid { return d.grid }

// SetPoint stores v at p.
func (d *Dungeon) SetPoint(p core.Point, v core.Cell) { d.grid.SetPoint(p, v) }

// GetPoint returns the value stored at p.
func (d *Dungeon) GetPoint(p core.Point) core.Cell { return d.grid.GetPoint(p) }

// Clear replaces the grid with an empty one.
func (d *Dungeon) Clear() {
	d.grid = grid.New()
}

// ViewOffset returns the pixel offset that places the grid's approximate
// center in the middle of a screenW x screenH surface drawn with the given
// tile size. The offset is floored to keep tiles on whole pixels.
func (d *Dungeon) ViewOffset(screenW, screenH, tile int) core.Vec {
	half := core.Pt(screenW, screenH).Vec().Scale(0.5)
	center := d.grid.FindCenter().Scale(float64(tile))
	return half.Sub(center).Floor()
}
