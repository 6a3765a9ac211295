package grid

import "dungeon/internal/core"

// Extent returns the smallest cell rectangle, inclusive on both corners,
// holding every non-empty cell. ok is false when the grid is empty.
func (g *Grid) Extent() (lo, hi core.Point, ok bool) {
	for _, c := range g.chunks {
		origin := c.Origin()
		c.Each(func(x, y int, _ core.Cell) {
			p := origin.Add(core.Pt(x, y))
			if !ok {
				lo, hi, ok = p, p, true
				return
			}
			lo.X = min(lo.X, p.X)
			lo.Y = min(lo.Y, p.Y)
			hi.X = max(hi.X, p.X)
			hi.Y = max(hi.Y, p.Y)
		})
	}
	return lo, hi, ok
}

// Raster copies the cell rectangle [lo, hi] (inclusive) into a dense grid.
// It only reads, so no chunks are allocated.
func (g *Grid) Raster(lo, hi core.Point) *core.CellGrid {
	out := core.NewCellGrid(lo, hi.X-lo.X+1, hi.Y-lo.Y+1)
	cells := out.Cells()
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			cells[out.Index(x, y)] = g.GetPoint(lo.Add(core.Pt(x, y)))
		}
	}
	return out
}
