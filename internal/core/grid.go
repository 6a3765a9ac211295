package core

// CellGrid is a dense rectangle of cells in row-major order. Origin is the
// global coordinate of the cell stored at (0, 0).
type CellGrid struct {
	W, H   int
	Origin Point
	data   []Cell
}

// NewCellGrid allocates a grid with the given dimensions.
func NewCellGrid(origin Point, w, h int) *CellGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &CellGrid{W: w, H: h, Origin: origin, data: make([]Cell, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *CellGrid) Cells() []Cell { return g.data }

// Index returns the linear slice index for local coordinates (x, y).
func (g *CellGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value stored at global coordinate p, or Empty outside the
// rectangle.
func (g *CellGrid) At(p Point) Cell {
	l := p.Sub(g.Origin)
	if l.X < 0 || l.Y < 0 || l.X >= g.W || l.Y >= g.H {
		return Empty
	}
	return g.data[g.Index(l.X, l.Y)]
}

// Lines renders the grid as one string per row using Cell.Rune.
func (g *CellGrid) Lines() []string {
	lines := make([]string, g.H)
	row := make([]rune, g.W)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			row[x] = g.data[g.Index(x, y)].Rune()
		}
		lines[y] = string(row)
	}
	return lines
}
