package grid

import "dungeon/internal/core"

// ChunkSize is the side length of a chunk in cells.
const ChunkSize = 200

// local is a cell offset inside a chunk, always in [0, ChunkSize). Only the
// grid constructs it, so chunk storage is never indexed out of range.
type local struct {
	x, y int
}

// Chunk is a ChunkSize x ChunkSize tile of cells. Pos is measured in
// chunk-grid units from the main chunk and denotes the tile's negative-most
// corner.
type Chunk struct {
	pos   core.Point
	cells [ChunkSize * ChunkSize]core.Cell
}

func newChunk(pos core.Point) *Chunk {
	// Cells are zero-initialized (empty).
	return &Chunk{pos: pos}
}

// Pos returns the chunk's position in chunk-grid units.
func (c *Chunk) Pos() core.Point { return c.pos }

// Origin returns the global coordinate of the chunk's (0, 0) cell.
func (c *Chunk) Origin() core.Point { return c.pos.Scale(ChunkSize) }

func (c *Chunk) get(l local) core.Cell { return c.cells[l.y*ChunkSize+l.x] }

func (c *Chunk) set(l local, v core.Cell) { c.cells[l.y*ChunkSize+l.x] = v }

// Each calls fn for every non-empty cell with its chunk-relative offset.
func (c *Chunk) Each(fn func(x, y int, v core.Cell)) {
	for i, v := range c.cells {
		if v == core.Empty {
			continue
		}
		fn(i%ChunkSize, i/ChunkSize, v)
	}
}

// Populated reports whether any cell in the chunk is non-empty.
func (c *Chunk) Populated() bool {
	for _, v := range c.cells {
		if v != core.Empty {
			return true
		}
	}
	return false
}
