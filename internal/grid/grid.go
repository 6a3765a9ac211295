// Package grid implements a sparse, unbounded 2D cell grid built from
// fixed-size chunks that are allocated lazily on write.
//
// Chunks are reached from the main chunk at chunk position (0, 0) by walking
// along the x axis first and then along the y axis. A write therefore
// allocates every missing chunk on that path: writing into chunk (cx, cy)
// guarantees chunks (i, 0) for i between 0 and cx and (cx, j) for j between 0
// and cy exist. Chunks live in a single arena indexed by chunk position, so
// neighbor links are map lookups rather than pointers.
package grid

import "dungeon/internal/core"

// Direction names one of the four axis neighbors of a chunk.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Offset returns the chunk-grid step for d. North is +y.
func (d Direction) Offset() core.Point {
	switch d {
	case North:
		return core.Pt(0, 1)
	case East:
		return core.Pt(1, 0)
	case South:
		return core.Pt(0, -1)
	default:
		return core.Pt(-1, 0)
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Grid is a sparse cell grid. The zero value is not usable; call New.
// Grid is not safe for concurrent use.
type Grid struct {
	chunks []*Chunk
	index  map[core.Point]int

	// Extreme chunk positions touched by writes, in chunk-grid units.
	lower core.Point
	upper core.Point
}

// New returns an empty grid holding only the main chunk.
func New() *Grid {
	g := &Grid{}
	g.Clear()
	return g
}

// Clear discards every chunk and resets the bounds.
func (g *Grid) Clear() {
	main := newChunk(core.Point{})
	g.chunks = []*Chunk{main}
	g.index = map[core.Point]int{main.pos: 0}
	g.lower = core.Point{}
	g.upper = core.Point{}
}

// Main returns the chunk anchored at chunk position (0, 0).
func (g *Grid) Main() *Chunk { return g.chunks[0] }

// Len returns the number of allocated chunks.
func (g *Grid) Len() int { return len(g.chunks) }

// Bounds returns the negative-most and positive-most chunk positions touched
// by a write.
func (g *Grid) Bounds() (lower, upper core.Point) { return g.lower, g.upper }

// Chunk returns the chunk at pos in chunk-grid units.
func (g *Grid) Chunk(pos core.Point) (*Chunk, bool) {
	i, ok := g.index[pos]
	if !ok {
		return nil, false
	}
	return g.chunks[i], true
}

// Neighbor returns the chunk adjacent to c in direction d, or nil.
func (g *Grid) Neighbor(c *Chunk, d Direction) *Chunk {
	n, _ := g.Chunk(c.pos.Add(d.Offset()))
	return n
}

// Chunks returns the allocated chunks in allocation order.
func (g *Grid) Chunks() []*Chunk {
	out := make([]*Chunk, len(g.chunks))
	copy(out, g.chunks)
	return out
}

// EachChunk calls fn for every allocated chunk in allocation order.
func (g *Grid) EachChunk(fn func(c *Chunk)) {
	for _, c := range g.chunks {
		fn(c)
	}
}

// ChunkOf returns the chunk position owning global coordinate p.
func ChunkOf(p core.Point) core.Point {
	return core.Pt(core.FloorDiv(p.X, ChunkSize), core.FloorDiv(p.Y, ChunkSize))
}

func localOf(p, chunk core.Point) local {
	l := p.Sub(chunk.Scale(ChunkSize))
	return local{x: l.X, y: l.Y}
}

// GetPoint returns the value at p. Coordinates that were never written read
// as core.Empty. GetPoint never allocates and never changes the bounds.
func (g *Grid) GetPoint(p core.Point) core.Cell {
	pos := ChunkOf(p)
	c, ok := g.Chunk(pos)
	if !ok {
		// The chunk path never reached this far.
		return core.Empty
	}
	return c.get(localOf(p, pos))
}

// SetPoint stores v at p, allocating the chunks on the path from the main
// chunk as needed, and extends the bounds to include the target chunk.
func (g *Grid) SetPoint(p core.Point, v core.Cell) {
	target := ChunkOf(p)
	cursor := g.Main()

	// Resolve x completely before y.
	for cursor.pos.X != target.X {
		d := East
		if target.X < cursor.pos.X {
			d = West
		}
		cursor = g.step(cursor, d)
	}
	for cursor.pos.Y != target.Y {
		d := North
		if target.Y < cursor.pos.Y {
			d = South
		}
		cursor = g.step(cursor, d)
	}

	g.extend(target)
	cursor.set(localOf(p, target), v)
}

// step moves from c to its neighbor in direction d, allocating the neighbor
// when it does not exist yet.
func (g *Grid) step(c *Chunk, d Direction) *Chunk {
	pos := c.pos.Add(d.Offset())
	if n, ok := g.Chunk(pos); ok {
		return n
	}
	n := newChunk(pos)
	g.index[pos] = len(g.chunks)
	g.chunks = append(g.chunks, n)
	return n
}

func (g *Grid) extend(pos core.Point) {
	g.lower.X = min(g.lower.X, pos.X)
	g.lower.Y = min(g.lower.Y, pos.Y)
	g.upper.X = max(g.upper.X, pos.X)
	g.upper.Y = max(g.upper.Y, pos.Y)
}

// FindCenter returns the approximate center of the populated region in cell
// units: the mean chunk position, shifted to the chunk middle and scaled by
// ChunkSize. Every chunk counts equally regardless of how many cells it holds.
func (g *Grid) FindCenter() core.Vec {
	var sum core.Vec
	for _, c := range g.chunks {
		sum = sum.Add(c.pos.Vec())
	}
	// Chunk positions are negative-most corners.
	center := sum.Scale(1 / float64(len(g.chunks))).Add(core.Vec{X: 0.5, Y: 0.5})
	return center.Scale(ChunkSize)
}
