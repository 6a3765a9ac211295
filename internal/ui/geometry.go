package ui

import (
	"dungeon/internal/core"
	"dungeon/internal/grid"
	"dungeon/internal/render"
)

// pixelRect is a screen-space rectangle in pixels.
type pixelRect struct {
	X, Y, W, H float64
}

// chunkSpanRect returns the pixel rectangle covering chunk positions lower
// through upper inclusive.
func chunkSpanRect(lower, upper core.Point, view core.Vec, tile int) pixelRect {
	lo := render.ChunkOffset(lower, view, tile)
	hi := render.ChunkOffset(upper.Add(core.Pt(1, 1)), view, tile)
	return pixelRect{X: lo.X, Y: lo.Y, W: hi.X - lo.X, H: hi.Y - lo.Y}
}

// cellToPixel converts a cell-unit coordinate to screen pixels.
func cellToPixel(p core.Vec, view core.Vec, tile int) core.Vec {
	return p.Scale(float64(tile)).Add(view)
}

// chunkSpan is the pixel side length of one chunk.
func chunkSpan(tile int) float64 { return float64(grid.ChunkSize * tile) }
