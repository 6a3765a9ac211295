package render

import (
	"dungeon/internal/core"
	"dungeon/internal/grid"
)

// TileSize is the default pixel size of one cell.
const TileSize = 10

// ChunkOffset returns the pixel position of a chunk's (0, 0) cell given the
// view offset in pixels.
func ChunkOffset(pos core.Point, view core.Vec, tile int) core.Vec {
	return pos.Vec().Scale(float64(grid.ChunkSize * tile)).Add(view)
}

// chunkVisible reports whether a chunk drawn at offset intersects a w x h
// surface.
func chunkVisible(offset core.Vec, tile, w, h int) bool {
	span := float64(grid.ChunkSize * tile)
	return offset.X < float64(w) && offset.Y < float64(h) &&
		offset.X+span > 0 && offset.Y+span > 0
}
