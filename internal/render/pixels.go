package render

import (
	"image/color"

	"dungeon/internal/core"
	"dungeon/internal/grid"
)

var cellPalette = []color.RGBA{
	core.Empty: {},
	core.Floor: {R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
	core.Wall:  {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
}

// Palette exposes the colors used for each cell value. Empty is transparent.
func Palette() []color.RGBA { return cellPalette }

// fillChunkRGBA converts a chunk into ChunkSize x ChunkSize RGBA pixels in buf.
// Values past the end of the palette use its last entry. When the palette is
// empty the buffer is cleared to transparent black.
func fillChunkRGBA(buf []byte, c *grid.Chunk, palette []color.RGBA) {
	clear(buf)
	if len(palette) == 0 {
		return
	}
	last := len(palette) - 1
	c.Each(func(x, y int, v core.Cell) {
		idx := int(v)
		if idx > last {
			idx = last
		}
		base := (y*grid.ChunkSize + x) * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	})
}
