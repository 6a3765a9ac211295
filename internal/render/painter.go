//go:build ebiten

package render

import (
	"dungeon/internal/core"
	"dungeon/internal/grid"

	"github.com/hajimehoshi/ebiten/v2"
)

// ChunkPainter draws the chunks of a grid, one cached image per chunk.
type ChunkPainter struct {
	images map[*grid.Chunk]*ebiten.Image
	buf    []byte
}

// NewChunkPainter allocates a painter.
func NewChunkPainter() *ChunkPainter {
	return &ChunkPainter{
		images: map[*grid.Chunk]*ebiten.Image{},
		buf:    make([]byte, 4*grid.ChunkSize*grid.ChunkSize),
	}
}

// Invalidate drops every cached chunk image. Call it after the grid changes.
func (cp *ChunkPainter) Invalidate() {
	for c, img := range cp.images {
		img.Dispose()
		delete(cp.images, c)
	}
}

// Draw paints every visible chunk of g onto dst. view is the pixel offset of
// cell (0, 0) and tile the pixel size of a cell.
func (cp *ChunkPainter) Draw(dst *ebiten.Image, g *grid.Grid, view core.Vec, tile int) {
	if tile <= 0 {
		tile = 1
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	g.EachChunk(func(c *grid.Chunk) {
		offset := ChunkOffset(c.Pos(), view, tile)
		if !chunkVisible(offset, tile, w, h) {
			return
		}
		img := cp.image(c)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(tile), float64(tile))
		op.GeoM.Translate(offset.X, offset.Y)
		dst.DrawImage(img, op)
	})
}

func (cp *ChunkPainter) image(c *grid.Chunk) *ebiten.Image {
	if img, ok := cp.images[c]; ok {
		return img
	}
	img := ebiten.NewImage(grid.ChunkSize, grid.ChunkSize)
	fillChunkRGBA(cp.buf, c, Palette())
	img.WritePixels(cp.buf)
	cp.images[c] = img
	return img
}
