//go:build ebiten

package ui

import (
	"image/color"

	"dungeon/internal/core"
	"dungeon/internal/grid"
	"dungeon/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional debugging visuals on top of the dungeon: chunk
// outlines, the write bounds, and the centroid used to center the view.
type Overlay struct {
	showChunks bool
	showBounds bool
	showCenter bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update toggles overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showChunks = !o.showChunks
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBounds = !o.showBounds
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showCenter = !o.showCenter
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, g *grid.Grid, view core.Vec, tile int) {
	if tile <= 0 {
		tile = 1
	}
	if o.showChunks {
		span := float32(chunkSpan(tile))
		outline := color.RGBA{R: 60, G: 90, B: 140, A: 255}
		g.EachChunk(func(c *grid.Chunk) {
			off := render.ChunkOffset(c.Pos(), view, tile)
			vector.StrokeRect(screen, float32(off.X), float32(off.Y), span, span, 1, outline, false)
		})
	}
	if o.showBounds {
		lower, upper := g.Bounds()
		r := chunkSpanRect(lower, upper, view, tile)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, color.RGBA{R: 200, G: 160, B: 40, A: 255}, false)
	}
	if o.showCenter {
		c := cellToPixel(g.FindCenter(), view, tile)
		const size = 6
		vector.DrawFilledRect(screen, float32(c.X)-size/2, float32(c.Y)-size/2, size, size, color.RGBA{R: 220, G: 60, B: 60, A: 255}, false)
	}
}
