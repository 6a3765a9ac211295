//go:build ebiten

package app

import (
	"image"
	"image/color"
	"log"
	"time"

	"dungeon/internal/core"
	"dungeon/internal/dungeon"
	"dungeon/internal/render"
	"dungeon/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const panStep = 20

// Game adapts a dungeon generator to the ebiten.Game interface.
type Game struct {
	gen     core.Generator
	dungeon *dungeon.Dungeon
	painter *render.ChunkPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	regen   *core.Interval

	tile     int
	hudWidth int
	seed     int64
	pan      core.Vec
	width    int
	height   int
}

// New constructs a Game for the provided generator and renders the first
// dungeon.
func New(gen core.Generator, cfg *Config) *Game {
	g := &Game{
		gen:      gen,
		dungeon:  dungeon.New(),
		painter:  render.NewChunkPainter(),
		overlay:  ui.NewOverlay(),
		hud:      ui.NewHUD(gen, cfg.HUDWidth),
		regen:    core.NewInterval(cfg.Regen),
		tile:     cfg.Tile,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
		width:    cfg.Width,
		height:   cfg.Height,
	}
	g.Reset(cfg.Seed)
	return g
}

// Reset reseeds the generator and draws a fresh dungeon.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.gen.Reset(seed)
	g.pan = core.Vec{}
	g.generate()
}

func (g *Game) generate() {
	g.gen.Generate(g.dungeon)
	g.painter.Invalidate()
	lower, upper := g.dungeon.Grid().Bounds()
	log.Printf("%s: seed %d, %d chunks, bounds %v..%v", g.gen.Name(), g.seed, g.dungeon.Grid().Len(), lower, upper)
}

// Update handles per-frame input and automatic regeneration.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.generate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		if g.regen.Period() > 0 {
			g.regen.SetPeriod(0)
		} else {
			g.regen.SetPeriod(2 * time.Second)
		}
	}
	g.handlePan()

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud.Update(g.viewWidth()) {
		g.generate()
	}
	if g.regen.Due(time.Now()) {
		g.generate()
	}
	return nil
}

func (g *Game) handlePan() {
	step := float64(panStep)
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.pan.X += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.pan.X -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.pan.Y += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.pan.Y -= step
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.pan = core.Vec{}
	}
}

func (g *Game) viewWidth() int {
	w := g.width - g.hudWidth
	if w < 0 {
		return 0
	}
	return w
}

// Draw renders the dungeon centered in the view area, the overlay, and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	vw := g.viewWidth()
	if vw > 0 {
		view := screen.SubImage(image.Rect(0, 0, vw, g.height)).(*ebiten.Image)
		offset := g.dungeon.ViewOffset(vw, g.height, g.tile).Add(g.pan)
		g.painter.Draw(view, g.dungeon.Grid(), offset, g.tile)
		if g.overlay != nil {
			g.overlay.Draw(view, g.dungeon.Grid(), offset, g.tile)
		}
	}
	g.hud.Draw(screen, vw, ui.StatsOf(g.gen.Name(), g.seed, g.dungeon.Grid()))
}

// Layout tracks the window size so the dungeon stays centered on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
