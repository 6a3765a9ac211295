package ui

import (
	"testing"

	"dungeon/internal/core"
)

func TestChunkSpanRect(t *testing.T) {
	got := chunkSpanRect(core.Pt(-1, -1), core.Pt(0, 0), core.Vec{X: 10, Y: 20}, 1)
	want := pixelRect{X: -190, Y: -180, W: 400, H: 400}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if single := chunkSpanRect(core.Pt(2, 0), core.Pt(2, 0), core.Vec{}, 2); single.W != chunkSpan(2) || single.X != 800 {
		t.Fatalf("unexpected single chunk rect %+v", single)
	}
}

func TestCellToPixel(t *testing.T) {
	got := cellToPixel(core.Vec{X: 100, Y: 100}, core.Vec{X: -600, Y: -700}, 10)
	if got != (core.Vec{X: 400, Y: 300}) {
		t.Fatalf("unexpected pixel %v", got)
	}
}
