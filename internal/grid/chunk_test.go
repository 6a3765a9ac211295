package grid

import (
	"testing"

	"dungeon/internal/core"
)

func TestNewChunkIsEmpty(t *testing.T) {
	c := newChunk(core.Pt(2, -3))
	if c.Populated() {
		t.Fatal("new chunk should hold only empty cells")
	}
	if c.Pos() != core.Pt(2, -3) {
		t.Fatalf("unexpected position %v", c.Pos())
	}
	if c.Origin() != core.Pt(2*ChunkSize, -3*ChunkSize) {
		t.Fatalf("unexpected origin %v", c.Origin())
	}
}

func TestChunkEachVisitsNonEmptyCells(t *testing.T) {
	c := newChunk(core.Point{})
	c.set(local{x: 0, y: 0}, core.Floor)
	c.set(local{x: ChunkSize - 1, y: 3}, core.Wall)

	got := map[core.Point]core.Cell{}
	c.Each(func(x, y int, v core.Cell) {
		got[core.Pt(x, y)] = v
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 visited cells, got %d", len(got))
	}
	if got[core.Pt(0, 0)] != core.Floor || got[core.Pt(ChunkSize-1, 3)] != core.Wall {
		t.Fatalf("unexpected cells %v", got)
	}
	if c.get(local{x: ChunkSize - 1, y: 3}) != core.Wall {
		t.Fatal("get should return the stored value")
	}
	if !c.Populated() {
		t.Fatal("chunk with cells should be populated")
	}
}
