package render

import (
	"testing"

	"dungeon/internal/core"
)

func TestChunkOffset(t *testing.T) {
	view := core.Vec{X: 15, Y: -5}
	if got := ChunkOffset(core.Pt(0, 0), view, TileSize); got != view {
		t.Fatalf("main chunk should sit at the view offset, got %v", got)
	}
	if got := ChunkOffset(core.Pt(-1, 2), view, TileSize); got != (core.Vec{X: -1985, Y: 3995}) {
		t.Fatalf("unexpected offset %v", got)
	}
}

func TestChunkVisible(t *testing.T) {
	cases := []struct {
		offset core.Vec
		want   bool
	}{
		{core.Vec{X: 0, Y: 0}, true},
		{core.Vec{X: -1999, Y: 0}, true},
		{core.Vec{X: -2000, Y: 0}, false},
		{core.Vec{X: 800, Y: 0}, false},
		{core.Vec{X: 100, Y: 599}, true},
		{core.Vec{X: 100, Y: 600}, false},
	}
	for _, tc := range cases {
		if got := chunkVisible(tc.offset, TileSize, 800, 600); got != tc.want {
			t.Fatalf("chunkVisible(%v) = %v, expected %v", tc.offset, got, tc.want)
		}
	}
}
