package room

import (
	"testing"

	"dungeon/internal/core"
	"dungeon/internal/dungeon"
)

func TestDrawRoomLayout(t *testing.T) {
	d := dungeon.New()
	Draw(d, 3, 2)

	// start = floor((3, 2) * -0.5) = (-2, -1)
	lo, hi, ok := d.Grid().Extent()
	if !ok || lo != core.Pt(-3, -2) || hi != core.Pt(1, 1) {
		t.Fatalf("unexpected extent %v..%v", lo, hi)
	}
	want := []string{
		"#####",
		"#...#",
		"#...#",
		"#####",
	}
	got := d.Grid().Raster(lo, hi).Lines()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	// A room around the origin spans four quadrants but the x-first walk only
	// reaches (-1, -1) through (-1, 0).
	if d.Grid().Len() != 4 {
		t.Fatalf("expected 4 chunks, got %d", d.Grid().Len())
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	a := New(cfg)
	b := New(cfg)
	for i := 0; i < 5; i++ {
		da, db := dungeon.New(), dungeon.New()
		a.Generate(da)
		b.Generate(db)
		if a.Last() != b.Last() {
			t.Fatalf("iteration %d: sizes differ %v vs %v", i, a.Last(), b.Last())
		}
		size := a.Last()
		if size.X < cfg.MinWidth || size.X >= cfg.MaxWidth || size.Y < cfg.MinHeight || size.Y >= cfg.MaxHeight {
			t.Fatalf("room size %v outside configured range", size)
		}
	}
}

func TestGenerateClearsPreviousRoom(t *testing.T) {
	r := New(Config{MinWidth: 30, MaxWidth: 31, MinHeight: 30, MaxHeight: 31})
	d := dungeon.New()
	d.SetPoint(core.Pt(900, 900), core.Wall)
	r.Generate(d)
	if got := d.GetPoint(core.Pt(900, 900)); got != core.Empty {
		t.Fatalf("stale cell survived Generate: %v", got)
	}
	if got := d.GetPoint(core.Pt(0, 0)); got != core.Floor {
		t.Fatalf("expected floor at origin, got %v", got)
	}
	if got := d.GetPoint(core.Pt(-16, 0)); got != core.Wall {
		t.Fatalf("expected wall at (-16, 0), got %v", got)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"min_w": "5", "max_w": "3", "max_h": "9", "seed": "-4", "min_h": "bogus"})
	if c.MinWidth != 5 || c.MaxWidth != 6 {
		t.Fatalf("expected width range 5..6, got %d..%d", c.MinWidth, c.MaxWidth)
	}
	if c.MinHeight != 1 || c.MaxHeight != 9 {
		t.Fatalf("expected height range 1..9, got %d..%d", c.MinHeight, c.MaxHeight)
	}
	if c.Seed != -4 {
		t.Fatalf("expected seed -4, got %d", c.Seed)
	}
}

func TestSetIntParameter(t *testing.T) {
	r := New(DefaultConfig())
	if !r.SetIntParameter("min_w", 25) {
		t.Fatal("expected min_w to be adjustable")
	}
	if r.cfg.MaxWidth != 26 {
		t.Fatalf("expected max width dragged to 26, got %d", r.cfg.MaxWidth)
	}
	if r.SetIntParameter("max_w", 25) {
		t.Fatal("max_w must stay above min_w")
	}
	if r.SetIntParameter("min_h", 0) {
		t.Fatal("zero size should be rejected")
	}
	if r.SetIntParameter("depth", 3) {
		t.Fatal("unknown key should be rejected")
	}
	p, ok := r.Parameters().Lookup("max_w")
	if !ok || p.Value != "26" {
		t.Fatalf("snapshot out of date: %+v", p)
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Generators()["room"]
	if !ok {
		t.Fatal("room generator not registered")
	}
	if g := factory(nil); g.Name() != "room" {
		t.Fatalf("unexpected generator %q", g.Name())
	}
}
