package core

import "testing"

func TestPointArithmeticDoesNotAlias(t *testing.T) {
	cursor := Pt(3, -4)
	moved := cursor.Add(Pt(1, 1)).Scale(2)
	if cursor != Pt(3, -4) {
		t.Fatalf("cursor mutated to %v", cursor)
	}
	if moved != Pt(8, -6) {
		t.Fatalf("expected (8, -6), got %v", moved)
	}
	if got := moved.Sub(cursor); got != Pt(5, -2) {
		t.Fatalf("expected (5, -2), got %v", got)
	}
}

func TestVecFloorAndPoint(t *testing.T) {
	v := Vec{X: 7, Y: 3}.Scale(-0.5)
	if v != (Vec{X: -3.5, Y: -1.5}) {
		t.Fatalf("unexpected scale result %v", v)
	}
	if got := v.Floor(); got != (Vec{X: -4, Y: -2}) {
		t.Fatalf("expected (-4, -2), got %v", got)
	}
	if got := v.Point(); got != Pt(-4, -2) {
		t.Fatalf("expected integer (-4, -2), got %v", got)
	}
	if got := Pt(2, 5).Vec().Add(Vec{X: 0.5, Y: 0.5}); got != (Vec{X: 2.5, Y: 5.5}) {
		t.Fatalf("unexpected vec add %v", got)
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{0, 200, 0},
		{199, 200, 0},
		{200, 200, 1},
		{-1, 200, -1},
		{-200, 200, -1},
		{-201, 200, -2},
		{1000, 200, 5},
	}
	for _, tc := range cases {
		if got := FloorDiv(tc.a, tc.b); got != tc.want {
			t.Fatalf("FloorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestStrings(t *testing.T) {
	if got := Pt(-1, 2).String(); got != "(-1, 2)" {
		t.Fatalf("unexpected point string %q", got)
	}
	if got := (Vec{X: 100, Y: 0.5}).String(); got != "(100, 0.5)" {
		t.Fatalf("unexpected vec string %q", got)
	}
}
