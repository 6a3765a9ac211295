package core

import (
	"fmt"
	"math"
)

// Point is an integer 2D coordinate. It addresses grid cells and chunk
// positions. All methods return new values; a Point is never mutated in place.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale multiplies both components by k.
func (p Point) Scale(k int) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Vec converts p to a real-valued coordinate.
func (p Point) Vec() Vec { return Vec{X: float64(p.X), Y: float64(p.Y)} }

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Vec is a real-valued 2D coordinate used for averaged and scaled results such
// as the grid centroid or pixel offsets.
type Vec struct {
	X, Y float64
}

// Add returns v+w.
func (v Vec) Add(w Vec) Vec { return Vec{X: v.X + w.X, Y: v.Y + w.Y} }

// Sub returns v-w.
func (v Vec) Sub(w Vec) Vec { return Vec{X: v.X - w.X, Y: v.Y - w.Y} }

// Scale multiplies both components by k.
func (v Vec) Scale(k float64) Vec { return Vec{X: v.X * k, Y: v.Y * k} }

// Floor rounds both components toward negative infinity.
func (v Vec) Floor() Vec { return Vec{X: math.Floor(v.X), Y: math.Floor(v.Y)} }

// Point floors v and converts it to an integer coordinate.
func (v Vec) Point() Point {
	f := v.Floor()
	return Point{X: int(f.X), Y: int(f.Y)}
}

func (v Vec) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

// FloorDiv divides a by b rounding toward negative infinity. b must be
// positive.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
