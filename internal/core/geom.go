// Package core provides fundamental types shared by the game and the
// platform layer. It has no external dependencies (especially no Bubble
// Tea) to keep game logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle of grid cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround returns the square of cells within radius of (cx, cy),
// i.e. a (2r+1)x(2r+1) rectangle centered on the point.
func RectAround(cx, cy, radius int) Rect {
	return Rect{X: cx - radius, Y: cy - radius, W: 2*radius + 1, H: 2*radius + 1}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of two rectangles.
// The result is empty (zero width or height) when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(0, r.W-2*n), H: max(0, r.H-2*n)}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
// NaN clamps to lo.
func ClampF(val, lo, hi float64) float64 {
	if math.IsNaN(val) || val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
