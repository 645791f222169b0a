// Package core provides the fundamental types of the chart overlay: points,
// colors, charts and the two-chart view. It contains no external dependencies
// to keep the geometry and color arithmetic pure and testable.
package core

// Rect represents an axis-aligned area of integer cells.
// Unlike a Chart, a Rect is always normalized: X, Y is the minimum corner.
type Rect struct {
	X, Y int // Minimum corner position
	W, H int // Width and height in cells
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCorners creates the smallest rectangle holding both points,
// edges inclusive. The corners may be given in any order.
func RectFromCorners(a, b Point) Rect {
	x0, x1 := Min(a.X, b.X), Max(a.X, b.X)
	y0, y1 := Min(a.Y, b.Y), Max(a.Y, b.Y)
	return Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	x0, y0 := Min(r.X, other.X), Min(r.Y, other.Y)
	x1, y1 := Max(r.Right(), other.Right()), Max(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Inset grows the rectangle by n cells on every side. Negative n shrinks it.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

// ValueInRange reports whether value lies within [lo, hi], inclusive.
// The bounds may be given in either order.
func ValueInRange(value, lo, hi int) bool {
	lo, hi = Min(lo, hi), Max(lo, hi)
	return value >= lo && value <= hi
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
