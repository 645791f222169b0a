package core

import "fmt"

// Chart is an axis-aligned rectangle with a color.
//
// The corners are expected to be top-left and bottom-right, but nothing
// enforces it: every predicate normalizes the bounds on read.
// The zero value is a degenerate chart at the origin colored black.
type Chart struct {
	corner1 Point
	corner2 Point
	color   Color
}

// NewChart creates a chart spanning the two corners.
func NewChart(p1, p2 Point, c Color) Chart {
	return Chart{corner1: p1, corner2: p2, color: c}
}

// Set replaces both corners and the color.
func (c *Chart) Set(p1, p2 Point, color Color) {
	c.corner1 = p1
	c.corner2 = p2
	c.color = color
}

// Corners returns the two corners as given.
func (c Chart) Corners() (Point, Point) {
	return c.corner1, c.corner2
}

// Color returns the chart's color.
func (c Chart) Color() Color {
	return c.color
}

// Overlaps reports whether the two charts share at least one cell.
// An axis overlaps when either interval's start lies within the other.
func (c Chart) Overlaps(other Chart) bool {
	xOverlap := ValueInRange(c.corner1.X, other.corner1.X, other.corner2.X) ||
		ValueInRange(other.corner1.X, c.corner1.X, c.corner2.X)
	yOverlap := ValueInRange(c.corner1.Y, other.corner1.Y, other.corner2.Y) ||
		ValueInRange(other.corner1.Y, c.corner1.Y, c.corner2.Y)
	return xOverlap && yOverlap
}

// ContainsPoint reports whether p lies inside the chart, edges inclusive.
func (c Chart) ContainsPoint(p Point) bool {
	return ValueInRange(p.X, c.corner1.X, c.corner2.X) &&
		ValueInRange(p.Y, c.corner1.Y, c.corner2.Y)
}

// AverageColor blends this chart's color with other's.
func (c Chart) AverageColor(other Chart) Color {
	return c.color.Average(other.color)
}

// Bounds returns the normalized cell area covered by the chart.
func (c Chart) Bounds() Rect {
	return RectFromCorners(c.corner1, c.corner2)
}

// String returns the display form,
// e.g. "chart (point [10,30],point [20,15],rgb [50,50,50])".
func (c Chart) String() string {
	return fmt.Sprintf("chart (%s,%s,%s)", c.corner1, c.corner2, c.color)
}
