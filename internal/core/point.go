package core

import "fmt"

// Point represents an integer coordinate in 2-space.
type Point struct {
	X int
	Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Origin is the zero value of Point.
var Origin = Point{}

// String returns the display form, e.g. "point [10,30]".
func (p Point) String() string {
	return fmt.Sprintf("point [%d,%d]", p.X, p.Y)
}
