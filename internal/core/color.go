package core

import "fmt"

// Color is an RGB triple of 8-bit channels.
type Color struct {
	R, G, B uint8
}

// Black is the color of a point outside both charts.
var Black = Color{}

// RGB is a convenience constructor for Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// NewColor builds a Color from arbitrary integers.
// Each channel is clamped into 0..255; values are never rejected.
func NewColor(r, g, b int) Color {
	return Color{
		R: ClampChannel(r),
		G: ClampChannel(g),
		B: ClampChannel(b),
	}
}

// ClampChannel clamps an integer into the range of an 8-bit channel.
func ClampChannel(v int) uint8 {
	return uint8(Clamp(v, 0, 255))
}

// Blend returns the rounded average of two channels: a/2 + b/2 + (a & b & 1).
// The result rounds up only when both inputs are odd and can never overflow.
func Blend(a, b uint8) uint8 {
	return a/2 + b/2 + (a & b & 1)
}

// Average blends c with other channel by channel.
func (c Color) Average(other Color) Color {
	return Color{
		R: Blend(c.R, other.R),
		G: Blend(c.G, other.G),
		B: Blend(c.B, other.B),
	}
}

// RGBA implements image/color.Color. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// String returns the display form, e.g. "rgb [50,50,50]".
func (c Color) String() string {
	return fmt.Sprintf("rgb [%d,%d,%d]", c.R, c.G, c.B)
}
