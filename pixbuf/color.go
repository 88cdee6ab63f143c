package pixbuf

import (
	"fmt"
	"image/color"
)

// Color is an RGB triple with channels nominally in [0, 1]. Values outside
// that range (and NaN) are allowed in memory; encoders clamp them.
type Color struct {
	R float64
	G float64
	B float64
}

var (
	White = Color{1, 1, 1}
	Black = Color{0, 0, 0}
)

// Gray returns a color with all three channels set to v.
func Gray(v float64) Color {
	return Color{v, v, v}
}

func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

func (c Color) Mul(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

func (c Color) Div(s float64) Color {
	return Color{c.R / s, c.G / s, c.B / s}
}

func (c Color) Neg() Color {
	return Color{-c.R, -c.G, -c.B}
}

// Grayscale returns the BT.601 luma of c.
func (c Color) Grayscale() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

func (c Color) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c.R, c.G, c.B)
}

// RGBA implements color.Color. Channels are clamped and the result is opaque.
func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	return to16(c.R), to16(c.G), to16(c.B), 0xffff
}

func to16(v float64) uint32 {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 0xffff
	}
	return uint32(v*0xffff + 0.5)
}

// ColorModel converts any color.Color to a Color. Alpha is dropped, which
// composites translucent colors over black.
var ColorModel = color.ModelFunc(colorConvert)

func colorConvert(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}

	r, g, b, _ := c.RGBA()
	return Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
	}
}
