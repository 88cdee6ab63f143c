// Package pixbuf holds floating-point RGB pixel buffers.
//
// A Buffer stores width*height colors in row-major order. Row 0 is the first
// row in memory; file codecs decide whether that is the top or the bottom of
// the visual image.
package pixbuf

import (
	"fmt"
	"image"
	"slices"
)

type Buffer struct {
	pix    []Color
	width  int
	height int
}

// Empty returns the canonical empty buffer.
func Empty() *Buffer {
	return &Buffer{}
}

// New returns a width x height buffer filled with White.
func New(width, height int) *Buffer {
	return NewFilled(width, height, White)
}

// NewFilled returns a width x height buffer filled with c. Non-positive
// dimensions yield the empty buffer.
func NewFilled(width, height int, c Color) *Buffer {
	if width <= 0 || height <= 0 {
		return Empty()
	}

	b := &Buffer{
		pix:    make([]Color, width*height),
		width:  width,
		height: height,
	}
	b.Fill(c)
	return b
}

func (b *Buffer) Width() int {
	return b.width
}

func (b *Buffer) Height() int {
	return b.height
}

// Len returns the number of pixels.
func (b *Buffer) Len() int {
	return len(b.pix)
}

func (b *Buffer) IsEmpty() bool {
	return len(b.pix) == 0
}

// Pixels returns the row-major backing slice.
func (b *Buffer) Pixels() []Color {
	return b.pix
}

func (b *Buffer) InBounds(row, col int) bool {
	return 0 <= row && row < b.height && 0 <= col && col < b.width
}

// Pixel returns the color at (row, col), or Black when out of bounds.
func (b *Buffer) Pixel(row, col int) Color {
	if !b.InBounds(row, col) {
		return Black
	}
	return b.pix[row*b.width+col]
}

// SetPixel stores c at (row, col). Out of bounds writes are ignored.
func (b *Buffer) SetPixel(row, col int, c Color) {
	if !b.InBounds(row, col) {
		return
	}
	b.pix[row*b.width+col] = c
}

// PixelAt is Pixel addressed by a point, with X as the column and Y as the row.
func (b *Buffer) PixelAt(p image.Point) Color {
	return b.Pixel(p.Y, p.X)
}

func (b *Buffer) SetPixelAt(p image.Point, c Color) {
	b.SetPixel(p.Y, p.X, c)
}

// Row returns the scanline at row as a view into the buffer. It panics if
// row is out of range.
func (b *Buffer) Row(row int) []Color {
	if row < 0 || row >= b.height {
		panic(fmt.Sprintf("pixbuf: row %d out of range [0, %d)", row, b.height))
	}
	start := row * b.width
	return b.pix[start : start+b.width : start+b.width]
}

func (b *Buffer) Fill(c Color) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		pix:    slices.Clone(b.pix),
		width:  b.width,
		height: b.height,
	}
}
