package pixbuf

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var _ draw.Image = (*Buffer)(nil)

func (b *Buffer) ColorModel() color.Model {
	return ColorModel
}

func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image. Row 0 is the top of the image.
func (b *Buffer) At(x, y int) color.Color {
	return b.Pixel(y, x)
}

func (b *Buffer) Set(x, y int, c color.Color) {
	b.SetPixel(y, x, ColorModel.Convert(c).(Color))
}

// FromImage copies img into a new buffer whose row 0 is the top of img.
func FromImage(img image.Image) *Buffer {
	r := img.Bounds()
	b := NewFilled(r.Dx(), r.Dy(), Black)
	if b.IsEmpty() {
		return b
	}

	draw.Draw(b, b.Bounds(), img, r.Min, draw.Src)
	return b
}
