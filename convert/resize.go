package convert

import (
	"log/slog"
	"math"

	"bmpkit/pixbuf"

	"golang.org/x/image/draw"
)

// resize scales img to width x height. A zero dimension is derived from the
// other one so the aspect ratio is kept.
func resize(logger *slog.Logger, img *pixbuf.Buffer, width, height int) *pixbuf.Buffer {
	if img.IsEmpty() {
		return img
	}

	srcWidth := float64(img.Width())
	srcHeight := float64(img.Height())

	if width == 0 {
		width = int(math.Round(srcWidth * float64(height) / srcHeight))
	}
	if height == 0 {
		height = int(math.Round(srcHeight * float64(width) / srcWidth))
	}
	width, height = max(width, 1), max(height, 1)

	if width == img.Width() && height == img.Height() {
		return img
	}

	logger.Info("resizing", "width", width, "height", height)
	dest := pixbuf.NewFilled(width, height, pixbuf.Black)
	draw.CatmullRom.Scale(dest, dest.Bounds(), img, img.Bounds(), draw.Src, nil)

	return dest
}
