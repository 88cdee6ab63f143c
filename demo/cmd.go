package demo

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"bmpkit/bmp"
	"bmpkit/pixbuf"

	"github.com/alecthomas/kong"
)

const (
	stripeStart = 40
	stripeEnd   = 60
)

type CLICmd struct {
	Dir        string       `help:"Output folder" default:"."`
	Width      int          `help:"Image width" default:"400"`
	Height     int          `help:"Image height" default:"300"`
	Background string       `help:"Background color, #RGB or #RRGGBB" default:"#cce6ff"`
	BgColor    pixbuf.Color `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	dir, err := filepath.Abs(c.Dir)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(dir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid output path %q: %w", c.Dir, err)
	}
	c.Dir = dir

	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size: %dx%d", c.Width, c.Height)
	}

	if c.BgColor, err = pixbuf.ParseHex(c.Background); err != nil {
		return err
	}
	return nil
}

// Run draws a horizontal black stripe on the background and saves it as
// test1.bmp, then reloads that file, adds a vertical white stripe and saves
// the result as test2.bmp.
func (c *CLICmd) Run() error {
	img := pixbuf.NewFilled(c.Width, c.Height, c.BgColor)
	for y := stripeStart; y < stripeEnd; y++ {
		for x := range img.Width() {
			img.SetPixel(y, x, pixbuf.Gray(0))
		}
	}

	first := filepath.Join(c.Dir, "test1.bmp")
	if !bmp.Save(img, first) {
		return fmt.Errorf("could not save %q", first)
	}
	slog.Info("saved", "file", first, "width", img.Width(), "height", img.Height())

	img = bmp.Load(first)
	if img.IsEmpty() {
		return fmt.Errorf("could not load %q", first)
	}
	for y := range img.Height() {
		row := img.Row(y)
		for x := stripeStart; x < stripeEnd && x < len(row); x++ {
			row[x] = pixbuf.Gray(1)
		}
	}

	second := filepath.Join(c.Dir, "test2.bmp")
	if !bmp.Save(img, second) {
		return fmt.Errorf("could not save %q", second)
	}
	slog.Info("saved", "file", second, "width", img.Width(), "height", img.Height())

	return nil
}
