package convert

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"bmpkit/bmp"
	"bmpkit/parallel"
	"bmpkit/pixbuf"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

type CLICmd struct {
	Scan   string `help:"Source folder to scan" default:"."`
	Dest   string `help:"Destination folder for converted pictures. Relative to scan dir if not absolute." default:"converted"`
	Format string `help:"Output format" enum:"bmp,png,tiff" default:"bmp"`
	Resize bool   `help:"Resize image" default:"false" group:"resize"`
	Width  int    `help:"Target width, 0 keeps the aspect ratio" group:"resize"`
	Height int    `help:"Target height, 0 keeps the aspect ratio" group:"resize"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}
	if c.Dest == c.Scan {
		return fmt.Errorf("destination folder must differ from scan folder %q", c.Scan)
	}

	if c.Resize {
		switch {
		case c.Width < 0:
			return fmt.Errorf("invalid resize width: %d", c.Width)
		case c.Height < 0:
			return fmt.Errorf("invalid resize height: %d", c.Height)
		case c.Width == 0 && c.Height == 0:
			return fmt.Errorf("no resize dimensions given")
		}
	}

	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		fileName := file.Name()
		pool.Go(func() error {
			logger := slog.Default().With("file", filepath.Join(c.Scan, fileName))
			if err := c.convert(logger, fileName); err != nil {
				logger.Error("could not convert image", "error", err)
				return err
			}
			return nil
		})
	}

	stats := pool.Wait()
	slog.Info("stats", "processed", stats.Processed, "errors", stats.Errors, "total", stats.Total())

	if stats.Errors > 0 {
		return fmt.Errorf("error processing %d files", stats.Errors)
	}
	return nil
}

func (c *CLICmd) convert(logger *slog.Logger, fileName string) error {
	img, imgType, err := load(logger, filepath.Join(c.Scan, fileName))
	if err != nil {
		return err
	}
	logger.Debug("decoded", "type", imgType, "width", img.Width(), "height", img.Height())

	if c.Resize {
		img = resize(logger, img, c.Width, c.Height)
	}

	return save(img, c.Format, c.Dest, fileName)
}

// load decodes 24-bit BMP files with bmp.ReadFile and everything else,
// including other BMP variants, with the registered image decoders.
func load(logger *slog.Logger, name string) (*pixbuf.Buffer, string, error) {
	if strings.EqualFold(filepath.Ext(name), ".bmp") {
		img, err := bmp.ReadFile(name)
		if err == nil {
			return img, "bmp", nil
		}
		if !errors.Is(err, bmp.ErrUnsupported) {
			return nil, "", err
		}
		logger.Debug("falling back to generic decoder", "reason", err)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logger.Error("could not close image", "error", closeErr)
		}
	}()

	img, imgType, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image: %w", err)
	}
	return pixbuf.FromImage(img), imgType, nil
}
