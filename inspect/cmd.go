package inspect

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"bmpkit/binfile"
	"bmpkit/bmp"
	"bmpkit/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Scan string `help:"Folder to scan for BMP files" default:"."`
}

// Info describes one BMP file as seen through its header.
type Info struct {
	Width     int
	Height    int
	TopDown   bool
	Stride    int
	ImageSize int64 // padded pixel data size derived from the dimensions
	FileSize  int64 // size recorded in the header
	Size      int64 // size on disk
}

// Truncated reports whether the file is too short to hold every row.
func (i Info) Truncated() bool {
	return i.Size < bmp.HeaderLen+i.ImageSize
}

func (i Info) Order() string {
	if i.TopDown {
		return "top-down"
	}
	return "bottom-up"
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

	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.EqualFold(filepath.Ext(file.Name()), ".bmp") {
			continue
		}

		name := filepath.Join(c.Scan, file.Name())
		pool.Go(func() error {
			logger := slog.Default().With("file", name)

			info, err := Describe(name)
			if err != nil {
				logger.Error("could not read bitmap header", "error", err)
				return err
			}

			logger.Info("bitmap", "width", info.Width, "height", info.Height, "order", info.Order(),
				"stride", info.Stride, "imageSize", info.ImageSize, "size", info.Size)
			if info.FileSize != info.Size {
				logger.Warn("header file size mismatch", "header", info.FileSize, "actual", info.Size)
			}
			if info.Truncated() {
				err := fmt.Errorf("truncated: %d bytes, want %d", info.Size, bmp.HeaderLen+info.ImageSize)
				logger.Error("bitmap is truncated", "error", err)
				return err
			}
			return nil
		})
	}

	stats := pool.Wait()
	slog.Info("stats", "valid", stats.Processed, "errors", stats.Errors, "total", stats.Total())

	if stats.Errors > 0 {
		return fmt.Errorf("error processing %d files", stats.Errors)
	}
	return nil
}

// Describe reads the header of the named file.
func Describe(name string) (Info, error) {
	r, err := binfile.Open(name)
	if err != nil {
		return Info{}, err
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil {
			slog.Error("could not close file", "name", name, "error", closeErr)
		}
	}()

	h, err := bmp.ReadHeader(r)
	if err != nil {
		return Info{}, err
	}

	width, height := h.Dims()
	stride := bmp.RowStride(width)
	return Info{
		Width:     width,
		Height:    height,
		TopDown:   h.TopDown(),
		Stride:    stride,
		ImageSize: int64(stride) * int64(height),
		FileSize:  int64(h.FileSize),
		Size:      r.Size(),
	}, nil
}
