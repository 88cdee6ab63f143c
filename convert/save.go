package convert

import (
	"fmt"
	"image/png"
	"path/filepath"
	"strings"
	"sync"

	"bmpkit/binfile"
	"bmpkit/bmp"
	"bmpkit/pixbuf"

	"golang.org/x/image/tiff"
)

func save(img *pixbuf.Buffer, outType, destDir, srcName string) error {
	destName := fmt.Sprintf("%s.%s", strings.TrimSuffix(srcName, filepath.Ext(srcName)), outType)
	dest := filepath.Join(destDir, destName)

	if outType == "bmp" {
		return bmp.WriteFile(dest, img)
	}

	w, err := binfile.Create(dest)
	if err != nil {
		return err
	}

	switch outType {
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		err = enc.Encode(w, img)
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = fmt.Errorf("unsupported output format: %s", outType)
	}
	if err != nil {
		w.Discard()
		return fmt.Errorf("could not encode %s destination %q: %w", strings.ToUpper(outType), destName, err)
	}

	return w.Close()
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
