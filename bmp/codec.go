// Package bmp encodes and decodes uncompressed 24-bit BMP files
// (BITMAPINFOHEADER, version 3) to and from pixbuf buffers.
//
// Files are always written bottom-up. Both row orders are read: a positive
// height means the last stored row is buffer row 0, a negative height means
// the first stored row is buffer row 0.
package bmp

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"bmpkit/pixbuf"
)

// Quantize maps a channel value to 8 bits: clamp to [0, 1], scale by 255 and
// round half up. NaN maps to 0.
func Quantize(v float64) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Expand maps an 8-bit channel back to [0, 1].
func Expand(v uint8) float64 {
	return float64(v) / 255
}

// bufferRow maps the index of a row as stored in the file to its row in the
// buffer.
func bufferRow(fileRow, height int, topDown bool) int {
	if topDown {
		return fileRow
	}
	return height - 1 - fileRow
}

func packRow(dst []byte, src []pixbuf.Color) {
	for x, c := range src {
		dst[x*bytesPerPixel+0] = Quantize(c.B)
		dst[x*bytesPerPixel+1] = Quantize(c.G)
		dst[x*bytesPerPixel+2] = Quantize(c.R)
	}
}

func unpackRow(dst []pixbuf.Color, src []byte) {
	for x := range dst {
		dst[x] = pixbuf.Color{
			R: Expand(src[x*bytesPerPixel+2]),
			G: Expand(src[x*bytesPerPixel+1]),
			B: Expand(src[x*bytesPerPixel+0]),
		}
	}
}

// Encode writes b to w as a bottom-up 24-bit BMP. An empty buffer produces a
// bare 54-byte header.
func Encode(w io.Writer, b *pixbuf.Buffer) error {
	width, height := b.Width(), b.Height()
	h, err := NewHeader(width, height)
	if err != nil {
		return err
	}
	hdr, err := h.MarshalBinary()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(hdr); err != nil {
		return err
	}

	row := make([]byte, RowStride(width))
	for y := range height {
		packRow(row, b.Row(bufferRow(y, height, false)))
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadHeader reads and validates the 54-byte header at the start of r.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderLen]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, fmt.Errorf("bmp: reading header: %w", unexpectedEOF(err))
	}

	var h Header
	if err := h.UnmarshalBinary(buf[:]); err != nil {
		return Header{}, err
	}
	if err := h.Validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// Decode reads a 24-bit BMP from r. On failure it returns the empty buffer
// along with the error; no partially decoded buffer is ever returned.
func Decode(r io.Reader) (*pixbuf.Buffer, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return pixbuf.Empty(), err
	}

	width, height := h.Dims()
	b := pixbuf.NewFilled(width, height, pixbuf.Black)
	if b.IsEmpty() {
		return b, nil
	}

	row := make([]byte, RowStride(width))
	for y := range height {
		if _, err := io.ReadFull(r, row); err != nil {
			return pixbuf.Empty(), fmt.Errorf("bmp: reading row %d of %d: %w", y, height, unexpectedEOF(err))
		}
		unpackRow(b.Row(bufferRow(y, height, h.TopDown())), row)
	}

	return b, nil
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
