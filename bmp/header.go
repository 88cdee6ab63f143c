package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	fileHeaderLen = 14
	infoHeaderLen = 40

	// HeaderLen is the size of the file header plus the BITMAPINFOHEADER.
	HeaderLen = fileHeaderLen + infoHeaderLen

	bytesPerPixel = 3
	bitsPerPixel  = 24
	biRGB         = 0

	// MaxPixels bounds the number of pixels Decode will allocate for.
	MaxPixels = 1 << 26
)

var (
	// ErrFormat means the input is not a BMP file.
	ErrFormat = errors.New("bmp: invalid format")
	// ErrUnsupported means the input is a BMP variant this package does not
	// handle: anything but uncompressed 24-bit with a 40-byte info header.
	ErrUnsupported = errors.New("bmp: unsupported BMP image")
)

// Header is the 14-byte BITMAPFILEHEADER followed by the 40-byte
// BITMAPINFOHEADER. It is serialized field by field at fixed offsets, never
// through the in-memory layout of the struct.
type Header struct {
	Magic       [2]byte // "BM"
	FileSize    uint32  // Size of the whole file in bytes.
	Reserved1   uint16
	Reserved2   uint16
	PixelOffset uint32 // Offset of the pixel array, always 54 when written.

	InfoSize        uint32 // Size of the info header, 40.
	Width           int32
	Height          int32 // Positive: bottom-up rows. Negative: top-down rows.
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	ImageSize       uint32 // Size of the padded pixel array in bytes.
	XPelsPerMeter   int32
	YPelsPerMeter   int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// RowStride returns the size in bytes of one scanline of the given width,
// padded to a multiple of 4.
func RowStride(width int) int {
	return (width*bytesPerPixel + 3) / 4 * 4
}

// NewHeader returns the header for a bottom-up 24-bit image. The size fields
// are derived from width and height.
func NewHeader(width, height int) (Header, error) {
	if width < 0 || height < 0 || width > math.MaxInt32 || height > math.MaxInt32 {
		return Header{}, fmt.Errorf("%w: %dx%d image", ErrUnsupported, width, height)
	}

	imageSize := int64(RowStride(width)) * int64(height)
	if imageSize+HeaderLen > math.MaxUint32 {
		return Header{}, fmt.Errorf("%w: %dx%d image exceeds 4GiB", ErrUnsupported, width, height)
	}

	return Header{
		Magic:       [2]byte{'B', 'M'},
		FileSize:    uint32(HeaderLen + imageSize),
		PixelOffset: HeaderLen,
		InfoSize:    infoHeaderLen,
		Width:       int32(width),
		Height:      int32(height),
		Planes:      1,
		BitCount:    bitsPerPixel,
		Compression: biRGB,
		ImageSize:   uint32(imageSize),
	}, nil
}

// TopDown reports whether the first stored row is the top of the image.
func (h *Header) TopDown() bool {
	return h.Height < 0
}

// Dims returns the width and the absolute height.
func (h *Header) Dims() (int, int) {
	height := int(h.Height)
	if height < 0 {
		height = -height
	}
	return int(h.Width), height
}

func (h *Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, HeaderLen)
	le := binary.LittleEndian

	copy(b[0:2], h.Magic[:])
	le.PutUint32(b[2:6], h.FileSize)
	le.PutUint16(b[6:8], h.Reserved1)
	le.PutUint16(b[8:10], h.Reserved2)
	le.PutUint32(b[10:14], h.PixelOffset)

	le.PutUint32(b[14:18], h.InfoSize)
	le.PutUint32(b[18:22], uint32(h.Width))
	le.PutUint32(b[22:26], uint32(h.Height))
	le.PutUint16(b[26:28], h.Planes)
	le.PutUint16(b[28:30], h.BitCount)
	le.PutUint32(b[30:34], h.Compression)
	le.PutUint32(b[34:38], h.ImageSize)
	le.PutUint32(b[38:42], uint32(h.XPelsPerMeter))
	le.PutUint32(b[42:46], uint32(h.YPelsPerMeter))
	le.PutUint32(b[46:50], h.ColorsUsed)
	le.PutUint32(b[50:54], h.ColorsImportant)

	return b, nil
}

func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) < HeaderLen {
		return fmt.Errorf("bmp: header is %d bytes, want %d: %w", len(b), HeaderLen, io.ErrUnexpectedEOF)
	}
	le := binary.LittleEndian

	copy(h.Magic[:], b[0:2])
	h.FileSize = le.Uint32(b[2:6])
	h.Reserved1 = le.Uint16(b[6:8])
	h.Reserved2 = le.Uint16(b[8:10])
	h.PixelOffset = le.Uint32(b[10:14])

	h.InfoSize = le.Uint32(b[14:18])
	h.Width = int32(le.Uint32(b[18:22]))
	h.Height = int32(le.Uint32(b[22:26]))
	h.Planes = le.Uint16(b[26:28])
	h.BitCount = le.Uint16(b[28:30])
	h.Compression = le.Uint32(b[30:34])
	h.ImageSize = le.Uint32(b[34:38])
	h.XPelsPerMeter = int32(le.Uint32(b[38:42]))
	h.YPelsPerMeter = int32(le.Uint32(b[42:46]))
	h.ColorsUsed = le.Uint32(b[46:50])
	h.ColorsImportant = le.Uint32(b[50:54])

	return nil
}

// Validate checks that h describes an image Decode can read. The size
// fields and the pixel offset are not checked: rows always follow the
// 54-byte header.
func (h *Header) Validate() error {
	if h.Magic != [2]byte{'B', 'M'} {
		return fmt.Errorf("%w: magic %q", ErrFormat, h.Magic[:])
	}
	if h.InfoSize != infoHeaderLen {
		return fmt.Errorf("%w: %d-byte info header", ErrUnsupported, h.InfoSize)
	}
	if h.BitCount != bitsPerPixel {
		return fmt.Errorf("%w: %d bits per pixel", ErrUnsupported, h.BitCount)
	}
	if h.Compression != biRGB {
		return fmt.Errorf("%w: compression %d", ErrUnsupported, h.Compression)
	}
	if h.Width < 0 {
		return fmt.Errorf("%w: negative width %d", ErrFormat, h.Width)
	}

	width, height := h.Dims()
	if int64(width)*int64(height) > MaxPixels {
		return fmt.Errorf("%w: %dx%d image is too large", ErrUnsupported, width, height)
	}
	return nil
}
