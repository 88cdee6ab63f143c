package bmp

import (
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func TestRowStride(t *testing.T) {
	tests := []struct {
		width, stride int
	}{
		{0, 0},
		{1, 4},
		{2, 8},
		{3, 12},
		{4, 12},
		{5, 16},
		{400, 1200},
		{401, 1204},
	}
	for _, tt := range tests {
		if got := RowStride(tt.width); got != tt.stride {
			t.Errorf("RowStride(%d) = %d, want %d", tt.width, got, tt.stride)
		}
	}
}

func TestNewHeaderDerivedFields(t *testing.T) {
	h, err := NewHeader(3, 5)
	if err != nil {
		t.Fatal(err)
	}
	if h.ImageSize != 12*5 {
		t.Errorf("ImageSize = %d, want %d", h.ImageSize, 12*5)
	}
	if h.FileSize != 54+12*5 {
		t.Errorf("FileSize = %d, want %d", h.FileSize, 54+12*5)
	}
	if h.Height != 5 || h.TopDown() {
		t.Errorf("Height = %d, want positive bottom-up 5", h.Height)
	}
	if err := h.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	if _, err := NewHeader(-1, 1); !errors.Is(err, ErrUnsupported) {
		t.Errorf("NewHeader(-1, 1) error = %v, want ErrUnsupported", err)
	}
}

func TestHeaderWireLayout(t *testing.T) {
	h, err := NewHeader(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 54 {
		t.Fatalf("header is %d bytes, want 54", len(b))
	}

	le := binary.LittleEndian
	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"magic", uint32(le.Uint16(b[0:2])), 0x4d42},
		{"file size", le.Uint32(b[2:6]), 54 + 8*3},
		{"reserved1", uint32(le.Uint16(b[6:8])), 0},
		{"reserved2", uint32(le.Uint16(b[8:10])), 0},
		{"pixel offset", le.Uint32(b[10:14]), 54},
		{"info size", le.Uint32(b[14:18]), 40},
		{"width", le.Uint32(b[18:22]), 2},
		{"height", le.Uint32(b[22:26]), 3},
		{"planes", uint32(le.Uint16(b[26:28])), 1},
		{"bit count", uint32(le.Uint16(b[28:30])), 24},
		{"compression", le.Uint32(b[30:34]), 0},
		{"image size", le.Uint32(b[34:38]), 8 * 3},
		{"x resolution", le.Uint32(b[38:42]), 0},
		{"y resolution", le.Uint32(b[42:46]), 0},
		{"colors used", le.Uint32(b[46:50]), 0},
		{"important colors", le.Uint32(b[50:54]), 0},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
}

func TestHeaderUnmarshalSignedHeight(t *testing.T) {
	h, _ := NewHeader(7, 9)
	h.Height = -9
	b, _ := h.MarshalBinary()

	var got Header
	if err := got.UnmarshalBinary(b); err != nil {
		t.Fatal(err)
	}
	if got != h {
		t.Errorf("UnmarshalBinary = %+v, want %+v", got, h)
	}
	if !got.TopDown() {
		t.Error("negative height not reported as top-down")
	}
	if w, ht := got.Dims(); w != 7 || ht != 9 {
		t.Errorf("Dims() = %d, %d, want 7, 9", w, ht)
	}

	if err := got.UnmarshalBinary(b[:53]); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("short UnmarshalBinary error = %v", err)
	}
}

func TestHeaderValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Header)
		want   error
	}{
		{"zero magic", func(h *Header) { h.Magic = [2]byte{0, 0} }, ErrFormat},
		{"swapped magic", func(h *Header) { h.Magic = [2]byte{'M', 'B'} }, ErrFormat},
		{"8 bit", func(h *Header) { h.BitCount = 8 }, ErrUnsupported},
		{"32 bit", func(h *Header) { h.BitCount = 32 }, ErrUnsupported},
		{"rle", func(h *Header) { h.Compression = 1 }, ErrUnsupported},
		{"bitfields", func(h *Header) { h.Compression = 3 }, ErrUnsupported},
		{"v5 header", func(h *Header) { h.InfoSize = 124 }, ErrUnsupported},
		{"negative width", func(h *Header) { h.Width = -4 }, ErrFormat},
		{"huge", func(h *Header) { h.Width, h.Height = 1<<30, -(1 << 30) }, ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := NewHeader(4, 4)
			tt.modify(&h)
			if err := h.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
