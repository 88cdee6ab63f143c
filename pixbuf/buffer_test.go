package pixbuf

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestNewNonPositiveIsEmpty(t *testing.T) {
	tests := []struct {
		width, height int
	}{
		{0, 5},
		{5, 0},
		{-1, -1},
		{0, 0},
		{-3, 4},
	}

	for _, tt := range tests {
		b := New(tt.width, tt.height)
		if !b.IsEmpty() || b.Width() != 0 || b.Height() != 0 || b.Len() != 0 {
			t.Errorf("New(%d, %d) = %dx%d with %d pixels, want empty",
				tt.width, tt.height, b.Width(), b.Height(), b.Len())
		}
	}
}

func TestNewFillsWhite(t *testing.T) {
	b := New(3, 2)
	if b.IsEmpty() {
		t.Fatal("3x2 buffer is empty")
	}
	if b.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", b.Len())
	}
	for i, c := range b.Pixels() {
		if c != White {
			t.Errorf("pixel %d = %v, want white", i, c)
		}
	}
}

func TestPixelOutOfBounds(t *testing.T) {
	b := NewFilled(4, 3, Color{0.2, 0.4, 0.6})

	coords := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {100, 100}, {math.MinInt32, 2}}
	for _, rc := range coords {
		if b.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d, %d) = true", rc[0], rc[1])
		}
		if got := b.Pixel(rc[0], rc[1]); got != Black {
			t.Errorf("Pixel(%d, %d) = %v, want black", rc[0], rc[1], got)
		}
		b.SetPixel(rc[0], rc[1], White)
	}

	for i, c := range b.Pixels() {
		if c != (Color{0.2, 0.4, 0.6}) {
			t.Errorf("pixel %d changed to %v by out of bounds write", i, c)
		}
	}
}

func TestSetPixelRowMajor(t *testing.T) {
	b := NewFilled(3, 2, Black)
	red := Color{1, 0, 0}
	b.SetPixel(1, 2, red)

	if got := b.Pixels()[1*3+2]; got != red {
		t.Errorf("backing pixel = %v, want %v", got, red)
	}
	if got := b.PixelAt(image.Pt(2, 1)); got != red {
		t.Errorf("PixelAt(2, 1) = %v, want %v", got, red)
	}

	b.SetPixelAt(image.Pt(0, 1), White)
	if got := b.Pixel(1, 0); got != White {
		t.Errorf("Pixel(1, 0) = %v, want white", got)
	}
}

func TestRowView(t *testing.T) {
	b := NewFilled(4, 3, Black)
	row := b.Row(2)
	if len(row) != 4 {
		t.Fatalf("len(Row(2)) = %d, want 4", len(row))
	}

	row[1] = White
	if got := b.Pixel(2, 1); got != White {
		t.Errorf("write through row view not visible: %v", got)
	}
	if got := b.Pixel(1, 1); got != Black {
		t.Errorf("write through row view leaked into row 1: %v", got)
	}

	if cap(row) != 4 {
		t.Errorf("cap(Row(2)) = %d, want 4", cap(row))
	}
}

func TestRowOutOfRangePanics(t *testing.T) {
	b := New(2, 2)
	for _, row := range []int{-1, 2} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Row(%d) did not panic", row)
				}
			}()
			b.Row(row)
		}()
	}
}

func TestFillAndClone(t *testing.T) {
	b := New(2, 2)
	c := b.Clone()
	b.Fill(Gray(0.5))

	for i := range b.Len() {
		if b.Pixels()[i] != Gray(0.5) {
			t.Errorf("pixel %d = %v after Fill", i, b.Pixels()[i])
		}
		if c.Pixels()[i] != White {
			t.Errorf("clone pixel %d = %v, want white", i, c.Pixels()[i])
		}
	}
}

func TestImageAdapter(t *testing.T) {
	b := NewFilled(3, 2, Black)
	b.Set(2, 1, color.RGBA{R: 255, A: 255})

	if got := b.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", got)
	}
	if got := b.Pixel(1, 2); got != (Color{1, 0, 0}) {
		t.Errorf("Pixel(1, 2) = %v after Set", got)
	}

	r, g, bl, a := b.At(2, 1).RGBA()
	if r != 0xffff || g != 0 || bl != 0 || a != 0xffff {
		t.Errorf("At(2, 1).RGBA() = %d, %d, %d, %d", r, g, bl, a)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 13, 22))
	src.Set(10, 20, color.RGBA{R: 255, A: 255})
	src.Set(12, 21, color.RGBA{B: 255, A: 255})

	b := FromImage(src)
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("FromImage size = %dx%d, want 3x2", b.Width(), b.Height())
	}
	if got := b.Pixel(0, 0); got != (Color{1, 0, 0}) {
		t.Errorf("Pixel(0, 0) = %v, want red", got)
	}
	if got := b.Pixel(1, 2); got != (Color{0, 0, 1}) {
		t.Errorf("Pixel(1, 2) = %v, want blue", got)
	}
	if got := b.Pixel(0, 1); got != Black {
		t.Errorf("Pixel(0, 1) = %v, want black", got)
	}

	if !FromImage(image.NewRGBA(image.Rectangle{})).IsEmpty() {
		t.Error("FromImage of empty image is not empty")
	}
}
