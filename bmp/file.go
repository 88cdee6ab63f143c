package bmp

import (
	"fmt"
	"io"

	"bmpkit/binfile"
	"bmpkit/pixbuf"
)

// WriteFile encodes b into the named file. The file is replaced only if the
// whole image was written.
func WriteFile(name string, b *pixbuf.Buffer) error {
	w, err := binfile.Create(name)
	if err != nil {
		return err
	}

	if err := Encode(w, b); err != nil {
		w.Discard()
		return fmt.Errorf("could not encode %q: %w", w.FullPath(), err)
	}
	return w.Close()
}

// ReadFile decodes the named file. On failure the empty buffer is returned
// with the error.
func ReadFile(name string) (*pixbuf.Buffer, error) {
	r, err := binfile.Open(name)
	if err != nil {
		return pixbuf.Empty(), err
	}
	defer r.Close()

	if r.Size() < HeaderLen {
		return pixbuf.Empty(), fmt.Errorf("could not decode %q: %d bytes: %w", r.FullPath(), r.Size(), io.ErrUnexpectedEOF)
	}

	b, err := Decode(r)
	if err != nil {
		return b, fmt.Errorf("could not decode %q: %w", r.FullPath(), err)
	}
	return b, nil
}

// Save writes b to the named file and reports whether it succeeded.
func Save(b *pixbuf.Buffer, name string) bool {
	return WriteFile(name, b) == nil
}

// Load reads the named file. Failure of any kind yields the empty buffer.
func Load(name string) *pixbuf.Buffer {
	b, _ := ReadFile(name)
	return b
}
