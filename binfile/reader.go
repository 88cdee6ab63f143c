package binfile

import (
	"fmt"
	"os"
	"path/filepath"
)

type Reader struct {
	f    *os.File
	path string
	size int64
}

func Open(name string) (*Reader, error) {
	path, err := filepath.Abs(name)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", name, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("cannot stat %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, fmt.Errorf("cannot read non-regular file %q: %s", path, info.Mode().String())
	}

	return &Reader{f: f, path: path, size: info.Size()}, nil
}

func (r *Reader) FullPath() string {
	return r.path
}

// Size returns the total size of the file in bytes.
func (r *Reader) Size() int64 {
	return r.size
}

func (r *Reader) Read(p []byte) (int, error) {
	return r.f.Read(p)
}

func (r *Reader) Close() error {
	return r.f.Close()
}
