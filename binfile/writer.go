// Package binfile provides the byte sink and byte source used for image
// files. A Writer only replaces its destination once every write succeeded.
package binfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrClosed = errors.New("binfile: file already closed")

type Writer struct {
	f    *os.File
	path string
	err  error
	done bool
}

// Create opens a temporary file next to name. The data becomes visible under
// name when Close succeeds.
func Create(name string) (*Writer, error) {
	path, err := filepath.Abs(name)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", name, err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, fmt.Errorf("could not create temporary file for %q: %w", path, err)
	}

	return &Writer{f: f, path: path}, nil
}

// FullPath returns the absolute destination path.
func (w *Writer) FullPath() string {
	return w.path
}

// Write writes p in full. After the first failure every later call returns
// the same error.
func (w *Writer) Write(p []byte) (int, error) {
	if w.done {
		return 0, ErrClosed
	}
	if w.err != nil {
		return 0, w.err
	}

	n, err := w.f.Write(p)
	if err != nil {
		w.err = fmt.Errorf("could not write %q: %w", w.path, err)
	}
	return n, w.err
}

// Close flushes the temporary file and moves it over the destination. If a
// write failed earlier, the temporary file is removed and that error returned.
func (w *Writer) Close() (err error) {
	if w.done {
		return ErrClosed
	}
	if w.err != nil {
		w.Discard()
		return w.err
	}
	w.done = true

	tmp := w.f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if err = w.f.Sync(); err != nil {
		w.f.Close()
		return fmt.Errorf("could not flush %q: %w", w.path, err)
	}
	if err = w.f.Close(); err != nil {
		return fmt.Errorf("could not close %q: %w", w.path, err)
	}
	if err = os.Rename(tmp, w.path); err != nil {
		return fmt.Errorf("could not rename %q to %q: %w", tmp, w.path, err)
	}
	return nil
}

// Discard drops everything written so far. The destination is left untouched.
func (w *Writer) Discard() error {
	if w.done {
		return nil
	}
	w.done = true

	closeErr := w.f.Close()
	if err := os.Remove(w.f.Name()); err != nil {
		return fmt.Errorf("could not remove %q: %w", w.f.Name(), err)
	}
	return closeErr
}
