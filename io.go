package gray

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gray/internal/pgm"
)

// Load reads a binary grayscale image from the given file path.
// On failure it returns a nil image; no partially decoded image is exposed.
func Load(path string, opts ...DecodeOption) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("gray: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	m, err := Decode(f, opts...)
	if err != nil {
		Logger().Debug("gray: load failed", "path", path, "error", err)
		return nil, err
	}

	Logger().Debug("gray: loaded image", "path", path, "width", m.width, "height", m.height)
	return m, nil
}

// Decode reads a binary grayscale image from r.
func Decode(r io.Reader, opts ...DecodeOption) (*Image, error) {
	o := defaultDecodeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	h, pix, err := pgm.Decode(r, o.maxPixels)
	if err != nil {
		if errors.Is(err, pgm.ErrInvalidDimensions) {
			return nil, fmt.Errorf("gray: decode: %w: %w", ErrInvalidDimensions, err)
		}
		return nil, fmt.Errorf("gray: decode: %w", err)
	}

	return &Image{
		pix:    pix,
		width:  h.Width,
		height: h.Height,
	}, nil
}

// Save writes the image to the given file path.
// Returns ErrEmpty for an empty image. A file that could not be written
// completely is removed.
func (m *Image) Save(path string) error {
	if m.IsEmpty() {
		return ErrEmpty
	}

	path = filepath.Clean(path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gray: create file: %w", err)
	}

	if err := m.Encode(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("gray: close file: %w", err)
	}

	Logger().Debug("gray: saved image", "path", path, "width", m.width, "height", m.height)
	return nil
}

// Encode writes the image to w.
func (m *Image) Encode(w io.Writer) error {
	if m.IsEmpty() {
		return ErrEmpty
	}
	if err := pgm.Encode(w, m.width, m.height, m.pix); err != nil {
		return fmt.Errorf("gray: encode: %w", err)
	}
	return nil
}
