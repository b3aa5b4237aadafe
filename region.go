package gray

import (
	"fmt"
	"image"
)

// Region returns an independent copy of the w x h rectangle whose top-left
// corner is (x, y). The rectangle must lie fully inside the image.
func (m *Image) Region(x, y, w, h int) (*Image, error) {
	dst := &Image{}
	if err := m.ReadRegion(dst, x, y, w, h); err != nil {
		return nil, err
	}
	return dst, nil
}

// RegionRect is Region for an image.Rectangle.
func (m *Image) RegionRect(r image.Rectangle) (*Image, error) {
	return m.Region(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

// ReadRegion copies the w x h rectangle at (x, y) into dst, replacing dst's
// store. It returns ErrEmpty for a nil dst, ErrInvalidDimensions for a
// non-positive size and ErrOutOfBounds when the rectangle does not fit; in
// every case dst is left untouched.
func (m *Image) ReadRegion(dst *Image, x, y, w, h int) error {
	if dst == nil {
		return fmt.Errorf("%w: nil destination", ErrEmpty)
	}
	if w <= 0 || h <= 0 {
		return ErrInvalidDimensions
	}
	// Compare against the remaining extent; x+w may overflow.
	if x < 0 || y < 0 || x > m.width || y > m.height || w > m.width-x || h > m.height-y {
		return ErrOutOfBounds
	}

	pix := make([]byte, w*h)
	for row := range h {
		src := (y+row)*m.width + x
		copy(pix[row*w:(row+1)*w], m.pix[src:src+w])
	}

	dst.pix = pix
	dst.width = w
	dst.height = h
	return nil
}
