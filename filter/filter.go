package filter

import (
	"errors"
	"fmt"

	"github.com/gogpu/gray"
)

// Filter errors.
var (
	// ErrEmptySource is returned when Process is given a nil or empty source.
	ErrEmptySource = errors.New("filter: empty source image")

	// ErrSizeMismatch is returned when the destination is nil or its
	// dimensions differ from the source.
	ErrSizeMismatch = errors.New("filter: destination size does not match source")

	// ErrAliased is returned when source and destination share storage.
	ErrAliased = errors.New("filter: source and destination share storage")

	// ErrInvalidKernel is returned when a kernel is empty, not square or has
	// an even size.
	ErrInvalidKernel = errors.New("filter: kernel must be a square matrix with odd dimensions")

	// ErrInvalidSigma is returned for a non-positive or NaN Gaussian sigma.
	ErrInvalidSigma = errors.New("filter: sigma must be positive")
)

// Filter transforms a source image into a destination image.
//
// Implementations read only from src and write only to dst. dst must have
// the same dimensions as src and must not share its storage.
type Filter interface {
	// Process writes the filtered src into dst.
	Process(src, dst *gray.Image) error
}

// prepare enforces the destination policy shared by every filter and logs
// the call. It never writes to dst.
func prepare(f fmt.Stringer, src, dst *gray.Image) error {
	if src.IsEmpty() {
		return ErrEmptySource
	}
	if dst == nil {
		return fmt.Errorf("%w: nil destination", ErrSizeMismatch)
	}
	if !src.SameSize(dst) {
		return fmt.Errorf("%w: source %dx%d, destination %dx%d",
			ErrSizeMismatch, src.Width(), src.Height(), dst.Width(), dst.Height())
	}
	if src.Overlaps(dst) {
		return ErrAliased
	}

	gray.Logger().Debug("filter: process",
		"filter", f.String(),
		"width", src.Width(),
		"height", src.Height())
	return nil
}
