package gray

import (
	"errors"

	"github.com/gogpu/gray/internal/pgm"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when a width or height is non-positive
	// where a non-empty image or region is required.
	ErrInvalidDimensions = errors.New("gray: invalid dimensions")

	// ErrOutOfBounds is returned when pixel coordinates or a region fall
	// outside the image.
	ErrOutOfBounds = errors.New("gray: coordinates out of bounds")

	// ErrDimensionMismatch is returned by image-to-image arithmetic when the
	// operands differ in size.
	ErrDimensionMismatch = errors.New("gray: image dimensions must match")

	// ErrEmpty is returned when an operation needs pixel data but the image
	// is empty.
	ErrEmpty = errors.New("gray: empty image")
)

// Decoding errors. They are the codec's sentinels, so errors.Is works with
// either name.
var (
	// ErrBadMagic is returned when the file does not start with "P5".
	ErrBadMagic = pgm.ErrBadMagic

	// ErrBadHeader is returned when the dimension line is malformed.
	ErrBadHeader = pgm.ErrBadHeader

	// ErrBadMaxValue is returned when the max value is not 255.
	ErrBadMaxValue = pgm.ErrBadMaxValue

	// ErrTruncated is returned when the stream ends early.
	ErrTruncated = pgm.ErrTruncated

	// ErrTooLarge is returned when the header exceeds WithMaxPixels.
	ErrTooLarge = pgm.ErrTooLarge
)
