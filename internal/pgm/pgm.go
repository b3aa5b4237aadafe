// Package pgm reads and writes the fixed binary grayscale raster layout:
//
//	"P5\n" <width> " " <height> "\n255\n" <width*height raw bytes>
//
// Only this exact layout is accepted: no comment lines, no max values other
// than 255, no 16-bit samples and no multi-image streams.
package pgm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Magic is the first header line of a binary grayscale raster.
const Magic = "P5"

// MaxValue is the only supported sample maximum.
const MaxValue = 255

// maxHeaderLine bounds the length of a single header line.
const maxHeaderLine = 64

// Decoding and encoding errors.
var (
	// ErrBadMagic is returned when the first line is not "P5".
	ErrBadMagic = errors.New("pgm: bad magic number")

	// ErrBadHeader is returned when the dimension line is not exactly two
	// unsigned decimal numbers.
	ErrBadHeader = errors.New("pgm: malformed header")

	// ErrBadMaxValue is returned when the max-value line is not "255".
	ErrBadMaxValue = errors.New("pgm: unsupported max value")

	// ErrInvalidDimensions is returned for a zero width or height.
	ErrInvalidDimensions = errors.New("pgm: invalid dimensions")

	// ErrTruncated is returned when the stream ends before the header or
	// the pixel data is complete.
	ErrTruncated = errors.New("pgm: truncated data")

	// ErrTooLarge is returned when the header announces more pixels than
	// the caller allows.
	ErrTooLarge = errors.New("pgm: image too large")

	// ErrDataSize is returned by Encode when len(pix) != width*height.
	ErrDataSize = errors.New("pgm: pixel data does not match dimensions")
)

// Header describes the raster that follows it.
type Header struct {
	Width  int
	Height int
}

// Pixels returns Width*Height.
func (h Header) Pixels() int {
	return h.Width * h.Height
}

// ReadHeader parses the three header lines from br.
// maxPixels <= 0 disables the size limit.
func ReadHeader(br *bufio.Reader, maxPixels int) (Header, error) {
	magic, err := readLine(br)
	if err != nil {
		return Header{}, err
	}
	if magic != Magic {
		return Header{}, fmt.Errorf("%w: %q", ErrBadMagic, magic)
	}

	dims, err := readLine(br)
	if err != nil {
		return Header{}, err
	}
	h, err := parseDimensions(dims)
	if err != nil {
		return Header{}, err
	}
	if maxPixels > 0 && h.Pixels() > maxPixels {
		return Header{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, h.Width, h.Height, maxPixels)
	}

	maxVal, err := readLine(br)
	if err != nil {
		return Header{}, err
	}
	if maxVal != strconv.Itoa(MaxValue) {
		return Header{}, fmt.Errorf("%w: %q", ErrBadMaxValue, maxVal)
	}

	return h, nil
}

// Decode reads a header and exactly Width*Height bytes of pixel data.
// Bytes after the pixel data are left unread in r's buffer and ignored.
func Decode(r io.Reader, maxPixels int) (Header, []byte, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	h, err := ReadHeader(br, maxPixels)
	if err != nil {
		return Header{}, nil, err
	}

	pix := make([]byte, h.Pixels())
	if _, err := io.ReadFull(br, pix); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, nil, fmt.Errorf("%w: want %d pixel bytes", ErrTruncated, len(pix))
		}
		return Header{}, nil, err
	}

	return h, pix, nil
}

// Encode writes the header for a width x height raster followed by pix.
func Encode(w io.Writer, width, height int, pix []byte) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if len(pix) != width*height {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrDataSize, len(pix), width, height)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", Magic, width, height, MaxValue); err != nil {
		return err
	}
	if _, err := bw.Write(pix); err != nil {
		return err
	}
	return bw.Flush()
}

// readLine returns the next header line without its trailing newline.
// At most maxHeaderLine bytes, newline included, are consumed.
func readLine(br *bufio.Reader) (string, error) {
	line := make([]byte, 0, maxHeaderLine)
	for {
		c, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: incomplete header", ErrTruncated)
			}
			return "", err
		}
		if c == '\n' {
			return string(line), nil
		}
		if len(line) == maxHeaderLine-1 {
			return "", fmt.Errorf("%w: header line too long", ErrBadHeader)
		}
		line = append(line, c)
	}
}

func parseDimensions(line string) (Header, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Header{}, fmt.Errorf("%w: dimension line %q", ErrBadHeader, line)
	}

	var dims [2]int
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 31)
		if err != nil {
			return Header{}, fmt.Errorf("%w: dimension %q", ErrBadHeader, f)
		}
		dims[i] = int(v)
	}

	if dims[0] == 0 || dims[1] == 0 {
		return Header{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, dims[0], dims[1])
	}

	return Header{Width: dims[0], Height: dims[1]}, nil
}
