package gray

import (
	"bytes"
	"image"
	"image/color"
	"strconv"
)

// Image is an 8-bit grayscale pixel buffer.
//
// Pixels are stored in a single contiguous slice in row-major order with the
// origin at the top-left corner; pixel (x, y) lives at offset y*width + x.
// An Image is either empty (zero width and height, no store) or fully
// allocated. The zero value is an empty image ready to use.
//
// Image implements image.Image and draw.Image so it can be handed to the
// standard library and golang.org/x/image/draw.
type Image struct {
	pix    []byte
	width  int
	height int
}

// New creates a width x height image with every pixel set to 0.
// A non-positive width or height yields an empty image.
func New(width, height int) *Image {
	if width <= 0 || height <= 0 {
		return &Image{}
	}
	return &Image{
		pix:    make([]byte, width*height),
		width:  width,
		height: height,
	}
}

// Zeros creates a black image (all pixels 0).
func Zeros(width, height int) *Image {
	return New(width, height)
}

// Ones creates a white image (all pixels 255).
func Ones(width, height int) *Image {
	m := New(width, height)
	m.Fill(255)
	return m
}

// FromImage converts any image.Image to a grayscale Image using the
// standard library's luminance model. The result is rebased to (0, 0).
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	m := New(b.Dx(), b.Dy())
	if m.IsEmpty() {
		return m
	}

	// Fast path for grayscale sources.
	if g, ok := src.(*image.Gray); ok {
		for y := range m.height {
			off := g.PixOffset(b.Min.X, b.Min.Y+y)
			copy(m.pix[y*m.width:(y+1)*m.width], g.Pix[off:off+m.width])
		}
		return m
	}

	for y := range m.height {
		for x := range m.width {
			c := color.GrayModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			m.pix[y*m.width+x] = c.Y
		}
	}
	return m
}

// Clone creates a deep copy of the image.
func (m *Image) Clone() *Image {
	if m.IsEmpty() {
		return &Image{}
	}
	pix := make([]byte, len(m.pix))
	copy(pix, m.pix)
	return &Image{
		pix:    pix,
		width:  m.width,
		height: m.height,
	}
}

// CopyFrom replaces the contents of m with a deep copy of src.
// The previous store is dropped and a new one allocated, so m never shares
// storage with src. Copying an image onto itself is a no-op.
func (m *Image) CopyFrom(src *Image) {
	if m == src {
		return
	}
	if src == nil || src.IsEmpty() {
		m.Reset()
		return
	}
	pix := make([]byte, len(src.pix))
	copy(pix, src.pix)
	m.pix = pix
	m.width = src.width
	m.height = src.height
}

// Reset releases the pixel store and returns m to the empty state.
func (m *Image) Reset() {
	m.pix = nil
	m.width = 0
	m.height = 0
}

// Width returns the image width in pixels.
func (m *Image) Width() int {
	return m.width
}

// Height returns the image height in pixels.
func (m *Image) Height() int {
	return m.height
}

// Size returns the image dimensions as an image.Point.
func (m *Image) Size() image.Point {
	return image.Pt(m.width, m.height)
}

// Pix returns the underlying pixel store.
// Writes through the returned slice modify the image.
func (m *Image) Pix() []byte {
	return m.pix
}

// IsEmpty reports whether the image has no pixel store.
func (m *Image) IsEmpty() bool {
	return m == nil || m.pix == nil || m.width == 0 || m.height == 0
}

// SameSize reports whether m and o have identical dimensions.
func (m *Image) SameSize(o *Image) bool {
	return m.width == o.width && m.height == o.height
}

// Overlaps reports whether m and o share any pixel storage.
func (m *Image) Overlaps(o *Image) bool {
	if m.IsEmpty() || o.IsEmpty() {
		return false
	}
	if m == o {
		return true
	}
	return &m.pix[0] == &o.pix[0]
}

// Equal reports whether m and o have the same dimensions and pixels.
func (m *Image) Equal(o *Image) bool {
	if m.IsEmpty() || o.IsEmpty() {
		return m.IsEmpty() && o.IsEmpty()
	}
	return m.SameSize(o) && bytes.Equal(m.pix, o.pix)
}

// contains reports whether (x, y) lies inside the image.
func (m *Image) contains(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Pixel returns the value at (x, y).
// Returns ErrOutOfBounds if the coordinates are outside the image.
func (m *Image) Pixel(x, y int) (uint8, error) {
	if !m.contains(x, y) {
		return 0, ErrOutOfBounds
	}
	return m.pix[y*m.width+x], nil
}

// PixelAt returns the value at p.
func (m *Image) PixelAt(p image.Point) (uint8, error) {
	return m.Pixel(p.X, p.Y)
}

// SetPixel sets the value at (x, y).
// Returns ErrOutOfBounds if the coordinates are outside the image.
func (m *Image) SetPixel(x, y int, v uint8) error {
	if !m.contains(x, y) {
		return ErrOutOfBounds
	}
	m.pix[y*m.width+x] = v
	return nil
}

// SetPixelAt sets the value at p.
func (m *Image) SetPixelAt(p image.Point, v uint8) error {
	return m.SetPixel(p.X, p.Y, v)
}

// Row returns row y of the pixel store.
// The slice aliases the image. Returns ErrOutOfBounds for an invalid row.
func (m *Image) Row(y int) ([]byte, error) {
	if y < 0 || y >= m.height {
		return nil, ErrOutOfBounds
	}
	return m.pix[y*m.width : (y+1)*m.width], nil
}

// Fill sets every pixel to v.
func (m *Image) Fill(v uint8) {
	for i := range m.pix {
		m.pix[i] = v
	}
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At implements image.Image. Points outside the image read as black.
func (m *Image) At(x, y int) color.Color {
	if !m.contains(x, y) {
		return color.Gray{}
	}
	return color.Gray{Y: m.pix[y*m.width+x]}
}

// Set implements draw.Image. Points outside the image are ignored.
func (m *Image) Set(x, y int, c color.Color) {
	if !m.contains(x, y) {
		return
	}
	m.pix[y*m.width+x] = color.GrayModel.Convert(c).(color.Gray).Y
}

// ToStdImage copies the image into a standard library *image.Gray.
func (m *Image) ToStdImage() *image.Gray {
	g := image.NewGray(m.Bounds())
	copy(g.Pix, m.pix)
	return g
}

// String formats the image as rows of space-separated decimal values.
// Intended for debugging small images.
func (m *Image) String() string {
	var b []byte
	for y := range m.height {
		for x := range m.width {
			b = strconv.AppendUint(b, uint64(m.pix[y*m.width+x]), 10)
			b = append(b, ' ')
		}
		b = append(b, '\n')
	}
	return string(b)
}
