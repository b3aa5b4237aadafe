package gray

import "github.com/gogpu/gray/internal/pixel"

// Add returns the pixel-wise sum of m and o, saturating at 255.
// Returns ErrDimensionMismatch if the images differ in size.
func (m *Image) Add(o *Image) (*Image, error) {
	return m.combine(o, func(a, b int) int { return a + b })
}

// Sub returns the pixel-wise difference m - o, saturating at 0.
// Returns ErrDimensionMismatch if the images differ in size.
func (m *Image) Sub(o *Image) (*Image, error) {
	return m.combine(o, func(a, b int) int { return a - b })
}

// Mul returns the pixel-wise product of m and o scaled back into range:
// out = a*b/255. Multiplying by a white image is the identity and by a
// black image yields black, so o acts as a mask.
// Returns ErrDimensionMismatch if the images differ in size.
func (m *Image) Mul(o *Image) (*Image, error) {
	return m.combine(o, func(a, b int) int { return a * b / 255 })
}

// AddScalar returns m with v added to every pixel, saturating at 255.
func (m *Image) AddScalar(v uint8) *Image {
	return m.mapInt(func(a int) int { return a + int(v) })
}

// SubScalar returns m with v subtracted from every pixel, saturating at 0.
func (m *Image) SubScalar(v uint8) *Image {
	return m.mapInt(func(a int) int { return a - int(v) })
}

// Scale returns m with every pixel multiplied by f, clamped to [0, 255].
func (m *Image) Scale(f float64) *Image {
	out := New(m.width, m.height)
	for i, p := range m.pix {
		out.pix[i] = pixel.Clamp(float64(p) * f)
	}
	return out
}

func (m *Image) combine(o *Image, op func(a, b int) int) (*Image, error) {
	if o == nil || m.width != o.width || m.height != o.height {
		return nil, ErrDimensionMismatch
	}
	out := New(m.width, m.height)
	for i := range m.pix {
		out.pix[i] = pixel.ClampInt(op(int(m.pix[i]), int(o.pix[i])))
	}
	return out, nil
}

func (m *Image) mapInt(op func(a int) int) *Image {
	out := New(m.width, m.height)
	for i, p := range m.pix {
		out.pix[i] = pixel.ClampInt(op(int(p)))
	}
	return out
}
