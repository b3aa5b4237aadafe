package filter

import "github.com/gogpu/gray"

// Test helper functions shared across filter tests.

// uniformImage creates a w x h image with every pixel set to v.
func uniformImage(w, h int, v uint8) *gray.Image {
	m := gray.New(w, h)
	m.Fill(v)
	return m
}

// rampImage creates a w x h image where pixel i holds byte(i*step).
func rampImage(w, h, step int) *gray.Image {
	m := gray.New(w, h)
	for i := range m.Pix() {
		m.Pix()[i] = byte(i * step)
	}
	return m
}

// stepImage creates a w x h image whose columns x < edge are lo and the
// rest hi.
func stepImage(w, h, edge int, lo, hi uint8) *gray.Image {
	m := gray.New(w, h)
	for y := range h {
		for x := range w {
			v := lo
			if x >= edge {
				v = hi
			}
			_ = m.SetPixel(x, y, v)
		}
	}
	return m
}

// pixelAt reads a pixel, ignoring bounds errors.
func pixelAt(m *gray.Image, x, y int) uint8 {
	v, _ := m.Pixel(x, y)
	return v
}

// allFilters returns one instance of every filter in the package.
func allFilters() map[string]Filter {
	gauss, _ := NewGaussianBlur(5, 1.2)
	mean, _ := NewMeanBlur(3)
	box, _ := BoxKernel(3)
	conv, _ := NewConvolution(box)

	return map[string]Filter{
		"brightness-contrast": NewBrightnessContrast(1.5, 30),
		"gamma":               NewGammaCorrection(0.5),
		"convolution":         conv,
		"gaussian":            gauss,
		"mean":                mean,
		"sobel":               NewSobel(),
		"chain":               NewChain(NewGammaCorrection(2), NewSobel()),
		"empty chain":         NewChain(),
	}
}
