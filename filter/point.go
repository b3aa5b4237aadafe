package filter

import (
	"fmt"
	"math"

	"github.com/gogpu/gray"
	"github.com/gogpu/gray/internal/pixel"
)

// BrightnessContrast applies out = factor*in + bias to every pixel,
// clamped to [0, 255].
//
// factor scales contrast and bias shifts brightness. Neither is validated:
// a factor of 0 flattens the image to bias, a negative factor inverts it.
type BrightnessContrast struct {
	factor float64
	bias   float64
}

// NewBrightnessContrast creates a brightness/contrast filter.
func NewBrightnessContrast(factor, bias float64) *BrightnessContrast {
	return &BrightnessContrast{factor: factor, bias: bias}
}

// Process implements Filter.
func (f *BrightnessContrast) Process(src, dst *gray.Image) error {
	if err := prepare(f, src, dst); err != nil {
		return err
	}

	// 256-entry lookup table: the mapping depends only on the input value.
	var lut [256]uint8
	for v := range lut {
		lut[v] = pixel.Clamp(f.factor*float64(v) + f.bias)
	}
	applyLUT(&lut, src, dst)
	return nil
}

func (f *BrightnessContrast) String() string {
	return fmt.Sprintf("brightness-contrast(factor=%g, bias=%g)", f.factor, f.bias)
}

// GammaCorrection applies out = 255 * (in/255)^gamma to every pixel.
//
// gamma < 1 brightens mid-tones, gamma > 1 darkens them. Any gamma is
// accepted; results are clamped to [0, 255] and NaN maps to 0.
type GammaCorrection struct {
	gamma float64
}

// NewGammaCorrection creates a gamma correction filter.
func NewGammaCorrection(gamma float64) *GammaCorrection {
	return &GammaCorrection{gamma: gamma}
}

// Process implements Filter.
func (f *GammaCorrection) Process(src, dst *gray.Image) error {
	if err := prepare(f, src, dst); err != nil {
		return err
	}

	var lut [256]uint8
	for v := range lut {
		lut[v] = pixel.Clamp(255 * math.Pow(float64(v)/255, f.gamma))
	}
	applyLUT(&lut, src, dst)
	return nil
}

func (f *GammaCorrection) String() string {
	return fmt.Sprintf("gamma(%g)", f.gamma)
}

// applyLUT maps every source pixel through lut into dst.
func applyLUT(lut *[256]uint8, src, dst *gray.Image) {
	dp := dst.Pix()
	for i, v := range src.Pix() {
		dp[i] = lut[v]
	}
}
