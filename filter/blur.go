package filter

import (
	"fmt"

	"github.com/gogpu/gray"
	"github.com/gogpu/gray/internal/pixel"
)

// GaussianBlur convolves the image with a normalized Gaussian kernel.
// Borders are zero padded like Convolution, so pixels within the kernel
// radius of an edge come out slightly darker.
type GaussianBlur struct {
	conv  *Convolution
	sigma float64
}

// NewGaussianBlur creates a Gaussian blur with a size x size kernel.
// size must be odd and positive, sigma positive.
func NewGaussianBlur(size int, sigma float64) (*GaussianBlur, error) {
	k, err := GaussianKernel(size, sigma)
	if err != nil {
		return nil, err
	}
	return &GaussianBlur{conv: &Convolution{kernel: k}, sigma: sigma}, nil
}

// Kernel returns the normalized Gaussian kernel.
func (f *GaussianBlur) Kernel() *Kernel {
	return f.conv.kernel
}

// Process implements Filter.
func (f *GaussianBlur) Process(src, dst *gray.Image) error {
	if err := prepare(f, src, dst); err != nil {
		return err
	}
	correlate(src, dst, f.conv.kernel, pixel.Clamp)
	return nil
}

func (f *GaussianBlur) String() string {
	return fmt.Sprintf("gaussian-blur(size=%d, sigma=%g)", f.conv.kernel.size, f.sigma)
}

// MeanBlur replaces every pixel by the average of its size x size
// neighborhood.
//
// Only neighbors inside the image are averaged, so the denominator shrinks
// at borders and edge pixels keep their brightness. A uniform image is left
// unchanged everywhere, unlike a BoxKernel convolution.
type MeanBlur struct {
	size int
}

// NewMeanBlur creates a mean blur. size must be odd and positive.
func NewMeanBlur(size int) (*MeanBlur, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return &MeanBlur{size: size}, nil
}

// Process implements Filter.
func (f *MeanBlur) Process(src, dst *gray.Image) error {
	if err := prepare(f, src, dst); err != nil {
		return err
	}

	w, h := src.Width(), src.Height()
	sp, dp := src.Pix(), dst.Pix()
	r := f.size / 2

	for y := range h {
		y0, y1 := max(y-r, 0), min(y+r, h-1)
		for x := range w {
			x0, x1 := max(x-r, 0), min(x+r, w-1)

			sum := 0
			for sy := y0; sy <= y1; sy++ {
				for _, v := range sp[sy*w+x0 : sy*w+x1+1] {
					sum += int(v)
				}
			}
			count := (y1 - y0 + 1) * (x1 - x0 + 1)
			dp[y*w+x] = pixel.Clamp(float64(sum) / float64(count))
		}
	}
	return nil
}

func (f *MeanBlur) String() string {
	return fmt.Sprintf("mean-blur(%d)", f.size)
}
