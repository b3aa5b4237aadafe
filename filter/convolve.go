package filter

import (
	"fmt"

	"github.com/gogpu/gray"
	"github.com/gogpu/gray/internal/pixel"
)

// Convolution applies an arbitrary odd-sized square kernel to every pixel.
//
// The kernel is not flipped (cross-correlation): for output (x, y),
//
//	sum = Σ kernel[ky+r][kx+r] * src[x+kx, y+ky]   for kx, ky in [-r, r]
//
// Neighbors outside the image contribute 0. The sum is clamped to [0, 255].
type Convolution struct {
	kernel *Kernel
}

// NewConvolution creates a convolution filter for k.
// Returns ErrInvalidKernel if k is nil or was not built by this package.
func NewConvolution(k *Kernel) (*Convolution, error) {
	if k == nil || k.size == 0 {
		return nil, ErrInvalidKernel
	}
	return &Convolution{kernel: k}, nil
}

// NewConvolutionMatrix creates a convolution filter from a square matrix.
// The matrix is validated as by NewKernel.
func NewConvolutionMatrix(rows [][]float64) (*Convolution, error) {
	k, err := NewKernel(rows)
	if err != nil {
		return nil, err
	}
	return &Convolution{kernel: k}, nil
}

// Kernel returns the convolution kernel.
func (c *Convolution) Kernel() *Kernel {
	return c.kernel
}

// Process implements Filter.
func (c *Convolution) Process(src, dst *gray.Image) error {
	if err := prepare(c, src, dst); err != nil {
		return err
	}
	correlate(src, dst, c.kernel, pixel.Clamp)
	return nil
}

func (c *Convolution) String() string {
	return fmt.Sprintf("convolution(%v)", c.kernel)
}

// correlate computes the zero-padded cross-correlation of src with k and
// stores narrow(sum) for every pixel of dst. src and dst must have the same
// size and must not alias.
func correlate(src, dst *gray.Image, k *Kernel, narrow func(float64) uint8) {
	w, h := src.Width(), src.Height()
	sp, dp := src.Pix(), dst.Pix()
	r := k.Radius()

	for y := range h {
		for x := range w {
			sum := 0.0
			for ky := -r; ky <= r; ky++ {
				sy := y + ky
				if sy < 0 || sy >= h {
					continue
				}
				row := sp[sy*w : (sy+1)*w]
				krow := k.weights[(ky+r)*k.size : (ky+r+1)*k.size]
				for kx := -r; kx <= r; kx++ {
					sx := x + kx
					if sx < 0 || sx >= w {
						continue
					}
					sum += float64(row[sx]) * krow[kx+r]
				}
			}
			dp[y*w+x] = narrow(sum)
		}
	}
}
