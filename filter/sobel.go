package filter

import (
	"math"

	"github.com/gogpu/gray"
	"github.com/gogpu/gray/internal/pixel"
)

// Sobel computes the gradient magnitude of an image.
//
// The image is correlated with the horizontal and vertical Sobel kernels
// (zero padded) into two edge maps holding |sum| clamped to [0, 255]; the
// output is clamp(sqrt(gx² + gy²)). Clamping the edge maps first does not
// change the output: the magnitude is at least max(gx, gy), so any map
// value that was clamped already saturates the result.
type Sobel struct {
	horizontal *Kernel
	vertical   *Kernel
}

// NewSobel creates a Sobel gradient filter.
func NewSobel() *Sobel {
	return &Sobel{
		horizontal: MustKernel([][]float64{
			{-1, 0, 1},
			{-2, 0, 2},
			{-1, 0, 1},
		}),
		vertical: MustKernel([][]float64{
			{-1, -2, -1},
			{0, 0, 0},
			{1, 2, 1},
		}),
	}
}

// Process implements Filter.
func (s *Sobel) Process(src, dst *gray.Image) error {
	if err := prepare(s, src, dst); err != nil {
		return err
	}

	gx := scratch.get(src.Width(), src.Height())
	gy := scratch.get(src.Width(), src.Height())
	defer scratch.put(gx)
	defer scratch.put(gy)

	s.edges(src, gx, gy)
	magnitude(gx, gy, dst)
	return nil
}

// Gradients returns the horizontal and vertical edge maps of src as new
// images.
func (s *Sobel) Gradients(src *gray.Image) (gx, gy *gray.Image, err error) {
	if src.IsEmpty() {
		return nil, nil, ErrEmptySource
	}
	gx = gray.New(src.Width(), src.Height())
	gy = gray.New(src.Width(), src.Height())
	s.edges(src, gx, gy)
	return gx, gy, nil
}

func (s *Sobel) edges(src, gx, gy *gray.Image) {
	correlate(src, gx, s.horizontal, absClamp)
	correlate(src, gy, s.vertical, absClamp)
}

func (s *Sobel) String() string {
	return "sobel"
}

// magnitude writes clamp(sqrt(gx² + gy²)) into dst.
func magnitude(gx, gy, dst *gray.Image) {
	xp, yp, dp := gx.Pix(), gy.Pix(), dst.Pix()
	for i := range dp {
		h := float64(xp[i])
		v := float64(yp[i])
		dp[i] = pixel.Clamp(math.Sqrt(h*h + v*v))
	}
}

func absClamp(v float64) uint8 {
	return pixel.Clamp(math.Abs(v))
}
