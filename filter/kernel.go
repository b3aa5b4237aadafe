package filter

import (
	"fmt"
	"math"
)

// Kernel is an immutable square matrix of weights with an odd size.
// Weights are stored flattened in row-major order; the weight at
// (row, col) lives at row*size + col.
type Kernel struct {
	size    int
	weights []float64
}

// NewKernel creates a kernel from a square matrix with an odd number of
// rows. The rows are copied. Returns ErrInvalidKernel for an empty,
// ragged, non-square or even-sized matrix.
func NewKernel(rows [][]float64) (*Kernel, error) {
	n := len(rows)
	if n == 0 || n%2 == 0 {
		return nil, fmt.Errorf("%w: got %d rows", ErrInvalidKernel, n)
	}

	weights := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidKernel, i, len(row), n)
		}
		weights = append(weights, row...)
	}

	return &Kernel{size: n, weights: weights}, nil
}

// MustKernel is like NewKernel but panics on an invalid matrix.
// It is intended for fixed kernels written in source code.
func MustKernel(rows [][]float64) *Kernel {
	k, err := NewKernel(rows)
	if err != nil {
		panic(err)
	}
	return k
}

// BoxKernel creates a size x size kernel whose weights all equal
// 1/(size*size).
func BoxKernel(size int) (*Kernel, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	weights := make([]float64, size*size)
	val := 1.0 / float64(size*size)
	for i := range weights {
		weights[i] = val
	}

	return &Kernel{size: size, weights: weights}, nil
}

// GaussianKernel creates a size x size Gaussian kernel.
// Raw weights are exp(-(dx²+dy²)/(2σ²)) for offsets dx, dy in [-r, r],
// r = size/2. The kernel is normalized so all weights sum to 1.0 and
// convolution preserves overall brightness.
func GaussianKernel(size int, sigma float64) (*Kernel, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if math.IsNaN(sigma) || sigma <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidSigma, sigma)
	}

	r := size / 2
	twoSigmaSq := 2 * sigma * sigma
	weights := make([]float64, size*size)
	sum := 0.0

	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			v := math.Exp(-float64(dx*dx+dy*dy) / twoSigmaSq)
			weights[(dy+r)*size+dx+r] = v
			sum += v
		}
	}

	// The center weight is exp(0) = 1, so sum >= 1.
	for i := range weights {
		weights[i] /= sum
	}

	return &Kernel{size: size, weights: weights}, nil
}

// checkSize validates a kernel edge length.
func checkSize(size int) error {
	if size < 1 || size%2 == 0 {
		return fmt.Errorf("%w: size %d", ErrInvalidKernel, size)
	}
	return nil
}

// Size returns the number of rows (and columns).
func (k *Kernel) Size() int {
	return k.size
}

// Radius returns size/2, the distance from the center to an edge.
func (k *Kernel) Radius() int {
	return k.size / 2
}

// At returns the weight at (row, col).
func (k *Kernel) At(row, col int) float64 {
	return k.weights[row*k.size+col]
}

// Weights returns a copy of the flattened row-major weights.
func (k *Kernel) Weights() []float64 {
	w := make([]float64, len(k.weights))
	copy(w, k.weights)
	return w
}

// Sum returns the sum of all weights.
func (k *Kernel) Sum() float64 {
	sum := 0.0
	for _, w := range k.weights {
		sum += w
	}
	return sum
}

func (k *Kernel) String() string {
	return fmt.Sprintf("%dx%d", k.size, k.size)
}
