package gray

// DefaultMaxPixels is the largest image Decode accepts unless overridden
// with WithMaxPixels. It guards against headers that announce absurd sizes.
const DefaultMaxPixels = 1 << 28

// DecodeOption configures Load and Decode.
//
// Example:
//
//	// Refuse anything bigger than a 4K frame
//	img, err := gray.Load("frame.pgm", gray.WithMaxPixels(3840*2160))
type DecodeOption func(*decodeOptions)

// decodeOptions holds optional configuration for decoding.
type decodeOptions struct {
	maxPixels int
}

// defaultDecodeOptions returns the default decode options.
func defaultDecodeOptions() decodeOptions {
	return decodeOptions{
		maxPixels: DefaultMaxPixels,
	}
}

// WithMaxPixels limits the number of pixels a header may announce.
// The limit is checked before the pixel store is allocated.
// A value <= 0 removes the limit.
func WithMaxPixels(n int) DecodeOption {
	return func(o *decodeOptions) {
		o.maxPixels = n
	}
}
