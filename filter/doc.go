// Package filter provides grayscale image filters built on a single
// contract, [Filter]:
//
//	Process(src, dst *gray.Image) error
//
// The package contains:
//   - Point filters: brightness/contrast and gamma correction
//   - Generic square-kernel convolution with zero padding
//   - Gaussian blur (normalized kernel) and mean blur
//   - Sobel gradient magnitude
//   - Chains of filters applied in sequence
//
// # Destination policy
//
// Every filter requires dst to be allocated with exactly the dimensions of
// src; dst is never resized. Validation runs before any pixel is written,
// so on error dst is untouched. src and dst must not share storage:
// neighborhood filters would read pixels they have already overwritten, so
// aliasing is rejected with [ErrAliased].
//
// # Borders
//
// Convolution-based filters ([Convolution], [GaussianBlur], [Sobel]) treat
// neighbors outside the image as 0. For blur kernels this darkens a band of
// radius r along the edges. [MeanBlur] instead averages only the in-bounds
// neighbors and has no such band.
//
// Filters are single-threaded and keep no state between Process calls.
package filter
