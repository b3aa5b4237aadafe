// Package pixel holds the numeric helpers shared by the image buffer and the
// filters: clamping intermediate values into the 8-bit sample range.
package pixel

import "math"

// Clamp clamps v to [0, 255] and rounds it to the nearest uint8.
// NaN maps to 0.
func Clamp(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// ClampInt clamps an integer to [0, 255].
func ClampInt(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
