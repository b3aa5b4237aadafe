// Package shape rasterizes simple primitives onto gray images.
//
// All primitives write a single gray value and silently clip points that
// fall outside the image. Coordinates follow the image convention: (0, 0)
// is the top-left pixel, x grows right and y grows down.
package shape

import (
	"image"
	"image/color"
	"math/bits"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gray"
)

// Line draws a one pixel wide line from p0 to p1, both endpoints
// included, with the pixels Bresenham's algorithm would visit.
//
// Only the part of the line inside the image is rasterized: each pixel is
// computed directly from its position along the major axis, so the cost is
// bounded by the image size however far away the endpoints are.
func Line(img *gray.Image, p0, p1 image.Point, v uint8) {
	if img.IsEmpty() {
		return
	}
	dx := dist(p0.X, p1.X)
	dy := dist(p0.Y, p1.Y)

	if dx >= dy {
		span(p0.X, p1.X, p0.Y, p1.Y, img.Width(), func(x, y int) {
			_ = img.SetPixel(x, y, v) // clipped
		})
		return
	}
	span(p0.Y, p1.Y, p0.X, p1.X, img.Height(), func(y, x int) {
		_ = img.SetPixel(x, y, v)
	})
}

// span visits the line from (a0, b0) to (a1, b1) along its major axis a,
// for major coordinates in [0, size).
func span(a0, a1, b0, b1, size int, set func(a, b int)) {
	n := dist(a0, a1)
	m := dist(b0, b1)

	lo, hi := min(a0, a1), max(a0, a1)
	lo, hi = max(lo, 0), min(hi, size-1)
	for a := lo; a <= hi; a++ {
		set(a, toward(b0, b1, minorSteps(dist(a0, a), n, m)))
	}
}

// minorSteps returns how many minor-axis steps Bresenham has taken after k
// of n major-axis steps, for a line with m minor steps in total (m <= n):
// round(k*m/n), with exact halves rounded down.
func minorSteps(k, n, m uint64) uint64 {
	if n == 0 {
		return 0
	}
	hi, lo := bits.Mul64(k, m)
	q, r := bits.Div64(hi, lo, n) // k*m <= n*n, so hi < n
	if r > n-r {
		q++
	}
	return q
}

// dist returns |a - b| without overflow.
func dist(a, b int) uint64 {
	if a > b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

// toward moves d units from a in the direction of b.
func toward(a, b int, d uint64) int {
	if b >= a {
		return int(uint64(a) + d)
	}
	return int(uint64(a) - d)
}

// Rectangle draws the outline of r. The outline passes through r.Min and
// r.Max-(1, 1), so it covers exactly the pixels of r's border.
// Empty rectangles draw nothing.
func Rectangle(img *gray.Image, r image.Rectangle, v uint8) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	RectangleCorners(img, r.Min, r.Max.Sub(image.Pt(1, 1)), v)
}

// RectangleCorners draws the outline of the rectangle with corners tl and
// br, both inclusive.
func RectangleCorners(img *gray.Image, tl, br image.Point, v uint8) {
	tr := image.Pt(br.X, tl.Y)
	bl := image.Pt(tl.X, br.Y)

	Line(img, tl, tr, v)
	Line(img, tr, br, v)
	Line(img, br, bl, v)
	Line(img, bl, tl, v)
}

// FillRectangle sets every pixel of r that lies inside the image to v.
func FillRectangle(img *gray.Image, r image.Rectangle, v uint8) {
	if img.IsEmpty() {
		return
	}
	r = r.Canon().Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	xdraw.Draw(img, r, image.NewUniform(color.Gray{Y: v}), image.Point{}, xdraw.Src)
}

// Circle draws a filled disc: every pixel whose offset (dx, dy) from
// center satisfies dx² + dy² <= radius². A negative radius draws nothing;
// radius 0 draws the center pixel.
func Circle(img *gray.Image, center image.Point, radius int, v uint8) {
	if img.IsEmpty() || radius < 0 {
		return
	}

	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		y := center.Y + dy
		if y < 0 || y >= img.Height() {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				_ = img.SetPixel(center.X+dx, y, v)
			}
		}
	}
}
