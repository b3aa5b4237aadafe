package gray

import (
	"errors"
	"image"
	"math"
	"testing"
)

// gradient returns a w x h image where pixel (x, y) = y*w + x.
func gradient(w, h int) *Image {
	m := New(w, h)
	for i := range m.Pix() {
		m.Pix()[i] = byte(i)
	}
	return m
}

func TestRegion(t *testing.T) {
	m := gradient(4, 4)

	r, err := m.Region(1, 2, 2, 2)
	if err != nil {
		t.Fatalf("Region() error = %v", err)
	}
	if r.Width() != 2 || r.Height() != 2 {
		t.Fatalf("Region size = %dx%d, want 2x2", r.Width(), r.Height())
	}

	want := []byte{9, 10, 13, 14}
	if string(r.Pix()) != string(want) {
		t.Errorf("Region pixels = %v, want %v", r.Pix(), want)
	}

	// The region is a copy, not a view.
	_ = r.SetPixel(0, 0, 0)
	if v, _ := m.Pixel(1, 2); v != 9 {
		t.Errorf("writing region changed source: %d", v)
	}
}

func TestRegionFullImage(t *testing.T) {
	m := gradient(3, 5)
	r, err := m.RegionRect(m.Bounds())
	if err != nil {
		t.Fatal(err)
	}
	if !r.Equal(m) || r.Overlaps(m) {
		t.Error("full-image region must be an equal, independent copy")
	}
}

func TestReadRegionFailureLeavesOutput(t *testing.T) {
	m := gradient(4, 4)

	tests := []struct {
		name       string
		x, y, w, h int
		wantErr    error
	}{
		{"exceeds width", 3, 0, 2, 1, ErrOutOfBounds},
		{"exceeds height", 0, 3, 1, 2, ErrOutOfBounds},
		{"negative origin", -1, 0, 2, 2, ErrOutOfBounds},
		{"larger than image", 0, 0, 5, 5, ErrOutOfBounds},
		{"width overflows", 1, 0, math.MaxInt, 1, ErrOutOfBounds},
		{"height overflows", 0, 1, 1, math.MaxInt, ErrOutOfBounds},
		{"origin past end", math.MaxInt, 0, 1, 1, ErrOutOfBounds},
		{"zero width", 0, 0, 0, 2, ErrInvalidDimensions},
		{"negative height", 0, 0, 2, -1, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Ones(2, 3)
			before := out.Clone()

			err := m.ReadRegion(out, tt.x, tt.y, tt.w, tt.h)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReadRegion() error = %v, want %v", err, tt.wantErr)
			}
			if !out.Equal(before) {
				t.Error("failed ReadRegion modified the output image")
			}

			if r, err := m.Region(tt.x, tt.y, tt.w, tt.h); err == nil || r != nil {
				t.Errorf("Region() = %v, %v; want nil and error", r, err)
			}
		})
	}
}

func TestRegionRect(t *testing.T) {
	m := gradient(4, 4)
	r, err := m.RegionRect(image.Rect(2, 2, 4, 4))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := r.Pixel(1, 1); v != 15 {
		t.Errorf("RegionRect bottom-right = %d, want 15", v)
	}
}

func TestReadRegionNilDestination(t *testing.T) {
	m := gradient(4, 4)
	if err := m.ReadRegion(nil, 0, 0, 2, 2); !errors.Is(err, ErrEmpty) {
		t.Errorf("ReadRegion(nil) error = %v, want ErrEmpty", err)
	}
}
