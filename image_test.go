package gray

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		height    int
		wantEmpty bool
	}{
		{"1x1 minimum", 1, 1, false},
		{"square", 16, 16, false},
		{"wide", 100, 3, false},
		{"zero width", 0, 10, true},
		{"zero height", 10, 0, true},
		{"both zero", 0, 0, true},
		{"negative", -4, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.width, tt.height)
			if m.IsEmpty() != tt.wantEmpty {
				t.Fatalf("IsEmpty() = %v, want %v", m.IsEmpty(), tt.wantEmpty)
			}
			if tt.wantEmpty {
				if m.Width() != 0 || m.Height() != 0 || m.Pix() != nil {
					t.Errorf("empty image = %dx%d with %d bytes, want canonical empty",
						m.Width(), m.Height(), len(m.Pix()))
				}
				return
			}
			if m.Width() != tt.width || m.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", m.Width(), m.Height(), tt.width, tt.height)
			}
			if len(m.Pix()) != tt.width*tt.height {
				t.Errorf("len(Pix()) = %d, want %d", len(m.Pix()), tt.width*tt.height)
			}
			for y := range tt.height {
				for x := range tt.width {
					v, err := m.Pixel(x, y)
					if err != nil || v != 0 {
						t.Fatalf("Pixel(%d, %d) = %d, %v; want 0, nil", x, y, v, err)
					}
				}
			}
		})
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var m Image
	if !m.IsEmpty() {
		t.Error("zero Image should be empty")
	}
	if _, err := m.Pixel(0, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Pixel on empty image error = %v, want ErrOutOfBounds", err)
	}
}

func TestZerosOnes(t *testing.T) {
	z := Zeros(3, 2)
	o := Ones(3, 2)

	for i := range z.Pix() {
		if z.Pix()[i] != 0 {
			t.Errorf("Zeros pixel %d = %d, want 0", i, z.Pix()[i])
		}
		if o.Pix()[i] != 255 {
			t.Errorf("Ones pixel %d = %d, want 255", i, o.Pix()[i])
		}
	}

	if !Ones(0, 5).IsEmpty() {
		t.Error("Ones(0, 5) should be empty")
	}
}

func TestPixelBounds(t *testing.T) {
	m := New(4, 3)

	tests := []struct {
		name    string
		x, y    int
		wantErr error
	}{
		{"origin", 0, 0, nil},
		{"last pixel", 3, 2, nil},
		{"x == width", 4, 0, ErrOutOfBounds},
		{"y == height", 0, 3, ErrOutOfBounds},
		{"negative x", -1, 0, ErrOutOfBounds},
		{"negative y", 0, -1, ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := m.SetPixel(tt.x, tt.y, 42); !errors.Is(err, tt.wantErr) {
				t.Errorf("SetPixel() error = %v, want %v", err, tt.wantErr)
			}
			v, err := m.Pixel(tt.x, tt.y)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Pixel() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && v != 42 {
				t.Errorf("Pixel() = %d, want 42", v)
			}
		})
	}
}

func TestPixelRowMajor(t *testing.T) {
	m := New(5, 4)
	if err := m.SetPixelAt(image.Pt(2, 3), 7); err != nil {
		t.Fatal(err)
	}
	if got := m.Pix()[3*5+2]; got != 7 {
		t.Errorf("Pix()[y*width+x] = %d, want 7", got)
	}
	if v, _ := m.PixelAt(image.Pt(2, 3)); v != 7 {
		t.Errorf("PixelAt() = %d, want 7", v)
	}
}

func TestRow(t *testing.T) {
	m := New(3, 2)
	copy(m.Pix(), []byte{1, 2, 3, 4, 5, 6})

	row, err := m.Row(1)
	if err != nil {
		t.Fatal(err)
	}
	if string(row) != "\x04\x05\x06" {
		t.Errorf("Row(1) = %v, want [4 5 6]", row)
	}

	// Row aliases the image.
	row[0] = 9
	if v, _ := m.Pixel(0, 1); v != 9 {
		t.Errorf("write through Row not visible, Pixel(0, 1) = %d", v)
	}

	if _, err := m.Row(2); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Row(2) error = %v, want ErrOutOfBounds", err)
	}
}

func TestCloneIndependence(t *testing.T) {
	b1 := New(4, 4)
	b1.Fill(10)

	b2 := b1.Clone()
	if !b2.Equal(b1) {
		t.Fatal("clone differs from original")
	}
	if b2.Overlaps(b1) {
		t.Fatal("clone shares storage with original")
	}

	_ = b2.SetPixel(1, 1, 200)
	if v, _ := b1.Pixel(1, 1); v != 10 {
		t.Errorf("mutating clone changed original: got %d, want 10", v)
	}
}

func TestCopyFrom(t *testing.T) {
	src := New(2, 2)
	src.Fill(5)

	dst := New(7, 1)
	oldPix := dst.Pix()
	dst.CopyFrom(src)

	if dst.Width() != 2 || dst.Height() != 2 {
		t.Fatalf("CopyFrom size = %dx%d, want 2x2", dst.Width(), dst.Height())
	}
	if !dst.Equal(src) || dst.Overlaps(src) {
		t.Error("CopyFrom must produce an equal, independent copy")
	}
	if len(oldPix) == len(dst.Pix()) {
		t.Error("CopyFrom should replace the store")
	}

	dst.CopyFrom(dst)
	if !dst.Equal(src) {
		t.Error("self copy changed the image")
	}

	dst.CopyFrom(&Image{})
	if !dst.IsEmpty() {
		t.Error("copying an empty image should empty the destination")
	}
}

func TestReset(t *testing.T) {
	m := Ones(3, 3)
	m.Reset()
	if !m.IsEmpty() || m.Width() != 0 || m.Height() != 0 {
		t.Errorf("after Reset: %dx%d empty=%v", m.Width(), m.Height(), m.IsEmpty())
	}
}

func TestOverlaps(t *testing.T) {
	a := New(2, 2)
	b := New(2, 2)
	alias := &Image{pix: a.pix, width: 2, height: 2}

	if a.Overlaps(b) {
		t.Error("distinct images reported as overlapping")
	}
	if !a.Overlaps(a) {
		t.Error("image should overlap itself")
	}
	if !a.Overlaps(alias) {
		t.Error("shared store not detected")
	}
	if a.Overlaps(&Image{}) {
		t.Error("empty image cannot overlap")
	}
}

func TestEqual(t *testing.T) {
	a := Ones(2, 2)
	if !a.Equal(Ones(2, 2)) {
		t.Error("identical images not equal")
	}
	if a.Equal(Ones(4, 1)) {
		t.Error("different shapes reported equal")
	}
	if a.Equal(Zeros(2, 2)) {
		t.Error("different pixels reported equal")
	}
	if !New(0, 0).Equal(&Image{}) {
		t.Error("empty images should be equal")
	}
}

func TestStdImageInterop(t *testing.T) {
	m := New(3, 2)
	var _ image.Image = m

	m.Set(1, 1, color.Gray{Y: 99})
	m.Set(10, 10, color.White) // ignored

	if got := m.At(1, 1).(color.Gray).Y; got != 99 {
		t.Errorf("At(1, 1) = %d, want 99", got)
	}
	if got := m.At(-1, 0).(color.Gray).Y; got != 0 {
		t.Errorf("At outside = %d, want 0", got)
	}
	if m.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", m.Bounds())
	}
	if m.ColorModel() != color.GrayModel {
		t.Error("ColorModel() should be GrayModel")
	}

	std := m.ToStdImage()
	if std.GrayAt(1, 1).Y != 99 {
		t.Errorf("ToStdImage pixel = %d, want 99", std.GrayAt(1, 1).Y)
	}

	back := FromImage(std)
	if !back.Equal(m) {
		t.Error("FromImage(ToStdImage()) is not the identity")
	}
}

func TestFromImageGeneric(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 12, 11))
	src.Set(10, 10, color.White)
	src.Set(11, 10, color.Black)

	m := FromImage(src)
	if m.Width() != 2 || m.Height() != 1 {
		t.Fatalf("FromImage size = %dx%d, want 2x1", m.Width(), m.Height())
	}
	if v, _ := m.Pixel(0, 0); v != 255 {
		t.Errorf("white pixel = %d, want 255", v)
	}
	if v, _ := m.Pixel(1, 0); v != 0 {
		t.Errorf("black pixel = %d, want 0", v)
	}
}

func TestString(t *testing.T) {
	m := New(2, 2)
	copy(m.Pix(), []byte{0, 255, 16, 1})

	want := "0 255 \n16 1 \n"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
