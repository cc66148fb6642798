package pix

import (
	"testing"

	"github.com/gogpu/pix/blend"
)

func TestCompositePixelAlpha(t *testing.T) {
	s := newTestSurface(t, 4, 4, RGB(0, 255, 0))
	s.CompositePixel(1, 1, RGBA(255, 0, 0, 128), blend.Alpha)
	if got := s.PixelAt(1, 1); got != (Color{R: 128, G: 127, B: 0, A: 255}) {
		t.Errorf("composited pixel = %v, want {128 127 0 255}", got)
	}
	// Out of bounds is silent.
	s.CompositePixel(-1, 0, White, blend.Alpha)
	s.CompositePixel(4, 4, White, blend.Alpha)
}

func TestCompositeRectAdd(t *testing.T) {
	s := newTestSurface(t, 8, 8, RGB(100, 100, 100))
	if err := s.CompositeRect(Rc(2, 2, 4, 4), RGB(200, 10, 20), blend.Add); err != nil {
		t.Fatal(err)
	}
	// Inside the rect channels add with clamping.
	if got := s.PixelAt(3, 3); got != (Color{R: 255, G: 110, B: 120, A: 255}) {
		t.Errorf("added pixel = %v, want {255 110 120 255}", got)
	}
	// Outside stays untouched.
	if got := s.PixelAt(0, 0); got != RGB(100, 100, 100) {
		t.Errorf("outside pixel = %v, want unchanged", got)
	}
}

func TestCompositeRectClips(t *testing.T) {
	s := newTestSurface(t, 4, 4, Black)
	if err := s.CompositeRect(Rc(-2, -2, 4, 4), White, blend.None); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := Black
			if x < 2 && y < 2 {
				want = White
			}
			if got := s.PixelAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCompositeRectEmptyClipIsNoop(t *testing.T) {
	s := newTestSurface(t, 4, 4, Black)
	if err := s.CompositeRect(Rc(10, 10, 5, 5), White, blend.None); err != nil {
		t.Fatal(err)
	}
	for _, v := range s.Pix() {
		if v != Black.Packed() {
			t.Fatal("off-surface rect wrote pixels")
		}
	}
}
