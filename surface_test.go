package pix

import (
	"errors"
	"testing"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	cases := []struct{ w, h int }{
		{0, 10}, {10, 0}, {-1, 10}, {10, -1}, {0, 0},
	}
	for _, c := range cases {
		if _, err := New(c.w, c.h); !errors.Is(err, ErrInvalidParam) {
			t.Errorf("New(%d, %d): got %v, want ErrInvalidParam", c.w, c.h, err)
		}
	}
}

func TestClearThenGetPixel(t *testing.T) {
	s, err := New(7, 5)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()

	c := RGBA(12, 200, 99, 180)
	s.Clear(c)

	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			if got := s.PixelAt(x, y); got != c {
				t.Fatalf("PixelAt(%d, %d) = %v, want %v", x, y, got, c)
			}
		}
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	s, err := New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()
	s.Clear(Black)

	before := make([]uint32, len(s.Pix()))
	copy(before, s.Pix())

	oob := []struct{ x, y int }{
		{-1, 2}, {4, 2}, {2, -1}, {2, 4}, {-100, -100}, {100, 100},
	}
	for _, p := range oob {
		s.SetPixel(p.x, p.y, RGB(255, 0, 0))
	}

	for i, v := range s.Pix() {
		if v != before[i] {
			t.Fatalf("out-of-bounds write modified pixel %d: got %#x, want %#x", i, v, before[i])
		}
	}
}

func TestPixelAtOutOfBounds(t *testing.T) {
	s, err := New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()
	s.Clear(White)

	for _, p := range []struct{ x, y int }{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if got := s.PixelAt(p.x, p.y); got != Transparent {
			t.Errorf("PixelAt(%d, %d) = %v, want transparent black", p.x, p.y, got)
		}
	}
}

func TestFillRectClips(t *testing.T) {
	s, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()
	s.Clear(Black)

	red := RGB(255, 0, 0)
	if err := s.FillRect(Rc(-2, -2, 4, 4), red); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := Black
			if x < 2 && y < 2 {
				want = red
			}
			if got := s.PixelAt(x, y); got != want {
				t.Fatalf("PixelAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillRectEmptyClipIsNoop(t *testing.T) {
	s, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()
	s.Clear(Black)

	// Entirely off-surface and degenerate rects succeed without writes.
	for _, r := range []Rect{Rc(100, 100, 4, 4), Rc(2, 2, 0, 5), Rc(2, 2, 5, 0), Rc(-10, 0, 5, 5)} {
		if err := s.FillRect(r, White); err != nil {
			t.Errorf("FillRect(%v): got %v, want nil", r, err)
		}
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := s.PixelAt(x, y); got != Black {
				t.Fatalf("PixelAt(%d, %d) = %v, want black", x, y, got)
			}
		}
	}
}

// recordingAllocator tracks allocation and release so tests can verify
// the surface destroys through the allocator that created it.
type recordingAllocator struct {
	allocs int
	frees  int
	last   []uint32
}

func (a *recordingAllocator) AllocPixels(n int) ([]uint32, error) {
	a.allocs++
	a.last = make([]uint32, n)
	return a.last, nil
}

func (a *recordingAllocator) FreePixels(pix []uint32) {
	a.frees++
	if &pix[0] != &a.last[0] {
		panic("freed buffer was not allocated by this allocator")
	}
}

func TestDestroyUsesOwningAllocator(t *testing.T) {
	alloc := &recordingAllocator{}
	s, err := NewWithAllocator(16, 16, alloc)
	if err != nil {
		t.Fatal(err)
	}
	if alloc.allocs != 1 {
		t.Fatalf("allocs = %d, want 1", alloc.allocs)
	}

	s.Destroy()
	if alloc.frees != 1 {
		t.Fatalf("frees = %d, want 1", alloc.frees)
	}

	// Double destroy is safe and does not free twice.
	s.Destroy()
	if alloc.frees != 1 {
		t.Fatalf("frees after double destroy = %d, want 1", alloc.frees)
	}
}

type failingAllocator struct{}

func (failingAllocator) AllocPixels(int) ([]uint32, error) {
	return nil, errors.New("pool exhausted")
}

func (failingAllocator) FreePixels([]uint32) {}

func TestAllocatorFailureIsOutOfMemory(t *testing.T) {
	if _, err := NewWithAllocator(4, 4, failingAllocator{}); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("got %v, want ErrOutOfMemory", err)
	}
}

func TestNewFromBufferStride(t *testing.T) {
	// Stride 6 pixels for a 4-wide surface: two pixels of row padding.
	buf := make([]uint32, 6*3)
	s, err := NewFromBuffer(buf, 4, 3, 6)
	if err != nil {
		t.Fatal(err)
	}
	if s.Stride() != 6 {
		t.Fatalf("Stride() = %d, want 6", s.Stride())
	}

	s.SetPixel(3, 1, White)
	if buf[1*6+3] != White.Packed() {
		t.Errorf("pixel (3,1) not at stride offset: buf[9] = %#x", buf[9])
	}
	// Padding stays untouched.
	if buf[1*6+4] != 0 || buf[1*6+5] != 0 {
		t.Error("row padding was written")
	}

	if _, err := NewFromBuffer(buf, 4, 4, 6); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("undersized buffer: got %v, want ErrInvalidParam", err)
	}
	if _, err := NewFromBuffer(buf, 8, 2, 6); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("stride < width: got %v, want ErrInvalidParam", err)
	}
}

func TestClearRespectsStridePadding(t *testing.T) {
	buf := make([]uint32, 6*3)
	s, err := NewFromBuffer(buf, 4, 3, 6)
	if err != nil {
		t.Fatal(err)
	}
	s.Clear(White)

	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			want := White.Packed()
			if x >= 4 {
				want = 0
			}
			if buf[y*6+x] != want {
				t.Fatalf("buf[%d][%d] = %#x, want %#x", y, x, buf[y*6+x], want)
			}
		}
	}
}

func TestTintWhiteIsIdentity(t *testing.T) {
	s, err := New(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()

	c := RGBA(37, 141, 250, 199)
	s.Clear(c)
	s.Tint(White)

	if got := s.PixelAt(2, 2); got != c {
		t.Fatalf("tint by opaque white changed pixel: got %v, want %v", got, c)
	}
}

func TestTintHalvesChannels(t *testing.T) {
	s, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()

	s.Clear(RGBA(200, 100, 50, 255))
	s.Tint(RGBA(128, 128, 128, 255))

	got := s.PixelAt(1, 1)
	// x*128/255 with the exact div255 approximation.
	want := Color{R: 100, G: 50, B: 25, A: 255}
	if got != want {
		t.Fatalf("tinted pixel = %v, want %v", got, want)
	}
}

func TestGrayscale(t *testing.T) {
	s, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()

	s.Clear(RGBA(255, 0, 0, 200))
	s.Grayscale()

	got := s.PixelAt(0, 0)
	// BT.601 fixed point: 255*77 >> 8 = 76.
	want := Color{R: 76, G: 76, B: 76, A: 200}
	if got != want {
		t.Fatalf("grayscale pixel = %v, want %v", got, want)
	}
}

func TestBlendRows(t *testing.T) {
	s, err := New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()
	s.Clear(RGB(0, 0, 0))

	// One opaque green row blended at y=1.
	src := make([]uint32, 4)
	for i := range src {
		src[i] = RGB(0, 255, 0).Packed()
	}
	s.BlendRows(1, src)

	for x := 0; x < 4; x++ {
		if got := s.PixelAt(x, 1); got != RGB(0, 255, 0) {
			t.Fatalf("PixelAt(%d, 1) = %v, want green", x, got)
		}
		if got := s.PixelAt(x, 0); got != RGB(0, 0, 0) {
			t.Fatalf("PixelAt(%d, 0) = %v, want black", x, got)
		}
	}
}
