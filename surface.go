package pix

import "fmt"

// Surface represents a rectangular buffer of packed 32-bit ARGB pixels.
// The buffer is row-major with a row stride that may exceed the width for
// alignment; len(pix) >= stride*height always holds. A surface is mutated
// in place by every drawing operation and is never resized.
//
// Surfaces are not internally synchronized. Concurrent mutation of the
// same surface from multiple goroutines is undefined.
type Surface struct {
	pix    []uint32
	width  int
	height int
	stride int // pixels per row
	alloc  Allocator
}

// New creates a surface with the given dimensions using the default
// system allocator.
func New(width, height int) (*Surface, error) {
	return NewWithAllocator(width, height, nil)
}

// NewWithAllocator creates a surface whose pixel buffer comes from alloc.
// A nil allocator selects the default system allocator. The surface keeps
// the allocator and releases the buffer through it on Destroy.
func NewWithAllocator(width, height int, alloc Allocator) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: surface dimensions %dx%d", ErrInvalidParam, width, height)
	}
	if alloc == nil {
		alloc = sysAllocator{}
	}

	pix, err := alloc.AllocPixels(width * height)
	if err != nil {
		return nil, fmt.Errorf("%w: %d pixels: %v", ErrOutOfMemory, width*height, err)
	}
	if len(pix) < width*height {
		return nil, fmt.Errorf("%w: allocator returned %d of %d pixels", ErrOutOfMemory, len(pix), width*height)
	}

	return &Surface{
		pix:    pix,
		width:  width,
		height: height,
		stride: width,
		alloc:  alloc,
	}, nil
}

// NewFromBuffer wraps an externally owned pixel buffer, such as a mapped
// hardware framebuffer, without copying. stride is in pixels and may
// exceed width for alignment; len(pix) must be at least stride*height.
// Destroy does not release the buffer; its owner does.
func NewFromBuffer(pix []uint32, width, height, stride int) (*Surface, error) {
	if width <= 0 || height <= 0 || stride < width {
		return nil, fmt.Errorf("%w: buffer geometry %dx%d stride %d", ErrInvalidParam, width, height, stride)
	}
	if len(pix) < stride*height {
		return nil, fmt.Errorf("%w: buffer holds %d pixels, need %d", ErrInvalidParam, len(pix), stride*height)
	}
	return &Surface{
		pix:    pix,
		width:  width,
		height: height,
		stride: stride,
		alloc:  sysAllocator{},
	}, nil
}

// Destroy releases the pixel buffer through the allocator that created
// it. The surface must not be used afterwards.
func (s *Surface) Destroy() {
	if s == nil || s.pix == nil {
		return
	}
	s.alloc.FreePixels(s.pix)
	s.pix = nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Stride returns the row stride in pixels.
func (s *Surface) Stride() int { return s.stride }

// Pix returns the raw packed pixel buffer. Any consumer must treat it as
// one 32-bit word per pixel, row-major, alpha in the top byte then red,
// green, blue.
func (s *Surface) Pix() []uint32 { return s.pix }

// Clear fills every pixel with c.
func (s *Surface) Clear(c Color) {
	p := c.Packed()
	if s.stride == s.width {
		ops().Fill(s.pix[:s.stride*s.height], p)
		return
	}
	for y := 0; y < s.height; y++ {
		row := s.pix[y*s.stride : y*s.stride+s.width]
		ops().Fill(row, p)
	}
}

// SetPixel sets the pixel at (x, y) to c. Out-of-bounds coordinates are
// silently ignored so that rasterizers need not clip every intermediate
// point.
func (s *Surface) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pix[y*s.stride+x] = c.Packed()
}

// PixelAt returns the color of the pixel at (x, y). Out-of-bounds
// coordinates read as transparent black.
func (s *Surface) PixelAt(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	return Unpack(s.pix[y*s.stride+x])
}

// blendPixelAt alpha-blends c over the pixel at (x, y) using the straight
// source-alpha blend. Out-of-bounds coordinates are silently ignored.
// This is the plotting primitive of the anti-aliased rasterizers.
func (s *Surface) blendPixelAt(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.stride + x
	var src, dst [1]uint32
	src[0] = c.Packed()
	dst[0] = s.pix[i]
	ops().BlendOver(dst[:], src[:])
	s.pix[i] = dst[0]
}

// FillRect fills r with c, clipping to the surface bounds first.
// A rectangle that clips to empty is a successful no-op.
func (s *Surface) FillRect(r Rect, c Color) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}
	clipped := r.Intersect(Rect{W: s.width, H: s.height})
	if clipped.Empty() {
		return nil
	}
	p := c.Packed()
	for y := clipped.Y; y < clipped.Y+clipped.H; y++ {
		row := s.pix[y*s.stride+clipped.X : y*s.stride+clipped.X+clipped.W]
		ops().Fill(row, p)
	}
	return nil
}

// hspan fills the horizontal span [x1, x2] at row y, clipping to bounds.
// Shared fast path for every rasterizer that reduces to an axis-aligned
// span.
func (s *Surface) hspan(x1, x2, y int, c Color) {
	if y < 0 || y >= s.height {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 >= s.width {
		x2 = s.width - 1
	}
	if x1 > x2 {
		return
	}
	ops().Fill(s.pix[y*s.stride+x1:y*s.stride+x2+1], c.Packed())
}

// vspan fills the vertical span [y1, y2] at column x, clipping to bounds.
func (s *Surface) vspan(x, y1, y2 int, c Color) {
	if x < 0 || x >= s.width {
		return
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if y1 < 0 {
		y1 = 0
	}
	if y2 >= s.height {
		y2 = s.height - 1
	}
	p := c.Packed()
	for y := y1; y <= y2; y++ {
		s.pix[y*s.stride+x] = p
	}
}

// BlendRows alpha-blends the packed source pixels over the surface
// starting at row y, one full row per stride-length chunk of src.
// src rows that fall outside the surface are ignored.
func (s *Surface) BlendRows(y int, src []uint32) {
	for row := 0; len(src) >= s.width; row++ {
		ty := y + row
		if ty >= s.height {
			return
		}
		if ty >= 0 {
			dst := s.pix[ty*s.stride : ty*s.stride+s.width]
			ops().BlendOver(dst, src[:s.width])
		}
		src = src[s.width:]
	}
}

// Tint multiplies every pixel by c channel-wise (x*c/255), alpha
// included. Tinting with opaque white is the identity.
func (s *Surface) Tint(c Color) {
	t := c.Packed()
	for y := 0; y < s.height; y++ {
		row := s.pix[y*s.stride : y*s.stride+s.width]
		ops().Tint(row, t)
	}
}

// Grayscale replaces every pixel's RGB with its BT.601 luminance,
// preserving alpha.
func (s *Surface) Grayscale() {
	for y := 0; y < s.height; y++ {
		row := s.pix[y*s.stride : y*s.stride+s.width]
		ops().Grayscale(row)
	}
}
