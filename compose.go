package pix

import "github.com/gogpu/pix/blend"

// CompositePixel composites c over the pixel at (x, y) using the given
// blend mode. Out-of-bounds coordinates are silently ignored.
func (s *Surface) CompositePixel(x, y int, c Color, mode blend.Mode) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.stride + x
	s.pix[i] = blend.Blend(c.Packed(), s.pix[i], mode)
}

// CompositeRect composites c over every pixel of r using the given blend
// mode, clipping to the surface bounds first. A rectangle that clips to
// empty is a successful no-op.
func (s *Surface) CompositeRect(r Rect, c Color, mode blend.Mode) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}
	clipped := r.Intersect(Rect{W: s.width, H: s.height})
	if clipped.Empty() {
		return nil
	}
	src := c.Packed()
	for y := clipped.Y; y < clipped.Y+clipped.H; y++ {
		row := s.pix[y*s.stride:]
		for x := clipped.X; x < clipped.X+clipped.W; x++ {
			row[x] = blend.Blend(src, row[x], mode)
		}
	}
	return nil
}
