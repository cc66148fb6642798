package pix

import (
	"fmt"
	"math"
)

// DrawLine draws the exact line from (x0, y0) to (x1, y1) inclusive.
// Axis-aligned segments take the span fast paths; everything else runs
// integer Bresenham stepping, visiting every pixel on the 8-connected
// path between the endpoints.
func (s *Surface) DrawLine(x0, y0, x1, y1 int, c Color) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}

	if y0 == y1 {
		s.hspan(x0, x1, y0, c)
		return nil
	}
	if x0 == x1 {
		s.vspan(x0, y0, y1, c)
		return nil
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		s.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
	return nil
}

// DrawLineAA draws an anti-aliased line using Wu's algorithm. Each
// sample point's coverage is distributed across the two adjacent pixels
// based on sub-pixel position; endpoint pixels are additionally weighted
// by the endpoint's own fractional coverage.
func (s *Surface) DrawLineAA(x0, y0, x1, y1 float64, c Color) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}

	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	plot := func(x, y int, cov float64) {
		if cov <= 0 {
			return
		}
		if cov > 1 {
			cov = 1
		}
		aa := c
		aa.A = uint8(float64(c.A)*cov + 0.5)
		if steep {
			s.blendPixelAt(y, x, aa)
		} else {
			s.blendPixelAt(x, y, aa)
		}
	}

	// First endpoint.
	xend := math.Round(x0)
	yend := y0 + gradient*(xend-x0)
	xgap := 1 - fpart(x0+0.5)
	xpxl1 := int(xend)
	ypxl1 := int(math.Floor(yend))
	plot(xpxl1, ypxl1, (1-fpart(yend))*xgap)
	plot(xpxl1, ypxl1+1, fpart(yend)*xgap)
	intery := yend + gradient

	// Second endpoint.
	xend = math.Round(x1)
	yend = y1 + gradient*(xend-x1)
	xgap = fpart(x1 + 0.5)
	xpxl2 := int(xend)
	ypxl2 := int(math.Floor(yend))
	plot(xpxl2, ypxl2, (1-fpart(yend))*xgap)
	plot(xpxl2, ypxl2+1, fpart(yend)*xgap)

	// Interior columns (rows, if steep).
	for x := xpxl1 + 1; x < xpxl2; x++ {
		y := int(math.Floor(intery))
		plot(x, y, 1-fpart(intery))
		plot(x, y+1, fpart(intery))
		intery += gradient
	}
	return nil
}

// DrawThickLine draws a line with the given pixel thickness. Thickness 1
// defers to DrawLine; greater thickness draws parallel exact lines offset
// along the unit perpendicular of the segment. A zero-length segment
// degenerates to a filled disc of radius thickness/2.
func (s *Surface) DrawThickLine(x0, y0, x1, y1, thickness int, c Color) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}
	if thickness < 1 {
		return fmt.Errorf("%w: thickness %d", ErrInvalidParam, thickness)
	}
	if thickness == 1 {
		return s.DrawLine(x0, y0, x1, y1, c)
	}

	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return s.DrawCircleFilled(x0, y0, thickness/2, c)
	}

	// Unit perpendicular to the segment.
	px := -dy / length
	py := dx / length

	for i := 0; i < thickness; i++ {
		off := float64(i) - float64(thickness-1)/2
		ox := int(math.Round(px * off))
		oy := int(math.Round(py * off))
		if err := s.DrawLine(x0+ox, y0+oy, x1+ox, y1+oy, c); err != nil {
			return err
		}
	}
	return nil
}

// Out-codes for Cohen-Sutherland clipping.
const (
	outLeft = 1 << iota
	outRight
	outBottom
	outTop
)

func outcode(x, y float64, clip Rect) int {
	code := 0
	if x < float64(clip.X) {
		code |= outLeft
	} else if x > float64(clip.X+clip.W-1) {
		code |= outRight
	}
	if y < float64(clip.Y) {
		code |= outTop
	} else if y > float64(clip.Y+clip.H-1) {
		code |= outBottom
	}
	return code
}

// DrawLineClipped draws the exact line clipped to the given rectangle
// using Cohen-Sutherland clipping. A segment entirely outside one clip
// boundary produces no pixel writes.
func (s *Surface) DrawLineClipped(x0, y0, x1, y1 int, clip Rect, c Color) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}
	if clip.Empty() {
		return nil
	}

	fx0, fy0 := float64(x0), float64(y0)
	fx1, fy1 := float64(x1), float64(y1)
	code0 := outcode(fx0, fy0, clip)
	code1 := outcode(fx1, fy1, clip)

	xmin := float64(clip.X)
	xmax := float64(clip.X + clip.W - 1)
	ymin := float64(clip.Y)
	ymax := float64(clip.Y + clip.H - 1)

	for code0 != 0 || code1 != 0 {
		if code0&code1 != 0 {
			// Both endpoints share an outside region: trivially rejected.
			return nil
		}

		// Pick an endpoint that is outside and move it to the boundary.
		code := code0
		if code == 0 {
			code = code1
		}

		var x, y float64
		switch {
		case code&outTop != 0:
			x = fx0 + (fx1-fx0)*(ymin-fy0)/(fy1-fy0)
			y = ymin
		case code&outBottom != 0:
			x = fx0 + (fx1-fx0)*(ymax-fy0)/(fy1-fy0)
			y = ymax
		case code&outRight != 0:
			y = fy0 + (fy1-fy0)*(xmax-fx0)/(fx1-fx0)
			x = xmax
		case code&outLeft != 0:
			y = fy0 + (fy1-fy0)*(xmin-fx0)/(fx1-fx0)
			x = xmin
		}

		if code == code0 {
			fx0, fy0 = x, y
			code0 = outcode(fx0, fy0, clip)
		} else {
			fx1, fy1 = x, y
			code1 = outcode(fx1, fy1, clip)
		}
	}

	return s.DrawLine(
		int(math.Round(fx0)), int(math.Round(fy0)),
		int(math.Round(fx1)), int(math.Round(fy1)), c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// fpart returns the fractional part of x.
func fpart(x float64) float64 {
	return x - math.Floor(x)
}
