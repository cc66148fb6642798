package pix

import (
	"fmt"
	"math"
)

// plotCirclePoints mirrors one octant point into all eight via the
// circle's 8-way symmetry.
func (s *Surface) plotCirclePoints(cx, cy, x, y int, c Color) {
	s.SetPixel(cx+x, cy+y, c)
	s.SetPixel(cx-x, cy+y, c)
	s.SetPixel(cx+x, cy-y, c)
	s.SetPixel(cx-x, cy-y, c)
	s.SetPixel(cx+y, cy+x, c)
	s.SetPixel(cx-y, cy+x, c)
	s.SetPixel(cx+y, cy-x, c)
	s.SetPixel(cx-y, cy-x, c)
}

// fillCircleSpans fills the horizontal spans for one octant step. The
// guards avoid writing the shared symmetry rows twice.
func (s *Surface) fillCircleSpans(cx, cy, x, y int, c Color) {
	if x != 0 {
		s.hspan(cx-x, cx+x, cy+y, c)
		s.hspan(cx-x, cx+x, cy-y, c)
	}
	if y != 0 && y != x {
		s.hspan(cx-y, cx+y, cy+x, c)
		s.hspan(cx-y, cx+y, cy-x, c)
	}
}

// DrawCircleOutline draws a circle outline with the midpoint circle
// algorithm: an integer decision variable starting at 1-radius steps one
// octant, mirroring into the other seven. Radius zero sets exactly one
// pixel at the center.
func (s *Surface) DrawCircleOutline(cx, cy, radius int, c Color) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}
	if radius < 0 {
		return fmt.Errorf("%w: radius %d", ErrInvalidParam, radius)
	}
	if radius == 0 {
		s.SetPixel(cx, cy, c)
		return nil
	}

	x, y := 0, radius
	d := 1 - radius
	s.plotCirclePoints(cx, cy, x, y, c)

	for x < y {
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
		s.plotCirclePoints(cx, cy, x, y, c)
	}
	return nil
}

// DrawCircleFilled draws a filled circle, replacing per-pixel plotting
// with horizontal span fills between mirrored x-extents.
func (s *Surface) DrawCircleFilled(cx, cy, radius int, c Color) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}
	if radius < 0 {
		return fmt.Errorf("%w: radius %d", ErrInvalidParam, radius)
	}
	if radius == 0 {
		s.SetPixel(cx, cy, c)
		return nil
	}

	x, y := 0, radius
	d := 1 - radius
	s.fillCircleSpans(cx, cy, x, y, c)

	for x < y {
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
		s.fillCircleSpans(cx, cy, x, y, c)
	}
	return nil
}

// DrawCircleOutlineAA draws an anti-aliased circle outline. Every pixel
// of the bounding box gets alpha 1-|distance-radius| clamped to [0,1],
// producing a one-pixel-wide soft ring.
func (s *Surface) DrawCircleOutlineAA(cx, cy, radius int, c Color) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}
	if radius < 0 {
		return fmt.Errorf("%w: radius %d", ErrInvalidParam, radius)
	}

	xMin := max(cx-radius-1, 0)
	yMin := max(cy-radius-1, 0)
	xMax := min(cx+radius+1, s.width-1)
	yMax := min(cy+radius+1, s.height-1)

	for y := yMin; y <= yMax; y++ {
		for x := xMin; x <= xMax; x++ {
			dx := float64(x - cx)
			dy := float64(y - cy)
			dist := math.Hypot(dx, dy)
			alpha := 1 - math.Abs(dist-float64(radius))
			if alpha <= 0 {
				continue
			}
			if alpha > 1 {
				alpha = 1
			}
			aa := c
			aa.A = uint8(float64(c.A) * alpha)
			s.blendPixelAt(x, y, aa)
		}
	}
	return nil
}

// plotEllipsePoints mirrors one quadrant point into all four.
func (s *Surface) plotEllipsePoints(cx, cy, x, y int, c Color) {
	s.SetPixel(cx+x, cy+y, c)
	s.SetPixel(cx-x, cy+y, c)
	s.SetPixel(cx+x, cy-y, c)
	s.SetPixel(cx-x, cy-y, c)
}

// DrawEllipseOutline draws an ellipse outline with the two-region
// midpoint ellipse algorithm: region 1 where the tangent slope magnitude
// is at most 1, region 2 otherwise, each with its own decision-variable
// update.
func (s *Surface) DrawEllipseOutline(cx, cy, rx, ry int, c Color) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}
	if rx < 0 || ry < 0 {
		return fmt.Errorf("%w: radii %dx%d", ErrInvalidParam, rx, ry)
	}
	if rx == 0 && ry == 0 {
		s.SetPixel(cx, cy, c)
		return nil
	}

	x, y := 0, ry
	rx2 := rx * rx
	ry2 := ry * ry

	// Region 1: slope magnitude <= 1.
	d1 := ry2 - rx2*ry + rx2/4
	s.plotEllipsePoints(cx, cy, x, y, c)

	for ry2*x < rx2*y {
		if d1 < 0 {
			d1 += ry2 * (2*x + 3)
		} else {
			d1 += ry2*(2*x+3) + rx2*(-2*y+2)
			y--
		}
		x++
		s.plotEllipsePoints(cx, cy, x, y, c)
	}

	// Region 2: slope magnitude > 1.
	d2 := float64(ry2)*(float64(x)+0.5)*(float64(x)+0.5) +
		float64(rx2)*float64(y-1)*float64(y-1) -
		float64(rx2)*float64(ry2)

	for y >= 0 {
		if d2 < 0 {
			d2 += float64(ry2*(2*x+2) + rx2*(-2*y+3))
			x++
		} else {
			d2 += float64(rx2 * (-2*y + 3))
		}
		y--
		s.plotEllipsePoints(cx, cy, x, y, c)
	}
	return nil
}

// DrawEllipseFilled draws a filled ellipse. The horizontal extent of each
// scanline comes straight from the ellipse equation rather than from the
// outline algorithm.
func (s *Surface) DrawEllipseFilled(cx, cy, rx, ry int, c Color) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}
	if rx < 0 || ry < 0 {
		return fmt.Errorf("%w: radii %dx%d", ErrInvalidParam, rx, ry)
	}
	if ry == 0 {
		s.hspan(cx-rx, cx+rx, cy, c)
		return nil
	}

	for y := -ry; y <= ry; y++ {
		yn := float64(y) / float64(ry)
		extent := float64(rx) * math.Sqrt(1-yn*yn)
		s.hspan(cx-int(extent), cx+int(extent), cy+y, c)
	}
	return nil
}

// arcMaxStep caps the angular step so that per-pixel gaps stay bounded
// even for small radii.
const arcMaxStep = 0.1

// DrawArc draws a circular arc from startAngle to endAngle (radians).
// Angles are normalized into [0, 2pi); the arc is sampled at an angular
// step of 1/radius capped at arcMaxStep, and the end angle is plotted
// explicitly so rounding cannot omit it.
func (s *Surface) DrawArc(cx, cy, radius int, startAngle, endAngle float64, c Color) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}
	if radius < 0 {
		return fmt.Errorf("%w: radius %d", ErrInvalidParam, radius)
	}
	if radius == 0 {
		s.SetPixel(cx, cy, c)
		return nil
	}

	for startAngle < 0 {
		startAngle += 2 * math.Pi
	}
	for endAngle < 0 {
		endAngle += 2 * math.Pi
	}
	for startAngle >= 2*math.Pi {
		startAngle -= 2 * math.Pi
	}
	for endAngle >= 2*math.Pi {
		endAngle -= 2 * math.Pi
	}

	step := 1 / float64(radius)
	if step > arcMaxStep {
		step = arcMaxStep
	}

	for angle := startAngle; angle <= endAngle; angle += step {
		x := cx + int(float64(radius)*math.Cos(angle))
		y := cy + int(float64(radius)*math.Sin(angle))
		s.SetPixel(x, y, c)
	}

	// The end point can fall between samples; plot it explicitly.
	ex := cx + int(float64(radius)*math.Cos(endAngle))
	ey := cy + int(float64(radius)*math.Sin(endAngle))
	s.SetPixel(ex, ey, c)
	return nil
}
