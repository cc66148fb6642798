package pix

import (
	"fmt"
	"math"
	"sort"
)

// DrawPolygon draws the polygon outline, connecting consecutive vertices
// and closing the shape from the last vertex back to the first.
func (s *Surface) DrawPolygon(pts []Point, c Color) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}
	if len(pts) < 2 {
		return fmt.Errorf("%w: polygon needs at least 2 vertices, got %d", ErrInvalidParam, len(pts))
	}

	for i := 0; i < len(pts); i++ {
		j := (i + 1) % len(pts)
		if err := s.DrawLine(pts[i].X, pts[i].Y, pts[j].X, pts[j].Y, c); err != nil {
			return err
		}
	}
	return nil
}

// FillPolygon fills the polygon interior by scanline rasterization under
// the even-odd rule: for each scanline, the sorted x-intersections with
// every polygon edge are paired and the spans between pairs are filled.
func (s *Surface) FillPolygon(pts []Point, c Color) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}
	if len(pts) < 3 {
		return fmt.Errorf("%w: polygon fill needs at least 3 vertices, got %d", ErrInvalidParam, len(pts))
	}

	yMin, yMax := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	yMin = max(yMin, 0)
	yMax = min(yMax, s.height-1)

	var xs []float64
	for y := yMin; y <= yMax; y++ {
		xs = xs[:0]
		// Sample the scanline at the pixel row center so that edges
		// landing exactly on integer rows are counted once.
		sy := float64(y) + 0.5

		for i := 0; i < len(pts); i++ {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			ay, by := float64(a.Y), float64(b.Y)
			if ay == by {
				continue // horizontal edges contribute no crossings
			}
			if (sy < ay) == (sy < by) {
				continue
			}
			t := (sy - ay) / (by - ay)
			xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
		}

		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			// Round to nearest with Floor so negative intersections
			// off the left edge obey the same rule.
			x1 := int(math.Floor(xs[i] + 0.5))
			x2 := int(math.Floor(xs[i+1] - 0.5))
			if x2 >= x1 {
				s.hspan(x1, x2, y, c)
			}
		}
	}
	return nil
}
