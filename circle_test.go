package pix

import (
	"errors"
	"math"
	"testing"
)

func TestDrawCircleRadiusZero(t *testing.T) {
	s := newTestSurface(t, 9, 9, Black)
	if err := s.DrawCircleOutline(4, 4, 0, White); err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, v := range s.Pix() {
		if v == White.Packed() {
			count++
		}
	}
	if count != 1 {
		t.Errorf("radius 0 set %d pixels, want 1", count)
	}
	if s.PixelAt(4, 4) != White {
		t.Error("radius 0 pixel is not at the center")
	}
}

func TestDrawCircleNegativeRadius(t *testing.T) {
	s := newTestSurface(t, 9, 9, Black)
	if err := s.DrawCircleOutline(4, 4, -1, White); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("got %v, want ErrInvalidParam", err)
	}
	if err := s.DrawCircleFilled(4, 4, -1, White); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("filled: got %v, want ErrInvalidParam", err)
	}
}

func TestDrawCircleOutlineSymmetry(t *testing.T) {
	const cx, cy, r = 16, 16, 10
	s := newTestSurface(t, 33, 33, Black)
	if err := s.DrawCircleOutline(cx, cy, r, White); err != nil {
		t.Fatal(err)
	}

	// Every set pixel must have its 8-fold mirror set too.
	for y := 0; y < 33; y++ {
		for x := 0; x < 33; x++ {
			if s.PixelAt(x, y) != White {
				continue
			}
			dx, dy := x-cx, y-cy
			mirrors := [][2]int{
				{-dx, dy}, {dx, -dy}, {-dx, -dy},
				{dy, dx}, {-dy, dx}, {dy, -dx}, {-dy, -dx},
			}
			for _, m := range mirrors {
				if s.PixelAt(cx+m[0], cy+m[1]) != White {
					t.Fatalf("pixel (%d,%d) set but mirror (%d,%d) is not",
						x, y, cx+m[0], cy+m[1])
				}
			}
		}
	}
}

func TestDrawCircleOutlineExtremes(t *testing.T) {
	const cx, cy, r = 16, 16, 12
	s := newTestSurface(t, 33, 33, Black)
	if err := s.DrawCircleOutline(cx, cy, r, White); err != nil {
		t.Fatal(err)
	}
	for _, p := range []Point{
		{cx + r, cy}, {cx - r, cy}, {cx, cy + r}, {cx, cy - r},
	} {
		if s.PixelAt(p.X, p.Y) != White {
			t.Errorf("axis extreme (%d,%d) not set", p.X, p.Y)
		}
	}
	if s.PixelAt(cx, cy) != Black {
		t.Error("outline filled the center")
	}
}

func TestDrawCircleFilledCoversOutline(t *testing.T) {
	const cx, cy, r = 12, 12, 8
	outline := newTestSurface(t, 25, 25, Black)
	filled := newTestSurface(t, 25, 25, Black)

	if err := outline.DrawCircleOutline(cx, cy, r, White); err != nil {
		t.Fatal(err)
	}
	if err := filled.DrawCircleFilled(cx, cy, r, White); err != nil {
		t.Fatal(err)
	}

	for i, v := range outline.Pix() {
		if v == White.Packed() && filled.Pix()[i] != White.Packed() {
			t.Fatalf("outline pixel %d missing from the filled circle", i)
		}
	}
	if filled.PixelAt(cx, cy) != White {
		t.Error("filled circle missing the center")
	}
}

func TestDrawCircleFilledNoOvershoot(t *testing.T) {
	const cx, cy, r = 12, 12, 8
	s := newTestSurface(t, 25, 25, Black)
	if err := s.DrawCircleFilled(cx, cy, r, White); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 25; y++ {
		for x := 0; x < 25; x++ {
			if s.PixelAt(x, y) != White {
				continue
			}
			dist := math.Hypot(float64(x-cx), float64(y-cy))
			if dist > float64(r)+0.5 {
				t.Errorf("filled pixel (%d,%d) lies outside the circle (dist %.2f)", x, y, dist)
			}
		}
	}
}

func TestDrawCircleOutlineAABlends(t *testing.T) {
	const cx, cy, r = 10, 10, 6
	s := newTestSurface(t, 21, 21, Black)
	if err := s.DrawCircleOutlineAA(cx, cy, r, White); err != nil {
		t.Fatal(err)
	}

	// On-circle axis extremes have distance exactly r: full coverage.
	if got := s.PixelAt(cx+r, cy); got != White {
		t.Errorf("on-ring pixel = %v, want white", got)
	}
	// Far outside the ring nothing is touched.
	if got := s.PixelAt(0, 0); got != Black {
		t.Errorf("corner pixel = %v, want black", got)
	}
	// One pixel off the ring along an axis gets partial coverage only
	// when the true distance is fractional; diagonals always do.
	rf := float64(r)
	d := int(rf/math.Sqrt2 + 0.5)
	if got := s.PixelAt(cx+d, cy+d); got == Black {
		t.Error("near-ring diagonal pixel untouched")
	}
}

func TestDrawEllipseOutlineDegenerate(t *testing.T) {
	s := newTestSurface(t, 11, 11, Black)
	if err := s.DrawEllipseOutline(5, 5, 0, 0, White); err != nil {
		t.Fatal(err)
	}
	if s.PixelAt(5, 5) != White {
		t.Error("0x0 ellipse did not set the center pixel")
	}
	if err := s.DrawEllipseOutline(5, 5, -1, 3, White); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("negative radius: got %v, want ErrInvalidParam", err)
	}
}

func TestDrawEllipseOutlineExtremes(t *testing.T) {
	const cx, cy, rx, ry = 20, 12, 15, 8
	s := newTestSurface(t, 41, 25, Black)
	if err := s.DrawEllipseOutline(cx, cy, rx, ry, White); err != nil {
		t.Fatal(err)
	}
	for _, p := range []Point{
		{cx + rx, cy}, {cx - rx, cy}, {cx, cy + ry}, {cx, cy - ry},
	} {
		if s.PixelAt(p.X, p.Y) != White {
			t.Errorf("ellipse extreme (%d,%d) not set", p.X, p.Y)
		}
	}
}

func TestDrawEllipseOutlineEqualRadiiMatchesCircleExtent(t *testing.T) {
	const cx, cy, r = 12, 12, 9
	s := newTestSurface(t, 25, 25, Black)
	if err := s.DrawEllipseOutline(cx, cy, r, r, White); err != nil {
		t.Fatal(err)
	}
	// Every set pixel sits within half a pixel of the circle of radius r.
	for y := 0; y < 25; y++ {
		for x := 0; x < 25; x++ {
			if s.PixelAt(x, y) != White {
				continue
			}
			dist := math.Hypot(float64(x-cx), float64(y-cy))
			if math.Abs(dist-r) > 1 {
				t.Errorf("ellipse pixel (%d,%d) off the circle (dist %.2f)", x, y, dist)
			}
		}
	}
}

func TestDrawEllipseFilled(t *testing.T) {
	const cx, cy, rx, ry = 15, 10, 10, 6
	s := newTestSurface(t, 31, 21, Black)
	if err := s.DrawEllipseFilled(cx, cy, rx, ry, White); err != nil {
		t.Fatal(err)
	}
	if s.PixelAt(cx, cy) != White {
		t.Error("center not filled")
	}
	if s.PixelAt(cx+rx, cy) != White || s.PixelAt(cx, cy+ry) != White {
		t.Error("axis extremes not filled")
	}
	if s.PixelAt(cx+rx, cy+ry) != Black {
		t.Error("bounding box corner should stay empty")
	}
}

func TestDrawEllipseFilledFlat(t *testing.T) {
	s := newTestSurface(t, 21, 5, Black)
	if err := s.DrawEllipseFilled(10, 2, 7, 0, White); err != nil {
		t.Fatal(err)
	}
	for x := 3; x <= 17; x++ {
		if s.PixelAt(x, 2) != White {
			t.Errorf("flat ellipse missing pixel (%d,2)", x)
		}
	}
	if s.PixelAt(10, 1) != Black || s.PixelAt(10, 3) != Black {
		t.Error("flat ellipse wrote outside its row")
	}
}

func TestDrawArcQuarter(t *testing.T) {
	const cx, cy, r = 16, 16, 10
	s := newTestSurface(t, 33, 33, Black)
	if err := s.DrawArc(cx, cy, r, 0, math.Pi/2, White); err != nil {
		t.Fatal(err)
	}

	// The start and end of the quarter arc land on the axes.
	if s.PixelAt(cx+r, cy) != White {
		t.Error("arc start pixel not set")
	}
	if s.PixelAt(cx, cy+r) != White {
		t.Error("arc end pixel not set")
	}
	// The opposite quadrant stays untouched.
	for y := 0; y < cy; y++ {
		for x := 0; x < cx; x++ {
			if s.PixelAt(x, y) != Black {
				t.Fatalf("arc wrote outside its quadrant at (%d,%d)", x, y)
			}
		}
	}
}

func TestDrawArcOnRadius(t *testing.T) {
	const cx, cy, r = 20, 20, 12
	s := newTestSurface(t, 41, 41, Black)
	if err := s.DrawArc(cx, cy, r, 0, 2*math.Pi-1e-9, White); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 41; y++ {
		for x := 0; x < 41; x++ {
			if s.PixelAt(x, y) != White {
				continue
			}
			dist := math.Hypot(float64(x-cx), float64(y-cy))
			if math.Abs(dist-r) > 1.5 {
				t.Errorf("arc pixel (%d,%d) off the radius (dist %.2f)", x, y, dist)
			}
		}
	}
}

func TestDrawArcNegativeAnglesNormalize(t *testing.T) {
	a := newTestSurface(t, 33, 33, Black)
	b := newTestSurface(t, 33, 33, Black)

	if err := a.DrawArc(16, 16, 10, -2*math.Pi, math.Pi/2, White); err != nil {
		t.Fatal(err)
	}
	if err := b.DrawArc(16, 16, 10, 0, math.Pi/2, White); err != nil {
		t.Fatal(err)
	}
	for i, v := range a.Pix() {
		if v != b.Pix()[i] {
			t.Fatalf("normalized arc differs at pixel %d", i)
		}
	}
}

func TestDrawArcRadiusZero(t *testing.T) {
	s := newTestSurface(t, 9, 9, Black)
	if err := s.DrawArc(4, 4, 0, 0, math.Pi, White); err != nil {
		t.Fatal(err)
	}
	if s.PixelAt(4, 4) != White {
		t.Error("radius 0 arc did not set the center pixel")
	}
}
