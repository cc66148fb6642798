package pix

import "testing"

func TestRectEmpty(t *testing.T) {
	if !(Rect{}).Empty() {
		t.Error("zero rect should be empty")
	}
	if !Rc(1, 1, 0, 5).Empty() || !Rc(1, 1, 5, -1).Empty() {
		t.Error("zero or negative size should be empty")
	}
	if Rc(0, 0, 1, 1).Empty() {
		t.Error("1x1 rect should not be empty")
	}
}

func TestRectContains(t *testing.T) {
	r := Rc(2, 3, 4, 5)
	if !r.Contains(2, 3) {
		t.Error("origin corner should be inside")
	}
	if !r.Contains(5, 7) {
		t.Error("last pixel should be inside")
	}
	if r.Contains(6, 3) || r.Contains(2, 8) {
		t.Error("exclusive edge should be outside")
	}
	if r.Contains(1, 3) || r.Contains(2, 2) {
		t.Error("points before the origin should be outside")
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rc(0, 0, 10, 10)
	b := Rc(5, 5, 10, 10)
	if got := a.Intersect(b); got != Rc(5, 5, 5, 5) {
		t.Errorf("overlap = %v, want {5 5 5 5}", got)
	}
	if got := b.Intersect(a); got != Rc(5, 5, 5, 5) {
		t.Errorf("intersect should commute, got %v", got)
	}
	if got := a.Intersect(Rc(20, 20, 5, 5)); !got.Empty() {
		t.Errorf("disjoint rects = %v, want empty", got)
	}
	// Touching edges share no pixels.
	if got := a.Intersect(Rc(10, 0, 5, 10)); !got.Empty() {
		t.Errorf("edge-adjacent rects = %v, want empty", got)
	}
	if got := a.Intersect(a); got != a {
		t.Errorf("self intersect = %v, want %v", got, a)
	}
}
