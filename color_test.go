package pix

import (
	"image/color"
	"testing"
)

func TestColorPackedLayout(t *testing.T) {
	c := RGBA(0x11, 0x22, 0x33, 0x44)
	if got := c.Packed(); got != 0x44112233 {
		t.Errorf("Packed = %#08x, want 0x44112233 (alpha in the top byte)", got)
	}
}

func TestUnpackInvertsPacked(t *testing.T) {
	for _, c := range []Color{Transparent, Black, White, RGBA(1, 2, 3, 4), RGB(200, 100, 50)} {
		if got := Unpack(c.Packed()); got != c {
			t.Errorf("Unpack(Packed(%v)) = %v", c, got)
		}
	}
}

func TestRGBIsOpaque(t *testing.T) {
	if c := RGB(10, 20, 30); c.A != 255 {
		t.Errorf("RGB alpha = %d, want 255", c.A)
	}
}

func TestColorStdlibInterop(t *testing.T) {
	c := RGBA(10, 20, 30, 40)
	std := c.Color()
	if got, ok := std.(color.NRGBA); !ok || got != (color.NRGBA{R: 10, G: 20, B: 30, A: 40}) {
		t.Errorf("Color() = %v", std)
	}
	if got := FromColor(std); got != c {
		t.Errorf("FromColor round trip = %v, want %v", got, c)
	}
}

func TestHex(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#FF0000", RGB(255, 0, 0)},
		{"00FF00", RGB(0, 255, 0)},
		{"#336699CC", RGBA(0x33, 0x66, 0x99, 0xCC)},
		{"#F00", RGB(255, 0, 0)},
		{"#F00C", RGBA(255, 0, 0, 0xCC)},
		{"abc", RGB(0xAA, 0xBB, 0xCC)},
		{"", Black},
		{"#12345", Black},
		{"zzzzzz", Black},
	}
	for _, c := range cases {
		if got := Hex(c.in); got != c.want {
			t.Errorf("Hex(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
