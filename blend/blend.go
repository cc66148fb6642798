// Package blend provides alpha compositing and blend modes for packed
// 32-bit ARGB pixels (alpha in the top byte, then red, green, blue).
//
// The straight-alpha Over operator follows Porter-Duff "over" via
// premultiplication. The remaining modes are the standard per-channel
// formulas; integer math is used where it is exact (add, multiply,
// screen) and float math where precision matters.
package blend

import "github.com/gogpu/pix/colorspace"

// Mode selects a compositing operator. The set is closed; Blend falls
// back to Over for unknown values.
type Mode uint8

const (
	// None replaces the destination with the source.
	None Mode = iota
	// Alpha is the straight-alpha Porter-Duff "over" operator.
	Alpha
	// Add sums channels, clamping to 255.
	Add
	// Multiply multiplies channels.
	Multiply
	// Screen inverts, multiplies, and inverts again.
	Screen
	// Overlay multiplies or screens depending on the destination.
	Overlay
	// SoftLight is a soft version of HardLight.
	SoftLight
	// HardLight multiplies or screens depending on the source.
	HardLight
	// ColorDodge brightens the destination by the source.
	ColorDodge
	// ColorBurn darkens the destination by the source.
	ColorBurn
	// Difference takes the absolute channel difference.
	Difference
	// Exclusion is a lower-contrast Difference.
	Exclusion
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Alpha:
		return "alpha"
	case Add:
		return "add"
	case Multiply:
		return "multiply"
	case Screen:
		return "screen"
	case Overlay:
		return "overlay"
	case SoftLight:
		return "soft-light"
	case HardLight:
		return "hard-light"
	case ColorDodge:
		return "color-dodge"
	case ColorBurn:
		return "color-burn"
	case Difference:
		return "difference"
	case Exclusion:
		return "exclusion"
	default:
		return "unknown"
	}
}

// channel accessors for packed ARGB words

func alphaOf(p uint32) uint32 { return p >> 24 & 0xFF }
func redOf(p uint32) uint32   { return p >> 16 & 0xFF }
func greenOf(p uint32) uint32 { return p >> 8 & 0xFF }
func blueOf(p uint32) uint32  { return p & 0xFF }

func pack(r, g, b, a uint32) uint32 {
	return a<<24 | r<<16 | g<<8 | b
}

// toFloat unpacks a packed pixel into the float representation.
func toFloat(p uint32) colorspace.Color {
	return colorspace.Color{
		R: float32(redOf(p)) / 255,
		G: float32(greenOf(p)) / 255,
		B: float32(blueOf(p)) / 255,
		A: float32(alphaOf(p)) / 255,
	}
}

// fromFloat packs a float color, clamping each channel to [0,1] and
// rounding to the nearest 8-bit value.
func fromFloat(c colorspace.Color) uint32 {
	return pack(round255(c.R), round255(c.G), round255(c.B), round255(c.A))
}

func round255(v float32) uint32 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint32(v*255 + 0.5)
}

// Over composites src over dst with the straight-alpha Porter-Duff
// "over" operator via premultiplication. A fully transparent source
// returns the destination unchanged; a fully opaque source returns the
// source unchanged.
func Over(src, dst uint32) uint32 {
	sa := alphaOf(src)
	if sa == 0 {
		return dst
	}
	if sa == 255 {
		return src
	}

	srcA := float32(sa) / 255
	dstA := float32(alphaOf(dst)) / 255
	invSrcA := 1 - srcA

	outA := srcA + dstA*invSrcA
	if outA == 0 {
		return 0
	}

	// Premultiply, combine, unpremultiply.
	sr := float32(redOf(src)) / 255 * srcA
	sg := float32(greenOf(src)) / 255 * srcA
	sb := float32(blueOf(src)) / 255 * srcA

	dr := float32(redOf(dst)) / 255 * dstA * invSrcA
	dg := float32(greenOf(dst)) / 255 * dstA * invSrcA
	db := float32(blueOf(dst)) / 255 * dstA * invSrcA

	return fromFloat(colorspace.Color{
		R: (sr + dr) / outA,
		G: (sg + dg) / outA,
		B: (sb + db) / outA,
		A: outA,
	})
}

// Blend composites src over dst with the given mode.
func Blend(src, dst uint32, mode Mode) uint32 {
	switch mode {
	case None:
		return src

	case Alpha:
		return Over(src, dst)

	case Add:
		return pack(
			clamp255(redOf(src)+redOf(dst)),
			clamp255(greenOf(src)+greenOf(dst)),
			clamp255(blueOf(src)+blueOf(dst)),
			clamp255(alphaOf(src)+alphaOf(dst)),
		)

	case Multiply:
		return pack(
			redOf(src)*redOf(dst)/255,
			greenOf(src)*greenOf(dst)/255,
			blueOf(src)*blueOf(dst)/255,
			alphaOf(src)*alphaOf(dst)/255,
		)

	case Screen:
		return pack(
			255-(255-redOf(src))*(255-redOf(dst))/255,
			255-(255-greenOf(src))*(255-greenOf(dst))/255,
			255-(255-blueOf(src))*(255-blueOf(dst))/255,
			255-(255-alphaOf(src))*(255-alphaOf(dst))/255,
		)

	case Difference:
		return pack(
			absDiff(redOf(src), redOf(dst)),
			absDiff(greenOf(src), greenOf(dst)),
			absDiff(blueOf(src), blueOf(dst)),
			alphaOf(src),
		)

	case Overlay, SoftLight, HardLight, ColorDodge, ColorBurn, Exclusion:
		return separable(src, dst, mode)

	default:
		return Over(src, dst)
	}
}

// WithOpacity applies the requested opacity to the source alpha before
// blending with the given mode. Opacity is clamped to [0,1].
func WithOpacity(src, dst uint32, mode Mode, opacity float32) uint32 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	a := round255(float32(alphaOf(src)) / 255 * opacity)
	src = src&0x00FFFFFF | a<<24
	return Blend(src, dst, mode)
}

// separable applies a per-channel float formula, keeping the source
// alpha in the result.
func separable(src, dst uint32, mode Mode) uint32 {
	s := toFloat(src)
	d := toFloat(dst)

	var f func(s, d float32) float32
	switch mode {
	case Overlay:
		// Multiply below mid-gray, screen above, judged by the
		// destination.
		f = func(s, d float32) float32 {
			if d < 0.5 {
				return 2 * s * d
			}
			return 1 - 2*(1-s)*(1-d)
		}
	case SoftLight:
		f = func(s, d float32) float32 {
			return (1-2*s)*d*d + 2*s*d
		}
	case HardLight:
		// Overlay with the roles of source and destination swapped.
		f = func(s, d float32) float32 {
			if s < 0.5 {
				return 2 * s * d
			}
			return 1 - 2*(1-s)*(1-d)
		}
	case ColorDodge:
		// A source channel at the boundary saturates instead of
		// dividing by zero.
		f = func(s, d float32) float32 {
			if s >= 1 {
				return 1
			}
			return clampf(d / (1 - s))
		}
	case ColorBurn:
		f = func(s, d float32) float32 {
			if s <= 0 {
				return 0
			}
			return clampf(1 - (1-d)/s)
		}
	case Exclusion:
		f = func(s, d float32) float32 {
			return s + d - 2*s*d
		}
	}

	return fromFloat(colorspace.Color{
		R: f(s.R, d.R),
		G: f(s.G, d.G),
		B: f(s.B, d.B),
		A: s.A,
	})
}

func clamp255(v uint32) uint32 {
	if v > 255 {
		return 255
	}
	return v
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func clampf(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
