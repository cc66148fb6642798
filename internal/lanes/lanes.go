// Package lanes provides lane-parallel implementations of the hot pixel
// operations: constant fill (surface clear and horizontal spans), alpha
// blend, tint, and grayscale.
//
// All operations work on packed 32-bit ARGB pixel words (alpha in the top
// byte). Three strategies exist: an 8-wide path for AVX2-class hardware,
// a 4-wide path for NEON-class hardware, and a scalar fallback. The wide
// paths process fixed-size array chunks with simple loops so the Go
// compiler can auto-vectorize them; any remainder that does not fill a
// full lane falls back to the scalar code.
//
// Capability detection is the caller's responsibility: the strategy is
// selected once per process and callers must not invoke a lane path whose
// capability is absent.
package lanes

// Ops is the strategy interface for accelerated pixel operations.
// Implementations are stateless and safe to share.
type Ops interface {
	// Name identifies the strategy ("scalar", "wide8", "wide4").
	Name() string

	// Width returns the lane width in pixels (1 for scalar).
	Width() int

	// Fill sets every pixel in pix to the packed color p. Used for both
	// full-surface clears and horizontal span fills.
	Fill(pix []uint32, p uint32)

	// BlendOver alpha-blends src into dst pixel by pixel using the
	// source alpha. dst and src must have equal length.
	BlendOver(dst, src []uint32)

	// Tint multiplies every pixel's channels by the tint color's
	// corresponding channels (x*t/255 per channel, alpha included).
	Tint(pix []uint32, t uint32)

	// Grayscale replaces every pixel's RGB with its BT.601 luminance,
	// preserving alpha.
	Grayscale(pix []uint32)
}

// Scalar returns the per-pixel fallback strategy.
func Scalar() Ops { return scalarOps{} }

// Wide8 returns the 8-pixel lane strategy. Callers must gate on an
// AVX2-class capability.
func Wide8() Ops { return wide8Ops{} }

// Wide4 returns the 4-pixel lane strategy. Callers must gate on a
// NEON-class capability.
func Wide4() Ops { return wide4Ops{} }

// div255 divides by 255 using the exact shift approximation
// (x + 1 + (x >> 8)) >> 8, valid for x in [0, 255*255].
func div255(x uint32) uint32 {
	return (x + 1 + (x >> 8)) >> 8
}

// blendPixel is the scalar straight-alpha blend shared by every strategy
// for remainder pixels. The result keeps the source alpha in the top byte.
func blendPixel(dst, src uint32) uint32 {
	sa := src >> 24 & 0xFF
	inv := 255 - sa

	sr := src >> 16 & 0xFF
	sg := src >> 8 & 0xFF
	sb := src & 0xFF

	dr := dst >> 16 & 0xFF
	dg := dst >> 8 & 0xFF
	db := dst & 0xFF

	r := div255(sr*sa + dr*inv)
	g := div255(sg*sa + dg*inv)
	b := div255(sb*sa + db*inv)

	return sa<<24 | r<<16 | g<<8 | b
}

// tintPixel multiplies each channel of p by the corresponding channel of
// the tint components.
func tintPixel(p, tr, tg, tb, ta uint32) uint32 {
	r := div255((p >> 16 & 0xFF) * tr)
	g := div255((p >> 8 & 0xFF) * tg)
	b := div255((p & 0xFF) * tb)
	a := div255((p >> 24 & 0xFF) * ta)
	return a<<24 | r<<16 | g<<8 | b
}

// grayPixel replaces RGB with BT.601 luminance using the fixed-point
// weights R=77, G=150, B=29 (sum 256).
func grayPixel(p uint32) uint32 {
	r := p >> 16 & 0xFF
	g := p >> 8 & 0xFF
	b := p & 0xFF
	y := (r*77 + g*150 + b*29) >> 8
	return p&0xFF000000 | y<<16 | y<<8 | y
}
