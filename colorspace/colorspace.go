// Package colorspace provides color space types and conversions.
//
// All conversions are pure, allocation-free transforms on the float
// representation. After any conversion, channels are expected in [0,1].
// Lab is the exception: its L channel is stored as L/100, and its a/b
// channels as (value+128)/256 - a deliberate remap that keeps every
// channel in [0,1] at the cost of asymmetric precision. The remap must be
// preserved exactly for round-trip correctness.
package colorspace

// Space identifies a color space.
type Space uint8

const (
	// RGB is the sRGB-encoded working space; the common intermediate
	// for every conversion pair.
	RGB Space = iota
	// HSV stores hue (normalized /360), saturation, and value in the
	// R, G, B channels respectively.
	HSV
	// HSL stores hue (normalized /360), saturation, and lightness.
	HSL
	// Lab stores CIE L*a*b* under a D65 white point, remapped to [0,1].
	Lab
)

// String returns the space name.
func (s Space) String() string {
	switch s {
	case RGB:
		return "rgb"
	case HSV:
		return "hsv"
	case HSL:
		return "hsl"
	case Lab:
		return "lab"
	default:
		return "unknown"
	}
}

// Color represents a color with float32 components. Channel meaning
// depends on the space the color is expressed in; alpha is always linear
// coverage and never converted.
type Color struct {
	R, G, B, A float32
}

// Convert converts c from one color space to another, routing through
// RGB as the common intermediate. Converting a color to its own space
// returns it unchanged.
func Convert(c Color, from, to Space) Color {
	if from == to {
		return c
	}

	rgb := c
	switch from {
	case HSV:
		rgb = HSVToRGB(c)
	case HSL:
		rgb = HSLToRGB(c)
	case Lab:
		rgb = LabToRGB(c)
	}

	switch to {
	case HSV:
		return RGBToHSV(rgb)
	case HSL:
		return RGBToHSL(rgb)
	case Lab:
		return RGBToLab(rgb)
	default:
		return rgb
	}
}

// Premultiply scales the color channels by alpha.
func Premultiply(c Color) Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiply reverses Premultiply. A fully transparent color yields
// zero in all channels rather than dividing by zero.
func Unpremultiply(c Color) Color {
	if c.A == 0 {
		return Color{}
	}
	return Color{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
