package colorspace

import "math"

func mod(x, y float32) float32 {
	return float32(math.Mod(float64(x), float64(y)))
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// hueToRGB maps a hue sector plus chroma/intermediate values to the RGB
// primaries. Shared by the HSV and HSL inverses, which differ only in how
// chroma and the match offset are derived.
func hueToRGB(h, c, x float32) (r, g, b float32) {
	switch {
	case h < 60:
		return c, x, 0
	case h < 120:
		return x, c, 0
	case h < 180:
		return 0, c, x
	case h < 240:
		return 0, x, c
	case h < 300:
		return x, 0, c
	default:
		return c, 0, x
	}
}

// rgbHue computes the hue in degrees [0,360) from RGB channels and the
// max/delta of the channels.
func rgbHue(r, g, b, maxVal, delta float32) float32 {
	var h float32
	switch maxVal {
	case r:
		h = 60 * mod((g-b)/delta, 6)
	case g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h
}

// RGBToHSV converts an RGB color to HSV. The hue lands in the R channel
// normalized to [0,1] (degrees/360), saturation in G, value in B.
func RGBToHSV(c Color) Color {
	maxVal := max3(c.R, c.G, c.B)
	minVal := min3(c.R, c.G, c.B)
	delta := maxVal - minVal

	out := Color{A: c.A, B: maxVal}

	if maxVal != 0 {
		out.G = delta / maxVal
	}
	if delta != 0 {
		out.R = rgbHue(c.R, c.G, c.B, maxVal, delta) / 360
	}
	return out
}

// HSVToRGB converts an HSV color (hue normalized /360) to RGB.
func HSVToRGB(c Color) Color {
	h := c.R * 360
	s := c.G
	v := c.B

	if s == 0 {
		// Achromatic (grey).
		return Color{R: v, G: v, B: v, A: c.A}
	}

	chroma := v * s
	x := chroma * (1 - abs32(mod(h/60, 2)-1))
	m := v - chroma

	r, g, b := hueToRGB(h, chroma, x)
	return Color{R: r + m, G: g + m, B: b + m, A: c.A}
}

// RGBToHSL converts an RGB color to HSL. The hue lands in the R channel
// normalized to [0,1], saturation in G, lightness in B.
func RGBToHSL(c Color) Color {
	maxVal := max3(c.R, c.G, c.B)
	minVal := min3(c.R, c.G, c.B)
	delta := maxVal - minVal

	out := Color{A: c.A, B: (maxVal + minVal) / 2}

	if delta == 0 {
		return out
	}

	if out.B < 0.5 {
		out.G = delta / (maxVal + minVal)
	} else {
		out.G = delta / (2 - maxVal - minVal)
	}
	out.R = rgbHue(c.R, c.G, c.B, maxVal, delta) / 360
	return out
}

// HSLToRGB converts an HSL color (hue normalized /360) to RGB.
func HSLToRGB(c Color) Color {
	h := c.R * 360
	s := c.G
	l := c.B

	if s == 0 {
		return Color{R: l, G: l, B: l, A: c.A}
	}

	chroma := (1 - abs32(2*l-1)) * s
	x := chroma * (1 - abs32(mod(h/60, 2)-1))
	m := l - chroma/2

	r, g, b := hueToRGB(h, chroma, x)
	return Color{R: r + m, G: g + m, B: b + m, A: c.A}
}

// D65 reference white point.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// labF is the cube-root segment of the Lab transfer function with the
// linear toe below the (6/29)^3 threshold.
func labF(t float32) float32 {
	if t > 0.008856 {
		return float32(math.Cbrt(float64(t)))
	}
	return 7.787*t + 16.0/116.0
}

// labFInv inverts labF; the threshold 6/29 corresponds to labF's output
// at the toe boundary.
func labFInv(t float32) float32 {
	if t > 0.206897 {
		return t * t * t
	}
	return (t - 16.0/116.0) / 7.787
}

// RGBToLab converts an sRGB color to CIE L*a*b* via a linear-light XYZ
// intermediate under the D65 white point. The result is remapped so all
// channels land in [0,1]: L/100, (a+128)/256, (b+128)/256.
func RGBToLab(c Color) Color {
	// sRGB to linear light.
	r := SRGBToLinear(c.R)
	g := SRGBToLinear(c.G)
	b := SRGBToLinear(c.B)

	// Linear RGB to XYZ (standard sRGB matrix).
	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	x /= whiteX
	y /= whiteY
	z /= whiteZ

	fx := labF(x)
	fy := labF(y)
	fz := labF(z)

	l := 116*fy - 16
	a := 500 * (fx - fy)
	bb := 200 * (fy - fz)

	return Color{
		R: l / 100,
		G: (a + 128) / 256,
		B: (bb + 128) / 256,
		A: c.A,
	}
}

// LabToRGB inverts RGBToLab, undoing the [0,1] remap first.
func LabToRGB(c Color) Color {
	l := c.R * 100
	a := c.G*256 - 128
	b := c.B*256 - 128

	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	x := labFInv(fx) * whiteX
	y := labFInv(fy) * whiteY
	z := labFInv(fz) * whiteZ

	// XYZ to linear RGB.
	r := 3.2404542*x - 1.5371385*y - 0.4985314*z
	g := -0.9692660*x + 1.8760108*y + 0.0415560*z
	bl := 0.0556434*x - 0.2040259*y + 1.0572252*z

	return Color{
		R: clamp01(LinearToSRGB(r)),
		G: clamp01(LinearToSRGB(g)),
		B: clamp01(LinearToSRGB(bl)),
		A: c.A,
	}
}
