package lanes

// u32x4 represents 4 packed pixels for SIMD-style operations on
// NEON-class hardware.
type u32x4 [4]uint32

// lane4 holds 4 pixels split into channels, Structure-of-Arrays layout.
type lane4 struct {
	r, g, b, a u32x4
}

func load4(pix []uint32) lane4 {
	var l lane4
	for i := 0; i < 4; i++ {
		p := pix[i]
		l.r[i] = p >> 16 & 0xFF
		l.g[i] = p >> 8 & 0xFF
		l.b[i] = p & 0xFF
		l.a[i] = p >> 24 & 0xFF
	}
	return l
}

func (l *lane4) store(pix []uint32) {
	for i := 0; i < 4; i++ {
		pix[i] = l.a[i]<<24 | l.r[i]<<16 | l.g[i]<<8 | l.b[i]
	}
}

// mulDiv255x4 computes a[i]*b[i]/255 element-wise.
func mulDiv255x4(a, b u32x4) u32x4 {
	var out u32x4
	for i := 0; i < 4; i++ {
		x := a[i] * b[i]
		out[i] = (x + 1 + (x >> 8)) >> 8
	}
	return out
}

// wide4Ops processes pixels in 4-wide lanes. Callers gate on a
// NEON-class capability before selecting this strategy. This is the only
// wide strategy with a dedicated luminance transform.
type wide4Ops struct{}

func (wide4Ops) Name() string { return "wide4" }
func (wide4Ops) Width() int   { return 4 }

func (wide4Ops) Fill(pix []uint32, p uint32) {
	var v u32x4
	for i := range v {
		v[i] = p
	}
	n := len(pix) &^ 3
	for i := 0; i < n; i += 4 {
		copy(pix[i:i+4], v[:])
	}
	for i := n; i < len(pix); i++ {
		pix[i] = p
	}
}

func (wide4Ops) BlendOver(dst, src []uint32) {
	n := len(dst) &^ 3
	for i := 0; i < n; i += 4 {
		s := load4(src[i:])
		d := load4(dst[i:])

		var inv u32x4
		for j := 0; j < 4; j++ {
			inv[j] = 255 - s.a[j]
		}

		var out lane4
		for j := 0; j < 4; j++ {
			x := s.r[j]*s.a[j] + d.r[j]*inv[j]
			out.r[j] = (x + 1 + (x >> 8)) >> 8
			x = s.g[j]*s.a[j] + d.g[j]*inv[j]
			out.g[j] = (x + 1 + (x >> 8)) >> 8
			x = s.b[j]*s.a[j] + d.b[j]*inv[j]
			out.b[j] = (x + 1 + (x >> 8)) >> 8
		}
		out.a = s.a
		out.store(dst[i:])
	}
	for i := n; i < len(dst); i++ {
		dst[i] = blendPixel(dst[i], src[i])
	}
}

func (wide4Ops) Tint(pix []uint32, t uint32) {
	var tr, tg, tb, ta u32x4
	for i := 0; i < 4; i++ {
		tr[i] = t >> 16 & 0xFF
		tg[i] = t >> 8 & 0xFF
		tb[i] = t & 0xFF
		ta[i] = t >> 24 & 0xFF
	}

	n := len(pix) &^ 3
	for i := 0; i < n; i += 4 {
		l := load4(pix[i:])
		l.r = mulDiv255x4(l.r, tr)
		l.g = mulDiv255x4(l.g, tg)
		l.b = mulDiv255x4(l.b, tb)
		l.a = mulDiv255x4(l.a, ta)
		l.store(pix[i:])
	}

	ptr := t >> 16 & 0xFF
	ptg := t >> 8 & 0xFF
	ptb := t & 0xFF
	pta := t >> 24 & 0xFF
	for i := n; i < len(pix); i++ {
		pix[i] = tintPixel(pix[i], ptr, ptg, ptb, pta)
	}
}

func (wide4Ops) Grayscale(pix []uint32) {
	// BT.601 fixed-point weights: R=77, G=150, B=29 (sum 256).
	n := len(pix) &^ 3
	for i := 0; i < n; i += 4 {
		l := load4(pix[i:])
		var y u32x4
		for j := 0; j < 4; j++ {
			y[j] = (l.r[j]*77 + l.g[j]*150 + l.b[j]*29) >> 8
		}
		l.r, l.g, l.b = y, y, y
		l.store(pix[i:])
	}
	for i := n; i < len(pix); i++ {
		pix[i] = grayPixel(pix[i])
	}
}
