package lanes

// u32x8 represents 8 packed pixels for SIMD-style operations.
// Fixed-size arrays with simple loops let the Go compiler auto-vectorize
// on AVX2-class hardware.
type u32x8 [8]uint32

// lane8 holds 8 pixels split into channels, Structure-of-Arrays layout.
// Operating on whole channel arrays keeps the inner loops branch-free and
// vectorizable.
type lane8 struct {
	r, g, b, a u32x8
}

func load8(pix []uint32) lane8 {
	var l lane8
	for i := 0; i < 8; i++ {
		p := pix[i]
		l.r[i] = p >> 16 & 0xFF
		l.g[i] = p >> 8 & 0xFF
		l.b[i] = p & 0xFF
		l.a[i] = p >> 24 & 0xFF
	}
	return l
}

func (l *lane8) store(pix []uint32) {
	for i := 0; i < 8; i++ {
		pix[i] = l.a[i]<<24 | l.r[i]<<16 | l.g[i]<<8 | l.b[i]
	}
}

// mulDiv255x8 computes a[i]*b[i]/255 element-wise.
func mulDiv255x8(a, b u32x8) u32x8 {
	var out u32x8
	for i := 0; i < 8; i++ {
		x := a[i] * b[i]
		out[i] = (x + 1 + (x >> 8)) >> 8
	}
	return out
}

// wide8Ops processes pixels in 8-wide lanes. Callers gate on an
// AVX2-class capability before selecting this strategy.
type wide8Ops struct{}

func (wide8Ops) Name() string { return "wide8" }
func (wide8Ops) Width() int   { return 8 }

func (wide8Ops) Fill(pix []uint32, p uint32) {
	var v u32x8
	for i := range v {
		v[i] = p
	}
	n := len(pix) &^ 7
	for i := 0; i < n; i += 8 {
		copy(pix[i:i+8], v[:])
	}
	for i := n; i < len(pix); i++ {
		pix[i] = p
	}
}

func (wide8Ops) BlendOver(dst, src []uint32) {
	n := len(dst) &^ 7
	for i := 0; i < n; i += 8 {
		s := load8(src[i:])
		d := load8(dst[i:])

		var inv u32x8
		for j := 0; j < 8; j++ {
			inv[j] = 255 - s.a[j]
		}

		var out lane8
		for j := 0; j < 8; j++ {
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

func (wide8Ops) Tint(pix []uint32, t uint32) {
	var tr, tg, tb, ta u32x8
	for i := 0; i < 8; i++ {
		tr[i] = t >> 16 & 0xFF
		tg[i] = t >> 8 & 0xFF
		tb[i] = t & 0xFF
		ta[i] = t >> 24 & 0xFF
	}

	n := len(pix) &^ 7
	for i := 0; i < n; i += 8 {
		l := load8(pix[i:])
		l.r = mulDiv255x8(l.r, tr)
		l.g = mulDiv255x8(l.g, tg)
		l.b = mulDiv255x8(l.b, tb)
		l.a = mulDiv255x8(l.a, ta)
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

// Grayscale has no 8-wide variant; the scalar transform is used as-is.
func (wide8Ops) Grayscale(pix []uint32) {
	scalarOps{}.Grayscale(pix)
}
