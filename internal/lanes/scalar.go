package lanes

// scalarOps is the per-pixel reference implementation. It is both the
// fallback strategy on hardware without lane support and the oracle the
// wide strategies are tested against.
type scalarOps struct{}

func (scalarOps) Name() string { return "scalar" }
func (scalarOps) Width() int   { return 1 }

func (scalarOps) Fill(pix []uint32, p uint32) {
	for i := range pix {
		pix[i] = p
	}
}

func (scalarOps) BlendOver(dst, src []uint32) {
	for i := range dst {
		dst[i] = blendPixel(dst[i], src[i])
	}
}

func (scalarOps) Tint(pix []uint32, t uint32) {
	tr := t >> 16 & 0xFF
	tg := t >> 8 & 0xFF
	tb := t & 0xFF
	ta := t >> 24 & 0xFF
	for i := range pix {
		pix[i] = tintPixel(pix[i], tr, tg, tb, ta)
	}
}

func (scalarOps) Grayscale(pix []uint32) {
	for i := range pix {
		pix[i] = grayPixel(pix[i])
	}
}
