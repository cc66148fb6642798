package pix

import (
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.PixelAt(x, y).Color()
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage converts the surface to an image.NRGBA.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := Unpack(s.pix[y*s.stride+x])
			i := y*img.Stride + x*4
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}

// FromImage creates a surface from an image.
func FromImage(img image.Image) (*Surface, error) {
	bounds := img.Bounds()
	s, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return s, nil
}

// ScaleTo scales the surface into dst, which may have different
// dimensions. Used when presenting an offscreen surface into a
// framebuffer whose mode does not match the surface size.
func (s *Surface) ScaleTo(dst *Surface) error {
	if dst == nil || dst.pix == nil {
		return ErrInvalidParam
	}
	src := s.ToImage()
	out := image.NewNRGBA(image.Rect(0, 0, dst.width, dst.height))
	xdraw.ApproxBiLinear.Scale(out, out.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	for y := 0; y < dst.height; y++ {
		for x := 0; x < dst.width; x++ {
			i := y*out.Stride + x*4
			dst.pix[y*dst.stride+x] = Color{
				R: out.Pix[i+0],
				G: out.Pix[i+1],
				B: out.Pix[i+2],
				A: out.Pix[i+3],
			}.Packed()
		}
	}
	return nil
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s.ToImage())
}
