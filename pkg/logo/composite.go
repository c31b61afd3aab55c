package logo

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Offset returns the top-left point that centers logo inside base,
// using integer division like the module mask does.
func Offset(base, logo image.Rectangle) image.Point {
	return image.Pt(
		base.Min.X+(base.Dx()-logo.Dx())/2,
		base.Min.Y+(base.Dy()-logo.Dy())/2,
	)
}

// Composite draws logo centered on base and returns the result with the
// bounds of base. Translucent logo pixels are blended with what is below;
// a logo without alpha covers its full rectangle.
func Composite(base, logo image.Image) *image.NRGBA {
	if logo == nil || logo.Bounds().Empty() {
		return imaging.Clone(base)
	}

	pos := Offset(base.Bounds(), logo.Bounds())
	if !HasAlpha(logo) {
		return imaging.Paste(base, logo, pos)
	}
	return imaging.Overlay(base, logo, pos, 1.0)
}

// HasAlpha reports whether img's color model carries transparency.
func HasAlpha(img image.Image) bool {
	m := img.ColorModel()
	if p, ok := m.(color.Palette); ok {
		for _, c := range p {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	}

	switch m {
	case color.NRGBAModel, color.RGBAModel, color.NRGBA64Model, color.RGBA64Model,
		color.AlphaModel, color.Alpha16Model:
		return true
	}
	return false
}
