package logo

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// MaxSize returns the largest logo edge allowed on a code whose module
// area is qrImageSize pixels wide.
func MaxSize(qrImageSize int) int {
	return qrImageSize / 4
}

// FitSize returns the dimensions of a w×h logo shrunk so that neither side
// exceeds limit. Dimensions already within limit are returned unchanged. The
// shorter side is rounded and never drops below one pixel.
func FitSize(w, h, limit int) (int, int) {
	if w <= 0 || h <= 0 || limit <= 0 {
		return 0, 0
	}
	if w <= limit && h <= limit {
		return w, h
	}

	if w >= h {
		return limit, scaleSide(h, limit, w)
	}
	return scaleSide(w, limit, h), limit
}

func scaleSide(side, limit, longer int) int {
	v := int(math.Round(float64(side) * float64(limit) / float64(longer)))
	if v < 1 {
		return 1
	}
	return v
}

// Fit returns img shrunk with Lanczos resampling to fit in a limit×limit
// square. A logo that already fits is copied without resampling.
func Fit(img image.Image, limit int) *image.NRGBA {
	b := img.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), limit)
	if w == 0 || h == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	if w == b.Dx() && h == b.Dy() {
		return imaging.Clone(img)
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}
