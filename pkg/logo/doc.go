// Package logo prepares a center logo for a QR code bitmap.
//
// It covers the three image steps around QR rendering: decoding the logo
// from storage, shrinking it to a size the code can survive, and
// compositing it onto the rendered code. Resampling, overlaying and
// encoding are done with github.com/disintegration/imaging; WebP and BMP
// inputs are decoded through golang.org/x/image.
//
// # Size policy
//
// The logo may occupy at most a quarter of the module area edge:
//
//	limit := logo.MaxSize(modules * boxSize)
//	fitted := logo.Fit(img, limit)
//
// Fit only ever shrinks. A logo already inside the bound is returned with
// its original dimensions and the aspect ratio is always preserved.
//
// # Compositing
//
// Composite places the logo at the integer center of the base image.
// Logos with an alpha channel are blended over the base; opaque logos
// replace the covered rectangle. The base keeps its size and position.
//
// # Error Handling
//
// Loading failures are reported with ErrNotFound, ErrDecode and ErrEmpty.
// They are meant to be recovered by callers that can proceed without a
// logo:
//
//	img, err := logo.Load(ctx, storage, "logo.png")
//	if errors.Is(err, logo.ErrNotFound) {
//		// continue without a logo
//	}
package logo
