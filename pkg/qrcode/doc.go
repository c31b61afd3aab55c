// Package qrcode turns text into a QR module grid, punches a centered blank
// region into that grid for a logo, and rasterizes the grid into an image.
//
// Encoding is delegated to github.com/skip2/go-qrcode. The package only owns
// what sits on top of the encoder: the Grid data structure, the logo mask
// policy and a small renderer that paints modules with two solid colors.
//
// # Architecture
//
// The flow is strictly linear:
//
//   - Encode builds a Grid (N×N, true = dark module) without a quiet zone.
//   - MaskForLogo computes the logo footprint in modules, centers a Region on
//     the grid and clears every in-bounds module inside it.
//   - Renderer.Render paints the grid, optionally surrounded by a border of
//     background modules, into an *image.NRGBA.
//
// The Grid is owned by the caller for the whole run. MaskForLogo mutates it
// in place; nothing else does.
//
// # Usage
//
//	import "github.com/dmitrymomot/vcardqr/pkg/qrcode"
//
//	grid, err := qrcode.Encode(card, qrcode.LevelH)
//	if err != nil {
//		// handle error
//	}
//
//	mask := qrcode.MaskForLogo(grid, logoW, logoH, 10)
//	if mask.Fraction > qrcode.MaxClearFraction {
//		// the logo is likely too big for the error-correction budget
//	}
//
//	r, err := qrcode.NewRenderer(
//		qrcode.WithBoxSize(10),
//		qrcode.WithFillColor(color.Black),
//		qrcode.WithBackColor(color.White),
//	)
//	img := r.Render(grid)
//
// # Mask policy
//
// The footprint is round(logo/box)+2 modules on each axis, the extra two
// modules leaving a one-module margin around the logo. No bound is placed on
// the cleared area: callers must encode at LevelH and keep the logo at most a
// quarter of the QR width, which keeps the cleared fraction around or under
// MaxClearFraction. Mask.Fraction reports the actual share so callers can warn.
//
// # Error Handling
//
// Errors are package-level sentinels, compare them with errors.Is:
//
//   - ErrEmptyContent   – the content argument was empty.
//   - ErrEncoding       – the payload does not fit any QR version.
//   - ErrInvalidLevel   – unknown error-correction level name.
//   - ErrInvalidColor   – color string could not be parsed.
//   - ErrInvalidBoxSize – box size is not positive.
//   - ErrInvalidBorder  – border is negative.
//   - ErrInvalidShape   – unknown module shape.
package qrcode
