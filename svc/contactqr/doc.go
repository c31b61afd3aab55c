// Package contactqr runs the contact QR pipeline: encode a vCard payload,
// clear the center of the module grid for a logo, render the bitmap,
// composite the logo and store the image.
//
// A missing or unreadable logo never fails a run. The generator logs a
// warning, records it in Result.LogoWarning and produces a plain code.
// Encoding and storage failures are returned as ErrEncoding and ErrWrite.
//
//	gen, err := contactqr.New(contactqr.DefaultConfig(),
//		contactqr.WithStorage(out),
//		contactqr.WithLogoSource(assets),
//		contactqr.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	res, err := gen.Generate(ctx, payload)
package contactqr
