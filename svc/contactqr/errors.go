package contactqr

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid generator configuration")
	ErrEncoding      = errors.New("failed to encode QR code")
	ErrWrite         = errors.New("failed to write QR image")
)
