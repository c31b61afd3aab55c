package qrcode

import "errors"

var (
	// ErrEmptyContent is returned when content string is empty or only whitespace
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrEncoding is returned when the payload cannot be encoded at the requested level.
	ErrEncoding = errors.New("failed to encode QR code")

	ErrInvalidLevel   = errors.New("invalid error correction level")
	ErrInvalidColor   = errors.New("invalid color")
	ErrInvalidBoxSize = errors.New("box size must be positive")
	ErrInvalidBorder  = errors.New("border cannot be negative")
	ErrInvalidShape   = errors.New("invalid module shape")
)
