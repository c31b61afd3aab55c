package logo

import "errors"

var (
	// Loading errors. Callers may recover from these by skipping the logo.
	ErrNotFound = errors.New("logo not found")
	ErrOpen     = errors.New("failed to open logo")
	ErrEmpty    = errors.New("logo file is empty")
	ErrDecode   = errors.New("failed to decode logo")

	// Output errors
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrEncode            = errors.New("failed to encode image")
)
