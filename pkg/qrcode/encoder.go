package qrcode

import (
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// Encode builds the module grid for content at the given error-correction level.
// The grid has no quiet zone; borders are added by the Renderer.
// The smallest QR version that fits the payload is chosen by the encoder, so
// the grid size is not controlled by the caller.
func Encode(content string, level Level) (*Grid, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	rl, err := level.recoveryLevel()
	if err != nil {
		return nil, err
	}

	q, err := skipqrcode.New(content, rl)
	if err != nil {
		return nil, errors.Join(ErrEncoding, err)
	}
	q.DisableBorder = true

	return GridFromRows(q.Bitmap()), nil
}

// Version returns the QR version for a grid produced by Encode,
// derived from size = 4*version + 17. Returns 0 for sizes that are not
// a valid QR symbol.
func Version(g *Grid) int {
	n := g.Size()
	if n < 21 || (n-17)%4 != 0 {
		return 0
	}
	return (n - 17) / 4
}
