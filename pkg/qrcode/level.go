package qrcode

import (
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// Level is a QR error-correction level.
type Level string

const (
	// LevelL recovers about 7% of the symbol.
	LevelL Level = "L"
	// LevelM recovers about 15% of the symbol.
	LevelM Level = "M"
	// LevelQ recovers about 25% of the symbol.
	LevelQ Level = "Q"
	// LevelH recovers about 30% of the symbol. Required when a logo is embedded.
	LevelH Level = "H"
)

// ParseLevel accepts level letters (case-insensitive) and the descriptive
// names low (L), medium (M), quartile (Q), and high or highest (H).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "low":
		return LevelL, nil
	case "m", "medium":
		return LevelM, nil
	case "q", "quartile":
		return LevelQ, nil
	case "h", "high", "highest":
		return LevelH, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

func (l Level) String() string {
	return string(l)
}

// Valid reports whether l is one of the four QR levels.
func (l Level) Valid() bool {
	switch l {
	case LevelL, LevelM, LevelQ, LevelH:
		return true
	}
	return false
}

func (l Level) recoveryLevel() (skipqrcode.RecoveryLevel, error) {
	switch l {
	case LevelL:
		return skipqrcode.Low, nil
	case LevelM:
		return skipqrcode.Medium, nil
	case LevelQ:
		return skipqrcode.High, nil
	case LevelH:
		return skipqrcode.Highest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, string(l))
	}
}
