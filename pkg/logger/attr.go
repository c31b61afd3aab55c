package logger

import (
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Path records a file path or storage key under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// URL records a public location under the key "url".
// If u is empty, it returns an empty Attr.
func URL(u string) slog.Attr {
	if u == "" {
		return slog.Attr{}
	}
	return slog.String("url", u)
}

// ModuleCount records the QR grid edge in modules under the key "modules".
func ModuleCount(n int) slog.Attr {
	return slog.Int("modules", n)
}

// Region records a module rectangle under the key "region".
// If r is nil, it returns an empty Attr.
func Region(r fmt.Stringer) slog.Attr {
	if r == nil {
		return slog.Attr{}
	}
	return slog.String("region", r.String())
}

// Fraction records a ratio under key, rounded to four decimals.
func Fraction(key string, f float64) slog.Attr {
	return slog.Float64(key, math.Round(f*1e4)/1e4)
}

// Size records pixel dimensions under the key "size" as "WxH".
func Size(w, h int) slog.Attr {
	return slog.String("size", fmt.Sprintf("%dx%d", w, h))
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
