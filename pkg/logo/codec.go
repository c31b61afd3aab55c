package logo

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/dmitrymomot/vcardqr/pkg/file"
)

// Opener opens a named resource for reading. file.Storage satisfies it.
type Opener interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Load opens name from src and decodes it.
func Load(ctx context.Context, src Opener, name string) (image.Image, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		if errors.Is(err, file.ErrFileNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, errors.Join(ErrOpen, err)
	}
	defer rc.Close()

	return Decode(rc)
}

// Decode reads a PNG, JPEG, GIF, BMP, TIFF or WebP image. EXIF orientation
// of JPEG input is applied.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrOpen, err)
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return img, nil
}

// FormatFor picks the output format from the file extension of name.
// A name without extension is written as PNG.
func FormatFor(name string) (imaging.Format, error) {
	if filepath.Ext(name) == "" {
		return imaging.PNG, nil
	}
	f, err := imaging.FormatFromFilename(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(name))
	}
	return f, nil
}

// ContentType returns the MIME type for f.
func ContentType(f imaging.Format) string {
	switch f {
	case imaging.JPEG:
		return "image/jpeg"
	case imaging.GIF:
		return "image/gif"
	case imaging.TIFF:
		return "image/tiff"
	case imaging.BMP:
		return "image/bmp"
	default:
		return "image/png"
	}
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f imaging.Format) error {
	if err := imaging.Encode(w, img, f, imaging.JPEGQuality(95)); err != nil {
		return errors.Join(ErrEncode, err)
	}
	return nil
}

// EncodeBytes encodes img in the format matching name.
func EncodeBytes(img image.Image, name string) ([]byte, imaging.Format, error) {
	f, err := FormatFor(name)
	if err != nil {
		return nil, 0, err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img, f); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), f, nil
}

// DataURI encodes img as PNG and returns it as a base64 data URI,
// ready for an <img src> attribute.
func DataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, imaging.PNG); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("data:image/png;base64,")
	sb.WriteString(base64.StdEncoding.EncodeToString(buf.Bytes()))
	return sb.String(), nil
}
