package file_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vcardqr/pkg/file"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestCleanKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "plain name", in: "qr.png", want: "qr.png"},
		{name: "leading slash is dropped", in: "/out/qr.png", want: "out/qr.png"},
		{name: "backslashes become slashes", in: `out\qr.png`, want: "out/qr.png"},
		{name: "dot segments collapse", in: "out/./qr.png", want: "out/qr.png"},
		{name: "parent segment is rejected", in: "../etc/passwd", wantErr: file.ErrInvalidPath},
		{name: "nested parent segment is rejected", in: "out/../../x.png", wantErr: file.ErrInvalidPath},
		{name: "empty key", in: "", wantErr: file.ErrEmptyPath},
		{name: "root only", in: "/", wantErr: file.ErrEmptyPath},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := file.CleanKey(tt.in)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "passwd", file.SanitizeFilename("../../../etc/passwd"))
	assert.Equal(t, "file.txt", file.SanitizeFilename(`C:\Windows\file.txt`))
	assert.Equal(t, "qr.png", file.SanitizeFilename("qr\x00.png"))
	assert.Equal(t, "unnamed", file.SanitizeFilename(""))
	assert.Equal(t, "unnamed", file.SanitizeFilename(".."))
}

func TestDetectContentType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "image/png", file.DetectContentType(pngMagic))
	assert.Equal(t, "application/octet-stream", file.DetectContentType(nil))
	assert.Equal(t, "text/plain; charset=utf-8", file.DetectContentType([]byte("BEGIN:VCARD")))
}
