package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vcardqr/pkg/file"
	"github.com/dmitrymomot/vcardqr/svc/contactqr"
)

type runResult struct {
	stdout string
	stderr string
	err    error
}

func runApp(t *testing.T, environ map[string]string, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr, environ)
	err := app.RunContext(context.Background(), append([]string{"vcardqr"}, args...))
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeLogo(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+3] = 0xff, 0xff
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestApp(t *testing.T) {
	t.Parallel()

	t.Run("stores the code with a logo", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeLogo(t, filepath.Join(dir, "brand.png"))

		r := runApp(t, map[string]string{"QR_STORAGE_DIR": dir},
			"--logo", filepath.Join(dir, "brand.png"), "--output", "card.png")
		require.NoError(t, r.err)

		assert.Contains(t, r.stdout, "QR code saved to card.png")
		assert.Contains(t, r.stdout, "logo embedded: 64x64px")
		assert.FileExists(t, filepath.Join(dir, "card.png"))
		assert.Contains(t, r.stderr, "run_id=")
	})

	t.Run("missing logo still produces a code", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		r := runApp(t, map[string]string{"QR_STORAGE_DIR": dir},
			"--logo", filepath.Join(dir, "missing.png"))
		require.NoError(t, r.err)

		assert.Contains(t, r.stdout, "generated without logo")
		assert.Contains(t, r.stderr, "logo unavailable")
		assert.FileExists(t, filepath.Join(dir, "contact_qr_final.png"))
	})

	t.Run("absolute output path", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		out := filepath.Join(dir, "abs.jpg")

		r := runApp(t, map[string]string{}, "--no-logo", "--output", out)
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "logo disabled")
		assert.FileExists(t, out)
	})

	t.Run("data uri goes to stdout", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		r := runApp(t, map[string]string{"QR_STORAGE_DIR": dir}, "--no-logo", "--data-uri")
		require.NoError(t, r.err)

		assert.True(t, strings.HasPrefix(r.stdout, "data:image/png;base64,"))
		assert.Equal(t, 1, strings.Count(r.stdout, "\n"))
		assert.NoFileExists(t, filepath.Join(dir, "contact_qr_final.png"))
	})

	t.Run("env file and flags", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		envFile := filepath.Join(dir, "qr.env")
		require.NoError(t, os.WriteFile(envFile, []byte(
			"QR_USE_LOGO=false\nQR_OUTPUT_PATH=from-env.png\nQR_SHAPE=circle\nQR_STORAGE_DIR="+dir+"\n",
		), 0644))

		r := runApp(t, map[string]string{}, "--env-file", envFile, "--box-size", "4", "--border", "2")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "QR code saved to from-env.png")

		f, err := os.Open(filepath.Join(dir, "from-env.png"))
		require.NoError(t, err)
		defer f.Close()
		cfg, err := png.DecodeConfig(f)
		require.NoError(t, err)
		assert.Equal(t, cfg.Width, cfg.Height)
		assert.Zero(t, cfg.Width%4)
	})

	t.Run("contact from yaml", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		contact := filepath.Join(dir, "jane.yaml")
		require.NoError(t, os.WriteFile(contact, []byte(
			"first_name: Jane\nlast_name: Doe\nemail: jane@example.com\n",
		), 0644))

		r := runApp(t, map[string]string{"QR_STORAGE_DIR": dir}, "--no-logo", "--uid", "--contact", contact)
		require.NoError(t, r.err)
		assert.FileExists(t, filepath.Join(dir, "contact_qr_final.png"))
	})

	t.Run("missing contact file fails", func(t *testing.T) {
		t.Parallel()
		r := runApp(t, map[string]string{"QR_STORAGE_DIR": t.TempDir()}, "--contact", "/nonexistent/contact.yaml")
		assert.True(t, errors.Is(r.err, os.ErrNotExist))
	})

	t.Run("invalid level fails", func(t *testing.T) {
		t.Parallel()
		r := runApp(t, map[string]string{"QR_STORAGE_DIR": t.TempDir()}, "--no-logo", "--level", "Z")
		assert.True(t, errors.Is(r.err, contactqr.ErrInvalidConfig))
	})

	t.Run("unknown storage driver fails", func(t *testing.T) {
		t.Parallel()
		r := runApp(t, map[string]string{"QR_STORAGE": "ftp"}, "--no-logo")
		assert.True(t, errors.Is(r.err, file.ErrInvalidConfig))
	})

	t.Run("s3 without bucket fails", func(t *testing.T) {
		t.Parallel()
		r := runApp(t, map[string]string{"QR_STORAGE": "s3", "QR_S3_REGION": "us-east-1"}, "--no-logo")
		assert.True(t, errors.Is(r.err, file.ErrInvalidConfig))
	})
}
