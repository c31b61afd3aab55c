package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/vcardqr/pkg/file"
	"github.com/dmitrymomot/vcardqr/svc/contactqr"
)

const (
	storageLocal = "local"
	storageS3    = "s3"
)

type appConfig struct {
	QR       contactqr.Config
	Storage  storageConfig
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
}

type storageConfig struct {
	Driver string `env:"QR_STORAGE" envDefault:"local"`
	Dir    string `env:"QR_STORAGE_DIR" envDefault:"."`

	S3Bucket         string `env:"QR_S3_BUCKET"`
	S3Region         string `env:"QR_S3_REGION"`
	S3Endpoint       string `env:"QR_S3_ENDPOINT"`
	S3AccessKeyID    string `env:"QR_S3_ACCESS_KEY_ID"`
	S3SecretKey      string `env:"QR_S3_SECRET_KEY"`
	S3BaseURL        string `env:"QR_S3_BASE_URL"`
	S3ForcePathStyle bool   `env:"QR_S3_FORCE_PATH_STYLE"`
}

// newStorage builds the output backend. For the local driver an absolute
// output path is rooted at its own directory; the returned key is what
// the generator should write to.
func newStorage(ctx context.Context, sc storageConfig, output string) (file.Storage, string, error) {
	switch strings.ToLower(strings.TrimSpace(sc.Driver)) {
	case storageLocal, "":
		dir, key := sc.Dir, output
		if filepath.IsAbs(output) {
			dir, key = filepath.Dir(output), file.SanitizeFilename(filepath.Base(output))
		}
		s, err := file.NewLocalStorage(dir, "")
		if err != nil {
			return nil, "", err
		}
		return s, key, nil
	case storageS3:
		s, err := file.NewS3Storage(ctx, file.S3Config{
			Bucket:         sc.S3Bucket,
			Region:         sc.S3Region,
			AccessKeyID:    sc.S3AccessKeyID,
			SecretKey:      sc.S3SecretKey,
			Endpoint:       sc.S3Endpoint,
			BaseURL:        sc.S3BaseURL,
			ForcePathStyle: sc.S3ForcePathStyle,
		})
		if err != nil {
			return nil, "", err
		}
		return s, output, nil
	default:
		return nil, "", fmt.Errorf("%w: unknown storage driver %q", file.ErrInvalidConfig, sc.Driver)
	}
}

// newLogoSource roots a local store at the logo's directory so paths
// outside the working directory can be read. The returned key is the
// sanitized file name.
func newLogoSource(path string) (file.Storage, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", err
	}
	s, err := file.NewLocalStorage(filepath.Dir(abs), "")
	if err != nil {
		return nil, "", err
	}
	return s, file.SanitizeFilename(filepath.Base(abs)), nil
}
