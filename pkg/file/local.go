package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage implements Storage on the local filesystem.
// All operations are confined to baseDir to prevent path traversal attacks.
type LocalStorage struct {
	baseDir      string        // Absolute path - all files stored within this directory
	baseURL      string        // URL prefix for files, e.g. "file:///srv/qr/" or "/files/"
	writeTimeout time.Duration // Optional timeout to prevent hanging writes
}

// LocalOption defines a function that configures LocalStorage.
type LocalOption func(*LocalStorage)

// WithLocalWriteTimeout sets the timeout for Put.
// If not set, relies on context deadline from caller.
func WithLocalWriteTimeout(timeout time.Duration) LocalOption {
	return func(s *LocalStorage) {
		s.writeTimeout = timeout
	}
}

// NewLocalStorage creates a local filesystem storage rooted at baseDir.
// The directory is not created until the first Put.
// baseURL is used for generating URLs; when empty, URL returns the
// absolute file path.
func NewLocalStorage(baseDir, baseURL string, opts ...LocalOption) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	// Must resolve to absolute path for security - prevents relative path confusion
	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve base directory: %v", ErrFailedToGetAbsolutePath, err)
	}

	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	s := &LocalStorage{
		baseDir: absBaseDir,
		baseURL: baseURL,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// BaseDir returns the absolute storage root.
func (s *LocalStorage) BaseDir() string {
	return s.baseDir
}

// Put writes data to a temporary file next to the target and renames it
// into place, so readers never observe a partial file.
func (s *LocalStorage) Put(ctx context.Context, path string, data []byte, contentType string) (*Object, error) {
	if s.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.writeTimeout)
		defer cancel()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	key, err := CleanKey(path)
	if err != nil {
		return nil, err
	}
	absPath, err := s.resolvePath(key)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateFile, err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	// Chunked copy with context checking - allows cancellation of large writes
	written := int64(0)
	src := bytes.NewReader(data)
	buf := make([]byte, 32*1024)
	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil, ctx.Err()
		default:
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			nw, writeErr := tmp.Write(buf[:n])
			if writeErr != nil {
				cleanup()
				return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, writeErr)
			}
			written += int64(nw)
		}
		if readErr == io.EOF {
			break
		}
	}

	if err := tmp.Chmod(0644); err != nil {
		cleanup()
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := os.Rename(tmpPath, absPath); err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	if contentType == "" {
		contentType = DetectContentType(data)
	}

	return &Object{
		Path:        key,
		URL:         s.URL(key),
		ContentType: contentType,
		Size:        written,
	}, nil
}

// Open opens the file at path for reading.
func (s *LocalStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	key, err := CleanKey(path)
	if err != nil {
		return nil, err
	}
	absPath, err := s.resolvePath(key)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	f, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	return f, nil
}

// Exists checks if a file or directory exists.
// Returns false for invalid paths or on context cancellation.
func (s *LocalStorage) Exists(ctx context.Context, path string) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}

	key, err := CleanKey(path)
	if err != nil {
		return false
	}
	absPath, err := s.resolvePath(key)
	if err != nil {
		return false
	}

	_, err = os.Stat(absPath)
	return err == nil
}

// URL returns the public URL for a file, or its absolute path when no
// base URL is configured.
func (s *LocalStorage) URL(path string) string {
	key, err := CleanKey(path)
	if err != nil {
		return ""
	}
	if s.baseURL == "" {
		return filepath.Join(s.baseDir, filepath.FromSlash(key))
	}
	return s.baseURL + key
}

// resolvePath validates and resolves a path within the base directory.
// Ensures all resolved paths stay within baseDir bounds using string prefix checking.
func (s *LocalStorage) resolvePath(path string) (string, error) {
	path = filepath.Clean(filepath.FromSlash(path))
	absPath := filepath.Join(s.baseDir, path)

	absPath, err := filepath.Abs(absPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	// Security check: ensure path stays within baseDir (prevents ../ attacks)
	if !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) && absPath != s.baseDir {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	return absPath, nil
}
