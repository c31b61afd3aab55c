package file

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
)

// Object describes a stored file.
type Object struct {
	Path        string // Key relative to the storage root
	URL         string
	ContentType string
	Size        int64
}

// Storage is a flat key/value file store backed by a directory or a bucket.
type Storage interface {
	// Put writes data under path, replacing any existing file.
	Put(ctx context.Context, path string, data []byte, contentType string) (*Object, error)
	// Open returns a reader for the file at path. Callers must close it.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// Exists checks if a file exists.
	Exists(ctx context.Context, path string) bool
	// URL returns the public URL for a file.
	URL(path string) string
}

// DetectContentType sniffs the MIME type of data from its magic bytes.
// Falls back to application/octet-stream.
func DetectContentType(data []byte) string {
	if len(data) == 0 {
		return "application/octet-stream"
	}
	// http.DetectContentType reads at most 512 bytes
	if len(data) > 512 {
		data = data[:512]
	}
	return http.DetectContentType(data)
}

// CleanKey normalizes a storage key to forward slashes without a leading
// slash. Keys escaping the root with ".." are rejected.
func CleanKey(p string) (string, error) {
	p = strings.ReplaceAll(p, "\\", "/")
	if p == "" {
		return "", ErrEmptyPath
	}
	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %s", ErrInvalidPath, p)
		}
	}

	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "" || p == "." {
		return "", ErrEmptyPath
	}
	return p, nil
}

// SanitizeFilename removes any path components and dangerous characters from a filename.
// Returns "unnamed" for empty or special directory references.
//
// Example:
//
//	safe := file.SanitizeFilename("../../../etc/passwd") // Returns "passwd"
//	safe = file.SanitizeFilename("C:\\Windows\\file.txt") // Returns "file.txt"
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = path.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}
