// Package file stores generated images on the local filesystem or in an
// S3-compatible bucket.
//
// The Storage interface is deliberately small: put a byte slice under a
// key, open a key for reading, check existence and build a public URL.
// Keys are slash-separated and relative to the storage root.
//
// Two implementations are provided:
//   - LocalStorage: a directory on disk; writes go through a temporary
//     file and a rename so a reader never sees a half-written image
//   - S3Storage: AWS S3 and S3-compatible services (MinIO, Wasabi, etc.)
//
// # Usage
//
//	storage, err := file.NewLocalStorage("./out", "")
//	if err != nil {
//		return err
//	}
//
//	obj, err := storage.Put(ctx, "contact_qr_final.png", pngBytes, "image/png")
//	if err != nil {
//		return err
//	}
//	fmt.Println(obj.URL)
//
// Using S3 storage:
//
//	storage, err := file.NewS3Storage(ctx, file.S3Config{
//		Bucket:      "my-bucket",
//		Region:      "us-east-1",
//		AccessKeyID: "key",
//		SecretKey:   "secret",
//	})
//	if err != nil {
//		return err
//	}
//
//	rc, err := storage.Open(ctx, "branding/logo.png")
//
// # Security Considerations
//
// Keys containing ".." segments are rejected with ErrInvalidPath and
// LocalStorage additionally verifies the resolved path stays inside its
// base directory.
//
// # Error Handling
//
// S3 errors are mapped to the package errors so callers can handle both
// backends the same way:
//   - NoSuchKey, NotFound -> ErrFileNotFound
//   - NoSuchBucket -> ErrBucketNotFound
//   - AccessDenied -> ErrAccessDenied
//   - context deadline -> ErrOperationTimeout
//
//	rc, err := storage.Open(ctx, "logo.png")
//	if errors.Is(err, file.ErrFileNotFound) {
//		// fall back
//	}
package file
