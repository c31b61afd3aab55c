package file_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vcardqr/pkg/file"
)

// MockS3Client is a mock implementation of the S3Client interface
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func (m *MockS3Client) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.HeadObjectOutput), args.Error(1)
}

func newMockStorage(t *testing.T, client *MockS3Client, opts ...file.S3Option) *file.S3Storage {
	t.Helper()
	opts = append([]file.S3Option{file.WithS3Client(client)}, opts...)
	storage, err := file.NewS3Storage(context.Background(), file.S3Config{
		Bucket: "test-bucket",
		Region: "us-east-1",
	}, opts...)
	require.NoError(t, err)
	return storage
}

func TestNewS3Storage(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		storage, err := file.NewS3Storage(context.Background(), file.S3Config{
			Bucket:      "test-bucket",
			Region:      "us-east-1",
			AccessKeyID: "test-key",
			SecretKey:   "test-secret",
		})
		require.NoError(t, err)
		require.NotNil(t, storage)
		assert.Equal(t, "https://test-bucket.s3.us-east-1.amazonaws.com/qr.png", storage.URL("qr.png"))
	})

	t.Run("with custom endpoint", func(t *testing.T) {
		t.Parallel()
		storage, err := file.NewS3Storage(context.Background(), file.S3Config{
			Bucket:         "test-bucket",
			Region:         "us-east-1",
			Endpoint:       "http://localhost:9000/",
			ForcePathStyle: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/test-bucket/qr.png", storage.URL("/qr.png"))
	})

	t.Run("with custom base URL", func(t *testing.T) {
		t.Parallel()
		storage, err := file.NewS3Storage(context.Background(), file.S3Config{
			Bucket:  "test-bucket",
			Region:  "us-east-1",
			BaseURL: "https://cdn.example.com",
		}, file.WithS3Client(new(MockS3Client)))
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/cards/qr.png", storage.URL("cards/qr.png"))
	})

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()
		_, err := file.NewS3Storage(context.Background(), file.S3Config{Region: "us-east-1"})
		assert.True(t, errors.Is(err, file.ErrInvalidConfig))
	})

	t.Run("missing region", func(t *testing.T) {
		t.Parallel()
		_, err := file.NewS3Storage(context.Background(), file.S3Config{Bucket: "test-bucket"})
		assert.True(t, errors.Is(err, file.ErrInvalidConfig))
	})
}

func TestS3Storage_Put(t *testing.T) {
	t.Parallel()

	t.Run("successful put", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("PutObject",
			mock.Anything,
			mock.MatchedBy(func(params *s3.PutObjectInput) bool {
				return aws.ToString(params.Bucket) == "test-bucket" &&
					aws.ToString(params.Key) == "cards/qr.png" &&
					params.Body != nil &&
					aws.ToString(params.ContentType) == "image/png" &&
					aws.ToInt64(params.ContentLength) == int64(len(pngMagic))
			}),
			mock.Anything,
		).Return(&s3.PutObjectOutput{}, nil)

		storage := newMockStorage(t, client)

		obj, err := storage.Put(context.Background(), "/cards/qr.png", pngMagic, "")
		require.NoError(t, err)
		assert.Equal(t, "cards/qr.png", obj.Path)
		assert.Equal(t, "image/png", obj.ContentType)
		assert.Equal(t, int64(len(pngMagic)), obj.Size)
		assert.Equal(t, "https://test-bucket.s3.us-east-1.amazonaws.com/cards/qr.png", obj.URL)

		client.AssertExpectations(t)
	})

	t.Run("path traversal attempt", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		// path validation fails before S3 is called
		storage := newMockStorage(t, client)

		obj, err := storage.Put(context.Background(), "../../../etc/passwd", []byte("x"), "")
		assert.Nil(t, obj)
		assert.True(t, errors.Is(err, file.ErrInvalidPath))

		client.AssertExpectations(t)
	})

	t.Run("access denied", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "Access Denied"})

		storage := newMockStorage(t, client)

		_, err := storage.Put(context.Background(), "qr.png", pngMagic, "image/png")
		assert.True(t, errors.Is(err, file.ErrAccessDenied))

		client.AssertExpectations(t)
	})

	t.Run("upload timeout", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, context.DeadlineExceeded).Run(func(args mock.Arguments) {
			time.Sleep(20 * time.Millisecond)
		})

		storage := newMockStorage(t, client, file.WithS3UploadTimeout(5*time.Millisecond))

		_, err := storage.Put(context.Background(), "qr.png", pngMagic, "image/png")
		assert.True(t, errors.Is(err, file.ErrOperationTimeout))

		client.AssertExpectations(t)
	})
}

func TestS3Storage_Open(t *testing.T) {
	t.Parallel()

	t.Run("returns object body", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("GetObject",
			mock.Anything,
			mock.MatchedBy(func(params *s3.GetObjectInput) bool {
				return aws.ToString(params.Bucket) == "test-bucket" && aws.ToString(params.Key) == "brand/logo.png"
			}),
			mock.Anything,
		).Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("logo-bytes"))}, nil)

		storage := newMockStorage(t, client)

		rc, err := storage.Open(context.Background(), "brand/logo.png")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "logo-bytes", string(data))

		client.AssertExpectations(t)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &types.NoSuchKey{Message: aws.String("The specified key does not exist")})

		storage := newMockStorage(t, client)

		_, err := storage.Open(context.Background(), "logo.png")
		assert.True(t, errors.Is(err, file.ErrFileNotFound))

		client.AssertExpectations(t)
	})

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &types.NoSuchBucket{})

		storage := newMockStorage(t, client)

		_, err := storage.Open(context.Background(), "logo.png")
		assert.True(t, errors.Is(err, file.ErrBucketNotFound))
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, context.Canceled)

		storage := newMockStorage(t, client)

		_, err := storage.Open(context.Background(), "logo.png")
		assert.True(t, errors.Is(err, file.ErrOperationCanceled))
	})
}

func TestS3Storage_Exists(t *testing.T) {
	t.Parallel()

	client := new(MockS3Client)
	client.On("HeadObject", mock.Anything,
		mock.MatchedBy(func(p *s3.HeadObjectInput) bool { return aws.ToString(p.Key) == "here.png" }),
		mock.Anything,
	).Return(&s3.HeadObjectOutput{}, nil)
	client.On("HeadObject", mock.Anything,
		mock.MatchedBy(func(p *s3.HeadObjectInput) bool { return aws.ToString(p.Key) == "gone.png" }),
		mock.Anything,
	).Return(nil, &types.NotFound{})

	storage := newMockStorage(t, client)

	assert.True(t, storage.Exists(context.Background(), "here.png"))
	assert.False(t, storage.Exists(context.Background(), "gone.png"))
	assert.False(t, storage.Exists(context.Background(), "../here.png"))

	client.AssertExpectations(t)
}
