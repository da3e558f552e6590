// Package avatar derives and stores profile pictures.
//
// Every account gets a default avatar derived deterministically from the
// email via the DiceBear service; authenticated users can replace it with an
// uploaded picture, held in an S3-compatible bucket.
package avatar

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/url"

	"github.com/disintegration/imaging"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/mritunjay-thakur/clothify/internal/config"
)

var (
	ErrUploadFailed = errors.New("upload failed")
	ErrInvalidImage = errors.New("invalid image")
	ErrNoStorage    = errors.New("avatar storage not configured")
)

// maxDimension bounds uploaded pictures; larger images are fit-resized.
const maxDimension = 256

// DefaultURL derives the DiceBear avatar URL for an email. The seed is the
// email exactly as provided, unescaped — the existing frontend expects the
// raw value in the query string.
func DefaultURL(email string) string {
	return "https://api.dicebear.com/9.x/avataaars/svg?seed=" + email
}

// Service stores uploaded profile pictures. The zero-storage case (no MinIO
// reachable) still serves default avatars; only uploads fail.
type Service struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

func NewService(cfg config.MinioConfig) *Service {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		client = nil
	}
	return &Service{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: cfg.Endpoint,
		useSSL:   cfg.UseSSL,
	}
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *Service) EnsureBucket(ctx context.Context) error {
	if s.client == nil {
		return ErrNoStorage
	}
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	}
	return nil
}

// Upload normalizes an uploaded picture (fit within 256px, re-encoded as
// JPEG) and stores it under the user's identifier, returning the public URL.
func (s *Service) Upload(ctx context.Context, userID string, r io.Reader) (string, error) {
	if s.client == nil {
		return "", ErrNoStorage
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	normalized, err := normalize(data)
	if err != nil {
		return "", err
	}

	object := ObjectName(userID)
	_, err = s.client.PutObject(ctx, s.bucket, object,
		bytes.NewReader(normalized), int64(len(normalized)),
		minio.PutObjectOptions{ContentType: "image/jpeg"})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return s.publicURL(object), nil
}

// Delete removes a stored picture. Missing objects are not an error.
func (s *Service) Delete(ctx context.Context, userID string) error {
	if s.client == nil {
		return nil
	}
	return s.client.RemoveObject(ctx, s.bucket, ObjectName(userID), minio.RemoveObjectOptions{})
}

// ObjectName is the bucket key for a user's uploaded picture.
func ObjectName(userID string) string {
	return "avatars/" + userID + ".jpg"
}

func (s *Service) publicURL(object string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return (&url.URL{
		Scheme: scheme,
		Host:   s.endpoint,
		Path:   "/" + s.bucket + "/" + object,
	}).String()
}

func normalize(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	resized := imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
