package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ErrNotImage is returned when the uploaded file's declared content type is
// not image/*.
var ErrNotImage = errors.New("file must be an image")

// ObjectPutter is the slice of the S3 client the upload service needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// UploadService stores an uploaded image in object storage and returns a
// publicly resolvable URL.
type UploadService interface {
	UploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error)
}

type uploadService struct {
	client   ObjectPutter
	bucket   string
	prefix   string
	endpoint string
}

// NewUploadService wires an S3-backed UploadService. endpoint may be empty,
// in which case the standard S3 URL form is returned.
func NewUploadService(client ObjectPutter, bucket, prefix, endpoint string) UploadService {
	return &uploadService{
		client:   client,
		bucket:   bucket,
		prefix:   prefix,
		endpoint: endpoint,
	}
}

func (s *uploadService) UploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotImage
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	// Timestamp plus random suffix keeps keys collision-resistant while
	// preserving the original extension.
	key := fmt.Sprintf("%s%d-%s%s", s.prefix, time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(header.Filename))

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.endpoint, "/"), s.bucket, key), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}
