package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"remberify-backend/internal/shared/storage/object"
)

// Store implements ObjectStore using Amazon S3 (or an S3-compatible endpoint).
type Store struct {
	client        *s3.Client
	bucket        string
	prefix        string
	region        string
	publicBaseURL string
}

// New creates a new S3-backed object store.
func New(ctx context.Context, region, bucket, prefix, publicBaseURL string) (object.ObjectStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Store{
		client:        s3.NewFromConfig(cfg),
		bucket:        bucket,
		prefix:        strings.Trim(strings.TrimSpace(prefix), "/"),
		region:        region,
		publicBaseURL: strings.TrimRight(strings.TrimSpace(publicBaseURL), "/"),
	}, nil
}

// Put uploads the reader contents to S3 under an owner-scoped key.
func (s *Store) Put(ctx context.Context, ownerID string, fileName string, r io.Reader) (object.Object, error) {
	key, err := object.BuildKey(ownerID, fileName)
	if err != nil {
		return object.Object{}, &object.StorageError{Op: "put", Err: err}
	}

	if err := ctx.Err(); err != nil {
		return object.Object{}, &object.StorageError{Op: "put", Err: err}
	}

	objectKey := applyPrefix(s.prefix, key)
	mimeType := object.ContentTypeByExtension(fileName)
	counter := &countingReader{r: r}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        counter,
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return object.Object{}, &object.StorageError{
			Op:  "put",
			Err: fmt.Errorf("s3 put object bucket=%s key=%s: %w", s.bucket, objectKey, err),
		}
	}

	return object.Object{
		Key:       key,
		URL:       s.publicURL(objectKey),
		SizeBytes: counter.n,
		MimeType:  mimeType,
	}, nil
}

// Open downloads a stored object for reading.
func (s *Store) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, &object.StorageError{Op: "open", Err: err}
	}

	objectKey := applyPrefix(s.prefix, storageKey)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, &object.StorageError{
			Op:  "open",
			Err: fmt.Errorf("s3 get object bucket=%s key=%s: %w", s.bucket, objectKey, err),
		}
	}
	return out.Body, nil
}

func (s *Store) publicURL(objectKey string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + objectKey
	}
	if s.region != "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, objectKey)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, objectKey)
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func applyPrefix(prefix, key string) string {
	cleanPrefix := strings.Trim(prefix, "/")
	cleanKey := strings.TrimLeft(key, "/")
	if cleanPrefix == "" {
		return cleanKey
	}
	if cleanKey == "" {
		return cleanPrefix
	}
	return cleanPrefix + "/" + cleanKey
}

var _ object.ObjectStore = (*Store)(nil)
