package sink

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"csvcube/internal/retry"
)

// PutObjectAPI is the part of the S3 client used by S3Sink.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads files as objects under a bucket prefix. Transient failures
// are retried.
type S3Sink struct {
	client PutObjectAPI
	bucket string
	prefix string
	retry  retry.Config
}

// NewS3 returns a sink uploading to bucket under prefix.
func NewS3(client PutObjectAPI, bucket, prefix string) *S3Sink {
	return &S3Sink{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		retry:  retry.DefaultConfig(),
	}
}

// WithRetry returns a copy of s using cfg for uploads.
func (s *S3Sink) WithRetry(cfg retry.Config) *S3Sink {
	cp := *s
	cp.retry = cfg

	return &cp
}

// Location returns the s3:// URL of the sink root.
func (s *S3Sink) Location() string {
	return "s3://" + path.Join(s.bucket, s.prefix)
}

// WriteFile uploads data as the object prefix/name.
func (s *S3Sink) WriteFile(ctx context.Context, name string, data []byte) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}

	key := path.Join(s.prefix, name)

	err = retry.Do(ctx, s.retry, func() error {
		_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentType(name)),
		})

		return err
	})
	if err != nil {
		return fmt.Errorf("uploading s3://%s/%s: %w", s.bucket, key, err)
	}

	return nil
}

func contentType(name string) string {
	switch {
	case strings.HasSuffix(name, ".csv-metadata.json"), strings.HasSuffix(name, ".table.json"):
		return "application/csvm+json"
	case strings.HasSuffix(name, ".json"):
		return "application/json"
	case strings.HasSuffix(name, ".csv"):
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
