// Package sink writes generated files to an output location: a local
// directory or an S3 bucket prefix.
package sink

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrInvalidName is returned for file names that are absolute or escape the
// sink root.
var ErrInvalidName = errors.New("invalid file name")

// Sink receives output files addressed by slash-separated relative names.
type Sink interface {
	WriteFile(ctx context.Context, name string, data []byte) error
	// Location describes where files end up, for logging.
	Location() string
}

const s3Scheme = "s3"

// Open returns the sink for target: "s3://bucket/prefix" selects S3 using the
// default AWS credential chain, anything else is a local directory.
func Open(ctx context.Context, target string) (Sink, error) {
	if !strings.HasPrefix(target, s3Scheme+"://") {
		return NewLocal(target), nil
	}

	bucket, prefix, err := ParseS3URL(target)
	if err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS configuration: %w", err)
	}

	return NewS3(s3.NewFromConfig(awsCfg), bucket, prefix), nil
}

// ParseS3URL splits an s3://bucket/prefix URL.
func ParseS3URL(raw string) (bucket, prefix string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("parsing %q: %w", raw, err)
	}

	if u.Scheme != s3Scheme || u.Host == "" {
		return "", "", fmt.Errorf("%q is not an s3://bucket/prefix URL", raw)
	}

	return u.Host, strings.Trim(u.Path, "/"), nil
}

// cleanName validates a sink-relative file name.
func cleanName(name string) (string, error) {
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, `\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	for _, part := range strings.Split(name, "/") {
		if part == "" || part == "." || part == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}

	return name, nil
}
