// Package retry runs remote operations with exponential backoff.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/aws/smithy-go"
)

// Config holds retry configuration.
type Config struct {
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

// DefaultConfig returns the retry configuration used by remote sinks.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 4,
		BaseBackoff: 250 * time.Millisecond,
		MaxBackoff:  5 * time.Second,
	}
}

// Do calls fn until it succeeds, returns a non-retryable error, or
// MaxAttempts is reached. Waiting between attempts stops early when ctx is
// done.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff(cfg.BaseBackoff, cfg.MaxBackoff, attempt-1)):
			}
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if !IsRetryable(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", cfg.MaxAttempts, lastErr)
}

// retryableCodes are S3 error codes signalling a transient condition.
var retryableCodes = map[string]struct{}{
	"InternalError":      {},
	"RequestTimeout":     {},
	"ServiceUnavailable": {},
	"SlowDown":           {},
	"Throttling":         {},
}

// IsRetryable reports whether err looks transient: timeouts, dropped
// connections, throttling and 5xx responses.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if _, ok := retryableCodes[apiErr.ErrorCode()]; ok {
			return true
		}
	}

	if code, ok := statusCode(err); ok {
		switch code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}

		return false
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range []string{
		"connection reset",
		"connection refused",
		"broken pipe",
		"unexpected eof",
		"timeout",
		"temporary failure",
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}

	return false
}

// statusCode extracts an HTTP status from AWS response errors and from
// errors exposing StatusCode.
func statusCode(err error) (int, bool) {
	var awsResp interface{ HTTPStatusCode() int }
	if errors.As(err, &awsResp) {
		return awsResp.HTTPStatusCode(), true
	}

	var resp interface{ StatusCode() int }
	if errors.As(err, &resp) {
		return resp.StatusCode(), true
	}

	return 0, false
}

// backoff returns base * 2^attempt capped at maxBackoff, scaled by a random
// factor in [0.5, 1).
func backoff(base, maxBackoff time.Duration, attempt int) time.Duration {
	d := base * time.Duration(1<<uint(attempt))
	if d > maxBackoff || d <= 0 {
		d = maxBackoff
	}

	return time.Duration(float64(d) * (0.5 + rand.Float64()*0.5))
}
