package estimator

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

var initialRetryDelay = 1500 * time.Millisecond

// withRetry runs fn up to attempts times, sleeping with exponential backoff
// between tries. Only transient failures (rate limit, overload) are retried;
// permanent and malformed-response errors fail immediately.
func withRetry(ctx context.Context, attempts int, fn func() error) error {
	delay := initialRetryDelay
	var err error
	for attempt := 1; ; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if attempt >= attempts || !IsRetryable(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}

// IsRetryable classifies an error as a transient server-busy condition.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Status == http.StatusTooManyRequests || apiErr.Status == http.StatusServiceUnavailable {
		return true
	}
	msg := strings.ToLower(apiErr.Message)
	for _, hint := range []string{"rate limit", "overloaded", "unavailable", "try again"} {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}
