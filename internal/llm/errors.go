package llm

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrQuotaExceeded reports that every retry attempt hit a retryable error.
// Callers are expected to degrade to a deterministic fallback.
var ErrQuotaExceeded = errors.New("generation quota exceeded")

// ErrGenerationFailed reports a non-retryable upstream failure.
var ErrGenerationFailed = errors.New("generation failed")

// ErrRateLimited indicates the backend returned a rate-limit response (429).
type ErrRateLimited struct {
	// RetryAfter is the wait the service advertised, zero when absent.
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimited) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimited) Unwrap() error { return e.Err }

// ErrUnavailable indicates the backend is down or unreachable (5xx).
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("generation backend unavailable: %v", e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

var retryAfterPattern = regexp.MustCompile(`retry in (\d+(?:\.\d+)?)s`)

// parseRetryAfter extracts an advertised wait ("retry in 2s", "retry in
// 2.5s") from an upstream error message. Returns zero when none is found.
func parseRetryAfter(message string) time.Duration {
	m := retryAfterPattern.FindStringSubmatch(message)
	if m == nil {
		return 0
	}
	seconds, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
}
