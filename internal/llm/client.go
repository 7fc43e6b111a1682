package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	maxAttempts = 3
	backoffStep = 2 * time.Second
	retryMargin = 1 * time.Second
)

// Client wraps a Provider with the service's retry policy.
//
// Rate-limit and unavailable errors are retried up to maxAttempts. When the
// backend advertises a wait time, the client honors it plus a safety margin;
// otherwise it waits attempt*backoffStep. Exhausting the attempts yields
// ErrQuotaExceeded; any other upstream error fails immediately with
// ErrGenerationFailed. The client keeps no state between calls.
type Client struct {
	provider Provider

	// sleep is replaceable in tests to observe the schedule without
	// real delays.
	sleep func(ctx context.Context, d time.Duration) error
}

func NewClient(provider Provider) *Client {
	return &Client{
		provider: provider,
		sleep:    sleepContext,
	}
}

// Provider returns the wrapped backend.
func (c *Client) Provider() Provider {
	return c.provider
}

// Generate invokes the backend with the retry policy applied.
func (c *Client) Generate(ctx context.Context, system, user string, opts Options) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, err := c.provider.Generate(ctx, system, user, opts)
		if err == nil {
			return text, nil
		}
		lastErr = err

		wait, retryable := retryDelay(err, attempt)
		if !retryable {
			return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
		}
		if attempt == maxAttempts {
			break
		}
		if err := c.sleep(ctx, wait); err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("%w: %v", ErrQuotaExceeded, lastErr)
}

// retryDelay classifies err and computes the wait before the next attempt.
func retryDelay(err error, attempt int) (time.Duration, bool) {
	var rl *ErrRateLimited
	if errors.As(err, &rl) {
		if rl.RetryAfter > 0 {
			return rl.RetryAfter + retryMargin, true
		}
		return time.Duration(attempt) * backoffStep, true
	}

	var unavail *ErrUnavailable
	if errors.As(err, &unavail) {
		return time.Duration(attempt) * backoffStep, true
	}

	return 0, false
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
