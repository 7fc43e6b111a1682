package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(provider Provider) (*Client, *[]time.Duration) {
	sleeps := &[]time.Duration{}
	c := NewClient(provider)
	c.sleep = func(_ context.Context, d time.Duration) error {
		*sleeps = append(*sleeps, d)
		return nil
	}
	return c, sleeps
}

func TestClientGenerate_HonorsAdvertisedRetryDelay(t *testing.T) {
	rateLimited := &ErrRateLimited{
		RetryAfter: 2 * time.Second,
		Err:        fmt.Errorf("429: rate limited, retry in 2s"),
	}
	mock := NewMockProvider(
		MockResponse{Err: rateLimited},
		MockResponse{Err: rateLimited},
		MockResponse{Text: `{"ok":true}`},
	)

	client, sleeps := newTestClient(mock)

	text, err := client.Generate(context.Background(), "sys", "user", Options{})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, text)

	assert.Equal(t, 3, mock.CallCount())
	require.Len(t, *sleeps, 2)
	assert.Equal(t, 3*time.Second, (*sleeps)[0])
	assert.Equal(t, 3*time.Second, (*sleeps)[1])
}

func TestClientGenerate_BacksOffWithoutAdvertisedDelay(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrUnavailable{Err: fmt.Errorf("503")}},
		MockResponse{Err: &ErrRateLimited{Err: fmt.Errorf("429")}},
		MockResponse{Text: "done"},
	)

	client, sleeps := newTestClient(mock)

	text, err := client.Generate(context.Background(), "", "prompt", Options{})
	require.NoError(t, err)
	assert.Equal(t, "done", text)

	require.Len(t, *sleeps, 2)
	assert.Equal(t, 2*time.Second, (*sleeps)[0])
	assert.Equal(t, 4*time.Second, (*sleeps)[1])
}

func TestClientGenerate_ExhaustionYieldsQuotaExceeded(t *testing.T) {
	rateLimited := &ErrRateLimited{Err: fmt.Errorf("429")}
	mock := NewMockProvider(
		MockResponse{Err: rateLimited},
		MockResponse{Err: rateLimited},
		MockResponse{Err: rateLimited},
	)

	client, sleeps := newTestClient(mock)

	_, err := client.Generate(context.Background(), "", "prompt", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	// Never more than three attempts, and no sleep after the last one.
	assert.Equal(t, 3, mock.CallCount())
	assert.Len(t, *sleeps, 2)
}

func TestClientGenerate_NonRetryableFailsImmediately(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: fmt.Errorf("invalid request")},
	)

	client, sleeps := newTestClient(mock)

	_, err := client.Generate(context.Background(), "", "prompt", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.Equal(t, 1, mock.CallCount())
	assert.Empty(t, *sleeps)
}

func TestClientGenerate_StopsOnCanceledContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrUnavailable{Err: fmt.Errorf("503")}},
		MockResponse{Text: "never reached"},
	)

	client := NewClient(mock)
	client.sleep = func(ctx context.Context, _ time.Duration) error {
		return context.Canceled
	}

	_, err := client.Generate(context.Background(), "", "prompt", Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, mock.CallCount())
}

func TestParseRetryAfter(t *testing.T) {
	cases := []struct {
		message string
		want    time.Duration
	}{
		{"rate limited, retry in 2s", 2 * time.Second},
		{"please retry in 14.5s.", 14500 * time.Millisecond},
		{"try again later", 0},
		{"", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseRetryAfter(tc.message), "message %q", tc.message)
	}
}
