package server

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterMinuteLimit(t *testing.T) {
	rl := NewRateLimiter(3, 0, 0)

	for i := range 3 {
		require.NoError(t, rl.Check("client", 0), "request %d should pass", i)
	}

	err := rl.Check("client", 0)
	require.Error(t, err)

	var rle *RateLimitError
	require.ErrorAs(t, err, &rle)
	assert.Equal(t, "minute", rle.Type)
	assert.Equal(t, 3, rle.Limit)
	assert.Positive(t, rle.RetryAfter)
}

func TestRateLimiterDailyRequestQuota(t *testing.T) {
	rl := NewRateLimiter(0, 2, 0)

	require.NoError(t, rl.Check("client", 0))
	require.NoError(t, rl.Check("client", 0))

	err := rl.Check("client", 0)
	require.Error(t, err)

	var qee *QuotaExceededError
	require.ErrorAs(t, err, &qee)
	assert.Equal(t, "requests", qee.Type)
	assert.Equal(t, int64(2), qee.Limit)
	assert.Equal(t, int64(2), qee.Used)
	assert.False(t, qee.Resets.IsZero())
}

func TestRateLimiterDataQuota(t *testing.T) {
	rl := NewRateLimiter(0, 0, 1000)

	require.NoError(t, rl.Check("client", 600))

	err := rl.Check("client", 600)
	require.Error(t, err)

	var qee *QuotaExceededError
	require.ErrorAs(t, err, &qee)
	assert.Equal(t, "data", qee.Type)
	assert.Equal(t, int64(600), qee.Used)

	// A smaller request still fits.
	require.NoError(t, rl.Check("client", 300))
}

func TestRateLimiterPerClientIsolation(t *testing.T) {
	rl := NewRateLimiter(1, 0, 0)

	require.NoError(t, rl.Check("a", 0))
	require.Error(t, rl.Check("a", 0))
	require.NoError(t, rl.Check("b", 0))
}

func TestRateLimiterZeroLimitsAllowEverything(t *testing.T) {
	rl := NewRateLimiter(0, 0, 0)

	for range 100 {
		require.NoError(t, rl.Check("client", 1<<20))
	}
}

func TestRateLimitErrorMessages(t *testing.T) {
	rl := NewRateLimiter(1, 0, 0)
	require.NoError(t, rl.Check("client", 0))

	err := rl.Check("client", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit exceeded")

	var rle *RateLimitError
	assert.True(t, errors.As(err, &rle))
}
