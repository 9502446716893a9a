package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("allows up to the bucket size then rejects", func(t *testing.T) {
		limiter := NewTokenBucketLimiter(3, time.Hour)

		for i := 0; i < 3; i++ {
			allowed, err := limiter.Allow(ctx, "10.0.0.1")
			require.NoError(t, err)
			assert.True(t, allowed, "request %d", i)
		}

		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("keys are limited independently", func(t *testing.T) {
		limiter := NewTokenBucketLimiter(1, time.Hour)

		allowed, _ := limiter.Allow(ctx, "10.0.0.1")
		assert.True(t, allowed)
		allowed, _ = limiter.Allow(ctx, "10.0.0.1")
		assert.False(t, allowed)

		allowed, _ = limiter.Allow(ctx, "10.0.0.2")
		assert.True(t, allowed)
	})

	t.Run("tokens refill over time", func(t *testing.T) {
		limiter := NewTokenBucketLimiter(1, 10*time.Millisecond)

		allowed, _ := limiter.Allow(ctx, "10.0.0.1")
		require.True(t, allowed)
		allowed, _ = limiter.Allow(ctx, "10.0.0.1")
		require.False(t, allowed)

		time.Sleep(25 * time.Millisecond)

		allowed, _ = limiter.Allow(ctx, "10.0.0.1")
		assert.True(t, allowed)
	})
}
