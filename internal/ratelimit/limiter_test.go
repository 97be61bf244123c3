package ratelimit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dao/internal/config"
	"github.com/feral-file/ff-dao/internal/mocks"
	"github.com/feral-file/ff-dao/internal/ratelimit"
)

func TestNewLimiterInvalidConfig(t *testing.T) {
	_, err := ratelimit.NewLimiter(config.RateLimitConfig{}, nil)
	assert.Error(t, err)
}

func TestLimiterDistributed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	redisClient := mocks.NewMockRedisClient(ctrl)
	redisLimiter := mocks.NewMockRedisRateLimiter(ctrl)
	redisClient.EXPECT().NewRateLimiter().Return(redisLimiter)
	redisClient.EXPECT().Ping(gomock.Any()).Return(nil)

	limiter, err := ratelimit.NewLimiter(config.RateLimitConfig{RequestsPerMinute: 60, Burst: 10}, redisClient)
	require.NoError(t, err)

	limit := redis_rate.Limit{Rate: 60, Burst: 10, Period: time.Minute}

	t.Run("allowed", func(t *testing.T) {
		redisLimiter.EXPECT().Allow(ctx, ratelimit.KEY_PREFIX+"0xabc", limit).
			Return(&redis_rate.Result{Allowed: 1, Remaining: 9, RetryAfter: -1}, nil)

		decision, err := limiter.Allow(ctx, "0xabc")
		require.NoError(t, err)
		assert.Equal(t, ratelimit.Decision{Allowed: true, Remaining: 9}, decision)
	})

	t.Run("limited", func(t *testing.T) {
		redisLimiter.EXPECT().Allow(ctx, ratelimit.KEY_PREFIX+"0xabc", limit).
			Return(&redis_rate.Result{Allowed: 0, RetryAfter: 2 * time.Second}, nil)

		decision, err := limiter.Allow(ctx, "0xabc")
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, 2*time.Second, decision.RetryAfter)
	})
}

func TestLimiterFallsBackToLocal(t *testing.T) {
	defer ratelimit.SetProbeInterval(time.Hour)()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	redisClient := mocks.NewMockRedisClient(ctrl)
	redisLimiter := mocks.NewMockRedisRateLimiter(ctrl)
	redisClient.EXPECT().NewRateLimiter().Return(redisLimiter)
	redisClient.EXPECT().Ping(gomock.Any()).Return(nil)
	redisLimiter.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	limiter, err := ratelimit.NewLimiter(config.RateLimitConfig{RequestsPerMinute: 1, Burst: 2}, redisClient)
	require.NoError(t, err)

	first, err := limiter.Allow(ctx, "0xabc")
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	second, err := limiter.Allow(ctx, "0xabc")
	require.NoError(t, err)
	assert.True(t, second.Allowed)

	third, err := limiter.Allow(ctx, "0xabc")
	require.NoError(t, err)
	assert.False(t, third.Allowed)
	assert.Greater(t, third.RetryAfter, time.Duration(0))

	// buckets are per subject
	other, err := limiter.Allow(ctx, "0xdef")
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}

func TestLimiterWithoutRedis(t *testing.T) {
	limiter, err := ratelimit.NewLimiter(config.RateLimitConfig{RequestsPerMinute: 1}, nil)
	require.NoError(t, err)

	first, err := limiter.Allow(context.Background(), "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	second, err := limiter.Allow(context.Background(), "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, second.Allowed)
}
