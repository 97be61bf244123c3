package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/config"
	"github.com/feral-file/ff-dao/internal/logger"
)

// KEY_PREFIX namespaces the rate limit keys in Redis
const KEY_PREFIX = "ff:dao:limiter:"

var probeInterval = 10 * time.Second

// Decision is the outcome of a rate limit check
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter decides whether a request of a subject may proceed
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one request of the subject's budget
	Allow(ctx context.Context, subject string) (Decision, error)
}

// limiter is a per-subject GCRA limiter backed by Redis, so every API replica shares the budget.
// While Redis is unreachable it falls back to in-process token buckets.
type limiter struct {
	config         config.RateLimitConfig
	distributed    adapter.RedisRateLimiter
	redisAvailable atomic.Bool

	mu    sync.Mutex
	local map[string]*rate.Limiter
}

// NewLimiter creates a limiter. A nil redis client limits in process only.
func NewLimiter(cfg config.RateLimitConfig, rc adapter.RedisClient) (Limiter, error) {
	if cfg.RequestsPerMinute <= 0 {
		return nil, fmt.Errorf("requests_per_minute must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerMinute
	}

	l := &limiter{
		config: cfg,
		local:  make(map[string]*rate.Limiter),
	}
	if rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		l.distributed = rc.NewRateLimiter()
		if err := rc.Ping(ctx); err != nil {
			logger.Warn("Redis unavailable, rate limiting in process", zap.Error(err))
			go l.probe(probeInterval)
		} else {
			l.redisAvailable.Store(true)
		}
	}

	logger.Info("Rate limiter initialized",
		zap.Int("requests_per_minute", cfg.RequestsPerMinute),
		zap.Int("burst", cfg.Burst),
		zap.Bool("distributed", l.redisAvailable.Load()))
	return l, nil
}

func (l *limiter) Allow(ctx context.Context, subject string) (Decision, error) {
	if l.distributed != nil && l.redisAvailable.Load() {
		res, err := l.distributed.Allow(ctx, KEY_PREFIX+subject, adapter.PerMinuteLimit(l.config.RequestsPerMinute, l.config.Burst))
		if err == nil {
			return Decision{
				Allowed:    res.Allowed > 0,
				Remaining:  res.Remaining,
				RetryAfter: max(res.RetryAfter, 0),
			}, nil
		}
		if ctx.Err() != nil {
			return Decision{}, ctx.Err()
		}

		// fall through to the local bucket until a check succeeds again
		if l.redisAvailable.CompareAndSwap(true, false) {
			logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local", zap.Error(err))
			go l.probe(probeInterval)
		}
	}

	bucket := l.bucket(subject)
	r := bucket.Reserve()
	if delay := r.Delay(); delay > 0 {
		r.Cancel()
		return Decision{Allowed: false, RetryAfter: delay}, nil
	}
	return Decision{Allowed: true, Remaining: int(bucket.Tokens())}, nil
}

// bucket returns the in-process token bucket of subject
func (l *limiter) bucket(subject string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.local[subject]
	if !ok {
		b = rate.NewLimiter(rate.Limit(float64(l.config.RequestsPerMinute)/60), l.config.Burst)
		l.local[subject] = b
	}
	return b
}

// probe re-enables the distributed limiter once Redis answers again
func (l *limiter) probe(interval time.Duration) {
	limit := adapter.PerMinuteLimit(l.config.RequestsPerMinute, l.config.Burst)
	for {
		time.Sleep(interval)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_, err := l.distributed.Allow(ctx, KEY_PREFIX+"probe", limit)
		cancel()
		if err == nil {
			l.redisAvailable.Store(true)
			logger.Info("Redis rate limiter restored")
			return
		}
	}
}
