package service

import (
	"context"
	"time"
)

// RateLimitDecision is the outcome of taking one token from a bucket.
type RateLimitDecision struct {
	Allowed    bool
	Limit      int
	Remaining  int64
	RetryAfter time.Duration
}

// RateLimiter meters requests per key.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateLimitDecision, error)
}
