package rediskv

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"yelocar/config"
	"yelocar/internal/domain/service"
	"yelocar/internal/errors"

	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills and takes one token atomically.
// Returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])
if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local intervals = math.floor(math.max(0, now_ms - last_refill) / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + intervals * refill_tokens)
		last_refill = last_refill + intervals * interval_ms
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

type tokenBucket struct {
	client *redis.Client
	cfg    config.RateLimitConfig
	prefix string
	now    func() time.Time
}

// NewTokenBucket returns a Redis-backed token bucket limiter.
func NewTokenBucket(client *redis.Client, cfg config.RateLimitConfig, prefix string) service.RateLimiter {
	return &tokenBucket{client: client, cfg: cfg, prefix: prefix, now: time.Now}
}

func (b *tokenBucket) Allow(ctx context.Context, key string) (service.RateLimitDecision, error) {
	args := []any{
		b.now().UnixMilli(),
		b.cfg.Capacity,
		b.cfg.RefillTokens,
		b.cfg.RefillInterval.Milliseconds(),
		int64(b.cfg.TTL / time.Second),
	}

	vals, err := tokenBucketScript.Run(ctx, b.client, []string{b.prefix + ":ratelimit:" + key}, args...).Slice()
	if err != nil {
		return service.RateLimitDecision{}, wrapError(err, "rate limit script failed")
	}
	if len(vals) != 3 {
		return service.RateLimitDecision{}, errors.Errorf("unexpected rate limit result: %v", vals)
	}

	return service.RateLimitDecision{
		Allowed:    asInt64(vals[0]) == 1,
		Limit:      b.cfg.Capacity,
		Remaining:  asInt64(vals[1]),
		RetryAfter: time.Duration(asInt64(vals[2])) * time.Millisecond,
	}, nil
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case string:
		n, _ := strconv.ParseInt(t, 10, 64)

		return n
	default:
		n, _ := strconv.ParseInt(fmt.Sprint(t), 10, 64)

		return n
	}
}
