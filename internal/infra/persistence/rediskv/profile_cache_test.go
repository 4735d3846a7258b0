package rediskv

import (
	"context"
	"testing"
	"time"

	"yelocar/config"
	"yelocar/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableClient points at a port nothing listens on.
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestProfileCache_UnreachableIsStoreUnavailable(t *testing.T) {
	cache := NewProfileCache(unreachableClient(t), "test")

	_, err := cache.Get(context.Background(), "u1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrStoreUnavailable))
}

func TestConnectivityProbe_Unreachable(t *testing.T) {
	probe := NewConnectivityProbe(unreachableClient(t))

	online, err := probe.Probe(context.Background())

	assert.False(t, online)
	assert.Error(t, err)
}

func TestProfileCache_Key(t *testing.T) {
	c := &profileCache{prefix: "yelocar"}

	assert.Equal(t, "yelocar:users:abc", c.key("abc"))
}

func TestKeyPrefix(t *testing.T) {
	assert.Equal(t, "yelocar", KeyPrefix(&config.Config{}))
	assert.Equal(t, "dev", KeyPrefix(&config.Config{Redis: &config.RedisConfig{KeyPrefix: "dev:"}}))
}

func TestAsInt64(t *testing.T) {
	assert.Equal(t, int64(3), asInt64(int64(3)))
	assert.Equal(t, int64(7), asInt64("7"))
	assert.Equal(t, int64(0), asInt64(nil))
}

func TestTokenBucket_UnreachableIsStoreUnavailable(t *testing.T) {
	limiter := NewTokenBucket(unreachableClient(t), config.RateLimitConfig{
		Capacity:       5,
		RefillTokens:   1,
		RefillInterval: time.Minute,
		TTL:            10 * time.Minute,
	}, "test")

	_, err := limiter.Allow(context.Background(), "contact:10.0.0.1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrStoreUnavailable))
}
