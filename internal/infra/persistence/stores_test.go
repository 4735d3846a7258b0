package persistence

import (
	"testing"

	"yelocar/config"
	"yelocar/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfileCache_RedisSelectedWithoutClient(t *testing.T) {
	cfg := &config.Config{Stores: config.StoresConfig{KeyValue: constants.KeyValueStoreRedis}}

	_, err := NewProfileCache(cfg, &Clients{})

	require.Error(t, err)
}

func TestNewProfileStore_UnknownBackend(t *testing.T) {
	cfg := &config.Config{Stores: config.StoresConfig{Document: "mongo"}}

	_, err := NewProfileStore(cfg, &Clients{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo")
}

func TestNewRateLimiter_DisabledOrUnbacked(t *testing.T) {
	assert.Nil(t, NewRateLimiter(&config.Config{}, &Clients{}, nil))

	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Enabled: false}}
	assert.Nil(t, NewRateLimiter(cfg, &Clients{}, nil))
}
