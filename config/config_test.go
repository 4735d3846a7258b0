package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: develop
  serviceName: yelocar
  log:
    level: debug
http:
  port: 8080
stores:
  keyValue: redis
  document: postgres
redis:
  addr: localhost:6379
  keyPrefix: yelocar
connectivity:
  probeInterval: 30s
`

func writeConfig(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	writeConfig(t, testConfigYAML)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.Env.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "redis", cfg.Stores.KeyValue)
	assert.Equal(t, "postgres", cfg.Stores.Document)
	require.NotNil(t, cfg.Redis)
	assert.Equal(t, "yelocar", cfg.Redis.KeyPrefix)
	assert.Equal(t, 30*time.Second, cfg.Connectivity.ProbeInterval)
	assert.Nil(t, cfg.Firebase)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	writeConfig(t, testConfigYAML)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_KEYPREFIX", "staging")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "staging", cfg.Redis.KeyPrefix)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in any search path")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultProbeInterval, cfg.Connectivity.ProbeInterval)
	assert.Equal(t, defaultProbeTimeout, cfg.Connectivity.ProbeTimeout)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultRecentLoginWindow, cfg.Auth.RecentLoginWindow)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultRefreshTokenTTL, cfg.Auth.RefreshTokenTTL)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()
	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}
