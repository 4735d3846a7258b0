package auth

import (
	"testing"
	"time"

	"yelocar/config"
	"yelocar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	authTime := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	access, refresh, err := svc.GenerateTokens(entity.Identity{UID: "u1", Email: "a@example.com", AuthTime: authTime})
	require.NoError(t, err)
	assert.NotEmpty(t, refresh)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, authTime.Unix(), claims.AuthTime)
	assert.Equal(t, tokenTypeAccess, claims.Type)
	assert.Equal(t, time.Minute, svc.AccessTokenTTL())
}

func TestJWTService_RefreshTokenIsNotAnAccessToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	_, refresh, err := svc.GenerateTokens(entity.Identity{UID: "u1"})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	access, _, err := svc.GenerateTokens(entity.Identity{UID: "u1"})
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}
