package service

import (
	"time"

	"yelocar/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	AuthTime int64  `json:"auth_time"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs
// issued by the built-in identity provider.
type TokenService interface {
	// GenerateTokens creates an access token and a refresh token for identity.
	GenerateTokens(identity entity.Identity) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks the signature, expiry and type of an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured lifetime of access tokens.
	AccessTokenTTL() time.Duration
}
