package entity

import "time"

// Account is a password credential held by the built-in identity provider.
type Account struct {
	UID          string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	LastSignInAt time.Time

	// TokensValidAfter invalidates every token issued before it.
	TokensValidAfter time.Time
}
