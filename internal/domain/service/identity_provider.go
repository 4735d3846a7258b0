// Package service declares the outbound ports the use cases depend on: identity,
// notifications, publishing, connectivity and the like.
package service

import (
	"context"
	"time"

	"yelocar/internal/domain/entity"
	"yelocar/internal/errors"
)

// IdentityErrorCode is a provider-neutral failure code.
type IdentityErrorCode string

const (
	CodeEmailAlreadyInUse    IdentityErrorCode = "auth/email-already-in-use"
	CodeWeakPassword         IdentityErrorCode = "auth/weak-password"
	CodeInvalidEmail         IdentityErrorCode = "auth/invalid-email"
	CodeNetworkRequestFailed IdentityErrorCode = "auth/network-request-failed"
	CodeRequiresRecentLogin  IdentityErrorCode = "auth/requires-recent-login"
	CodeInvalidCredential    IdentityErrorCode = "auth/invalid-credential"
	CodeUserNotFound         IdentityErrorCode = "auth/user-not-found"
	CodeInvalidToken         IdentityErrorCode = "auth/invalid-id-token"
	CodeUnknown              IdentityErrorCode = "auth/unknown"
)

// IdentityError is returned by IdentityProvider implementations.
type IdentityError struct {
	Code IdentityErrorCode
	Err  error
}

// NewIdentityError wraps err with a provider-neutral code.
func NewIdentityError(code IdentityErrorCode, err error) *IdentityError {
	return &IdentityError{Code: code, Err: err}
}

func (e *IdentityError) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}

	return string(e.Code) + ": " + e.Err.Error()
}

func (e *IdentityError) Unwrap() error {
	return e.Err
}

// IdentityErrorCodeOf extracts the code from err, or CodeUnknown.
func IdentityErrorCodeOf(err error) IdentityErrorCode {
	var idErr *IdentityError
	if errors.As(err, &idErr) {
		return idErr.Code
	}

	return CodeUnknown
}

// AuthResult is returned by a successful sign-up or sign-in.
type AuthResult struct {
	Identity     entity.Identity
	IDToken      string
	RefreshToken string
	ExpiresIn    time.Duration
}

// IdentityProvider authenticates users and owns their credentials.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (*AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)

	// VerifyToken validates an ID token and returns who it belongs to.
	VerifyToken(ctx context.Context, idToken string) (*entity.Identity, error)

	// RevokeSessions invalidates the user's refresh tokens.
	RevokeSessions(ctx context.Context, uid string) error

	// DeleteAccount removes the credential of the signed-in identity. Fails
	// with CodeRequiresRecentLogin when identity.AuthTime is too old and with
	// CodeUserNotFound when the credential is already gone.
	DeleteAccount(ctx context.Context, identity entity.Identity) error
}
