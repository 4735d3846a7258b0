package repository

import (
	"context"
	"time"

	"yelocar/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when no account matches.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccount is returned when the email is already registered.
	ErrDuplicateAccount = errors.New("account already exists")
)

// AccountRepository stores credentials for the built-in identity provider.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	FindByUID(ctx context.Context, uid string) (*entity.Account, error)

	// TouchSignIn records a successful sign-in.
	TouchSignIn(ctx context.Context, uid string, at time.Time) error

	// RevokeTokens invalidates tokens issued before at.
	RevokeTokens(ctx context.Context, uid string, at time.Time) error

	// Delete removes the account. Returns ErrAccountNotFound when absent.
	Delete(ctx context.Context, uid string) error
}
