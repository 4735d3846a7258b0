package auth

import (
	"context"
	"time"

	"yelocar/internal/domain/entity"
	"yelocar/internal/domain/repository"
	"yelocar/internal/domain/service"
	"yelocar/internal/errors"

	"github.com/google/uuid"
)

const minPasswordLength = 6

// localIdentityProvider keeps credentials in the accounts table and issues
// HS256 tokens. It is meant for development and self-hosted setups.
type localIdentityProvider struct {
	accounts repository.AccountRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
	recent   time.Duration
	now      func() time.Time
}

// NewLocalIdentityProvider is the constructor for localIdentityProvider.
func NewLocalIdentityProvider(accounts repository.AccountRepository, hasher service.PasswordHasher, tokens service.TokenService, recentLoginWindow time.Duration) service.IdentityProvider {
	return &localIdentityProvider{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		recent:   recentLoginWindow,
		now:      time.Now,
	}
}

func (p *localIdentityProvider) SignUp(ctx context.Context, email, password string) (*service.AuthResult, error) {
	if len(password) < minPasswordLength {
		return nil, service.NewIdentityError(service.CodeWeakPassword, nil)
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, service.NewIdentityError(service.CodeUnknown, err)
	}

	now := p.now().UTC()
	account := &entity.Account{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		LastSignInAt: now,
	}
	if err := p.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			return nil, service.NewIdentityError(service.CodeEmailAlreadyInUse, err)
		}

		return nil, storeError(err)
	}

	return p.issue(entity.Identity{UID: account.UID, Email: email, AuthTime: now})
}

func (p *localIdentityProvider) SignIn(ctx context.Context, email, password string) (*service.AuthResult, error) {
	account, err := p.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, service.NewIdentityError(service.CodeInvalidCredential, nil)
		}

		return nil, storeError(err)
	}
	if !p.hasher.Check(password, account.PasswordHash) {
		return nil, service.NewIdentityError(service.CodeInvalidCredential, nil)
	}

	now := p.now().UTC()
	if err := p.accounts.TouchSignIn(ctx, account.UID, now); err != nil {
		return nil, storeError(err)
	}

	return p.issue(entity.Identity{UID: account.UID, Email: account.Email, AuthTime: now})
}

func (p *localIdentityProvider) VerifyToken(ctx context.Context, idToken string) (*entity.Identity, error) {
	claims, err := p.tokens.ValidateAccessToken(idToken)
	if err != nil {
		return nil, service.NewIdentityError(service.CodeInvalidToken, err)
	}

	account, err := p.accounts.FindByUID(ctx, claims.UID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, service.NewIdentityError(service.CodeInvalidToken, err)
		}

		return nil, storeError(err)
	}
	if claims.IssuedAt != nil && claims.IssuedAt.Before(account.TokensValidAfter) {
		return nil, service.NewIdentityError(service.CodeInvalidToken, errors.New("token revoked"))
	}

	return &entity.Identity{
		UID:      account.UID,
		Email:    account.Email,
		AuthTime: time.Unix(claims.AuthTime, 0).UTC(),
	}, nil
}

// RevokeSessions invalidates tokens issued before the current second.
func (p *localIdentityProvider) RevokeSessions(ctx context.Context, uid string) error {
	err := p.accounts.RevokeTokens(ctx, uid, p.now().UTC().Truncate(time.Second))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return service.NewIdentityError(service.CodeUserNotFound, err)
		}

		return storeError(err)
	}

	return nil
}

func (p *localIdentityProvider) DeleteAccount(ctx context.Context, identity entity.Identity) error {
	if err := requireRecentLogin(identity, p.recent, p.now()); err != nil {
		return err
	}
	if err := p.accounts.Delete(ctx, identity.UID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return service.NewIdentityError(service.CodeUserNotFound, err)
		}

		return storeError(err)
	}

	return nil
}

func (p *localIdentityProvider) issue(identity entity.Identity) (*service.AuthResult, error) {
	access, refresh, err := p.tokens.GenerateTokens(identity)
	if err != nil {
		return nil, service.NewIdentityError(service.CodeUnknown, err)
	}

	return &service.AuthResult{
		Identity:     identity,
		IDToken:      access,
		RefreshToken: refresh,
		ExpiresIn:    p.tokens.AccessTokenTTL(),
	}, nil
}

// requireRecentLogin rejects destructive operations on sessions whose
// credentials were entered more than window ago.
func requireRecentLogin(identity entity.Identity, window time.Duration, now time.Time) error {
	if window <= 0 {
		return nil
	}
	if identity.AuthTime.IsZero() || now.Sub(identity.AuthTime) > window {
		return service.NewIdentityError(service.CodeRequiresRecentLogin, nil)
	}

	return nil
}

func storeError(err error) error {
	if errors.Is(err, repository.ErrStoreUnavailable) {
		return service.NewIdentityError(service.CodeNetworkRequestFailed, err)
	}

	return service.NewIdentityError(service.CodeUnknown, err)
}
