package auth

import (
	"context"
	"net"
	"strings"
	"time"

	"yelocar/internal/domain/entity"
	"yelocar/internal/domain/service"
	"yelocar/internal/errors"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// firebaseIdentityProvider verifies, revokes and deletes users with the Admin
// SDK and performs password sign-up and sign-in through Identity Toolkit.
type firebaseIdentityProvider struct {
	admin   *auth.Client
	toolkit *identitytoolkit.RelyingpartyService
	recent  time.Duration
}

// NewFirebaseIdentityProvider is the constructor for firebaseIdentityProvider.
func NewFirebaseIdentityProvider(ctx context.Context, admin *auth.Client, apiKey string, recentLoginWindow time.Duration) (service.IdentityProvider, error) {
	if apiKey == "" {
		return nil, errors.New("firebase.apiKey is required for password sign-in")
	}

	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit client")
	}

	return &firebaseIdentityProvider{admin: admin, toolkit: svc.Relyingparty, recent: recentLoginWindow}, nil
}

func (p *firebaseIdentityProvider) SignUp(ctx context.Context, email, password string) (*service.AuthResult, error) {
	resp, err := p.toolkit.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return nil, mapToolkitError(err)
	}

	return &service.AuthResult{
		Identity:     entity.Identity{UID: resp.LocalId, Email: resp.Email, AuthTime: time.Now().UTC()},
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    time.Duration(resp.ExpiresIn) * time.Second,
	}, nil
}

func (p *firebaseIdentityProvider) SignIn(ctx context.Context, email, password string) (*service.AuthResult, error) {
	resp, err := p.toolkit.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, mapToolkitError(err)
	}

	return &service.AuthResult{
		Identity:     entity.Identity{UID: resp.LocalId, Email: resp.Email, AuthTime: time.Now().UTC()},
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    time.Duration(resp.ExpiresIn) * time.Second,
	}, nil
}

func (p *firebaseIdentityProvider) VerifyToken(ctx context.Context, idToken string) (*entity.Identity, error) {
	token, err := p.admin.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		if isNetworkError(err) {
			return nil, service.NewIdentityError(service.CodeNetworkRequestFailed, err)
		}

		return nil, service.NewIdentityError(service.CodeInvalidToken, err)
	}

	email, _ := token.Claims["email"].(string)

	return &entity.Identity{
		UID:      token.UID,
		Email:    email,
		AuthTime: time.Unix(token.AuthTime, 0).UTC(),
	}, nil
}

func (p *firebaseIdentityProvider) RevokeSessions(ctx context.Context, uid string) error {
	return mapAdminError(p.admin.RevokeRefreshTokens(ctx, uid))
}

// DeleteAccount applies the recent-login rule the client SDK enforces, since
// the Admin SDK deletes unconditionally.
func (p *firebaseIdentityProvider) DeleteAccount(ctx context.Context, identity entity.Identity) error {
	if err := requireRecentLogin(identity, p.recent, time.Now()); err != nil {
		return err
	}

	return mapAdminError(p.admin.DeleteUser(ctx, identity.UID))
}

func mapAdminError(err error) error {
	switch {
	case err == nil:
		return nil
	case auth.IsUserNotFound(err):
		return service.NewIdentityError(service.CodeUserNotFound, err)
	case isNetworkError(err):
		return service.NewIdentityError(service.CodeNetworkRequestFailed, err)
	default:
		return service.NewIdentityError(service.CodeUnknown, err)
	}
}

// toolkitCodes maps Identity Toolkit error messages to provider-neutral codes.
// Messages may carry a suffix, e.g. "WEAK_PASSWORD : Password should be at least 6 characters".
var toolkitCodes = map[string]service.IdentityErrorCode{
	"EMAIL_EXISTS":                   service.CodeEmailAlreadyInUse,
	"WEAK_PASSWORD":                  service.CodeWeakPassword,
	"INVALID_EMAIL":                  service.CodeInvalidEmail,
	"MISSING_EMAIL":                  service.CodeInvalidEmail,
	"EMAIL_NOT_FOUND":                service.CodeInvalidCredential,
	"INVALID_PASSWORD":               service.CodeInvalidCredential,
	"INVALID_LOGIN_CREDENTIALS":      service.CodeInvalidCredential,
	"USER_DISABLED":                  service.CodeInvalidCredential,
	"CREDENTIAL_TOO_OLD_LOGIN_AGAIN": service.CodeRequiresRecentLogin,
}

func mapToolkitError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		code := strings.TrimSpace(strings.SplitN(apiErr.Message, ":", 2)[0])
		if mapped, ok := toolkitCodes[code]; ok {
			return service.NewIdentityError(mapped, err)
		}

		return service.NewIdentityError(service.CodeUnknown, err)
	}
	if isNetworkError(err) {
		return service.NewIdentityError(service.CodeNetworkRequestFailed, err)
	}

	return service.NewIdentityError(service.CodeUnknown, err)
}

func isNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error

	return errors.As(err, &netErr)
}
