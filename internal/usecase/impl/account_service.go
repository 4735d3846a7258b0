package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "yelocar/internal/delivery/context"
	"yelocar/internal/domain/entity"
	domainerrors "yelocar/internal/domain/errors"
	"yelocar/internal/domain/repository"
	"yelocar/internal/domain/service"
	"yelocar/internal/domain/validation"
	"yelocar/internal/errors"
	"yelocar/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	identity service.IdentityProvider
	cache    repository.ProfileCache
	document repository.ProfileStore
	profiles usecase.ProfileUsecase
	sessions usecase.SessionUsecase
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	identity service.IdentityProvider,
	cache repository.ProfileCache,
	document repository.ProfileStore,
	profiles usecase.ProfileUsecase,
	sessions usecase.SessionUsecase,
	validate *validator.Validate,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		identity: identity,
		cache:    cache,
		document: document,
		profiles: profiles,
		sessions: sessions,
		validate: validate,
		logger:   logger,
		now:      time.Now,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates the credential and writes the initial profile to both stores.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	in := *input
	in.Email = strings.TrimSpace(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)
	if err := validation.Struct(srv.validate, &in); err != nil {
		return nil, err
	}

	result, err := srv.identity.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		srv.log(ctx).Warn("Sign up rejected by identity provider",
			slog.String("code", string(service.IdentityErrorCodeOf(err))),
			slog.Any("error", err),
		)

		return nil, identityError(err, domainerrors.ErrSignUpFailed)
	}

	identity := result.Identity
	logger := srv.log(ctx).With(slog.String("uid", identity.UID))
	srv.sessions.Begin(identity)

	now := srv.now().UTC()
	profile := &entity.UserProfile{
		UID:         identity.UID,
		Email:       identity.Email,
		FullName:    in.FullName,
		PhoneNumber: validation.NormalizePhone(in.PhoneNumber),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	primary, secondary := authoritativeFirst(srv.cache, srv.document)
	if err := primary.Save(ctx, profile); err != nil {
		logger.Error("Failed to store new profile", slog.Any("error", err))
		srv.sessions.End(identity.UID)
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrSignUpFailed, err.Error())
	}

	notices := []entity.Notice{entity.NewSuccessNotice(entity.NoticeCodeAccountCreated, entity.NoticeMsgAccountCreated)}
	if err := secondary.Save(ctx, profile); err != nil {
		logger.Warn("Failed to replicate new profile", slog.Any("error", err))
		notices = append(notices, entity.NewWarningNotice(entity.NoticeCodeSyncDegraded, entity.NoticeMsgSyncDegraded))
	}

	srv.sessions.Ready(identity, profile)
	logger.Info("Account created")

	return &usecase.AuthOutput{
		Identity:     identity,
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
		Profile:      profile.Clone(),
		Notices:      notices,
	}, nil
}

// SignIn verifies the credentials and establishes the session profile.
func (srv *accountService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	in := *input
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Struct(srv.validate, &in); err != nil {
		return nil, err
	}

	result, err := srv.identity.SignIn(ctx, in.Email, in.Password)
	if err != nil {
		srv.log(ctx).Info("Sign in rejected",
			slog.String("code", string(service.IdentityErrorCodeOf(err))),
		)

		return nil, identityError(err, domainerrors.ErrSignInFailed)
	}

	loaded := srv.profiles.LoadProfile(ctx, result.Identity)
	notices := append(
		[]entity.Notice{entity.NewSuccessNotice(entity.NoticeCodeSignedIn, entity.NoticeMsgSignedIn)},
		loaded.Notices...,
	)

	srv.log(ctx).Info("Signed in", slog.String("uid", result.Identity.UID))

	return &usecase.AuthOutput{
		Identity:     result.Identity,
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
		Profile:      loaded.Profile,
		Notices:      notices,
	}, nil
}

// SignOut ends the session even when the provider cannot revoke tokens.
func (srv *accountService) SignOut(ctx context.Context, identity entity.Identity) error {
	defer srv.sessions.End(identity.UID)

	if err := srv.identity.RevokeSessions(ctx, identity.UID); err != nil {
		code := service.IdentityErrorCodeOf(err)
		if code == service.CodeUserNotFound {
			return nil
		}
		srv.log(ctx).Warn("Failed to revoke sessions", slog.String("uid", identity.UID), slog.Any("error", err))

		return identityError(err, domainerrors.ErrInternalError)
	}

	return nil
}

func (srv *accountService) Authenticate(ctx context.Context, idToken string) (*entity.Identity, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	identity, err := srv.identity.VerifyToken(ctx, idToken)
	if err != nil {
		if service.IdentityErrorCodeOf(err) == service.CodeNetworkRequestFailed {
			return nil, errors.Wrap(domainerrors.ErrNetworkRequestFailed, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	return identity, nil
}

// identityError maps a provider code to its user-facing error.
func identityError(err error, fallback *domainerrors.BaseError) error {
	var target *domainerrors.BaseError
	switch service.IdentityErrorCodeOf(err) {
	case service.CodeEmailAlreadyInUse:
		target = domainerrors.ErrEmailAlreadyInUse
	case service.CodeWeakPassword:
		target = domainerrors.ErrWeakPassword
	case service.CodeInvalidEmail:
		target = domainerrors.ErrInvalidEmail
	case service.CodeNetworkRequestFailed:
		target = domainerrors.ErrNetworkRequestFailed
	case service.CodeRequiresRecentLogin:
		target = domainerrors.ErrStaleSession
	case service.CodeInvalidCredential, service.CodeUserNotFound:
		target = domainerrors.ErrInvalidCredentials
	case service.CodeInvalidToken:
		target = domainerrors.ErrInvalidToken
	default:
		target = fallback
	}

	return errors.Wrap(target, err.Error())
}
