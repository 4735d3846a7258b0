package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "yelocar/internal/delivery/context"
	"yelocar/internal/domain/constants"
	"yelocar/internal/domain/entity"
	domainerrors "yelocar/internal/domain/errors"
	"yelocar/internal/domain/repository"
	"yelocar/internal/domain/service"
	"yelocar/internal/domain/validation"
	"yelocar/internal/errors"
	"yelocar/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// profileRecords is the method set both profile stores share.
type profileRecords interface {
	Get(ctx context.Context, uid string) (*entity.UserProfile, error)
	Save(ctx context.Context, profile *entity.UserProfile) error
	Delete(ctx context.Context, uid string) error
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	cache    repository.ProfileCache
	document repository.ProfileStore
	identity service.IdentityProvider
	monitor  service.ConnectivityMonitor
	sessions usecase.SessionUsecase
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	cache repository.ProfileCache,
	document repository.ProfileStore,
	identity service.IdentityProvider,
	monitor service.ConnectivityMonitor,
	sessions usecase.SessionUsecase,
	validate *validator.Validate,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		cache:    cache,
		document: document,
		identity: identity,
		monitor:  monitor,
		sessions: sessions,
		validate: validate,
		logger:   logger,
		now:      time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// authoritativeFirst orders the stores for writing. A failed write to the
// first is a failed operation; a failed write to the second is a warning.
func authoritativeFirst(cache repository.ProfileCache, document repository.ProfileStore) (primary, secondary profileRecords) {
	if constants.AuthoritativeProfileStore == constants.ProfileStoreKeyValue {
		return cache, document
	}

	return document, cache
}

func (srv *profileService) LoadProfile(ctx context.Context, identity entity.Identity) *usecase.ProfileResult {
	srv.sessions.Begin(identity)

	profile, notices := srv.load(ctx, identity)
	if len(notices) > 0 {
		srv.sessions.ReadyDegraded(identity, profile)
	} else {
		srv.sessions.Ready(identity, profile)
	}

	return &usecase.ProfileResult{Profile: profile.Clone(), Notices: notices}
}

func (srv *profileService) CurrentProfile(ctx context.Context, identity entity.Identity) *usecase.ProfileResult {
	session := srv.sessions.Current(identity.UID)
	if session.State == entity.SessionReady && session.Profile != nil && !session.Degraded {
		return &usecase.ProfileResult{Profile: session.Profile}
	}

	return srv.LoadProfile(ctx, identity)
}

func (srv *profileService) RefreshProfile(ctx context.Context, identity entity.Identity) *usecase.ProfileResult {
	srv.log(ctx).Debug("Refreshing profile", slog.String("uid", identity.UID))

	return srv.LoadProfile(ctx, identity)
}

// load reads the key-value store, then the document store with a best-effort
// backfill, then falls back to a placeholder. It never fails.
func (srv *profileService) load(ctx context.Context, identity entity.Identity) (*entity.UserProfile, []entity.Notice) {
	logger := srv.log(ctx).With(slog.String("uid", identity.UID))

	cached, err := srv.cache.Get(ctx, identity.UID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		logger.Warn("Profile cache read failed", slog.Any("error", err))

		return entity.NewPlaceholderProfile(identity), []entity.Notice{srv.readNotice(err)}
	}

	stored, err := srv.document.Get(ctx, identity.UID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		logger.Debug("No profile record, serving placeholder")

		return entity.NewPlaceholderProfile(identity), nil
	}
	if err != nil {
		logger.Warn("Profile document read failed", slog.Any("error", err))

		return entity.NewPlaceholderProfile(identity), []entity.Notice{srv.readNotice(err)}
	}

	if err := srv.cache.Save(ctx, stored); err != nil {
		logger.Warn("Profile backfill failed", slog.Any("error", err))
	} else {
		logger.Debug("Profile backfilled into cache")
	}

	return stored, nil
}

func (srv *profileService) readNotice(err error) entity.Notice {
	switch {
	case !srv.monitor.Online():
		return entity.NewWarningNotice(entity.NoticeCodeLoadOffline, entity.NoticeMsgLoadOffline)
	case errors.Is(err, repository.ErrStoreUnavailable):
		return entity.NewWarningNotice(entity.NoticeCodeSyncDegraded, entity.NoticeMsgSyncDegraded)
	default:
		return entity.NewErrorNotice(entity.NoticeCodeLoadFailed, entity.NoticeMsgLoadFailed)
	}
}

func (srv *profileService) UpdateProfile(
	ctx context.Context,
	identity entity.Identity,
	input *usecase.UpdateProfileInput,
) (*usecase.ProfileResult, error) {
	if err := validation.Struct(srv.validate, input); err != nil {
		return nil, err
	}

	update := entity.ProfileUpdate{FullName: input.FullName, PhoneNumber: input.PhoneNumber}
	if update.IsEmpty() {
		return nil, errors.WithStack(domainerrors.ErrEmptyProfileUpdate)
	}
	if update.PhoneNumber != nil {
		phone := validation.NormalizePhone(*update.PhoneNumber)
		update.PhoneNumber = &phone
	}

	if !srv.monitor.Online() {
		return nil, errors.WithStack(domainerrors.ErrOffline)
	}

	logger := srv.log(ctx).With(slog.String("uid", identity.UID))

	session := srv.sessions.Current(identity.UID)
	current := session.Profile
	if current == nil || session.Degraded {
		loaded, notices := srv.load(ctx, identity)
		if len(notices) > 0 {
			// The stored record is unknown, merging onto a placeholder would clobber it.
			return nil, errors.WithStack(domainerrors.ErrStoreUnavailable)
		}
		current = loaded
	}
	merged := current.Merge(update, srv.now().UTC())

	primary, secondary := authoritativeFirst(srv.cache, srv.document)
	if err := primary.Save(ctx, merged); err != nil {
		logger.Error("Profile write failed", slog.Any("error", err))
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrProfileUpdateFailed, err.Error())
	}

	notices := []entity.Notice{entity.NewSuccessNotice(entity.NoticeCodeProfileUpdated, entity.NoticeMsgProfileUpdated)}
	if err := secondary.Save(ctx, merged); err != nil {
		logger.Warn("Profile replica write failed", slog.Any("error", err))
		notices = append(notices, entity.NewWarningNotice(entity.NoticeCodeSyncDegraded, entity.NoticeMsgSyncDegraded))
	}

	srv.sessions.Ready(identity, merged)
	logger.Info("Profile updated")

	return &usecase.ProfileResult{Profile: merged.Clone(), Notices: notices}, nil
}

// DeleteAccount removes the key-value record, the document and the credential
// in that order. Store deletions are never rolled back; every step treats an
// absent record as success so a retry after re-authentication completes.
func (srv *profileService) DeleteAccount(ctx context.Context, identity entity.Identity) ([]entity.Notice, error) {
	if !srv.monitor.Online() {
		return nil, errors.WithStack(domainerrors.ErrOffline)
	}

	logger := srv.log(ctx).With(slog.String("uid", identity.UID))

	if err := srv.cache.Delete(ctx, identity.UID); err != nil {
		logger.Error("Failed to delete profile cache record", slog.Any("error", err))

		return nil, deletionStoreError(err)
	}

	if err := srv.document.Delete(ctx, identity.UID); err != nil {
		logger.Error("Failed to delete profile document", slog.Any("error", err))

		return nil, deletionStoreError(err)
	}

	if err := srv.identity.DeleteAccount(ctx, identity); err != nil {
		switch service.IdentityErrorCodeOf(err) {
		case service.CodeUserNotFound:
			logger.Info("Identity already deleted")
		case service.CodeRequiresRecentLogin:
			logger.Warn("Account deletion needs a recent sign-in")

			return nil, errors.Wrap(domainerrors.ErrStaleSession, err.Error())
		case service.CodeNetworkRequestFailed:
			return nil, errors.Wrap(domainerrors.ErrNetworkRequestFailed, err.Error())
		default:
			logger.Error("Failed to delete identity", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrAccountDeletionFailed, err.Error())
		}
	}

	srv.sessions.End(identity.UID)
	logger.Info("Account deleted")

	return []entity.Notice{entity.NewSuccessNotice(entity.NoticeCodeAccountDeleted, entity.NoticeMsgAccountDeleted)}, nil
}

func deletionStoreError(err error) error {
	if errors.Is(err, repository.ErrStoreUnavailable) {
		return errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	return errors.Wrap(domainerrors.ErrAccountDeletionFailed, err.Error())
}
