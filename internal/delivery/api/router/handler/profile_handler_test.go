package handler

import (
	"net/http"
	"testing"
	"time"

	"yelocar/internal/domain/entity"
	domainerrors "yelocar/internal/domain/errors"
	mockUsecase "yelocar/internal/mocks/usecase"
	"yelocar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileHandler_Get_PlaceholderWithNotice(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC})
	c, rec := newTestContext(http.MethodGet, "/api/v1/profile", "")
	identity := signedIn(c)

	offline := entity.NewWarningNotice(entity.NoticeCodeLoadOffline, entity.NoticeMsgLoadOffline)
	profileUC.EXPECT().CurrentProfile(mock.Anything, identity).Return(&usecase.ProfileResult{
		Profile: entity.NewPlaceholderProfile(identity),
		Notices: []entity.Notice{offline},
	})

	require.NoError(t, h.Get(c))

	var got ProfileResponse
	env := decode(t, rec, &got)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", got.UID)
	assert.Empty(t, got.FullName)
	assert.Equal(t, []entity.Notice{offline}, env.Notices)
}

func TestProfileHandler_Update(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC})
	c, rec := newTestContext(http.MethodPatch, "/api/v1/profile", `{"fullName":"Asha R"}`)
	identity := signedIn(c)
	updatedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	profileUC.EXPECT().UpdateProfile(mock.Anything, identity, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
		return in.FullName != nil && *in.FullName == "Asha R" && in.PhoneNumber == nil
	})).Return(&usecase.ProfileResult{
		Profile: &entity.UserProfile{UID: "u1", FullName: "Asha R", UpdatedAt: updatedAt},
		Notices: []entity.Notice{
			entity.NewSuccessNotice(entity.NoticeCodeProfileUpdated, entity.NoticeMsgProfileUpdated),
			entity.NewWarningNotice(entity.NoticeCodeSyncDegraded, entity.NoticeMsgSyncDegraded),
		},
	}, nil)

	require.NoError(t, h.Update(c))

	var got ProfileResponse
	env := decode(t, rec, &got)
	assert.Equal(t, "Asha R", got.FullName)
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, updatedAt.Equal(*got.UpdatedAt))
	require.Len(t, env.Notices, 2)
	assert.Equal(t, entity.NoticeWarning, env.Notices[1].Level)
}

func TestProfileHandler_Update_Offline(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC})
	c, rec := newTestContext(http.MethodPatch, "/api/v1/profile", `{"phoneNumber":"9876543210"}`)
	signedIn(c)

	profileUC.EXPECT().UpdateProfile(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrOffline))

	require.NoError(t, h.Update(c))

	env := decode(t, rec, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "OFFLINE", env.Error.Code)
}

func TestProfileHandler_Refresh(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC})
	c, rec := newTestContext(http.MethodPost, "/api/v1/profile/refresh", "")
	identity := signedIn(c)

	profileUC.EXPECT().RefreshProfile(mock.Anything, identity).
		Return(&usecase.ProfileResult{Profile: &entity.UserProfile{UID: "u1", FullName: "Asha Rao"}})

	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_DeleteAccount_StaleSession(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC})
	c, rec := newTestContext(http.MethodDelete, "/api/v1/account", "")
	identity := signedIn(c)

	profileUC.EXPECT().DeleteAccount(mock.Anything, identity).
		Return(nil, errors.Wrap(domainerrors.ErrStaleSession, "auth/requires-recent-login"))

	require.NoError(t, h.DeleteAccount(c))

	env := decode(t, rec, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "REQUIRES_RECENT_LOGIN", env.Error.Code)
}

func TestProfileHandler_DeleteAccount(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC})
	c, rec := newTestContext(http.MethodDelete, "/api/v1/account", "")
	identity := signedIn(c)

	profileUC.EXPECT().DeleteAccount(mock.Anything, identity).
		Return([]entity.Notice{entity.NewSuccessNotice(entity.NoticeCodeAccountDeleted, entity.NoticeMsgAccountDeleted)}, nil)

	require.NoError(t, h.DeleteAccount(c))

	env := decode(t, rec, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.NoticeCodeAccountDeleted, env.Notices[0].Code)
}
