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

func TestAuthHandler_SignUp(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AccountUC: accountUC})
	c, rec := newTestContext(http.MethodPost, "/auth/signup",
		`{"fullName":"Asha Rao","phoneNumber":"9876543210","email":"asha@example.com","password":"Secret1","confirmPassword":"Secret1"}`)

	accountUC.EXPECT().SignUp(mock.Anything, &usecase.SignUpInput{
		FullName:        "Asha Rao",
		PhoneNumber:     "9876543210",
		Email:           "asha@example.com",
		Password:        "Secret1",
		ConfirmPassword: "Secret1",
	}).Return(&usecase.AuthOutput{
		Identity:  entity.Identity{UID: "u1", Email: "asha@example.com"},
		IDToken:   "id-token",
		ExpiresIn: time.Hour,
		Profile:   &entity.UserProfile{UID: "u1", FullName: "Asha Rao"},
		Notices:   []entity.Notice{entity.NewSuccessNotice(entity.NoticeCodeAccountCreated, entity.NoticeMsgAccountCreated)},
	}, nil)

	require.NoError(t, h.SignUp(c))

	var got AuthResponse
	env := decode(t, rec, &got)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "id-token", got.IDToken)
	assert.Equal(t, int64(3600), got.ExpiresIn)
	assert.Nil(t, got.Profile.CreatedAt)
	require.Len(t, env.Notices, 1)
	assert.Equal(t, entity.NoticeCodeAccountCreated, env.Notices[0].Code)
}

func TestAuthHandler_SignUp_ValidationError(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AccountUC: accountUC})
	c, rec := newTestContext(http.MethodPost, "/auth/signup", `{"email":"asha"}`)

	accountUC.EXPECT().SignUp(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewValidationError("email", "Please enter a valid email address."))

	require.NoError(t, h.SignUp(c))

	env := decode(t, rec, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]any{"field": "email"}, env.Error.Details)
}

func TestAuthHandler_SignIn_InvalidCredentials(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AccountUC: accountUC})
	c, rec := newTestContext(http.MethodPost, "/auth/signin", `{"email":"asha@example.com","password":"nope"}`)

	accountUC.EXPECT().SignIn(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "auth/invalid-credential"))

	require.NoError(t, h.SignIn(c))

	env := decode(t, rec, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestAuthHandler_SignOut(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AccountUC: accountUC})
	c, rec := newTestContext(http.MethodPost, "/auth/signout", "")
	identity := signedIn(c)

	accountUC.EXPECT().SignOut(mock.Anything, identity).Return(nil)

	require.NoError(t, h.SignOut(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthHandler_SignOut_WithoutIdentity(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{AccountUC: mockUsecase.NewMockAccountUsecase(t)})
	c, _ := newTestContext(http.MethodPost, "/auth/signout", "")

	assert.ErrorIs(t, h.SignOut(c), domainerrors.ErrUnauthenticated)
}
