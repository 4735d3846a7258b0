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

func TestContactHandler_Submit(t *testing.T) {
	contactUC := mockUsecase.NewMockContactUsecase(t)
	h := NewContactHandler(ContactHandlerParams{ContactUC: contactUC})
	c, rec := newTestContext(http.MethodPost, "/api/v1/contact",
		`{"name":"Ravi","phone":"9123456789","email":"ravi@example.com"}`)
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	contactUC.EXPECT().Submit(mock.Anything, &usecase.ContactInput{
		Name:  "Ravi",
		Phone: "9123456789",
		Email: "ravi@example.com",
	}).Return(&usecase.ContactOutput{
		Message: &entity.ContactMessage{ID: "c-1", CreatedAt: createdAt},
		Notices: []entity.Notice{entity.NewSuccessNotice(entity.NoticeCodeContactSent, entity.NoticeMsgContactSent)},
	}, nil)

	require.NoError(t, h.Submit(c))

	var got ContactResponse
	env := decode(t, rec, &got)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "c-1", got.ID)
	assert.Equal(t, entity.NoticeMsgContactSent, env.Notices[0].Message)
}

func TestContactHandler_Submit_StoreFailure(t *testing.T) {
	contactUC := mockUsecase.NewMockContactUsecase(t)
	h := NewContactHandler(ContactHandlerParams{ContactUC: contactUC})
	c, rec := newTestContext(http.MethodPost, "/api/v1/contact",
		`{"name":"Ravi","phone":"9123456789","email":"ravi@example.com"}`)

	contactUC.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrContactSubmitFailed, "permission denied"))

	require.NoError(t, h.Submit(c))

	env := decode(t, rec, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to send your message. Please try again.", env.Error.Message)
}
