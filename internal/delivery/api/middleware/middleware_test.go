package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yelocar/internal/delivery/api/response"
	deliverycontext "yelocar/internal/delivery/context"
	"yelocar/internal/domain/entity"
	domainerrors "yelocar/internal/domain/errors"
	"yelocar/internal/domain/service"
	mockSvc "yelocar/internal/mocks/service"
	mockUsecase "yelocar/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	req.Header.Set(echo.HeaderXRealIP, "203.0.113.7")
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	accounts := mockUsecase.NewMockAccountUsecase(t)
	mw := NewAuthMiddleware(accounts)
	identity := &entity.Identity{UID: "u1", Email: "asha@example.com"}

	accounts.EXPECT().Authenticate(mock.Anything, "good-token").Return(identity, nil)

	c, rec := newContext("Bearer good-token")
	var seen entity.Identity
	err := mw.Authenticate(func(c echo.Context) error {
		seen, _ = deliverycontext.GetIdentity(c)

		return okHandler(c)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "u1", seen.UID)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		setup   func(m *mockUsecase.MockAccountUsecase)
		wantErr error
	}{
		{"missing header", "", nil, domainerrors.ErrUnauthenticated},
		{"not a bearer token", "Basic abc", nil, domainerrors.ErrInvalidToken},
		{
			"expired token", "Bearer expired",
			func(m *mockUsecase.MockAccountUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "expired").
					Return(nil, errors.Wrap(domainerrors.ErrInvalidToken, "expired"))
			},
			domainerrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := mockUsecase.NewMockAccountUsecase(t)
			if tt.setup != nil {
				tt.setup(accounts)
			}
			c, _ := newContext(tt.header)

			err := NewAuthMiddleware(accounts).Authenticate(okHandler)(c)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := mockSvc.NewMockRateLimiter(t)
	mw := NewRateLimitMiddleware(limiter, discardLogger())

	limiter.EXPECT().Allow(mock.Anything, "contact:203.0.113.7").
		Return(service.RateLimitDecision{Allowed: true, Limit: 5, Remaining: 4}, nil).Once()
	limiter.EXPECT().Allow(mock.Anything, "contact:203.0.113.7").
		Return(service.RateLimitDecision{Allowed: false, Limit: 5, RetryAfter: 1500 * time.Millisecond}, nil).Once()

	c, rec := newContext("")
	require.NoError(t, mw.PerIP("contact")(okHandler)(c))
	assert.Equal(t, "4", rec.Header().Get(headerRateLimitRemaining))

	c, rec = newContext("")
	err := mw.PerIP("contact")(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrRateLimited)
	assert.Equal(t, "2", rec.Header().Get(echo.HeaderRetryAfter))
	assert.Equal(t, "0", rec.Header().Get(headerRateLimitRemaining))
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	limiter := mockSvc.NewMockRateLimiter(t)
	mw := NewRateLimitMiddleware(limiter, discardLogger())

	limiter.EXPECT().Allow(mock.Anything, mock.Anything).
		Return(service.RateLimitDecision{}, errors.New("redis: connection refused"))

	c, rec := newContext("")
	require.NoError(t, mw.PerIP("contact")(okHandler)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	mw := NewRateLimitMiddleware(nil, discardLogger())

	c, rec := newContext("")
	require.NoError(t, mw.PerIP("contact")(okHandler)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantError string
		wantField string
	}{
		{"domain error", errors.WithStack(domainerrors.ErrRateLimited), http.StatusTooManyRequests, "RATE_LIMITED", ""},
		{"validation error", domainerrors.NewValidationError("tag", "tag is invalid."), http.StatusBadRequest, "VALIDATION_FAILED", "tag"},
		{"echo error", echo.ErrNotFound, http.StatusNotFound, "HTTP_ERROR", ""},
		{"unknown error", context.DeadlineExceeded, http.StatusInternalServerError, "INTERNAL_ERROR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := NewErrorMiddleware(discardLogger(), nil)
			c, rec := newContext("")

			mw.HandleHTTPError(tt.err, c)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantError, body.Error.Code)
			if tt.wantField != "" {
				assert.Equal(t, map[string]any{"field": tt.wantField}, body.Error.Details)
			}
		})
	}
}
