package errors

import (
	"net/http"
	"testing"

	"yelocar/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsStillMatchesPredefined(t *testing.T) {
	err := ErrAccountDeletionFailed.WithDetails("store returned 500")

	assert.True(t, errors.Is(err, ErrAccountDeletionFailed))
	assert.False(t, errors.Is(err, ErrStaleSession))
	assert.Equal(t, "store returned 500", err.Details())
	assert.Empty(t, ErrAccountDeletionFailed.Details())
}

func TestBaseError_WrappedKeepsAppErrorContract(t *testing.T) {
	err := ErrOffline.WrapMessage("update profile")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "OFFLINE", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrOffline))
}

func TestValidationError(t *testing.T) {
	err := errors.Wrap(NewValidationError("phoneNumber", "Phone number must be 10 digits."), "sign up")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "Phone number must be 10 digits.", appErr.Message())
	assert.Equal(t, "phoneNumber", appErr.Details())
}
