package response

import (
	"net/http"

	deliverycontext "yelocar/internal/delivery/context"
	"yelocar/internal/domain/entity"
	domainerrors "yelocar/internal/domain/errors"
	"yelocar/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data    any             `json:"data"`
	Notices []entity.Notice `json:"notices,omitempty"`
	Meta    *MetaInfo       `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// FieldDetails names the offending request field of a validation error.
type FieldDetails struct {
	Field string `json:"field"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return SuccessWithNotices(c, statusCode, data, nil)
}

// SuccessWithNotices returns a successful response with user-facing notices,
// such as a warning that a secondary store write failed.
func SuccessWithNotices(c echo.Context, statusCode int, data any, notices []entity.Notice) error {
	return c.JSON(statusCode, SuccessResponse{
		Data:    data,
		Notices: notices,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders domain errors and passes anything else on to the
// centralized error handler.
func HandleAppError(c echo.Context, err error) error {
	var vErr *domainerrors.ValidationError
	if errors.As(err, &vErr) {
		return Error(c, vErr.HTTPCode(), vErr.ErrorCode(), vErr.Message(), &FieldDetails{Field: vErr.Field})
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}

	return errors.WithStack(err)
}
