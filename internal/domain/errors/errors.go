package errors

import (
	"net/http"

	"yelocar/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Catalog errors
	ErrCarNotFound = NewBaseError(
		http.StatusNotFound,
		"CAR_NOT_FOUND",
		"Car not found.",
		"",
	)

	ErrInvalidFilter = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FILTER",
		"Unknown category, price range or tag.",
		"",
	)

	// Connectivity errors
	ErrOffline = NewBaseError(
		http.StatusServiceUnavailable,
		"OFFLINE",
		"You are offline. Please check your internet connection.",
		"",
	)

	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"Failed to connect to database. Please check your internet connection.",
		"",
	)

	// Profile errors
	ErrProfileUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_UPDATE_FAILED",
		"Failed to update profile.",
		"",
	)

	ErrEmptyProfileUpdate = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_PROFILE_UPDATE",
		"Nothing to update.",
		"",
	)

	// Account errors
	ErrStaleSession = NewBaseError(
		http.StatusUnauthorized,
		"REQUIRES_RECENT_LOGIN",
		"Please re-authenticate to delete your account.",
		"",
	)

	ErrAccountDeletionFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_DELETION_FAILED",
		"Failed to delete account.",
		"",
	)

	ErrEmailAlreadyInUse = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_IN_USE",
		"An account with this email already exists.",
		"",
	)

	ErrWeakPassword = NewBaseError(
		http.StatusBadRequest,
		"WEAK_PASSWORD",
		"Password is too weak. Please choose a stronger password.",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Please enter a valid email address.",
		"",
	)

	ErrNetworkRequestFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"NETWORK_REQUEST_FAILED",
		"Network error. Please check your internet connection.",
		"",
	)

	ErrSignUpFailed = NewBaseError(
		http.StatusInternalServerError,
		"SIGN_UP_FAILED",
		"Sign up failed. Please try again.",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password.",
		"",
	)

	ErrSignInFailed = NewBaseError(
		http.StatusInternalServerError,
		"SIGN_IN_FAILED",
		"Sign in failed. Please try again.",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Please sign in to continue.",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token.",
		"",
	)

	// Contact errors
	ErrContactSubmitFailed = NewBaseError(
		http.StatusInternalServerError,
		"CONTACT_SUBMIT_FAILED",
		"Failed to send your message. Please try again.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed.",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests. Please try again later.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later.",
		"",
	)
)

// ValidationError reports the first failing field of a request so that no
// remote call is made with invalid input.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a field validation error
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

func (e *ValidationError) Message() string {
	return e.Reason
}

func (e *ValidationError) Details() string {
	return e.Field
}
