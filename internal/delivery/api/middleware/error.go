package middleware

import (
	"log/slog"
	"net/http"

	"yelocar/internal/delivery/api/response"
	deliverycontext "yelocar/internal/delivery/context"
	domainerrors "yelocar/internal/domain/errors"
	"yelocar/internal/errors"
	"yelocar/internal/infra/tracking"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger  *slog.Logger
	tracker *tracking.Tracker
}

// NewErrorMiddleware creates a new error handling middleware. tracker may be nil.
func NewErrorMiddleware(logger *slog.Logger, tracker *tracking.Tracker) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:  logger,
		tracker: tracker,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var vErr *domainerrors.ValidationError
	if errors.As(err, &vErr) {
		_ = response.Error(c, vErr.HTTPCode(), vErr.ErrorCode(), vErr.Message(), &response.FieldDetails{Field: vErr.Field})

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.report(c, err)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.report(c, err)

	// For 500 errors, do not expose internal error details to the client
	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}

func (m *ErrorMiddleware) report(c echo.Context, err error) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)

	m.tracker.Capture(err, map[string]string{
		"request_id": deliverycontext.GetRequestID(c),
		"route":      c.Path(),
		"method":     req.Method,
	})
}
