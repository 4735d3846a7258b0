package middleware

import (
	"log/slog"
	"math"
	"strconv"

	deliverycontext "yelocar/internal/delivery/context"
	domainerrors "yelocar/internal/domain/errors"
	"yelocar/internal/domain/service"
	"yelocar/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
)

// RateLimitMiddleware meters a route per client IP. A nil limiter disables it.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

func NewRateLimitMiddleware(limiter service.RateLimiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, logger: logger}
}

// PerIP returns middleware keyed by scope and the client address.
func (m *RateLimitMiddleware) PerIP(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if m.limiter == nil {
			return next
		}

		return func(c echo.Context) error {
			ctx := c.Request().Context()
			decision, err := m.limiter.Allow(ctx, scope+":"+c.RealIP())
			if err != nil {
				// Fail open: the limiter store being down must not block enquiries.
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable", slog.Any("error", err))

				return next(c)
			}

			header := c.Response().Header()
			header.Set(headerRateLimitLimit, strconv.Itoa(decision.Limit))
			header.Set(headerRateLimitRemaining, strconv.FormatInt(max(decision.Remaining, 0), 10))

			if !decision.Allowed {
				seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
				header.Set(echo.HeaderRetryAfter, strconv.Itoa(max(seconds, 1)))

				return errors.WithStack(domainerrors.ErrRateLimited)
			}

			return next(c)
		}
	}
}
