// Package rediskv keeps user profiles in Redis and backs the contact form rate limiter.
package rediskv

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net"
	"strings"

	"yelocar/config"
	"yelocar/internal/domain/lifecycle"
	"yelocar/internal/domain/repository"
	"yelocar/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultKeyPrefix = "yelocar"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Redis client. It returns nil when no redis section is
// configured; callers that need Redis must check for that.
func NewClient(params Params) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured")

		return nil, nil
	}

	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The key-value store may be down at start-up; the connectivity
			// monitor reports it instead of failing the process.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed", slog.String("addr", cfg.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// KeyPrefix returns the configured namespace for every key this process writes.
func KeyPrefix(cfg *config.Config) string {
	if cfg.Redis == nil || cfg.Redis.KeyPrefix == "" {
		return defaultKeyPrefix
	}

	return strings.TrimSuffix(cfg.Redis.KeyPrefix, ":")
}

func wrapError(err error, msg string) error {
	if isUnavailable(err) {
		return errors.Wrap(errors.Join(repository.ErrStoreUnavailable, err), msg)
	}

	return errors.Wrap(err, msg)
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, redis.ErrClosed) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}
