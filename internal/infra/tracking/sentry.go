// Package tracking reports unexpected server errors to Sentry.
package tracking

import (
	"context"
	"log/slog"
	"time"

	"yelocar/config"
	"yelocar/internal/errors"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
)

const flushTimeout = 2 * time.Second

// Params defines the parameters required for the tracker
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Tracker captures errors. A nil *Tracker is valid and drops everything.
type Tracker struct {
	hub *sentry.Hub
}

// New initializes the Sentry client when a DSN is configured.
func New(params Params) (*Tracker, error) {
	cfg := params.Config.Sentry
	if cfg == nil || cfg.DSN == "" {
		params.Logger.Info("Sentry not configured, error tracking disabled")

		return nil, nil
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		EnableTracing:    cfg.TracesSampleRate > 0,
		TracesSampleRate: cfg.TracesSampleRate,
		Environment:      params.Config.Env.Env,
		ServerName:       params.Config.Env.ServiceName,
	})
	if err != nil {
		return nil, errors.Wrap(err, "sentry init")
	}

	tracker := &Tracker{hub: sentry.NewHub(client, sentry.NewScope())}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			tracker.hub.Flush(flushTimeout)

			return nil
		},
	})

	return tracker, nil
}

// Capture reports err with the given tags.
func (t *Tracker) Capture(err error, tags map[string]string) {
	if t == nil || err == nil {
		return
	}

	hub := t.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}
