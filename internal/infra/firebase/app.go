// Package firebase builds the Firebase Admin SDK app and the clients derived from it.
package firebase

import (
	"context"
	"log/slog"

	"yelocar/config"
	"yelocar/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// ErrNotConfigured is returned when a Firebase client is requested without a firebase config section.
var ErrNotConfigured = errors.New("firebase is not configured")

// Params defines the parameters required for the Firebase app
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// App wraps the Admin SDK app. Clients are created on first use so that a
// process only talks to the Firebase products its configuration selects.
type App struct {
	app *firebase.App
	ctx context.Context
}

// NewApp initializes the Firebase app. It returns a nil *App when no
// firebase section is configured.
func NewApp(params Params) (*App, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		params.Logger.Info("Firebase not configured")

		return nil, nil
	}

	opts := make([]option.ClientOption, 0, 1)
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{
		ProjectID:   cfg.ProjectID,
		DatabaseURL: cfg.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized", slog.String("project_id", cfg.ProjectID))

	return &App{app: app, ctx: params.Ctx}, nil
}

// Auth returns the Admin SDK auth client.
func (a *App) Auth() (*auth.Client, error) {
	if a == nil {
		return nil, ErrNotConfigured
	}
	client, err := a.app.Auth(a.ctx)

	return client, errors.Wrap(err, "failed to get auth client")
}

// Database returns the Realtime Database client.
func (a *App) Database() (*db.Client, error) {
	if a == nil {
		return nil, ErrNotConfigured
	}
	client, err := a.app.Database(a.ctx)

	return client, errors.Wrap(err, "failed to get database client")
}

// Firestore returns a Firestore client. The caller owns Close.
func (a *App) Firestore() (*firestore.Client, error) {
	if a == nil {
		return nil, ErrNotConfigured
	}
	client, err := a.app.Firestore(a.ctx)

	return client, errors.Wrap(err, "failed to get firestore client")
}

// Messaging returns the Cloud Messaging client.
func (a *App) Messaging() (*messaging.Client, error) {
	if a == nil {
		return nil, ErrNotConfigured
	}
	client, err := a.app.Messaging(a.ctx)

	return client, errors.Wrap(err, "failed to get messaging client")
}
