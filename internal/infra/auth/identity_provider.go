package auth

import (
	"context"
	"log/slog"

	"yelocar/config"
	"yelocar/internal/domain/constants"
	"yelocar/internal/domain/service"
	"yelocar/internal/errors"
	"yelocar/internal/infra/firebase"
	"yelocar/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// IdentityParams holds dependencies for the identity provider, injected by Fx
type IdentityParams struct {
	fx.In

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	App      *firebase.App
	Postgres *gorm.DB
	Hasher   service.PasswordHasher
	Tokens   service.TokenService
}

// NewIdentityProvider selects the identity provider named by auth.provider.
func NewIdentityProvider(params IdentityParams) (service.IdentityProvider, error) {
	cfg := params.Config.Auth
	window := cfg.RecentLoginWindow

	switch cfg.Provider {
	case constants.IdentityProviderFirebase:
		admin, err := params.App.Auth()
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using Firebase identity provider")

		return NewFirebaseIdentityProvider(params.Ctx, admin, params.Config.Firebase.APIKey, window)

	case constants.IdentityProviderLocal, "":
		if params.Postgres == nil {
			return nil, errors.New("local identity provider requires postgres")
		}
		params.Logger.Info("Using local identity provider")

		accounts := postgres.NewAccountRepository(params.Postgres)

		return NewLocalIdentityProvider(accounts, params.Hasher, params.Tokens, window), nil

	default:
		return nil, errors.Errorf("unknown identity provider: %s", cfg.Provider)
	}
}
