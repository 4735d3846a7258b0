package main

import (
	"context"
	"log/slog"
	"os"

	"yelocar/config"
	"yelocar/internal/delivery"
	"yelocar/internal/delivery/api"
	"yelocar/internal/delivery/api/middleware"
	"yelocar/internal/delivery/api/router/handler"
	"yelocar/internal/domain/constants"
	"yelocar/internal/domain/service"
	"yelocar/internal/domain/validation"
	"yelocar/internal/infra/auth"
	"yelocar/internal/infra/connectivity"
	logs "yelocar/internal/infra/log"
	"yelocar/internal/infra/persistence"
	"yelocar/internal/infra/persistence/memory"
	"yelocar/internal/infra/pubsub"
	"yelocar/internal/infra/qrcode"
	"yelocar/internal/infra/tracking"
	"yelocar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			tracking.New,
			validation.New,
		),
		persistence.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewCatalogRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			newTokenService,
			auth.NewIdentityProvider,
			connectivity.NewMonitor,
			qrcode.NewQRCodeService,
		),
		pubsub.Module,
	)
}

// newTokenService only builds the JWT issuer for the local identity provider,
// which is the sole consumer of the signing secrets.
func newTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth.Provider == constants.IdentityProviderFirebase {
		return nil, nil
	}

	return auth.NewJWTService(cfg)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewProfileService,
			impl.NewAccountService,
			impl.NewContactService,
			impl.NewConnectivityService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCarHandler,
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewContactHandler,
			handler.NewConnectivityHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
