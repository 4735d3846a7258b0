package main

import (
	"context"
	"log/slog"
	"os"

	"yelocar/config"
	"yelocar/internal/delivery"
	"yelocar/internal/delivery/worker"
	"yelocar/internal/delivery/worker/handler"
	"yelocar/internal/domain/service"
	"yelocar/internal/infra/firebase"
	logs "yelocar/internal/infra/log"
	"yelocar/internal/infra/notification"
	"yelocar/internal/usecase"
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
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewNotificationService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newLeadService,
		),
	)
}

func newLeadService(cfg *config.Config, notifier service.NotificationService, logger *slog.Logger) usecase.LeadUsecase {
	var topic string
	if cfg.Firebase != nil {
		topic = cfg.Firebase.LeadTopic
	}

	return impl.NewLeadService(notifier, topic, logger)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLeadDispatcher,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewQueueConsumer,
				fx.ResultTags(`group:"deliveries,flatten"`),
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
