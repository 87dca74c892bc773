package main

import (
	"context"
	"log/slog"
	"os"

	"alertradar/config"
	"alertradar/internal/delivery"
	"alertradar/internal/delivery/worker"
	"alertradar/internal/delivery/worker/handler"
	"alertradar/internal/infra/firebase"
	logs "alertradar/internal/infra/log"
	"alertradar/internal/infra/notification"
	"alertradar/internal/infra/persistence"
	"alertradar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	store, err := persistence.Module(cfg.Store, cfg.Redis)
	if err != nil {
		slog.Error("Failed to select store backend", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		injectInfra(cfg),
		store,
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra(cfg *config.Config) fx.Option {
	opts := []fx.Option{
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			context.Background,
		),
	}

	if firebase.Required(cfg) {
		opts = append(opts, fx.Provide(firebase.NewApp))
	}

	return fx.Options(opts...)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewPushService,
			impl.NewFanoutService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
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
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker server", slog.Any("error", err))
				if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					os.Exit(1)
				}
			}
		}()
	}
}
