package main

import (
	"context"
	"log/slog"
	"os"

	"alertradar/config"
	"alertradar/internal/delivery"
	"alertradar/internal/delivery/api"
	"alertradar/internal/delivery/api/middleware"
	"alertradar/internal/delivery/api/router/handler"
	"alertradar/internal/infra/auth"
	"alertradar/internal/infra/firebase"
	logs "alertradar/internal/infra/log"
	"alertradar/internal/infra/notification"
	"alertradar/internal/infra/persistence"
	"alertradar/internal/infra/pubsub"
	"alertradar/internal/usecase"
	"alertradar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			closeFeedsOnStop,
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
		pubsub.Module,
	}

	if firebase.Required(cfg) {
		opts = append(opts, fx.Provide(firebase.NewApp))
	}

	return fx.Options(opts...)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			notification.NewPushService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProximityService,
			impl.NewFanoutService,
			impl.NewFeedService,
			impl.NewAlertService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAlertHandler,
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

// closeFeedsOnStop ends every open nearby stream before the HTTP server drains
func closeFeedsOnStop(lc fx.Lifecycle, feed usecase.FeedUsecase) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			feed.Close()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
