// Package redis carries alert insert signals between processes over Redis pub/sub.
package redis

import (
	"context"
	"log/slog"

	"alertradar/config"
	"alertradar/internal/domain/lifecycle"
	"alertradar/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Module provides the notifier when Redis is configured
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(
			NewNotifier,
			fx.As(new(postgres.ChangeNotifier)),
		),
	),
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Notifier publishes the ID of every inserted alert and fans the signal out to local listeners
type Notifier struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

// NewNotifier connects to Redis, checking the connection on start
func NewNotifier(params Params) (*Notifier, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis address is required for the change notifier")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to connect to redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewNotifierWithClient(client, cfg.Channel, params.Logger), nil
}

// NewNotifierWithClient wraps an existing client
func NewNotifierWithClient(client *redis.Client, channel string, logger *slog.Logger) *Notifier {
	return &Notifier{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

// Notify publishes alertID on the configured channel
func (n *Notifier) Notify(ctx context.Context, alertID string) error {
	if err := n.client.Publish(ctx, n.channel, alertID).Err(); err != nil {
		return errors.Wrap(err, "failed to publish alert signal")
	}

	return nil
}

// Listen subscribes to the channel. Bursts of messages collapse into one pending signal.
// The returned channel is closed when ctx is done or the subscription ends.
func (n *Notifier) Listen(ctx context.Context) (<-chan struct{}, error) {
	sub := n.client.Subscribe(ctx, n.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()

		return nil, errors.Wrap(err, "failed to subscribe to alert signals")
	}

	signals := make(chan struct{}, 1)
	messages := sub.Channel()

	go func() {
		defer close(signals)
		defer sub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-messages:
				if !ok {
					n.logger.Warn("Redis alert subscription closed", slog.String("channel", n.channel))

					return
				}
				select {
				case signals <- struct{}{}:
				default:
				}
			}
		}
	}()

	return signals, nil
}
