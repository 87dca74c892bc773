// Package notification provides push transports for alert fanout.
package notification

import (
	"context"
	"log/slog"

	"alertradar/config"
	"alertradar/internal/domain/constants"
	"alertradar/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PushParams holds dependencies for PushService, injected by Fx
type PushParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger

	// App is provided only when a Firebase-backed component is configured
	App *firebase.App `optional:"true"`
}

// NewPushService creates the PushService selected by configuration
func NewPushService(params PushParams) (service.PushService, error) {
	cfg := params.Config.Push
	if cfg == nil {
		cfg = &config.PushConfig{Provider: constants.PushProviderLog}
	}

	switch cfg.Provider {
	case constants.PushProviderFCM:
		if params.App == nil {
			return nil, errors.New("firebase app is required for fcm provider")
		}
		params.Logger.Info("Using Firebase Cloud Messaging push provider")

		return NewFirebaseService(params.Ctx, params.App)

	case constants.PushProviderHTTP:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for http push provider")
		}
		params.Logger.Info("Using HTTP push provider", slog.String("endpoint", cfg.Endpoint))

		return NewHTTPPushService(cfg.Endpoint, cfg.Timeout), nil

	case constants.PushProviderLog, "":
		params.Logger.Info("Using log push provider")

		return NewLogPushService(params.Logger), nil

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}
