// Package firestore implements the alert store and recipient directory on Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"alertradar/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Module provides the Firestore client and the repositories built on it
var Module = fx.Options(
	fx.Provide(
		NewClient,
		NewAlertRepository,
		NewRecipientRepository,
		NewDispatchLogRepository,
	),
)

// Params holds dependencies for the Firestore client, injected by Fx
type Params struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	App       *firebase.App
}

// NewClient opens the Firestore client of the shared Firebase app and closes it on stop
func NewClient(params Params) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing firestore client")

			return client.Close()
		},
	})

	return client, nil
}
