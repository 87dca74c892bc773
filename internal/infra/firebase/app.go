// Package firebase initialises the Firebase app shared by Firestore and Cloud Messaging.
package firebase

import (
	"context"
	"log/slog"

	"alertradar/config"
	"alertradar/internal/domain/constants"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp creates the Firebase app. Without a credentials path, application default credentials are used.
func NewApp(params Params) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		cfg = &config.FirebaseConfig{}
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(params.Ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized", slog.String("project_id", cfg.ProjectID))

	return app, nil
}

// Required reports whether any configured component needs the Firebase app
func Required(cfg *config.Config) bool {
	return (cfg.Store != nil && cfg.Store.Backend == constants.StoreBackendFirestore) ||
		(cfg.Push != nil && cfg.Push.Provider == constants.PushProviderFCM)
}
