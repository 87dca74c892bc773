// Package persistence selects the alert store, recipient directory and dispatch log backend.
package persistence

import (
	"alertradar/config"
	"alertradar/internal/domain/constants"
	"alertradar/internal/domain/repository"
	"alertradar/internal/errors"
	"alertradar/internal/infra/persistence/firestore"
	"alertradar/internal/infra/persistence/memory"
	"alertradar/internal/infra/persistence/postgres"
	"alertradar/internal/infra/redis"

	"go.uber.org/fx"
)

// Module returns the repositories of the configured store backend.
// The firestore backend expects a *firebase.App in the graph.
func Module(cfg *config.StoreConfig, redisCfg *config.RedisConfig) (fx.Option, error) {
	switch cfg.Backend {
	case constants.StoreBackendFirestore:
		return firestore.Module, nil

	case constants.StoreBackendPostgres:
		if redisCfg != nil && redisCfg.Addr != "" {
			return fx.Options(postgres.Module, redis.Module), nil
		}

		return postgres.Module, nil

	case constants.StoreBackendMemory:
		return fx.Provide(
			fx.Annotate(memory.NewAlertRepository, fx.As(new(repository.AlertRepository))),
			fx.Annotate(memory.NewRecipientRepository, fx.As(new(repository.RecipientRepository))),
			fx.Annotate(memory.NewDispatchLogRepository, fx.As(new(repository.DispatchLogRepository))),
		), nil

	default:
		return nil, errors.Errorf("unknown store backend: %s", cfg.Backend)
	}
}
