package usecase

import (
	"context"

	"alertradar/internal/domain/entity"
)

// FanoutUsecase pushes a newly stored alert to recipients
type FanoutUsecase interface {
	// FanoutOnNewAlert dispatches one push per reachable recipient in scope.
	// Per-recipient failures are counted in the report; only a failed directory scan returns an error.
	FanoutOnNewAlert(ctx context.Context, alert *entity.AlertRecord) (*entity.FanoutReport, error)
}
