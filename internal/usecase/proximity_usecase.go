package usecase

import (
	"context"
	"time"

	"alertradar/internal/domain/entity"
)

// ProximityUsecase narrows recent alerts to those within a radius of a viewer and joins sender profiles
type ProximityUsecase interface {
	// Nearby returns every alert with SentAt after since whose distance to viewer is at most radiusMiles.
	// Ordering is unspecified. A missing sender profile yields an "Unknown" sender, never an error.
	Nearby(ctx context.Context, viewer entity.Location, radiusMiles float64, since time.Time) ([]*entity.EnrichedAlert, error)
}
