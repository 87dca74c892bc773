package usecase

import (
	"context"
	"time"

	"alertradar/internal/domain/entity"
)

// SubmitAlertInput represents a panic report from a sender
type SubmitAlertInput struct {
	SenderID      string           `json:"sender_id"`
	Location      *entity.Location `json:"location"` // Nil when the device has no position fix.
	LocationLabel string           `json:"location_label"`
}

// NearbyInput represents a one-shot or live nearby query.
// Zero RadiusMiles or Window fall back to the configured defaults.
type NearbyInput struct {
	Location    *entity.Location `json:"location"`
	RadiusMiles float64          `json:"radius_miles"`
	Window      time.Duration    `json:"window"`
}

// AlertUsecase is the library surface consumed by clients
type AlertUsecase interface {
	// SubmitAlert stores a new alert and triggers exactly one fanout for it. Returns the alert ID.
	// Fanout outcome never changes the result.
	SubmitAlert(ctx context.Context, input *SubmitAlertInput) (string, error)

	// Nearby runs a single proximity query over the given window.
	Nearby(ctx context.Context, input *NearbyInput) ([]*entity.EnrichedAlert, error)

	// SubscribeNearby starts a live feed around the given location.
	SubscribeNearby(ctx context.Context, input *NearbyInput) (FeedSubscription, error)

	// Unsubscribe stops a feed started by SubscribeNearby.
	Unsubscribe(subscription FeedSubscription)
}
