package usecase

import (
	"context"
	"time"

	"alertradar/internal/domain/entity"
)

// FeedUpdate is one emission of a nearby-alert subscription.
// Alerts is the complete current membership, not a delta. Err is set when the
// re-evaluation failed; the subscription stays open and retries on the next trigger.
type FeedUpdate struct {
	Alerts      []*entity.EnrichedAlert `json:"alerts"`
	Center      entity.Location         `json:"center"`
	EvaluatedAt time.Time               `json:"evaluated_at"`
	Err         error                   `json:"-"`
}

// FeedOptions describes what a subscription watches
type FeedOptions struct {
	Location    entity.Location
	RadiusMiles float64
	Window      time.Duration
}

// FeedSubscription is a live, per-viewer view of nearby alerts
type FeedSubscription interface {
	// ID identifies the subscription for logging and unsubscribe.
	ID() string

	// Updates delivers full replacement sets. Only the latest unread update is kept.
	// The channel is closed after Unsubscribe.
	Updates() <-chan FeedUpdate

	// UpdateLocation feeds a device location fix. Whether it recenters depends on the recenter policy.
	UpdateLocation(fix entity.LocationFix)

	// Center returns the location the subscription currently evaluates against.
	Center() entity.Location

	// Unsubscribe stops the subscription. No update is delivered after it returns. Safe to call repeatedly.
	Unsubscribe()
}

// FeedUsecase starts nearby-alert subscriptions
type FeedUsecase interface {
	// Subscribe starts a subscription and emits the initial set once evaluated.
	// The subscription lives until Unsubscribe or until ctx is done.
	Subscribe(ctx context.Context, opts FeedOptions) (FeedSubscription, error)

	// Close unsubscribes every live subscription.
	Close()
}
