// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"alertradar/internal/domain/entity"
)

// AlertChange is one change notification delivered to an alert subscriber.
// Records holds the newly inserted alerts matching the subscription predicate;
// it may be empty when the backend only signals that something changed.
type AlertChange struct {
	Records []*entity.AlertRecord
	Err     error
}

// AlertRepository is the alert store. It exclusively owns AlertRecord persistence.
type AlertRepository interface {
	// Insert persists a new alert, assigning ID and SentAt. Nothing is visible on failure.
	// Returns the store-assigned ID.
	Insert(ctx context.Context, record *entity.AlertRecord) (string, error)

	// QueryRecent returns every alert with SentAt strictly after since, in no particular order.
	QueryRecent(ctx context.Context, since time.Time) ([]*entity.AlertRecord, error)

	// Subscribe streams change notifications for alerts with SentAt strictly after since.
	// Every matching insert after the call returns is eventually delivered, in insertion order
	// for this subscriber. The channel is closed once ctx is done; a backend may also close it
	// after delivering an Err, in which case the caller subscribes again.
	Subscribe(ctx context.Context, since time.Time) (<-chan AlertChange, error)
}
