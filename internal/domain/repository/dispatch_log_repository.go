// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"alertradar/internal/domain/entity"
)

// DispatchLogRepository stores per-recipient fanout outcomes.
type DispatchLogRepository interface {
	// BatchCreateDispatchLogs persists multiple dispatch log entries in one batch.
	BatchCreateDispatchLogs(ctx context.Context, logs []*entity.DispatchLog) error

	// FindDispatchLogsByAlert retrieves every dispatch log recorded for an alert.
	FindDispatchLogsByAlert(ctx context.Context, alertID string) ([]*entity.DispatchLog, error)
}
