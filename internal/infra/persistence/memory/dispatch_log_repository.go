package memory

import (
	"context"
	"sync"

	"alertradar/internal/domain/entity"
)

// DispatchLogRepository keeps dispatch logs in memory
type DispatchLogRepository struct {
	mu   sync.RWMutex
	logs []*entity.DispatchLog
}

// NewDispatchLogRepository creates an empty dispatch log
func NewDispatchLogRepository() *DispatchLogRepository {
	return &DispatchLogRepository{}
}

// BatchCreateDispatchLogs appends copies of logs
func (r *DispatchLogRepository) BatchCreateDispatchLogs(_ context.Context, logs []*entity.DispatchLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, log := range logs {
		if log == nil {
			continue
		}
		clone := *log
		r.logs = append(r.logs, &clone)
	}

	return nil
}

// FindDispatchLogsByAlert returns the logs recorded for an alert in insertion order
func (r *DispatchLogRepository) FindDispatchLogsByAlert(_ context.Context, alertID string) ([]*entity.DispatchLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []*entity.DispatchLog
	for _, log := range r.logs {
		if log.AlertID == alertID {
			clone := *log
			results = append(results, &clone)
		}
	}

	return results, nil
}
