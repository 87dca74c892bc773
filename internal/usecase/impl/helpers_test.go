package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"alertradar/config"
	"alertradar/internal/domain/constants"
	"alertradar/internal/domain/entity"
	"alertradar/internal/domain/repository"
	"alertradar/internal/infra/persistence/memory"
)

var (
	sanFrancisco = entity.Location{Latitude: 37.7749, Longitude: -122.4194}
	oakland      = entity.Location{Latitude: 37.8044, Longitude: -122.2712} // ~8.4 miles from San Francisco
	losAngeles   = entity.Location{Latitude: 34.0522, Longitude: -118.2437}
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Feed: &config.FeedConfig{
			DefaultRadiusMiles:     10,
			MaxRadiusMiles:         100,
			DefaultWindow:          24 * time.Hour,
			MaxWindow:              7 * 24 * time.Hour,
			RecenterPolicy:         constants.RecenterPolicyOnce,
			RecenterThresholdMiles: 1,
		},
		Fanout: &config.FanoutConfig{
			Scope:       constants.FanoutScopeGlobal,
			RadiusMiles: 10,
			Workers:     4,
			AlertText:   "Someone near you needs help!",
			Badge:       1,
		},
	}
}

func alertAt(id, senderID string, loc entity.Location, sentAt time.Time) *entity.AlertRecord {
	return &entity.AlertRecord{
		ID:        id,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		SenderID:  senderID,
		SentAt:    sentAt,
	}
}

// interruptibleAlertStore is the memory store with a first change stream that the
// test ends with a listener error, as the Firestore backend does. The next
// failedReopens Subscribe calls fail before the memory store takes over.
type interruptibleAlertStore struct {
	*memory.AlertRepository

	first         chan repository.AlertChange
	failedReopens int

	mu     sync.Mutex
	opened int
}

func newInterruptibleAlertStore(failedReopens int) *interruptibleAlertStore {
	return &interruptibleAlertStore{
		AlertRepository: memory.NewAlertRepository(),
		first:           make(chan repository.AlertChange, 1),
		failedReopens:   failedReopens,
	}
}

func (s *interruptibleAlertStore) Subscribe(ctx context.Context, since time.Time) (<-chan repository.AlertChange, error) {
	s.mu.Lock()
	s.opened++
	n := s.opened
	s.mu.Unlock()

	switch {
	case n == 1:
		return s.first, nil
	case n-1 <= s.failedReopens:
		return nil, errors.New("listener unavailable")
	default:
		return s.AlertRepository.Subscribe(ctx, since)
	}
}

// interrupt delivers a listener error on the first stream and closes it.
func (s *interruptibleAlertStore) interrupt() {
	s.first <- repository.AlertChange{Err: errors.New("listener failed")}
	close(s.first)
}

func (s *interruptibleAlertStore) subscribeCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.opened
}
