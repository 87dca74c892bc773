// Package memory provides in-process repository implementations for development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"alertradar/internal/domain/entity"
	"alertradar/internal/domain/repository"

	"github.com/google/uuid"
)

// AlertRepository keeps alerts in memory and notifies subscribers synchronously with each insert.
type AlertRepository struct {
	mu          sync.RWMutex
	records     []*entity.AlertRecord
	lastSentAt  time.Time
	subscribers map[int]*alertSubscriber
	nextSubID   int
	now         func() time.Time
}

// NewAlertRepository creates an empty in-memory alert store
func NewAlertRepository() *AlertRepository {
	return NewAlertRepositoryWithClock(time.Now)
}

// NewAlertRepositoryWithClock creates an empty store that stamps SentAt from now
func NewAlertRepositoryWithClock(now func() time.Time) *AlertRepository {
	return &AlertRepository{
		subscribers: make(map[int]*alertSubscriber),
		now:         now,
	}
}

// Insert stores a copy of record. SentAt is strictly increasing in insertion order.
func (r *AlertRepository) Insert(_ context.Context, record *entity.AlertRecord) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sentAt := r.now()
	if !sentAt.After(r.lastSentAt) {
		sentAt = r.lastSentAt.Add(time.Nanosecond)
	}
	r.lastSentAt = sentAt

	record.ID = uuid.NewString()
	record.SentAt = sentAt

	stored := *record
	r.records = append(r.records, &stored)

	for _, sub := range r.subscribers {
		if stored.SentAt.After(sub.since) {
			clone := stored
			sub.push(&clone)
		}
	}

	return stored.ID, nil
}

// QueryRecent returns copies of every alert with SentAt strictly after since
func (r *AlertRepository) QueryRecent(_ context.Context, since time.Time) ([]*entity.AlertRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*entity.AlertRecord, 0, len(r.records))
	for _, record := range r.records {
		if record.SentAt.After(since) {
			clone := *record
			results = append(results, &clone)
		}
	}

	return results, nil
}

// Subscribe registers a subscriber that receives every later insert with SentAt after since
func (r *AlertRepository) Subscribe(ctx context.Context, since time.Time) (<-chan repository.AlertChange, error) {
	sub := &alertSubscriber{
		since:  since,
		out:    make(chan repository.AlertChange),
		signal: make(chan struct{}, 1),
	}

	r.mu.Lock()
	id := r.nextSubID
	r.nextSubID++
	r.subscribers[id] = sub
	r.mu.Unlock()

	go func() {
		sub.run(ctx)

		r.mu.Lock()
		delete(r.subscribers, id)
		r.mu.Unlock()
	}()

	return sub.out, nil
}

// SubscriberCount reports live subscribers
func (r *AlertRepository) SubscriberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.subscribers)
}

// alertSubscriber queues records without bounding so Insert never blocks on a slow reader.
// Records leave the queue in insertion order, possibly batched.
type alertSubscriber struct {
	since  time.Time
	out    chan repository.AlertChange
	signal chan struct{}

	mu      sync.Mutex
	pending []*entity.AlertRecord
}

func (s *alertSubscriber) push(record *entity.AlertRecord) {
	s.mu.Lock()
	s.pending = append(s.pending, record)
	s.mu.Unlock()

	select {
	case s.signal <- struct{}{}:
	default:
	}
}

func (s *alertSubscriber) run(ctx context.Context) {
	defer close(s.out)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.signal:
		}

		s.mu.Lock()
		batch := s.pending
		s.pending = nil
		s.mu.Unlock()

		if len(batch) == 0 {
			continue
		}

		select {
		case s.out <- repository.AlertChange{Records: batch}:
		case <-ctx.Done():
			return
		}
	}
}
