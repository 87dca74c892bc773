package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"alertradar/config"
	"alertradar/internal/domain/constants"
	"alertradar/internal/domain/entity"
	domainerrors "alertradar/internal/domain/errors"
	"alertradar/internal/domain/geo"
	"alertradar/internal/domain/repository"
	"alertradar/internal/usecase"

	"github.com/google/uuid"
)

const (
	streamRetryMin = 500 * time.Millisecond
	streamRetryMax = 30 * time.Second
)

type feedService struct {
	alertRepo repository.AlertRepository
	proximity usecase.ProximityUsecase
	config    *config.FeedConfig
	logger    *slog.Logger
	now       func() time.Time

	// streamRetry is the first delay before a closed change stream is reopened.
	streamRetry time.Duration

	mu   sync.Mutex
	subs map[string]*feedSubscription
}

// NewFeedService creates a new nearby-alert feed service
func NewFeedService(
	alertRepo repository.AlertRepository,
	proximity usecase.ProximityUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.FeedUsecase {
	feedCfg := cfg.Feed
	if feedCfg == nil {
		feedCfg = &config.FeedConfig{RecenterPolicy: constants.RecenterPolicyOnce}
	}

	return &feedService{
		alertRepo: alertRepo,
		proximity: proximity,
		config:    feedCfg,
		logger:    logger,
		now:       time.Now,
		subs:      make(map[string]*feedSubscription),

		streamRetry: streamRetryMin,
	}
}

// Subscribe opens a store change stream for the window and starts the evaluation loop
func (s *feedService) Subscribe(ctx context.Context, opts usecase.FeedOptions) (usecase.FeedSubscription, error) {
	if !opts.Location.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinates
	}
	if opts.RadiusMiles <= 0 {
		return nil, domainerrors.ErrInvalidRadius
	}
	if opts.Window <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("window must be positive")
	}

	subCtx, cancel := context.WithCancel(ctx)

	changes, err := s.alertRepo.Subscribe(subCtx, s.now().Add(-opts.Window))
	if err != nil {
		cancel()

		return nil, domainerrors.ErrQueryFailure.WithCause(err)
	}

	sub := &feedSubscription{
		id:          uuid.NewString(),
		proximity:   s.proximity,
		subscribe:   s.alertRepo.Subscribe,
		streamRetry: s.streamRetry,
		now:         s.now,
		radiusMiles: opts.RadiusMiles,
		window:      opts.Window,
		policy:      s.config.RecenterPolicy,
		threshold:   s.config.RecenterThresholdMiles,
		ctx:         subCtx,
		cancel:      cancel,
		updates:     make(chan usecase.FeedUpdate, 1),
		trigger:     make(chan struct{}, 1),
		done:        make(chan struct{}),
		center:      opts.Location,
		onClose:     s.remove,
	}
	sub.logger = s.logger.With(slog.String("subscriptionID", sub.id))

	s.mu.Lock()
	s.subs[sub.id] = sub
	s.mu.Unlock()

	go sub.run(changes)

	sub.logger.Debug("Feed subscription started",
		slog.Float64("radiusMiles", opts.RadiusMiles),
		slog.Duration("window", opts.Window),
	)

	return sub, nil
}

// Close unsubscribes every live subscription
func (s *feedService) Close() {
	s.mu.Lock()
	subs := make([]*feedSubscription, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
}

func (s *feedService) remove(id string) {
	s.mu.Lock()
	delete(s.subs, id)
	s.mu.Unlock()
}

// feedSubscription re-evaluates the proximity query on store changes and recenters.
// updates holds at most one pending emission; a newer evaluation replaces an unread one.
type feedSubscription struct {
	id          string
	proximity   usecase.ProximityUsecase
	subscribe   func(ctx context.Context, since time.Time) (<-chan repository.AlertChange, error)
	streamRetry time.Duration
	logger      *slog.Logger
	now         func() time.Time
	radiusMiles float64
	window      time.Duration
	policy      string
	threshold   float64
	onClose     func(id string)

	ctx     context.Context
	cancel  context.CancelFunc
	updates chan usecase.FeedUpdate
	trigger chan struct{}
	done    chan struct{}

	mu         sync.Mutex
	center     entity.Location
	recentered bool
	closed     bool
}

func (f *feedSubscription) ID() string {
	return f.id
}

func (f *feedSubscription) Updates() <-chan usecase.FeedUpdate {
	return f.updates
}

func (f *feedSubscription) Center() entity.Location {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.center
}

// UpdateLocation recenters on the first fix under the "once" policy, or on any fix
// further than the threshold from the current center under the "threshold" policy.
func (f *feedSubscription) UpdateLocation(fix entity.LocationFix) {
	if !fix.IsValid() {
		return
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()

		return
	}

	var recenter bool
	switch f.policy {
	case constants.RecenterPolicyThreshold:
		recenter = geo.DistanceMiles(f.center, fix.Location) > f.threshold
	default:
		recenter = !f.recentered
	}

	if recenter {
		f.center = fix.Location
		f.recentered = true
	}
	f.mu.Unlock()

	if !recenter {
		return
	}

	f.logger.Debug("Feed subscription recentered",
		slog.Float64("latitude", fix.Latitude),
		slog.Float64("longitude", fix.Longitude),
	)

	select {
	case f.trigger <- struct{}{}:
	default:
		// An evaluation is already pending and will read the new center.
	}
}

// Unsubscribe cancels the loop, drops any unread update and closes the channel.
// Evaluations still in flight find the subscription closed and discard their result.
func (f *feedSubscription) Unsubscribe() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()

		return
	}
	f.closed = true
	f.cancel()

	select {
	case <-f.updates:
	default:
	}
	close(f.updates)
	f.mu.Unlock()

	if f.onClose != nil {
		f.onClose(f.id)
	}

	f.logger.Debug("Feed subscription stopped")
}

// run evaluates once, then on every store change and recenter. A change stream
// that ends while the subscription is open is reopened with exponential backoff,
// followed by a full evaluation to pick up alerts stored in the gap.
func (f *feedSubscription) run(changes <-chan repository.AlertChange) {
	defer close(f.done)
	defer f.Unsubscribe()

	var reopen <-chan time.Time
	retry := f.streamRetry

	f.evaluate()

	for {
		select {
		case <-f.ctx.Done():
			return
		case change, ok := <-changes:
			if !ok {
				changes = nil
				if f.ctx.Err() != nil {
					return
				}

				f.logger.Warn("Alert change stream closed, reopening", slog.Duration("after", retry))
				reopen = time.After(retry)

				continue
			}

			if change.Err != nil {
				f.publishFailure(change.Err)

				continue
			}

			retry = f.streamRetry
			f.evaluate()
		case <-reopen:
			reopen = nil

			next, err := f.subscribe(f.ctx, f.now().Add(-f.window))
			if err != nil {
				if f.ctx.Err() != nil {
					return
				}

				f.publishFailure(err)
				retry = min(retry*2, streamRetryMax)
				f.logger.Warn("Failed to reopen alert change stream", slog.Any("error", err), slog.Duration("retryIn", retry))
				reopen = time.After(retry)

				continue
			}

			changes = next
			retry = min(retry*2, streamRetryMax)
			f.evaluate()
		case <-f.trigger:
			f.evaluate()
		}
	}
}

func (f *feedSubscription) publishFailure(cause error) {
	f.publish(usecase.FeedUpdate{
		Center:      f.Center(),
		EvaluatedAt: f.now(),
		Err:         domainerrors.ErrQueryFailure.WithCause(cause),
	})
}

// evaluate re-runs the proximity query against the current center and a window ending now
func (f *feedSubscription) evaluate() {
	center := f.Center()
	now := f.now()

	alerts, err := f.proximity.Nearby(f.ctx, center, f.radiusMiles, now.Add(-f.window))
	if err != nil {
		if f.ctx.Err() != nil {
			return
		}

		f.logger.Warn("Feed evaluation failed", slog.Any("error", err))
	}

	f.publish(usecase.FeedUpdate{
		Alerts:      alerts,
		Center:      center,
		EvaluatedAt: now,
		Err:         err,
	})
}

func (f *feedSubscription) publish(update usecase.FeedUpdate) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}

	select {
	case <-f.updates:
	default:
	}

	// Only publish sends, under mu, so the buffer has room after the drain.
	f.updates <- update
}
