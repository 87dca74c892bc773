package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"alertradar/internal/domain/constants"
	"alertradar/internal/domain/entity"
	domainerrors "alertradar/internal/domain/errors"
	"alertradar/internal/domain/repository"
	"alertradar/internal/infra/persistence/memory"
	mockRepo "alertradar/internal/mocks/repository"
	mockUsecase "alertradar/internal/mocks/usecase"
	"alertradar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const feedWaitTimeout = 2 * time.Second

type feedFixture struct {
	alerts     *memory.AlertRepository
	recipients *memory.RecipientRepository
	feed       usecase.FeedUsecase
}

func newFeedFixture(t *testing.T, policy string) *feedFixture {
	t.Helper()

	cfg := newTestConfig()
	cfg.Feed.RecenterPolicy = policy

	alerts := memory.NewAlertRepository()
	recipients := memory.NewRecipientRepository()
	proximity := NewProximityService(alerts, recipients, newDiscardLogger())
	feed := NewFeedService(alerts, proximity, cfg, newDiscardLogger())
	t.Cleanup(feed.Close)

	return &feedFixture{alerts: alerts, recipients: recipients, feed: feed}
}

func (f *feedFixture) insert(t *testing.T, senderID string, loc entity.Location) string {
	t.Helper()

	id, err := f.alerts.Insert(context.Background(), &entity.AlertRecord{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		SenderID:  senderID,
	})
	require.NoError(t, err)

	return id
}

// waitForUpdate reads updates until match accepts one or the timeout expires.
func waitForUpdate(t *testing.T, sub usecase.FeedSubscription, match func(usecase.FeedUpdate) bool) usecase.FeedUpdate {
	t.Helper()

	timeout := time.After(feedWaitTimeout)
	for {
		select {
		case update, ok := <-sub.Updates():
			require.True(t, ok, "updates channel closed")
			if match(update) {
				return update
			}
		case <-timeout:
			t.Fatal("timed out waiting for feed update")

			return usecase.FeedUpdate{}
		}
	}
}

func alertIDs(update usecase.FeedUpdate) []string {
	ids := make([]string, 0, len(update.Alerts))
	for _, alert := range update.Alerts {
		ids = append(ids, alert.ID)
	}

	return ids
}

func TestFeedService_Subscribe_InitialSetIsSpatiallySound(t *testing.T) {
	f := newFeedFixture(t, constants.RecenterPolicyOnce)
	f.recipients.Upsert(&entity.RecipientProfile{ID: "alice", DisplayName: "Alice"})

	nearID := f.insert(t, "alice", oakland)
	f.insert(t, "bob", losAngeles)

	sub, err := f.feed.Subscribe(context.Background(), usecase.FeedOptions{
		Location:    sanFrancisco,
		RadiusMiles: 10,
		Window:      time.Hour,
	})
	require.NoError(t, err)

	update := waitForUpdate(t, sub, func(usecase.FeedUpdate) bool { return true })
	require.NoError(t, update.Err)
	assert.Equal(t, []string{nearID}, alertIDs(update))
	assert.Equal(t, "Alice", update.Alerts[0].SenderDisplayName)
	assert.Equal(t, sanFrancisco, update.Center)
}

func TestFeedService_Subscribe_LaterInsertIsEventuallyEmitted(t *testing.T) {
	f := newFeedFixture(t, constants.RecenterPolicyOnce)

	sub, err := f.feed.Subscribe(context.Background(), usecase.FeedOptions{
		Location:    sanFrancisco,
		RadiusMiles: 10,
		Window:      time.Hour,
	})
	require.NoError(t, err)

	waitForUpdate(t, sub, func(update usecase.FeedUpdate) bool { return len(update.Alerts) == 0 })

	f.insert(t, "bob", losAngeles)
	id := f.insert(t, "deleted-user", oakland)

	update := waitForUpdate(t, sub, func(update usecase.FeedUpdate) bool { return len(update.Alerts) > 0 })
	assert.Equal(t, []string{id}, alertIDs(update))
	assert.Equal(t, constants.UnknownSenderName, update.Alerts[0].SenderDisplayName)
}

func TestFeedService_UpdateLocation_RecentersOnce(t *testing.T) {
	f := newFeedFixture(t, constants.RecenterPolicyOnce)
	id := f.insert(t, constants.AnonymousSenderID, oakland)

	sub, err := f.feed.Subscribe(context.Background(), usecase.FeedOptions{
		Location:    losAngeles,
		RadiusMiles: 10,
		Window:      time.Hour,
	})
	require.NoError(t, err)

	waitForUpdate(t, sub, func(update usecase.FeedUpdate) bool { return update.Center == losAngeles })

	sub.UpdateLocation(entity.LocationFix{Location: sanFrancisco, ObservedAt: time.Now()})

	update := waitForUpdate(t, sub, func(update usecase.FeedUpdate) bool { return update.Center == sanFrancisco })
	assert.Equal(t, []string{id}, alertIDs(update))

	// Later fixes are ignored under the once policy.
	sub.UpdateLocation(entity.LocationFix{Location: losAngeles, ObservedAt: time.Now()})
	assert.Equal(t, sanFrancisco, sub.Center())
}

func TestFeedService_UpdateLocation_ThresholdPolicy(t *testing.T) {
	f := newFeedFixture(t, constants.RecenterPolicyThreshold)

	sub, err := f.feed.Subscribe(context.Background(), usecase.FeedOptions{
		Location:    sanFrancisco,
		RadiusMiles: 10,
		Window:      time.Hour,
	})
	require.NoError(t, err)

	// ~0.07 miles, below the 1 mile threshold.
	sub.UpdateLocation(entity.LocationFix{Location: entity.Location{Latitude: 37.7759, Longitude: -122.4194}})
	assert.Equal(t, sanFrancisco, sub.Center())

	sub.UpdateLocation(entity.LocationFix{Location: oakland})
	assert.Equal(t, oakland, sub.Center())

	sub.UpdateLocation(entity.LocationFix{Location: losAngeles})
	assert.Equal(t, losAngeles, sub.Center())
}

func TestFeedService_Unsubscribe_DiscardsInFlightEvaluation(t *testing.T) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	proximity := mockUsecase.NewMockProximityUsecase(t)
	feed := NewFeedService(alertRepo, proximity, newTestConfig(), newDiscardLogger())

	changes := make(chan repository.AlertChange)
	alertRepo.EXPECT().
		Subscribe(mock.Anything, mock.Anything).
		Return((<-chan repository.AlertChange)(changes), nil)

	started := make(chan struct{})
	release := make(chan struct{})
	proximity.EXPECT().
		Nearby(mock.Anything, sanFrancisco, 10.0, mock.Anything).
		RunAndReturn(func(context.Context, entity.Location, float64, time.Time) ([]*entity.EnrichedAlert, error) {
			close(started)
			<-release

			return []*entity.EnrichedAlert{{AlertRecord: entity.AlertRecord{ID: "late"}}}, nil
		}).
		Once()

	sub, err := feed.Subscribe(context.Background(), usecase.FeedOptions{
		Location:    sanFrancisco,
		RadiusMiles: 10,
		Window:      time.Hour,
	})
	require.NoError(t, err)

	<-started
	sub.Unsubscribe()
	close(release)

	select {
	case update, ok := <-sub.Updates():
		assert.False(t, ok, "received update after unsubscribe: %+v", update)
	case <-time.After(feedWaitTimeout):
		t.Fatal("updates channel was not closed")
	}

	// Repeated unsubscribe is a no-op.
	sub.Unsubscribe()
	<-sub.(*feedSubscription).done
}

func TestFeedService_ChangeStreamErrorKeepsSubscriptionOpen(t *testing.T) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	proximity := mockUsecase.NewMockProximityUsecase(t)
	feed := NewFeedService(alertRepo, proximity, newTestConfig(), newDiscardLogger())
	t.Cleanup(feed.Close)

	changes := make(chan repository.AlertChange)
	alertRepo.EXPECT().
		Subscribe(mock.Anything, mock.Anything).
		Return((<-chan repository.AlertChange)(changes), nil)
	proximity.EXPECT().
		Nearby(mock.Anything, sanFrancisco, 10.0, mock.Anything).
		Return(nil, nil)

	sub, err := feed.Subscribe(context.Background(), usecase.FeedOptions{
		Location:    sanFrancisco,
		RadiusMiles: 10,
		Window:      time.Hour,
	})
	require.NoError(t, err)

	waitForUpdate(t, sub, func(update usecase.FeedUpdate) bool { return update.Err == nil })

	changes <- repository.AlertChange{Err: errors.New("listener reset")}
	failed := waitForUpdate(t, sub, func(update usecase.FeedUpdate) bool { return update.Err != nil })
	assert.ErrorIs(t, failed.Err, domainerrors.ErrQueryFailure)

	changes <- repository.AlertChange{}
	recovered := waitForUpdate(t, sub, func(update usecase.FeedUpdate) bool { return update.Err == nil })
	assert.Empty(t, recovered.Alerts)
}

func TestFeedService_ClosedChangeStreamIsReopened(t *testing.T) {
	tests := []struct {
		name          string
		failedReopens int
	}{
		{name: "reopens on first attempt", failedReopens: 0},
		{name: "retries failed reopens", failedReopens: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newInterruptibleAlertStore(tt.failedReopens)
			proximity := NewProximityService(store, memory.NewRecipientRepository(), newDiscardLogger())
			feed := NewFeedService(store, proximity, newTestConfig(), newDiscardLogger())
			feed.(*feedService).streamRetry = 5 * time.Millisecond
			t.Cleanup(feed.Close)

			sub, err := feed.Subscribe(context.Background(), usecase.FeedOptions{
				Location:    sanFrancisco,
				RadiusMiles: 10,
				Window:      time.Hour,
			})
			require.NoError(t, err)
			waitForUpdate(t, sub, func(update usecase.FeedUpdate) bool { return update.Err == nil })

			store.interrupt()
			require.Eventually(t, func() bool {
				return store.subscribeCalls() == tt.failedReopens+2
			}, feedWaitTimeout, 5*time.Millisecond)

			id, err := store.Insert(context.Background(), &entity.AlertRecord{
				Latitude:  oakland.Latitude,
				Longitude: oakland.Longitude,
				SenderID:  constants.AnonymousSenderID,
			})
			require.NoError(t, err)

			update := waitForUpdate(t, sub, func(update usecase.FeedUpdate) bool {
				return update.Err == nil && len(update.Alerts) == 1
			})
			assert.Equal(t, []string{id}, alertIDs(update))
			assert.Equal(t, sanFrancisco, update.Center)
		})
	}
}

func TestFeedService_Subscribe_StoreFailure(t *testing.T) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	proximity := mockUsecase.NewMockProximityUsecase(t)
	feed := NewFeedService(alertRepo, proximity, newTestConfig(), newDiscardLogger())

	alertRepo.EXPECT().
		Subscribe(mock.Anything, mock.Anything).
		Return(nil, errors.New("unavailable"))

	sub, err := feed.Subscribe(context.Background(), usecase.FeedOptions{
		Location:    sanFrancisco,
		RadiusMiles: 10,
		Window:      time.Hour,
	})
	assert.Nil(t, sub)
	assert.ErrorIs(t, err, domainerrors.ErrQueryFailure)
}

func TestFeedService_Subscribe_RejectsInvalidOptions(t *testing.T) {
	f := newFeedFixture(t, constants.RecenterPolicyOnce)
	ctx := context.Background()

	_, err := f.feed.Subscribe(ctx, usecase.FeedOptions{Location: sanFrancisco, RadiusMiles: 0, Window: time.Hour})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)

	_, err = f.feed.Subscribe(ctx, usecase.FeedOptions{Location: entity.Location{Latitude: -91}, RadiusMiles: 10, Window: time.Hour})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)

	_, err = f.feed.Subscribe(ctx, usecase.FeedOptions{Location: sanFrancisco, RadiusMiles: 10})
	assert.Error(t, err)
}

func TestFeedService_Close_StopsEverySubscription(t *testing.T) {
	f := newFeedFixture(t, constants.RecenterPolicyOnce)

	subs := make([]usecase.FeedSubscription, 0, 3)
	for range 3 {
		sub, err := f.feed.Subscribe(context.Background(), usecase.FeedOptions{
			Location:    sanFrancisco,
			RadiusMiles: 10,
			Window:      time.Hour,
		})
		require.NoError(t, err)
		subs = append(subs, sub)
	}

	f.feed.Close()

	for _, sub := range subs {
		<-sub.(*feedSubscription).done
		_, ok := <-sub.Updates()
		assert.False(t, ok)
	}

	assert.Eventually(t, func() bool { return f.alerts.SubscriberCount() == 0 }, feedWaitTimeout, 10*time.Millisecond)
}

func TestFeedService_ContextCancelEndsSubscription(t *testing.T) {
	f := newFeedFixture(t, constants.RecenterPolicyOnce)
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := f.feed.Subscribe(ctx, usecase.FeedOptions{
		Location:    sanFrancisco,
		RadiusMiles: 10,
		Window:      time.Hour,
	})
	require.NoError(t, err)

	cancel()
	<-sub.(*feedSubscription).done

	_, ok := <-sub.Updates()
	assert.False(t, ok)
}
