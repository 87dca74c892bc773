package firestore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"alertradar/config"
	"alertradar/internal/domain/entity"
	"alertradar/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmulatorClient connects to the Firestore emulator, skipping when none is running
func newEmulatorClient(t *testing.T) (*firestore.Client, *config.Config) {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "alertradar-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	suffix := uuid.NewString()[:8]
	cfg := &config.Config{Store: &config.StoreConfig{
		AlertCollection: "alerts-" + suffix,
		UserCollection:  "users-" + suffix,
	}}

	return client, cfg
}

func TestAlertRepository_InsertAndQueryRecent(t *testing.T) {
	client, cfg := newEmulatorClient(t)
	repo := NewAlertRepository(client, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	before := time.Now().Add(-time.Minute)
	record := &entity.AlertRecord{Latitude: 37.7749, Longitude: -122.4194, SenderID: "u1", LocationLabel: "San Francisco, CA"}

	id, err := repo.Insert(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, id, record.ID)
	assert.False(t, record.SentAt.IsZero())

	recent, err := repo.QueryRecent(ctx, before)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "u1", recent[0].SenderID)
	assert.Equal(t, "San Francisco, CA", recent[0].LocationLabel)

	none, err := repo.QueryRecent(ctx, record.SentAt)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAlertRepository_SubscribeDeliversInsert(t *testing.T) {
	client, cfg := newEmulatorClient(t)
	repo := NewAlertRepository(client, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := repo.Subscribe(ctx, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	id, err := repo.Insert(context.Background(), &entity.AlertRecord{Latitude: 1, Longitude: 2, SenderID: "u1"})
	require.NoError(t, err)

	deadline := time.After(10 * time.Second)
	for {
		select {
		case change := <-changes:
			require.NoError(t, change.Err)
			for _, r := range change.Records {
				if r.ID == id {
					return
				}
			}
		case <-deadline:
			t.Fatal("insert was not delivered")
		}
	}
}

func TestRecipientRepository_Emulator(t *testing.T) {
	client, cfg := newEmulatorClient(t)
	repo := NewRecipientRepository(client, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	users := client.Collection(cfg.Store.UserCollection)
	_, err := users.Doc("legacy").Set(ctx, map[string]any{"name": "Ana", "isPushOn": true, "pushToken": "t1"})
	require.NoError(t, err)
	_, err = users.Doc("modern").Set(ctx, map[string]any{"name": "Ben", "pushEnabled": true, "pushToken": "t2"})
	require.NoError(t, err)
	_, err = users.Doc("off").Set(ctx, map[string]any{"name": "Cy", "isPushOn": false})
	require.NoError(t, err)

	profiles, err := repo.FindPushEnabledRecipients(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{"legacy", "modern"}, ids)

	_, err = repo.FindRecipientByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrRecipientNotFound)

	ana, err := repo.FindRecipientByID(ctx, "legacy")
	require.NoError(t, err)
	assert.Equal(t, "Ana", ana.DisplayName)
}
