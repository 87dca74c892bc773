package firestore

import (
	"context"
	"log/slog"
	"time"

	"alertradar/config"
	"alertradar/internal/domain/entity"
	"alertradar/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

const fieldDateSent = "dateSent"

// alertDocument is the stored shape of an alert
type alertDocument struct {
	Latitude       float64   `firestore:"latitude"`
	Longitude      float64   `firestore:"longitude"`
	UserID         string    `firestore:"userID"`
	DateSent       time.Time `firestore:"dateSent"`
	LocationString string    `firestore:"locationString,omitempty"`
}

type alertRepository struct {
	client     *firestore.Client
	collection string
	logger     *slog.Logger
}

// NewAlertRepository creates the Firestore-backed alert store
func NewAlertRepository(client *firestore.Client, cfg *config.Config, logger *slog.Logger) repository.AlertRepository {
	return &alertRepository{
		client:     client,
		collection: cfg.Store.AlertCollection,
		logger:     logger,
	}
}

// Insert adds the alert with a server-assigned dateSent. The commit time of the write is the stored timestamp.
func (r *alertRepository) Insert(ctx context.Context, record *entity.AlertRecord) (string, error) {
	ref, result, err := r.client.Collection(r.collection).Add(ctx, map[string]any{
		"latitude":       record.Latitude,
		"longitude":      record.Longitude,
		"userID":         record.SenderID,
		fieldDateSent:    firestore.ServerTimestamp,
		"locationString": record.LocationLabel,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to add alert document")
	}

	record.ID = ref.ID
	record.SentAt = result.UpdateTime

	return ref.ID, nil
}

func (r *alertRepository) QueryRecent(ctx context.Context, since time.Time) ([]*entity.AlertRecord, error) {
	iter := r.recentQuery(since).Documents(ctx)
	defer iter.Stop()

	var records []*entity.AlertRecord
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to query recent alerts")
		}

		record, err := toAlertRecord(snap)
		if err != nil {
			r.logger.Warn("Skipping malformed alert document", slog.String("id", snap.Ref.ID), slog.Any("error", err))
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// Subscribe listens to query snapshots. Added documents of every snapshot, the initial one
// included, are forwarded as a change; listener errors are forwarded and end the stream.
func (r *alertRepository) Subscribe(ctx context.Context, since time.Time) (<-chan repository.AlertChange, error) {
	snapshots := r.recentQuery(since).Snapshots(ctx)
	out := make(chan repository.AlertChange)

	go func() {
		defer close(out)
		defer snapshots.Stop()

		for {
			snapshot, err := snapshots.Next()
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, iterator.Done) {
					return
				}
				r.send(ctx, out, repository.AlertChange{Err: errors.Wrap(err, "alert snapshot listener failed")})

				return
			}

			var added []*entity.AlertRecord
			for _, change := range snapshot.Changes {
				if change.Kind != firestore.DocumentAdded {
					continue
				}
				record, err := toAlertRecord(change.Doc)
				if err != nil {
					r.logger.Warn("Skipping malformed alert document", slog.String("id", change.Doc.Ref.ID), slog.Any("error", err))
					continue
				}
				added = append(added, record)
			}

			if len(added) > 0 && !r.send(ctx, out, repository.AlertChange{Records: added}) {
				return
			}
		}
	}()

	return out, nil
}

func (r *alertRepository) send(ctx context.Context, out chan<- repository.AlertChange, change repository.AlertChange) bool {
	select {
	case out <- change:
		return true
	case <-ctx.Done():
		return false
	}
}

func (r *alertRepository) recentQuery(since time.Time) firestore.Query {
	return r.client.Collection(r.collection).Where(fieldDateSent, ">", since)
}

func toAlertRecord(snap *firestore.DocumentSnapshot) (*entity.AlertRecord, error) {
	var doc alertDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.WithStack(err)
	}

	return &entity.AlertRecord{
		ID:            snap.Ref.ID,
		Latitude:      doc.Latitude,
		Longitude:     doc.Longitude,
		SenderID:      doc.UserID,
		SentAt:        doc.DateSent,
		LocationLabel: doc.LocationString,
	}, nil
}
