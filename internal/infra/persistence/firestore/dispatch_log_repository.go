package firestore

import (
	"context"
	"time"

	"alertradar/config"
	"alertradar/internal/domain/entity"
	"alertradar/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// dispatchLogCollection is a subcollection of each alert document
const dispatchLogCollection = "dispatches"

type dispatchLogDocument struct {
	RecipientID  string    `firestore:"recipientID"`
	Status       string    `firestore:"status"`
	ErrorMessage string    `firestore:"errorMessage,omitempty"`
	AttemptedAt  time.Time `firestore:"attemptedAt"`
}

type dispatchLogRepository struct {
	client          *firestore.Client
	alertCollection string
}

// NewDispatchLogRepository stores dispatch logs under the alert they belong to
func NewDispatchLogRepository(client *firestore.Client, cfg *config.Config) repository.DispatchLogRepository {
	return &dispatchLogRepository{
		client:          client,
		alertCollection: cfg.Store.AlertCollection,
	}
}

func (r *dispatchLogRepository) BatchCreateDispatchLogs(ctx context.Context, logs []*entity.DispatchLog) error {
	if len(logs) == 0 {
		return nil
	}

	writer := r.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(logs))
	for _, log := range logs {
		if log.ID == "" {
			log.ID = uuid.NewString()
		}

		job, err := writer.Set(r.logs(log.AlertID).Doc(log.ID), dispatchLogDocument{
			RecipientID:  log.RecipientID,
			Status:       log.Status,
			ErrorMessage: log.ErrorMessage,
			AttemptedAt:  log.AttemptedAt,
		})
		if err != nil {
			writer.End()

			return errors.Wrap(err, "failed to enqueue dispatch log")
		}
		jobs = append(jobs, job)
	}
	writer.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errors.Wrap(err, "failed to write dispatch log")
		}
	}

	return nil
}

func (r *dispatchLogRepository) FindDispatchLogsByAlert(ctx context.Context, alertID string) ([]*entity.DispatchLog, error) {
	iter := r.logs(alertID).OrderBy("attemptedAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var logs []*entity.DispatchLog
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list dispatch logs")
		}

		var doc dispatchLogDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.WithStack(err)
		}
		logs = append(logs, &entity.DispatchLog{
			ID:           snap.Ref.ID,
			AlertID:      alertID,
			RecipientID:  doc.RecipientID,
			Status:       doc.Status,
			ErrorMessage: doc.ErrorMessage,
			AttemptedAt:  doc.AttemptedAt,
		})
	}

	return logs, nil
}

func (r *dispatchLogRepository) logs(alertID string) *firestore.CollectionRef {
	return r.client.Collection(r.alertCollection).Doc(alertID).Collection(dispatchLogCollection)
}
