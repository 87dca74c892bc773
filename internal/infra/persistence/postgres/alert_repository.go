package postgres

import (
	"context"
	"log/slog"
	"time"

	"alertradar/config"
	"alertradar/internal/domain/entity"
	"alertradar/internal/domain/repository"
	"alertradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// commitSkew is how far back a follower re-reads. sent_at is taken at statement time, so a
// row can become visible after a row with a later sent_at.
const commitSkew = 5 * time.Second

// ChangeNotifier wakes followers as soon as an alert is inserted.
// Without one, followers rely on polling alone.
type ChangeNotifier interface {
	Notify(ctx context.Context, alertID string) error
	Listen(ctx context.Context) (<-chan struct{}, error)
}

// AlertRepositoryParams holds dependencies for the alert repository, injected by Fx
type AlertRepositoryParams struct {
	fx.In

	DB       *gorm.DB
	Config   *config.Config
	Logger   *slog.Logger
	Notifier ChangeNotifier `optional:"true"`
}

type alertRepository struct {
	db           *gorm.DB
	notifier     ChangeNotifier
	pollInterval time.Duration
	logger       *slog.Logger
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(params AlertRepositoryParams) repository.AlertRepository {
	return &alertRepository{
		db:           params.DB,
		notifier:     params.Notifier,
		pollInterval: params.Config.Store.PollInterval,
		logger:       params.Logger,
	}
}

// Insert persists the alert; the database assigns id and sent_at.
func (repo *alertRepository) Insert(ctx context.Context, record *entity.AlertRecord) (string, error) {
	alertM := fromAlertDomain(record)

	if err := repo.db.WithContext(ctx).Clauses(clause.Returning{}).Create(alertM).Error; err != nil {
		return "", translateWriteError(err, "failed to insert alert")
	}

	record.ID = alertM.ID.String()
	record.SentAt = alertM.SentAt

	if repo.notifier != nil {
		if err := repo.notifier.Notify(ctx, record.ID); err != nil {
			// Followers still pick the row up on their next poll.
			repo.logger.Warn("Failed to notify alert followers",
				slog.String("alert_id", record.ID),
				slog.Any("error", err),
			)
		}
	}

	return record.ID, nil
}

func (repo *alertRepository) QueryRecent(ctx context.Context, since time.Time) ([]*entity.AlertRecord, error) {
	var alertModels []*model.LocationAlertModel

	if err := repo.db.WithContext(ctx).
		Where("sent_at > ?", since).
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query recent alerts")
	}

	return toAlertDomains(alertModels), nil
}

// Subscribe follows the table by polling, woken early by the change notifier when one is configured.
func (repo *alertRepository) Subscribe(ctx context.Context, since time.Time) (<-chan repository.AlertChange, error) {
	var signals <-chan struct{}
	if repo.notifier != nil {
		s, err := repo.notifier.Listen(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to listen for alert changes")
		}
		signals = s
	}

	out := make(chan repository.AlertChange)
	f := &follower{
		repo:   repo,
		since:  since,
		cursor: since,
		seen:   make(map[uuid.UUID]time.Time),
	}
	go f.run(ctx, signals, out)

	return out, nil
}

// follower tracks what one subscriber has already been sent
type follower struct {
	repo   *alertRepository
	since  time.Time
	cursor time.Time
	seen   map[uuid.UUID]time.Time
}

func (f *follower) run(ctx context.Context, signals <-chan struct{}, out chan<- repository.AlertChange) {
	defer close(out)

	ticker := time.NewTicker(f.repo.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case _, ok := <-signals:
			if !ok {
				f.repo.logger.Warn("Alert change notifier closed, falling back to polling")
				signals = nil

				continue
			}
		}

		change, ok := f.poll(ctx)
		if !ok {
			continue
		}

		select {
		case out <- change:
		case <-ctx.Done():
			return
		}
	}
}

// poll reads rows newer than cursor minus commitSkew and drops those already sent
func (f *follower) poll(ctx context.Context) (repository.AlertChange, bool) {
	from := f.cursor.Add(-commitSkew)
	if from.Before(f.since) {
		from = f.since
	}

	var alertModels []*model.LocationAlertModel
	if err := f.repo.db.WithContext(ctx).
		Where("sent_at > ?", from).
		Order("sent_at, id").
		Find(&alertModels).Error; err != nil {
		if ctx.Err() != nil {
			return repository.AlertChange{}, false
		}

		return repository.AlertChange{Err: errors.Wrap(err, "failed to poll alerts")}, true
	}

	var fresh []*model.LocationAlertModel
	for _, alertM := range alertModels {
		if _, ok := f.seen[alertM.ID]; ok {
			continue
		}
		f.seen[alertM.ID] = alertM.SentAt
		fresh = append(fresh, alertM)
		if alertM.SentAt.After(f.cursor) {
			f.cursor = alertM.SentAt
		}
	}

	horizon := f.cursor.Add(-commitSkew)
	for id, sentAt := range f.seen {
		if sentAt.Before(horizon) {
			delete(f.seen, id)
		}
	}

	if len(fresh) == 0 {
		return repository.AlertChange{}, false
	}

	return repository.AlertChange{Records: toAlertDomains(fresh)}, true
}

// --- Mapper Functions ---

func fromAlertDomain(record *entity.AlertRecord) *model.LocationAlertModel {
	return &model.LocationAlertModel{
		Latitude:      record.Latitude,
		Longitude:     record.Longitude,
		SenderID:      record.SenderID,
		LocationLabel: record.LocationLabel,
	}
}

func toAlertDomains(alertModels []*model.LocationAlertModel) []*entity.AlertRecord {
	records := make([]*entity.AlertRecord, 0, len(alertModels))
	for _, alertM := range alertModels {
		records = append(records, &entity.AlertRecord{
			ID:            alertM.ID.String(),
			Latitude:      alertM.Latitude,
			Longitude:     alertM.Longitude,
			SenderID:      alertM.SenderID,
			SentAt:        alertM.SentAt,
			LocationLabel: alertM.LocationLabel,
		})
	}

	return records
}
