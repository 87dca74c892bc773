package postgres

import (
	"context"

	"alertradar/internal/domain/entity"
	"alertradar/internal/domain/repository"
	"alertradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const dispatchLogBatchSize = 100

type dispatchLogRepository struct {
	db *gorm.DB
}

// NewDispatchLogRepository is the constructor for dispatchLogRepository.
func NewDispatchLogRepository(db *gorm.DB) repository.DispatchLogRepository {
	return &dispatchLogRepository{
		db: db,
	}
}

// BatchCreateDispatchLogs writes all logs of one fanout in a single transaction
func (repo *dispatchLogRepository) BatchCreateDispatchLogs(ctx context.Context, logs []*entity.DispatchLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.DispatchLogModel, 0, len(logs))
	for _, log := range logs {
		logM, err := fromDispatchLogDomain(log)
		if err != nil {
			return err
		}
		logModels = append(logModels, logM)
	}

	if err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(logModels, dispatchLogBatchSize).Error
	}); err != nil {
		return translateWriteError(err, "failed to batch create dispatch logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID.String()
	}

	return nil
}

func (repo *dispatchLogRepository) FindDispatchLogsByAlert(ctx context.Context, alertID string) ([]*entity.DispatchLog, error) {
	id, err := uuid.Parse(alertID)
	if err != nil {
		// IDs from another backend never match a row here.
		return []*entity.DispatchLog{}, nil
	}

	var logModels []*model.DispatchLogModel
	if err := repo.db.WithContext(ctx).
		Where("alert_id = ?", id).
		Order("attempted_at").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find dispatch logs by alert")
	}

	logs := make([]*entity.DispatchLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, &entity.DispatchLog{
			ID:           logM.ID.String(),
			AlertID:      logM.AlertID.String(),
			RecipientID:  logM.RecipientID,
			Status:       logM.Status,
			ErrorMessage: logM.ErrorMessage,
			AttemptedAt:  logM.AttemptedAt,
		})
	}

	return logs, nil
}

func fromDispatchLogDomain(log *entity.DispatchLog) (*model.DispatchLogModel, error) {
	alertID, err := uuid.Parse(log.AlertID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid alert ID %q", log.AlertID)
	}

	return &model.DispatchLogModel{
		AlertID:      alertID,
		RecipientID:  log.RecipientID,
		Status:       log.Status,
		ErrorMessage: log.ErrorMessage,
		AttemptedAt:  log.AttemptedAt,
	}, nil
}
