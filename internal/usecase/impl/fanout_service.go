package impl

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"alertradar/config"
	"alertradar/internal/domain/constants"
	"alertradar/internal/domain/entity"
	domainerrors "alertradar/internal/domain/errors"
	"alertradar/internal/domain/geo"
	"alertradar/internal/domain/repository"
	"alertradar/internal/domain/service"
	"alertradar/internal/errors"
	"alertradar/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const defaultPushSound = "default"

type fanoutService struct {
	recipientRepo   repository.RecipientRepository
	dispatchLogRepo repository.DispatchLogRepository
	pushSvc         service.PushService
	config          *config.FanoutConfig
	logger          *slog.Logger
}

// NewFanoutService creates a new fanout service instance.
// dispatchLogRepo may be nil when the backend keeps no dispatch audit.
func NewFanoutService(
	recipientRepo repository.RecipientRepository,
	dispatchLogRepo repository.DispatchLogRepository,
	pushSvc service.PushService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.FanoutUsecase {
	fanoutCfg := cfg.Fanout
	if fanoutCfg == nil {
		fanoutCfg = &config.FanoutConfig{
			Scope:     constants.FanoutScopeGlobal,
			Workers:   1,
			AlertText: "Someone near you needs help!",
			Badge:     1,
		}
	}

	return &fanoutService{
		recipientRepo:   recipientRepo,
		dispatchLogRepo: dispatchLogRepo,
		pushSvc:         pushSvc,
		config:          fanoutCfg,
		logger:          logger,
	}
}

// FanoutOnNewAlert scans push-enabled recipients once and dispatches one push per reachable recipient
func (s *fanoutService) FanoutOnNewAlert(ctx context.Context, alert *entity.AlertRecord) (*entity.FanoutReport, error) {
	start := time.Now()
	logger := s.logger.With(slog.String("alertID", alert.ID))

	recipients, err := s.recipientRepo.FindPushEnabledRecipients(ctx)
	if err != nil {
		return nil, domainerrors.ErrQueryFailure.WithCause(errors.Wrap(err, "failed to scan push-enabled recipients"))
	}

	report := &entity.FanoutReport{
		AlertID:    alert.ID,
		Recipients: len(recipients),
	}

	message := s.buildMessage(alert)
	logs := make([]*entity.DispatchLog, len(recipients))

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(s.config.Workers, 1))

	for i, recipient := range recipients {
		if !s.inScope(alert, recipient) {
			logs[i] = s.newDispatchLog(alert.ID, recipient.ID, entity.DispatchStatusSkipped, "out of fanout radius")
			report.Skipped++

			continue
		}

		if recipient.DeviceToken == "" {
			logger.Debug("Skipping recipient without device token", slog.String("recipientID", recipient.ID))
			logs[i] = s.newDispatchLog(alert.ID, recipient.ID, entity.DispatchStatusSkipped, "no device token")
			report.Skipped++

			continue
		}

		report.Attempted++
		group.Go(func() error {
			sendErr := s.pushSvc.Send(groupCtx, recipient.DeviceToken, message)

			mu.Lock()
			defer mu.Unlock()

			if sendErr != nil {
				report.Failed++
				if errors.Is(sendErr, service.ErrInvalidToken) {
					report.InvalidTokens = append(report.InvalidTokens, recipient.DeviceToken)
				}
				logs[i] = s.newDispatchLog(alert.ID, recipient.ID, entity.DispatchStatusFailed, sendErr.Error())

				logger.Warn("Push dispatch failed",
					slog.String("recipientID", recipient.ID),
					slog.Any("error", domainerrors.ErrDispatchFailure.WithCause(sendErr)),
				)

				// Dispatch failures stay local to the recipient and never cancel the group.
				return nil
			}

			report.Sent++
			logs[i] = s.newDispatchLog(alert.ID, recipient.ID, entity.DispatchStatusSent, "")

			return nil
		})
	}

	_ = group.Wait()
	report.Duration = time.Since(start)

	s.saveDispatchLogs(ctx, logger, logs)

	logger.Info("Fanout completed",
		slog.Int("recipients", report.Recipients),
		slog.Int("attempted", report.Attempted),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("skipped", report.Skipped),
		slog.Int("invalidTokens", len(report.InvalidTokens)),
		slog.Duration("duration", report.Duration),
	)

	return report, nil
}

func (s *fanoutService) buildMessage(alert *entity.AlertRecord) *entity.PushMessage {
	return &entity.PushMessage{
		Alert: s.config.AlertText,
		Badge: s.config.Badge,
		Sound: defaultPushSound,
		Data: map[string]string{
			"alert_id":       alert.ID,
			"sender_id":      alert.SenderID,
			"latitude":       strconv.FormatFloat(alert.Latitude, 'f', -1, 64),
			"longitude":      strconv.FormatFloat(alert.Longitude, 'f', -1, 64),
			"location_label": alert.LocationLabel,
		},
	}
}

// inScope applies the radius scope. Recipients without a known location are kept,
// since their distance cannot be ruled out.
func (s *fanoutService) inScope(alert *entity.AlertRecord, recipient *entity.RecipientProfile) bool {
	if s.config.Scope != constants.FanoutScopeRadius || recipient.LastKnownLocation == nil {
		return true
	}

	return geo.DistanceMiles(alert.Location(), *recipient.LastKnownLocation) <= s.config.RadiusMiles
}

func (s *fanoutService) newDispatchLog(alertID, recipientID, status, errorMessage string) *entity.DispatchLog {
	return &entity.DispatchLog{
		ID:           uuid.NewString(),
		AlertID:      alertID,
		RecipientID:  recipientID,
		Status:       status,
		ErrorMessage: errorMessage,
		AttemptedAt:  time.Now(),
	}
}

func (s *fanoutService) saveDispatchLogs(ctx context.Context, logger *slog.Logger, logs []*entity.DispatchLog) {
	if s.dispatchLogRepo == nil || len(logs) == 0 {
		return
	}

	if err := s.dispatchLogRepo.BatchCreateDispatchLogs(ctx, logs); err != nil {
		// Audit failures never change the fanout outcome.
		logger.Error("Failed to save dispatch logs", slog.Any("error", err))
	}
}
