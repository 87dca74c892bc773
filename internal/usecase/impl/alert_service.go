package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"alertradar/config"
	deliverycontext "alertradar/internal/delivery/context"
	"alertradar/internal/domain/constants"
	"alertradar/internal/domain/entity"
	domainerrors "alertradar/internal/domain/errors"
	"alertradar/internal/domain/repository"
	"alertradar/internal/domain/service"
	"alertradar/internal/usecase"
)

type alertService struct {
	alertRepo repository.AlertRepository
	feed      usecase.FeedUsecase
	proximity usecase.ProximityUsecase
	fanout    usecase.FanoutUsecase
	publisher service.EventPublisher
	config    *config.FeedConfig
	logger    *slog.Logger

	// runFanout starts the in-process fanout. Tests replace it to run synchronously.
	runFanout func(alert *entity.AlertRecord)
}

// NewAlertService creates the alert library surface.
// publisher may be nil, in which case every stored alert is fanned out in-process.
func NewAlertService(
	alertRepo repository.AlertRepository,
	feed usecase.FeedUsecase,
	proximity usecase.ProximityUsecase,
	fanout usecase.FanoutUsecase,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AlertUsecase {
	feedCfg := cfg.Feed
	if feedCfg == nil {
		feedCfg = &config.FeedConfig{}
	}

	srv := &alertService{
		alertRepo: alertRepo,
		feed:      feed,
		proximity: proximity,
		fanout:    fanout,
		publisher: publisher,
		config:    feedCfg,
		logger:    logger,
	}
	srv.runFanout = srv.fanoutInBackground

	return srv
}

// SubmitAlert stores the alert and hands it to exactly one fanout path
func (srv *alertService) SubmitAlert(ctx context.Context, input *usecase.SubmitAlertInput) (string, error) {
	if input == nil || input.Location == nil {
		return "", domainerrors.ErrLocationUnavailable
	}
	if !input.Location.IsValid() {
		return "", domainerrors.ErrInvalidCoordinates
	}

	senderID := strings.TrimSpace(input.SenderID)
	if senderID == "" {
		senderID = constants.AnonymousSenderID
	}

	record := &entity.AlertRecord{
		Latitude:      input.Location.Latitude,
		Longitude:     input.Location.Longitude,
		SenderID:      senderID,
		LocationLabel: strings.TrimSpace(input.LocationLabel),
	}

	id, err := srv.alertRepo.Insert(ctx, record)
	if err != nil {
		srv.getLogger(ctx).Error("Failed to store alert", slog.String("senderID", senderID), slog.Any("error", err))

		return "", domainerrors.ErrWriteFailure.WithCause(err)
	}
	record.ID = id

	srv.getLogger(ctx).Info("Alert stored",
		slog.String("alertID", id),
		slog.String("senderID", senderID),
	)

	srv.dispatch(ctx, record)

	return id, nil
}

// dispatch publishes the created event, falling back to in-process fanout when
// no publisher is configured or publishing fails.
func (srv *alertService) dispatch(ctx context.Context, record *entity.AlertRecord) {
	if srv.publisher == nil {
		srv.runFanout(record)

		return
	}

	event := &service.AlertCreatedEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		AlertID:       record.ID,
		SenderID:      record.SenderID,
		Latitude:      record.Latitude,
		Longitude:     record.Longitude,
		LocationLabel: record.LocationLabel,
		SentAt:        record.SentAt,
	}
	if err := srv.publisher.PublishAlertCreated(ctx, event); err != nil {
		srv.getLogger(ctx).Warn("Failed to publish alert event, running fanout in-process",
			slog.String("alertID", record.ID),
			slog.Any("error", err),
		)
		srv.runFanout(record)
	}
}

func (srv *alertService) fanoutInBackground(record *entity.AlertRecord) {
	go func() {
		// Detached from the request: the submitter does not wait for fanout.
		if _, err := srv.fanout.FanoutOnNewAlert(context.Background(), record); err != nil {
			srv.logger.Error("In-process fanout failed", slog.String("alertID", record.ID), slog.Any("error", err))
		}
	}()
}

// Nearby runs the proximity matcher once
func (srv *alertService) Nearby(ctx context.Context, input *usecase.NearbyInput) ([]*entity.EnrichedAlert, error) {
	opts, err := srv.feedOptions(input)
	if err != nil {
		return nil, err
	}

	return srv.proximity.Nearby(ctx, opts.Location, opts.RadiusMiles, srv.since(opts))
}

// SubscribeNearby starts a live feed
func (srv *alertService) SubscribeNearby(ctx context.Context, input *usecase.NearbyInput) (usecase.FeedSubscription, error) {
	opts, err := srv.feedOptions(input)
	if err != nil {
		return nil, err
	}

	return srv.feed.Subscribe(ctx, *opts)
}

// Unsubscribe stops a live feed
func (srv *alertService) Unsubscribe(subscription usecase.FeedSubscription) {
	if subscription == nil {
		return
	}

	subscription.Unsubscribe()
}

// feedOptions applies configured defaults and limits
func (srv *alertService) feedOptions(input *usecase.NearbyInput) (*usecase.FeedOptions, error) {
	if input == nil || input.Location == nil {
		return nil, domainerrors.ErrLocationUnavailable
	}
	if !input.Location.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	opts := &usecase.FeedOptions{
		Location:    *input.Location,
		RadiusMiles: input.RadiusMiles,
		Window:      input.Window,
	}

	if opts.RadiusMiles == 0 {
		opts.RadiusMiles = srv.config.DefaultRadiusMiles
	}
	if opts.RadiusMiles <= 0 || (srv.config.MaxRadiusMiles > 0 && opts.RadiusMiles > srv.config.MaxRadiusMiles) {
		return nil, domainerrors.ErrInvalidRadius
	}

	if opts.Window == 0 {
		opts.Window = srv.config.DefaultWindow
	}
	if opts.Window <= 0 || (srv.config.MaxWindow > 0 && opts.Window > srv.config.MaxWindow) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("window is out of range")
	}

	return opts, nil
}

func (srv *alertService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// since returns the window start for a one-shot query
func (srv *alertService) since(opts *usecase.FeedOptions) time.Time {
	return time.Now().Add(-opts.Window)
}
