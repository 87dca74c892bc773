// Package handler receives Pub/Sub push deliveries for the fanout worker.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"alertradar/config"
	deliverycontext "alertradar/internal/delivery/context"
	"alertradar/internal/domain/entity"
	domainerrors "alertradar/internal/domain/errors"
	"alertradar/internal/domain/service"
	"alertradar/internal/errors"
	"alertradar/internal/infra/pubsub"
	"alertradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenVerifier checks the OIDC token Pub/Sub attaches to push requests
type TokenVerifier func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns alert-created events into fanout runs
type PushHandler struct {
	audience string
	verify   TokenVerifier
	logger   *slog.Logger
	fanoutUC usecase.FanoutUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	FanoutUC usecase.FanoutUsecase
}

// NewPushHandler creates a new Pub/Sub push handler.
// Push tokens are verified only when an audience is configured.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		audience: audience,
		verify:   idtoken.Validate,
		logger:   params.Logger,
		fanoutUC: params.FanoutUC,
	}
}

// HandlePush acknowledges with 200 unless the fanout should be redelivered.
// Malformed messages get 400.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyPushToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.AlertCreated()
	if err != nil {
		h.logger.Error("[Worker] Malformed alert event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &envelope, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing alert event",
		slog.String("alert_id", event.AlertID),
		slog.String("message_id", envelope.Message.MessageID),
	)

	report, err := h.fanoutUC.FanoutOnNewAlert(ctx, toAlertRecord(event))
	if err != nil {
		retry := errors.Is(err, domainerrors.ErrQueryFailure)
		reqLogger.Error("[Worker] Fanout failed",
			slog.String("alert_id", event.AlertID),
			slog.Any("error", err),
			slog.Bool("retryable", retry),
		)

		// 503 makes Pub/Sub redeliver; anything else is acknowledged to stop the loop
		if retry {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Fanout completed",
		slog.String("alert_id", report.AlertID),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("skipped", report.Skipped),
	)

	return c.NoContent(http.StatusOK)
}

func toAlertRecord(event *service.AlertCreatedEvent) *entity.AlertRecord {
	return &entity.AlertRecord{
		ID:            event.AlertID,
		Latitude:      event.Latitude,
		Longitude:     event.Longitude,
		SenderID:      event.SenderID,
		SentAt:        event.SentAt,
		LocationLabel: event.LocationLabel,
	}
}

// extractRequestID prefers the envelope, then the inbound header, then a fresh ID
func extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, event *service.AlertCreatedEvent) string {
	if requestID := envelope.RequestID(event); requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPushToken validates the Google-signed ID token on a push request
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPushToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := h.verify(req.Context(), token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
