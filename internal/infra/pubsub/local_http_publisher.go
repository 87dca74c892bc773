package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "alertradar/internal/delivery/context"
	"alertradar/internal/domain/service"
	"alertradar/internal/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/alert-created-push"
	localPublishTimeout = 30 * time.Second
)

// localHTTPPublisher posts push envelopes straight to the worker, standing in for a
// Pub/Sub push subscription during development. Delivery is synchronous, so a
// worker 503 surfaces as a publish error.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPublishTimeout},
		logger:     logger,
		now:        time.Now,
	}
}

func (p *localHTTPPublisher) PublishAlertCreated(ctx context.Context, event *service.AlertCreatedEvent) error {
	envelope, err := NewPushEnvelope(event, localSubscription, p.now())
	if err != nil {
		return err
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "post alert %s to %s", event.AlertID, p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Alert event delivered",
		slog.String("endpoint", p.endpoint),
		slog.String("alert_id", event.AlertID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
