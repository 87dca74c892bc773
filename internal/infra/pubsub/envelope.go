package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"alertradar/internal/domain/service"
	"alertradar/internal/errors"
)

// PushEnvelope is the JSON body Pub/Sub POSTs to push subscriptions.
// The local publisher produces the same shape so the worker cannot tell them apart.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushEnvelope wraps an alert event the way a push subscription delivers it
func NewPushEnvelope(event *service.AlertCreatedEvent, subscription string, publishedAt time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	envelope := &PushEnvelope{Subscription: subscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = eventAttributes(event)
	envelope.Message.MessageID = event.AlertID
	envelope.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return envelope, nil
}

// AlertCreated decodes the message payload. An event without an alert ID is rejected.
func (e *PushEnvelope) AlertCreated() (*service.AlertCreatedEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.AlertCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse alert event")
	}

	if event.AlertID == "" {
		return nil, errors.New("alert event without alert ID")
	}

	return &event, nil
}

// RequestID returns the tracing ID carried in the message attributes or the payload
func (e *PushEnvelope) RequestID(event *service.AlertCreatedEvent) string {
	if id := e.Message.Attributes["request_id"]; id != "" {
		return id
	}

	return event.RequestID
}

// eventAttributes builds message attributes for filtering and tracing
func eventAttributes(event *service.AlertCreatedEvent) map[string]string {
	attributes := map[string]string{
		"alert_id":  event.AlertID,
		"sender_id": event.SenderID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
