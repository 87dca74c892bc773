package service

import (
	"context"

	"alertradar/internal/domain/entity"
	"alertradar/internal/errors"
)

// ErrInvalidToken is returned by a PushService when the device token is unregistered or malformed.
var ErrInvalidToken = errors.New("device token is invalid or unregistered")

// PushService defines the interface for push notification transports
type PushService interface {
	// Send delivers one push to a single device token.
	// A nil error means the transport accepted the message; delivery beyond that is not tracked.
	Send(ctx context.Context, token string, message *entity.PushMessage) error
}
