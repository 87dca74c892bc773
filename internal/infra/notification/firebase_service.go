package notification

import (
	"context"

	"alertradar/internal/domain/entity"
	"alertradar/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

// messagingClient is the subset of *messaging.Client used here
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messagingClient
}

// NewFirebaseService creates a new Firebase Cloud Messaging push service
func NewFirebaseService(ctx context.Context, app *firebase.App) (service.PushService, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// Send delivers one alert push. Unregistered or malformed tokens map to service.ErrInvalidToken.
func (s *firebaseService) Send(ctx context.Context, token string, message *entity.PushMessage) error {
	if _, err := s.client.Send(ctx, buildFCMMessage(token, message)); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return errors.Wrap(service.ErrInvalidToken, err.Error())
		}

		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// buildFCMMessage maps the alert payload to a notification plus the APNs alert, badge and sound
func buildFCMMessage(token string, message *entity.PushMessage) *messaging.Message {
	badge := message.Badge

	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Body: message.Alert,
		},
		Data: message.Data,
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{Body: message.Alert},
					Badge: &badge,
					Sound: message.Sound,
				},
			},
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Body:  message.Alert,
				Sound: message.Sound,
			},
		},
	}
}
